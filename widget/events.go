package widget

import "fmt"

// Event is delivered to handlers when a window fires an event.
type Event struct {
	Name   string
	Source *Window
}

// Handler receives fired events.
type Handler func(Event)

type subscription struct {
	id uint64
	fn Handler
}

// Connection identifies one subscription so it can be removed.
type Connection struct {
	w     *Window
	event string
	id    uint64
}

// Disconnect removes the subscription. Disconnecting twice is a no-op.
func (c Connection) Disconnect() {
	if c.w == nil {
		return
	}
	subs := c.w.subs[c.event]
	for i, s := range subs {
		if s.id == c.id {
			c.w.subs[c.event] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(c.w.subs[c.event]) == 0 {
		delete(c.w.subs, c.event)
	}
}

// Subscribe calls h whenever the window fires the named event.
func (w *Window) Subscribe(event string, h Handler) Connection {
	w.nextID++
	w.subs[event] = append(w.subs[event], subscription{id: w.nextID, fn: h})
	return Connection{w: w, event: event, id: w.nextID}
}

// FireEvent calls every handler subscribed to name, in subscription order.
// Handlers added or removed during the call take effect on the next fire.
func (w *Window) FireEvent(name string) {
	subs := append([]subscription(nil), w.subs[name]...)
	e := Event{Name: name, Source: w}
	for _, s := range subs {
		s.fn(e)
	}
}

// LinkEvent implements falagard.Window. An empty child name links to an
// event of the window itself.
func (w *Window) LinkEvent(name, child, childEvent string) error {
	src := w
	if child != "" {
		c, err := w.ChildWindow(child)
		if err != nil {
			return err
		}
		src = c
	}
	if src == w && childEvent == name {
		return fmt.Errorf("%w: %q on window %q", ErrSelfLink, name, w.name)
	}
	conn := src.Subscribe(childEvent, func(Event) { w.FireEvent(name) })
	w.links[name] = append(w.links[name], conn)
	return nil
}

// UnlinkEvent implements falagard.Window.
func (w *Window) UnlinkEvent(name string) {
	for _, conn := range w.links[name] {
		conn.Disconnect()
	}
	delete(w.links, name)
}

// LinkedEvents returns how many links feed the named event.
func (w *Window) LinkedEvents(name string) int { return len(w.links[name]) }
