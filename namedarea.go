package falagard

// NamedArea is a named region of a window, used to place children and
// text by name.
type NamedArea struct {
	Name string
	Area ComponentArea
}

// PixelRect resolves the area against w's own rect.
func (a NamedArea) PixelRect(w Window) (Rect, error) {
	return a.Area.PixelRect(w, WindowRect(w))
}

func (a NamedArea) writeXML(xw *XMLWriter) {
	xw.OpenTag("NamedArea").Attribute("name", a.Name)
	a.Area.writeXML(xw)
	xw.CloseTag()
}
