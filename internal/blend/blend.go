// Package blend implements the Porter-Duff operators the raster backend
// composites quads with.
//
// All operations work on premultiplied alpha values in the range 0-255,
// matching image.RGBA.
package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	SourceOver Mode = iota // S + D*(1-Sa) [default]
	Source                 // S
	DestinationOver        // S*(1-Da) + D
	SourceAtop             // S*Da + D*(1-Sa)
	Plus                   // S + D, clamped
	Modulate               // S*D
)

var modeNames = [...]string{
	SourceOver:      "SourceOver",
	Source:          "Source",
	DestinationOver: "DestinationOver",
	SourceAtop:      "SourceAtop",
	Plus:            "Plus",
	Modulate:        "Modulate",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// ParseMode returns the mode with the given name.
func ParseMode(s string) (Mode, bool) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), true
		}
	}
	return SourceOver, false
}

// Func composites source (sr, sg, sb, sa) with destination (dr, dg, db, da).
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the operator for m. Unknown modes use SourceOver.
func FuncFor(m Mode) Func {
	switch m {
	case Source:
		return source
	case DestinationOver:
		return destinationOver
	case SourceAtop:
		return sourceAtop
	case Plus:
		return plus
	case Modulate:
		return modulate
	}
	return sourceOver
}

func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return clampAdd(sr, mulDiv255(dr, inv)),
		clampAdd(sg, mulDiv255(dg, inv)),
		clampAdd(sb, mulDiv255(db, inv)),
		clampAdd(sa, mulDiv255(da, inv))
}

func source(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func destinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - da
	return clampAdd(mulDiv255(sr, inv), dr),
		clampAdd(mulDiv255(sg, inv), dg),
		clampAdd(mulDiv255(sb, inv), db),
		clampAdd(mulDiv255(sa, inv), da)
}

func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return clampAdd(mulDiv255(sr, da), mulDiv255(dr, inv)),
		clampAdd(mulDiv255(sg, da), mulDiv255(dg, inv)),
		clampAdd(mulDiv255(sb, da), mulDiv255(db, inv)),
		da
}

func plus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return clampAdd(sr, dr), clampAdd(sg, dg), clampAdd(sb, db), clampAdd(sa, da)
}

func modulate(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, dr), mulDiv255(sg, dg), mulDiv255(sb, db), mulDiv255(sa, da)
}

// mulDiv255 returns a*b/255, rounded to nearest.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

func clampAdd(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
