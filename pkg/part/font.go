package part

import (
	"fmt"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Seven-segment stroke font. The engraved label is always a decimal
// number, so glyphs exist only for the digits and the decimal point.
// Each segment is a rounded box; a glyph is the union of its lit
// segments. No font files, no hinting, byte-identical output for
// identical input.
//
// Segment layout, bit per segment:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

var digitSegments = map[rune]uint8{
	'0': segA | segB | segC | segD | segE | segF,
	'1': segB | segC,
	'2': segA | segB | segG | segE | segD,
	'3': segA | segB | segG | segC | segD,
	'4': segF | segG | segB | segC,
	'5': segA | segF | segG | segC | segD,
	'6': segA | segF | segG | segE | segD | segC,
	'7': segA | segB | segC,
	'8': segA | segB | segC | segD | segE | segF | segG,
	'9': segA | segB | segC | segD | segF | segG,
}

// Glyph proportions relative to the cap height.
const (
	glyphAspect     = 0.55 // digit width / cap height
	strokeAspect    = 0.15 // stroke thickness / cap height
	glyphSpacing    = 0.18 // inter-glyph gap / cap height
	decimalPointDim = 1.3  // point side length / stroke thickness
)

// Text builds a 2D profile of str in the stroke font, centered on the
// origin. size is the glyph cap height. Unsupported characters panic:
// the label is generated, never user-supplied, so anything but a
// decimal number is a programming error.
func Text(str string, size float64) sdf.SDF2 {
	if str == "" {
		panic("text: empty string")
	}

	runes := []rune(str)
	advance := make([]float64, len(runes))
	total := glyphSpacing * size * float64(len(runes)-1)
	for i, r := range runes {
		advance[i] = glyphWidth(r, size)
		total += advance[i]
	}

	var text sdf.SDF2
	x := -total / 2
	for i, r := range runes {
		g := glyph(r, size)
		g = sdf.Transform2D(g, sdf.Translate2D(r2.Vec{X: x + advance[i]/2}))
		if text == nil {
			text = g
		} else {
			text = sdf.Union2D(text, g)
		}
		x += advance[i] + glyphSpacing*size
	}
	return text
}

func glyphWidth(r rune, size float64) float64 {
	if r == '.' {
		return decimalPointDim * strokeAspect * size
	}
	return glyphAspect * size
}

// glyph builds a single character centered on the origin with cap
// height size.
func glyph(r rune, size float64) sdf.SDF2 {
	h := size
	t := strokeAspect * size

	if r == '.' {
		d := decimalPointDim * t
		point := form2.Box(r2.Vec{X: d, Y: d}, t/4)
		return sdf.Transform2D(point, sdf.Translate2D(r2.Vec{Y: -(h - d) / 2}))
	}

	segs, ok := digitSegments[r]
	if !ok {
		panic(fmt.Sprintf("text: unsupported glyph %q", r))
	}

	w := glyphAspect * size
	rowTop := (h - t) / 2
	colSide := (w - t) / 2
	// Vertical strokes run from a horizontal row to the cap line so
	// corners stay joined.
	vLen := (h + t) / 2
	vCenter := (h - t) / 4

	type stroke struct {
		bit  uint8
		size r2.Vec
		at   r2.Vec
	}
	strokes := []stroke{
		{segA, r2.Vec{X: w, Y: t}, r2.Vec{Y: rowTop}},
		{segB, r2.Vec{X: t, Y: vLen}, r2.Vec{X: colSide, Y: vCenter}},
		{segC, r2.Vec{X: t, Y: vLen}, r2.Vec{X: colSide, Y: -vCenter}},
		{segD, r2.Vec{X: w, Y: t}, r2.Vec{Y: -rowTop}},
		{segE, r2.Vec{X: t, Y: vLen}, r2.Vec{X: -colSide, Y: -vCenter}},
		{segF, r2.Vec{X: t, Y: vLen}, r2.Vec{X: -colSide, Y: vCenter}},
		{segG, r2.Vec{X: w, Y: t}, r2.Vec{}},
	}

	var g sdf.SDF2
	for _, s := range strokes {
		if segs&s.bit == 0 {
			continue
		}
		var box sdf.SDF2 = form2.Box(s.size, t/4)
		box = sdf.Transform2D(box, sdf.Translate2D(s.at))
		if g == nil {
			g = box
		} else {
			g = sdf.Union2D(g, box)
		}
	}
	return g
}
