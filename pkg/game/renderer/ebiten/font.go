package ebiten

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type faceRole int

const (
	faceBody faceRole = iota
	faceBold
	faceTitle
	faceLabel
	faceMono
)

// loadFonts parses the embedded Go fonts. A font that fails to parse leaves
// its source nil and text using it is skipped.
func (e *EbitenRenderer) loadFonts() {
	e.sansFontSource = parseFontSource("regular", goregular.TTF)
	e.sansBoldFontSource = parseFontSource("bold", gobold.TTF)
	e.monoFontSource = parseFontSource("mono", gomono.TTF)
	e.faces = make(map[faceRole]*text.GoTextFace)
}

func parseFontSource(name string, ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Printf("Could not load %s font: %v", name, err)
		return nil
	}
	return src
}

func (e *EbitenRenderer) fontsReady() bool {
	return e.sansFontSource != nil && e.sansBoldFontSource != nil && e.monoFontSource != nil
}

// face returns a cached font face for role
func (e *EbitenRenderer) face(role faceRole) *text.GoTextFace {
	if f, ok := e.faces[role]; ok {
		return f
	}

	var f *text.GoTextFace
	switch role {
	case faceBold:
		f = &text.GoTextFace{Source: e.sansBoldFontSource, Size: baseFontSize}
	case faceTitle:
		f = &text.GoTextFace{Source: e.sansBoldFontSource, Size: titleFontSize}
	case faceLabel:
		f = &text.GoTextFace{Source: e.sansBoldFontSource, Size: labelFontSize}
	case faceMono:
		f = &text.GoTextFace{Source: e.monoFontSource, Size: labelFontSize}
	default:
		f = &text.GoTextFace{Source: e.sansFontSource, Size: baseFontSize}
	}
	e.faces[role] = f
	return f
}
