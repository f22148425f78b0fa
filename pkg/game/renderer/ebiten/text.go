package ebiten

import (
	"image/color"
	"regexp"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// textLine is one row of coloured segments.
type textLine []textSegment

// plainLine is a single-coloured row. Its text is never parsed as markup.
func plainLine(s string, c color.Color) textLine {
	return textLine{{text: s, color: c}}
}

var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// parseMarkup splits a string with markup (TITLE{}, VALUE{}, SUBTLE{},
// ERROR{}) into colored segments. Unknown functions are kept as plain text.
func parseMarkup(msg string) []textSegment {
	var segments []textSegment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		var segColor color.Color
		switch function {
		case "TITLE":
			segColor = colorAction
		case "VALUE":
			segColor = colorValue
		case "SUBTLE":
			segColor = colorSubtle
		case "ERROR":
			segColor = colorDenied
		default:
			segments = append(segments, textSegment{text: msg[match[0]:match[1]], color: colorText})
			lastIndex = match[1]
			continue
		}
		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}
	return segments
}

// wrapText breaks s into lines no wider than maxWidth as reported by
// measure. Explicit newlines are kept and a single word wider than maxWidth
// gets a line of its own.
func wrapText(s string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}

// applyAlpha scales the alpha channel of c by alpha.
func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * alpha),
		G: uint8(float64(g>>8) * alpha),
		B: uint8(float64(b>>8) * alpha),
		A: uint8(float64(a>>8) * alpha),
	}
}

// drawText draws str with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCenteredText draws str centred on (cx, cy).
func drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, cx, cy float64, col color.Color) {
	w, h := text.Measure(str, face, 0)
	drawText(screen, str, face, cx-w/2, cy-h/2, col)
}

// drawColoredTextSegments draws segments one after another starting at (x, y).
func drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, face *text.GoTextFace, x, y, alpha float64) {
	for _, seg := range segments {
		drawText(screen, seg.text, face, x, y, applyAlpha(seg.color, alpha))
		w, _ := text.Measure(seg.text, face, 0)
		x += w
	}
}
