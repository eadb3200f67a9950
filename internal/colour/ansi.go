package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

func bgSequence(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fgSequence(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// fitText centres text within width, truncating when it does not fit.
func fitText(text string, width int) string {
	if len(text) > width {
		return text[:width]
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
}

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	block := strings.Repeat(" ", width)
	if DisableColourOutput {
		return block
	}
	return bgSequence(c) + block + ansiReset
}

// ColourPreviewWithText returns a colour block with text drawn in the given
// text colour, centred and truncated to width.
func ColourPreviewWithText(c, text RGB, label string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	display := fitText(label, width)
	if DisableColourOutput {
		return display
	}
	return bgSequence(c) + fgSequence(text) + display + ansiReset
}

// PairPreview renders two adjacent blocks sharing one text colour, the
// terminal equivalent of a two-tone layout.
func PairPreview(first, second, text RGB, label string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return ColourPreviewWithText(first, text, label, width) +
		ColourPreviewWithText(second, text, label, width)
}
