package console

import (
	"fmt"
	"regexp"

	"github.com/cory-johannsen/arena/internal/game/element"
)

// SGR sequences used by the renderer.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
	BrightWhite   = "\033[97m"
)

var elementColors = map[element.Element]string{
	element.Fire:  BrightRed,
	element.Water: BrightBlue,
	element.Earth: Yellow,
	element.Air:   BrightCyan,
}

// ElementColor returns the colour spells of e are drawn in; White for None.
func ElementColor(e element.Element) string {
	if c, ok := elementColors[e]; ok {
		return c
	}
	return White
}

// Colorize wraps text in color and a trailing Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// Colorf is Colorize over a formatted string.
func Colorf(color, format string, args ...any) string {
	return Colorize(color, fmt.Sprintf(format, args...))
}

var sgrPattern = regexp.MustCompile("\033\\[[0-9;]*m")

// StripANSI removes SGR sequences from s.
func StripANSI(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}
