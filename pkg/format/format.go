package format

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultWidth = 30

	filledGlyph = "█"
	emptyGlyph  = "-"
)

var units = []string{"B", "KB", "MB", "GB"}

// Size renders a byte count using 1024-based units with one decimal. TB is the
// last unit, so anything larger keeps growing in TB.
func Size(bytes int64) string {
	size := float64(bytes)
	for _, unit := range units {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}

		size /= 1024
	}

	return fmt.Sprintf("%.1f TB", size)
}

func Rate(bytesPerSec int64) string {
	return Size(bytesPerSec) + "/s"
}

// ProgressBar renders fraction (0..1) as a bracketed bar of width glyphs
// followed by the percentage.
func ProgressBar(fraction float64, width int) string {
	if width < 0 {
		width = 0
	}

	fraction = math.Max(0, math.Min(1, fraction))

	filled := int(math.Floor(float64(width) * fraction))

	return fmt.Sprintf(
		"[%s%s] %.1f%%",
		strings.Repeat(filledGlyph, filled),
		strings.Repeat(emptyGlyph, width-filled),
		fraction*100,
	)
}
