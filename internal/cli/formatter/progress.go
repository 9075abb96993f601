package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a share bar like [████░░░░] 45% in the given style.
// ratio is clamped to [0,1]; width to at least 2.
func RenderBar(ratio float64, width int, style func(...string) string) string {
	ratio = min(max(ratio, 0), 1)
	width = max(width, 2)

	filled := min(int(ratio*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if style != nil {
		bar = style(bar)
	}
	return fmt.Sprintf("[%s] %3.0f%%", bar, ratio*100)
}

// RenderScore renders a quiz score bar colored by ScoreStyle.
func RenderScore(score float64, width int) string {
	return RenderBar(score, width, ScoreStyle(score).Render)
}
