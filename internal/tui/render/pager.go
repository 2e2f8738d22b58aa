package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/x/ansi"
)

const (
	prevLabel = "‹ Prev"
	nextLabel = "Next ›"
)

// PagerState defines the inputs needed to render the page controls.
type PagerState struct {
	Page       int
	TotalPages int
	Width      int
}

// Pager renders "‹ Prev  1 [2] 3  Next ›". Ends that cannot move are
// dimmed. When the numbers do not fit in Width, dots are drawn instead.
func Pager(state PagerState) string {
	total := state.TotalPages
	if total < 1 {
		total = 1
	}
	page := state.Page
	if page < 1 {
		page = 1
	}

	prev := prevLabel
	if page == 1 {
		prev = dimStyle.Render(prevLabel)
	}
	next := nextLabel
	if page == total {
		next = dimStyle.Render(nextLabel)
	}

	numbers := make([]string, total)
	for i := range numbers {
		n := strconv.Itoa(i + 1)
		if i+1 == page {
			n = currentStyle.Render("[" + n + "]")
		}
		numbers[i] = n
	}
	line := prev + "  " + strings.Join(numbers, " ") + "  " + next
	if state.Width <= 0 || ansi.StringWidth(line) <= state.Width {
		return line
	}

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.TotalPages = total
	dots.Page = page - 1
	return prev + "  " + dots.View() + "  " + next
}
