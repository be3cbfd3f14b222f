package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxW    = 56
	modalChromeW = 6 // border (2) + horizontal padding (4)
)

func modalWidth(width int) int {
	return max(min(width-4, modalMaxW), 24)
}

// modalBodyWidth is the text width available inside a modal box.
func modalBodyWidth(width int) int {
	return modalWidth(width) - modalChromeW
}

func renderModalBox(st styles, width int, title, body string) string {
	bodyW := modalBodyWidth(width)
	lines := []string{st.modalTitle.Width(bodyW).Render(title), ""}
	for _, ln := range strings.Split(body, "\n") {
		lines = append(lines, fitLine(ln, bodyW))
	}
	return st.modal.Width(bodyW + 4).Render(strings.Join(lines, "\n"))
}

func renderButtons(st styles, labels []string, focused int, dangerIdx int) string {
	parts := make([]string, 0, len(labels)*2)
	for i, l := range labels {
		btn := st.button
		if i == focused {
			btn = st.buttonFocus
			if i == dangerIdx {
				btn = st.danger
			}
		}
		if i > 0 {
			parts = append(parts, st.buttonGap.Render(" "))
		}
		parts = append(parts, btn.Render(l))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// overlay centers a modal over the full screen.
func overlay(width, height int, box string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
