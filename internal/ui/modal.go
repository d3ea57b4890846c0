package ui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/rexradio/wrench/internal/rexapi"
)

// modalState is a message box. Any key dismisses it and returns control to
// returnTo.
type modalState struct {
	title   string
	body    string
	isError bool
	// The screen handed control when the modal closes.
	returnTo screen
}

func infoModal(title, body string, returnTo screen) *modalState {
	return &modalState{title: title, body: body, returnTo: returnTo}
}

// errorModal formats a backend failure for display. StatusError bodies are
// surfaced verbatim so the operator sees exactly what the service said.
func errorModal(title string, err error, returnTo screen) *modalState {
	body := err.Error()
	var statusErr *rexapi.StatusError
	if errors.As(err, &statusErr) {
		body = statusErr.Error()
	}
	return &modalState{title: title, body: body, isError: true, returnTo: returnTo}
}

func (m Model) renderModal() string {
	styles := m.theme.Styles()
	title := styles.Title.Render(m.modal.title)
	if m.modal.isError {
		title = styles.DangerText.Render(m.modal.title)
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		styles.Text.Width(min(60, max(20, m.width-10))).Render(m.modal.body),
		"",
		styles.FaintText.Render("Press any key to continue"),
	)
	box := styles.ModalBorder.Render(content)
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
