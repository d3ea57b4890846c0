package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.modal != nil {
		return m.renderModal()
	}
	if m.showHelp {
		return m.renderHelp()
	}

	styles := m.theme.Styles()

	var body string
	switch {
	case m.busy:
		body = styles.MutedText.Render(m.busyText)
	default:
		switch m.current {
		case screenKeyEntry:
			body = m.renderKeyEntry(styles)
		case screenHome:
			body = m.renderMenuScreen(styles, "Home", m.homeMenu, "")
		case screenStation:
			body = m.renderMenuScreen(styles, "Update radio station", m.stationMenu, "")
		case screenFieldEdit:
			body = m.renderFieldEdit(styles)
		case screenGenres:
			body = m.renderGenres(styles)
		case screenPresenters:
			body = m.renderMenuScreen(styles, "Presenters", m.presenterMenu, m.presenterHint())
		case screenPresenterName:
			body = m.renderPresenterName(styles)
		case screenScheduleMore:
			body = m.renderScheduleMore(styles)
		case screenScheduleDay:
			body = m.renderMenuScreen(styles, "Weekday", m.dayMenu, "Pick the day for this entry.")
		case screenScheduleStart, screenScheduleEnd:
			body = m.renderScheduleTime(styles)
		case screenRoles:
			body = m.renderRoles(styles)
		case screenActivity:
			body = m.renderActivity(styles)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(styles),
		"",
		body,
		"",
		m.renderFooter(styles),
	)
}

func (m Model) renderHeader(styles Styles) string {
	title := styles.Title.Render("Rex Radio Wrench")
	theme := styles.FaintText.Render(m.theme.Name)
	return styles.Header.Render(title + "  " + theme)
}

func (m Model) renderFooter(styles Styles) string {
	hints := "j/k move · enter confirm · esc back · ? help"
	if m.current == screenKeyEntry {
		hints = "enter confirm · esc quit"
	}
	parts := []string{styles.FaintText.Render(hints)}
	if last, ok := m.feed.Last(); ok {
		parts = append(parts, styles.MutedText.Render(last.Line))
	}
	return styles.Footer.Render(strings.Join(parts, "   "))
}

func (m Model) renderKeyEntry(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Enter HMAC key"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Please enter your HMAC key to continue:"))
	b.WriteString("\n\n")
	b.WriteString(m.keyInput.View())
	b.WriteString("\n")
	if m.keyErr != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(m.keyErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("The key is held in memory only and never logged."))
	return b.String()
}

func (m Model) renderMenuScreen(styles Styles, title string, mn menu, hint string) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(mn.render(styles))
	if hint != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(hint))
	}
	return b.String()
}

func (m Model) presenterHint() string {
	if len(m.presenters) == 0 {
		return "No presenters yet."
	}
	return fmt.Sprintf("%d presenter(s).", len(m.presenters))
}

func (m Model) renderFieldEdit(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Edit " + strings.ToLower(m.editTitle)))
	if m.editInitial == "" {
		b.WriteString("  " + styles.FaintText.Render("(not set)"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.editInput.View())
	b.WriteString("\n")
	if m.editErr != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(m.editErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Enter saves, esc cancels. Submitting the unchanged value saves nothing."))
	return b.String()
}

func (m Model) renderGenres(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Genres"))
	b.WriteString("\n\n")
	b.WriteString(m.genreList.render(styles))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Space toggles, enter saves (an empty selection clears the field), esc cancels."))
	return b.String()
}

func (m Model) renderPresenterName(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("New presenter"))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	if m.nameErr != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(m.nameErr))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderScheduleMore(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Schedule for " + m.draft.name))
	b.WriteString("\n\n")
	if len(m.draft.entries) == 0 {
		b.WriteString(styles.MutedText.Render("No entries yet."))
		b.WriteString("\n")
	} else {
		for _, e := range m.draft.entries {
			b.WriteString(styles.Text.Render(fmt.Sprintf("  %s %s–%s", e.Day, e.Start, e.End)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.moreMenu.render(styles))
	return b.String()
}

func (m Model) renderScheduleTime(styles Styles) string {
	label := "Start time"
	if m.current == screenScheduleEnd {
		label = "End time"
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render(label + " (" + m.draft.pendingDay + ")"))
	b.WriteString("\n\n")
	b.WriteString(m.timeInput.View())
	b.WriteString("\n")
	if m.timeErr != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(m.timeErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("24-hour HH:MM."))
	return b.String()
}

func (m Model) renderRoles(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Roles (optional)"))
	b.WriteString("\n\n")
	b.WriteString(m.roleList.render(styles))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Space toggles, enter creates the presenter."))
	return b.String()
}

func (m Model) renderActivity(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Activity"))
	b.WriteString("\n\n")
	entries := m.feed.Snapshot()
	if len(entries) == 0 {
		b.WriteString(styles.MutedText.Render("Nothing yet."))
		return b.String()
	}
	limit := m.height - 8
	if limit < 5 {
		limit = 5
	}
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	for _, e := range entries {
		b.WriteString(styles.FaintText.Render(e.At.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(e.Line))
		b.WriteString("\n")
	}
	return b.String()
}
