package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rexradio/wrench/internal/catalog"
	"github.com/rexradio/wrench/internal/prefs"
	"github.com/rexradio/wrench/internal/rexapi"
	"github.com/rexradio/wrench/internal/session"
)

// handleKey routes keyboard input. Modal and help overlays eat everything;
// a busy flow only honors quit; text-entry screens get the raw key stream.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.modal != nil {
		return m.dismissModal()
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	// Global keys, only where no text input owns the keyboard.
	if !m.isInputScreen() {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.CycleTheme):
			m.theme = GetTheme(NextTheme(m.theme.Name))
			if m.prefsPath != "" {
				_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
			}
			return m, nil
		}
	}

	switch m.current {
	case screenKeyEntry:
		return m.handleKeyEntry(msg)
	case screenHome:
		return m.handleHome(msg)
	case screenStation:
		return m.handleStation(msg)
	case screenFieldEdit:
		return m.handleFieldEdit(msg)
	case screenGenres:
		return m.handleGenres(msg)
	case screenPresenters:
		return m.handlePresenters(msg)
	case screenPresenterName:
		return m.handlePresenterName(msg)
	case screenScheduleMore:
		return m.handleScheduleMore(msg)
	case screenScheduleDay:
		return m.handleScheduleDay(msg)
	case screenScheduleStart, screenScheduleEnd:
		return m.handleScheduleTime(msg)
	case screenRoles:
		return m.handleRoles(msg)
	case screenActivity:
		return m.handleActivity(msg)
	}

	return m, nil
}

func (m Model) isInputScreen() bool {
	switch m.current {
	case screenKeyEntry, screenFieldEdit, screenPresenterName, screenScheduleStart, screenScheduleEnd:
		return true
	}
	return false
}

func (m Model) dismissModal() (tea.Model, tea.Cmd) {
	target := m.modal.returnTo
	m.modal = nil
	m.current = target
	return m, nil
}

// Key entry: cancelling here means the operator chose not to proceed, which
// is a normal exit, not an error.
func (m Model) handleKeyEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.keyInput.Value())
		if err := m.session.Set(value); err != nil {
			if errors.Is(err, session.ErrEmptyKey) {
				m.keyErr = "Key must not be empty."
			} else {
				m.keyErr = "Key must be at least 32 hex characters."
			}
			return m, nil
		}
		m.keyErr = ""
		m.keyInput.Reset()
		m.keyInput.Blur()
		m.current = screenHome
		return m, nil
	}
	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

func (m Model) handleHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.homeMenu.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.homeMenu.move(1)
	case key.Matches(msg, m.keys.Confirm):
		item, ok := m.homeMenu.selected()
		if !ok {
			return m, nil
		}
		switch item.ID {
		case "station":
			m.current = screenStation
		case "presenters":
			m.busy = true
			m.busyText = "Loading presenters…"
			return m, m.listPresentersCmd()
		case "activity":
			m.current = screenActivity
		case "exit":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleStation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.current = screenHome
	case key.Matches(msg, m.keys.Up):
		m.stationMenu.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.stationMenu.move(1)
	case key.Matches(msg, m.keys.Confirm):
		item, ok := m.stationMenu.selected()
		if !ok {
			return m, nil
		}
		switch item.ID {
		case "name":
			m.editField = "name"
			m.editTitle = "Station name"
			m.busy = true
			m.busyText = "Loading station name…"
			return m, m.fetchScalarCmd("name")
		case "description":
			m.editField = "description"
			m.editTitle = "Description"
			m.busy = true
			m.busyText = "Loading description…"
			return m, m.fetchScalarCmd("description")
		case "genres":
			m.busy = true
			m.busyText = "Loading genres…"
			return m, m.fetchGenresCmd()
		case "back":
			m.current = screenHome
		}
	}
	return m, nil
}

// handleFieldEdit runs the scalar edit contract: cancel means no network
// effect, resubmitting the pre-fill is treated as a no-op, and an empty
// value is rejected locally.
func (m Model) handleFieldEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.editErr = ""
		m.current = screenStation
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.editInput.Value())
		if value == strings.TrimSpace(m.editInitial) {
			// Unchanged: indistinguishable from a cancel, so no call.
			m.editErr = ""
			m.current = screenStation
			return m, nil
		}
		if value == "" {
			m.editErr = "Value must not be empty."
			return m, nil
		}
		m.editErr = ""
		m.busy = true
		m.busyText = "Saving…"
		return m, m.patchFieldCmd(m.editField, rexapi.StringValue(value))
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) handleGenres(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.current = screenStation
	case key.Matches(msg, m.keys.Up):
		m.genreList.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.genreList.move(1)
	case key.Matches(msg, m.keys.Toggle):
		m.genreList.toggle()
	case key.Matches(msg, m.keys.Confirm):
		// An empty selection is a deliberate clear.
		ids := m.genreList.selectedIDs()
		m.busy = true
		m.busyText = "Saving genres…"
		return m, m.patchFieldCmd("genres", rexapi.ListValue(ids))
	}
	return m, nil
}

func (m Model) handlePresenters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.current = screenHome
	case key.Matches(msg, m.keys.Up):
		m.presenterMenu.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.presenterMenu.move(1)
	case key.Matches(msg, m.keys.Confirm):
		item, ok := m.presenterMenu.selected()
		if !ok {
			return m, nil
		}
		switch item.ID {
		case "presenter":
			if m.presenterMenu.cursor < len(m.presenters) {
				m.modal = infoModal("Presenter", m.presenters[m.presenterMenu.cursor].Name, screenPresenters)
			}
		case "add":
			m.draft = draftPresenter{}
			m.nameInput.Reset()
			m.nameInput.Focus()
			m.nameErr = ""
			m.current = screenPresenterName
		case "back":
			m.current = screenHome
		}
	}
	return m, nil
}

func (m Model) handlePresenterName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.current = screenPresenters
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.nameErr = "Name is required."
			return m, nil
		}
		m.nameErr = ""
		m.draft = draftPresenter{name: name}
		m.moreMenu.cursor = 0
		m.current = screenScheduleMore
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) handleScheduleMore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		// Abandon the whole draft.
		m.draft = draftPresenter{}
		m.current = screenPresenters
	case key.Matches(msg, m.keys.Up):
		m.moreMenu.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.moreMenu.move(1)
	case key.Matches(msg, m.keys.Confirm):
		item, ok := m.moreMenu.selected()
		if !ok {
			return m, nil
		}
		switch item.ID {
		case "add":
			m.current = screenScheduleDay
		case "finish":
			m.roleList.reset(nil)
			m.current = screenRoles
		}
	}
	return m, nil
}

func (m Model) handleScheduleDay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.current = screenScheduleMore
	case key.Matches(msg, m.keys.Up):
		m.dayMenu.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.dayMenu.move(1)
	case key.Matches(msg, m.keys.Confirm):
		item, ok := m.dayMenu.selected()
		if !ok {
			return m, nil
		}
		m.draft.pendingDay = item.ID
		m.timeInput.Reset()
		m.timeInput.Focus()
		m.timeErr = ""
		m.current = screenScheduleStart
	}
	return m, nil
}

// handleScheduleTime covers both the start and end prompts. A malformed time
// re-prompts in place; it never aborts the wizard. End-before-start is not
// checked here; the backend owns that rule.
func (m Model) handleScheduleTime(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.timeErr = ""
		m.current = screenScheduleMore
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.timeInput.Value())
		if !catalog.ValidTime(value) {
			m.timeErr = "Time must match HH:MM (24-hour)."
			return m, nil
		}
		m.timeErr = ""
		if m.current == screenScheduleStart {
			m.draft.pendingStart = value
			m.timeInput.Reset()
			m.current = screenScheduleEnd
			return m, nil
		}
		m.draft.entries = append(m.draft.entries, rexapi.ScheduleEntry{
			Day:   m.draft.pendingDay,
			Start: m.draft.pendingStart,
			End:   value,
		})
		m.draft.pendingDay = ""
		m.draft.pendingStart = ""
		m.timeInput.Reset()
		m.current = screenScheduleMore
		return m, nil
	}
	var cmd tea.Cmd
	m.timeInput, cmd = m.timeInput.Update(msg)
	return m, cmd
}

func (m Model) handleRoles(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.current = screenScheduleMore
	case key.Matches(msg, m.keys.Up):
		m.roleList.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.roleList.move(1)
	case key.Matches(msg, m.keys.Toggle):
		m.roleList.toggle()
	case key.Matches(msg, m.keys.Confirm):
		p := rexapi.Presenter{
			Name:      m.draft.name,
			VoiceID:   catalog.VoiceIDDefault,
			ModelID:   catalog.VoiceModelDefault,
			Schedules: m.draft.entries,
			Roles:     m.roleList.selectedIDs(),
		}
		m.busy = true
		m.busyText = "Creating presenter…"
		return m, m.createPresenterCmd(p)
	}
	return m, nil
}

func (m Model) handleActivity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Confirm):
		m.current = screenHome
	}
	return m, nil
}
