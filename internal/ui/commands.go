package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rexradio/wrench/internal/rexapi"
)

// scalarLoadedMsg carries the result of fetching a scalar field ahead of an
// edit flow.
type scalarLoadedMsg struct {
	field rexapi.Field
	err   error
}

// genresLoadedMsg carries the current genres value ahead of the checklist.
type genresLoadedMsg struct {
	field rexapi.Field
	err   error
}

// patchDoneMsg reports the outcome of a field patch.
type patchDoneMsg struct {
	field string
	err   error
}

// presentersLoadedMsg carries the presenter roster.
type presentersLoadedMsg struct {
	items []rexapi.Presenter
	err   error
}

// createDoneMsg reports the outcome of a presenter create.
type createDoneMsg struct {
	name string
	err  error
}

func (m Model) fetchScalarCmd(field string) tea.Cmd {
	return func() tea.Msg {
		f, err := m.client.FetchField(m.ctx, field)
		return scalarLoadedMsg{field: f, err: err}
	}
}

func (m Model) fetchGenresCmd() tea.Cmd {
	return func() tea.Msg {
		f, err := m.client.FetchField(m.ctx, "genres")
		return genresLoadedMsg{field: f, err: err}
	}
}

func (m Model) patchFieldCmd(field string, value rexapi.FieldValue) tea.Cmd {
	return func() tea.Msg {
		err := m.client.PatchField(m.ctx, field, value)
		return patchDoneMsg{field: field, err: err}
	}
}

func (m Model) listPresentersCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListPresenters(m.ctx)
		return presentersLoadedMsg{items: items, err: err}
	}
}

func (m Model) createPresenterCmd(p rexapi.Presenter) tea.Cmd {
	return func() tea.Msg {
		err := m.client.CreatePresenter(m.ctx, p)
		return createDoneMsg{name: p.Name, err: err}
	}
}
