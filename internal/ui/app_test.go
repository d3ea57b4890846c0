package ui

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rexradio/wrench/internal/activity"
	"github.com/rexradio/wrench/internal/rexapi"
	"github.com/rexradio/wrench/internal/session"
)

const testKey = "0123456789abcdef0123456789abcdef"

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func newTestModel(t *testing.T, baseURL string) Model {
	t.Helper()
	sess := session.New()
	require.NoError(t, sess.Set(testKey))

	feed := activity.NewFeed(0)
	client, err := rexapi.NewClient(baseURL, rexapi.NewSigner(sess), feed, nil)
	require.NoError(t, err)

	m := New(Options{
		Context:   context.Background(),
		Client:    client,
		Session:   sess,
		Feed:      feed,
		PrefsPath: t.TempDir() + "/prefs.toml",
	})
	m.current = screenHome
	return m
}

// step applies one message and returns the updated model and command.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok, "Update returned %T", updated)
	return next, cmd
}

// run executes a command produced by Update and feeds its message back in.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	m, _ = step(t, m, cmd())
	return m
}

func TestKeyEntryValidation(t *testing.T) {
	m := newTestModel(t, "http://127.0.0.1:1")
	m.current = screenKeyEntry
	m.session = session.New()

	m.keyInput.SetValue("deadbeef")
	m, cmd := step(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, screenKeyEntry, m.current)
	assert.NotEmpty(t, m.keyErr)
	assert.False(t, m.session.Ready())

	m.keyInput.SetValue(testKey)
	m, _ = step(t, m, keyEnter)
	assert.Equal(t, screenHome, m.current)
	assert.Empty(t, m.keyErr)
	assert.True(t, m.session.Ready())
}

func TestKeyEntryCancelQuits(t *testing.T) {
	m := newTestModel(t, "http://127.0.0.1:1")
	m.current = screenKeyEntry

	_, cmd := step(t, m, keyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestScalarEditUnchangedIssuesNoPatch(t *testing.T) {
	var patches int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"field":"name","value":"Jazz FM"}`))
		case r.Method == http.MethodPatch:
			patches++
		}
	}))
	t.Cleanup(server.Close)

	m := newTestModel(t, server.URL)
	m.current = screenStation
	m, cmd := step(t, m, keyEnter) // "Station name" is the first entry
	require.True(t, m.busy)
	m = run(t, m, cmd)

	require.Equal(t, screenFieldEdit, m.current)
	assert.Equal(t, "Jazz FM", m.editInput.Value())

	// Re-submitting the pre-fill is a no-op: straight back to the menu.
	m, cmd = step(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, screenStation, m.current)
	assert.Zero(t, patches)
}

func TestScalarEditRejectsEmptyLocally(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			t.Errorf("unexpected PATCH for empty value")
		}
		_, _ = w.Write([]byte(`{"field":"name","value":"Jazz FM"}`))
	}))
	t.Cleanup(server.Close)

	m := newTestModel(t, server.URL)
	m.current = screenStation
	m, cmd := step(t, m, keyEnter)
	m = run(t, m, cmd)
	require.Equal(t, screenFieldEdit, m.current)

	m.editInput.SetValue("")
	m, cmd = step(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, screenFieldEdit, m.current)
	assert.NotEmpty(t, m.editErr)
}

func TestScalarEditPatchesChangedValue(t *testing.T) {
	var patchBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"field":"name","value":"Jazz FM"}`))
		case http.MethodPatch:
			patchBody, _ = io.ReadAll(r.Body)
		}
	}))
	t.Cleanup(server.Close)

	m := newTestModel(t, server.URL)
	m.current = screenStation
	m, cmd := step(t, m, keyEnter)
	m = run(t, m, cmd)

	m.editInput.SetValue("Smooth FM")
	m, cmd = step(t, m, keyEnter)
	require.True(t, m.busy)
	m = run(t, m, cmd)

	assert.Equal(t, `[{"field":"name","value":"Smooth FM"}]`, string(patchBody))
	require.NotNil(t, m.modal)
	assert.False(t, m.modal.isError)

	m, _ = step(t, m, keyEnter) // dismiss
	assert.Equal(t, screenStation, m.current)
	assert.Nil(t, m.modal)
}

func TestGenresDeselectAllClearsField(t *testing.T) {
	var patchBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"field":"genres","value":["Rock","Jazz"]}`))
		case http.MethodPatch:
			patchBody, _ = io.ReadAll(r.Body)
		}
	}))
	t.Cleanup(server.Close)

	m := newTestModel(t, server.URL)
	m.current = screenStation
	m.stationMenu.move(1)
	m.stationMenu.move(1) // "Genres"
	m, cmd := step(t, m, keyEnter)
	m = run(t, m, cmd)
	require.Equal(t, screenGenres, m.current)

	// Labels from older backends resolve to catalog ids.
	assert.Equal(t, []string{"rock", "jazz"}, m.genreList.selectedIDs())

	// Deselect both: Rock is row 0, Jazz row 2.
	m, _ = step(t, m, keySpace)
	m, _ = step(t, m, keyDown)
	m, _ = step(t, m, keyDown)
	m, _ = step(t, m, keySpace)
	require.Empty(t, m.genreList.selectedIDs())

	m, cmd = step(t, m, keyEnter)
	m = run(t, m, cmd)
	assert.Equal(t, `[{"field":"genres","value":[]}]`, string(patchBody))
	require.NotNil(t, m.modal)
}

func TestGenresCancelHasNoNetworkEffect(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"field":"genres","value":[]}`))
	}))
	t.Cleanup(server.Close)

	m := newTestModel(t, server.URL)
	m.current = screenStation
	m.stationMenu.move(1)
	m.stationMenu.move(1)
	m, cmd := step(t, m, keyEnter)
	m = run(t, m, cmd)
	require.Equal(t, screenGenres, m.current)
	fetches := requests

	m, _ = step(t, m, keySpace)
	m, cmd = step(t, m, keyEsc)
	assert.Nil(t, cmd)
	assert.Equal(t, screenStation, m.current)
	assert.Equal(t, fetches, requests)
}

func TestPatchFailureShowsStatusAndBody(t *testing.T) {
	m := newTestModel(t, "http://127.0.0.1:1")
	m.current = screenStation

	err := &rexapi.StatusError{Op: "PATCH /config", Status: 500, Body: "internal error"}
	m, cmd := step(t, m, patchDoneMsg{field: "name", err: err})
	assert.Nil(t, cmd)
	require.NotNil(t, m.modal)
	assert.True(t, m.modal.isError)
	assert.Contains(t, m.modal.body, "500")
	assert.Contains(t, m.modal.body, "internal error")

	m, _ = step(t, m, keyEnter)
	assert.Equal(t, screenStation, m.current)
}

func TestPresenterListFailureKeepsMenuUsable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	m := newTestModel(t, server.URL)
	m.current = screenHome
	m.homeMenu.move(1) // "Presenters"
	m, cmd := step(t, m, keyEnter)
	m = run(t, m, cmd)

	require.NotNil(t, m.modal)
	assert.True(t, m.modal.isError)
	m, _ = step(t, m, keyEnter)
	assert.Equal(t, screenPresenters, m.current)

	// Menu still offers Add and Back.
	item, ok := m.presenterMenu.selected()
	require.True(t, ok)
	assert.Equal(t, "add", item.ID)
}

func TestAddPresenterWizard(t *testing.T) {
	var postBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[]`))
		case r.Method == http.MethodPost:
			postBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
		}
	}))
	t.Cleanup(server.Close)

	m := newTestModel(t, server.URL)
	m.current = screenHome
	m.homeMenu.move(1)
	m, cmd := step(t, m, keyEnter)
	m = run(t, m, cmd)
	require.Equal(t, screenPresenters, m.current)

	// "Add presenter" sits above "Back".
	m, _ = step(t, m, keyEnter)
	require.Equal(t, screenPresenterName, m.current)

	// Empty name rejected locally.
	m, cmd = step(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.nameErr)

	m.nameInput.SetValue("DJ Nova")
	m, _ = step(t, m, keyEnter)
	require.Equal(t, screenScheduleMore, m.current)

	// Add one entry: monday 09:00–12:00.
	m, _ = step(t, m, keyEnter) // "Add a schedule entry"
	require.Equal(t, screenScheduleDay, m.current)
	m, _ = step(t, m, keyEnter) // monday
	require.Equal(t, screenScheduleStart, m.current)
	m.timeInput.SetValue("09:00")
	m, _ = step(t, m, keyEnter)
	require.Equal(t, screenScheduleEnd, m.current)
	m.timeInput.SetValue("12:00")
	m, _ = step(t, m, keyEnter)
	require.Equal(t, screenScheduleMore, m.current)
	require.Len(t, m.draft.entries, 1)

	// Second attempt with a malformed start time re-prompts in place.
	m, _ = step(t, m, keyEnter)
	m, _ = step(t, m, keyEnter)
	m.timeInput.SetValue("25:99")
	m, cmd = step(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, screenScheduleStart, m.current)
	assert.NotEmpty(t, m.timeErr)

	// Operator abandons the bad entry and finishes.
	m, _ = step(t, m, keyEsc)
	require.Equal(t, screenScheduleMore, m.current)
	m.moreMenu.move(1) // "Finish"
	m, _ = step(t, m, keyEnter)
	require.Equal(t, screenRoles, m.current)

	m, cmd = step(t, m, keyEnter)
	require.True(t, m.busy)
	m = run(t, m, cmd)

	require.NotNil(t, m.modal)
	assert.False(t, m.modal.isError)
	body := string(postBody)
	assert.Contains(t, body, `"name":"DJ Nova"`)
	assert.Contains(t, body, `"day":"monday"`)
	assert.Contains(t, body, `"start":"09:00"`)
	assert.Contains(t, body, `"end":"12:00"`)
	assert.Contains(t, body, `"voice_id":"British Radio Presenter 1"`)
	assert.Contains(t, body, `"model_id":"eleven_multilingual_v2"`)
	assert.NotContains(t, body, "25:99")
	assert.NotContains(t, body, "roles")
}

func TestWizardCancelReturnsToPresenters(t *testing.T) {
	m := newTestModel(t, "http://127.0.0.1:1")
	m.current = screenScheduleMore
	m.draft = draftPresenter{name: "DJ Nova"}

	m, cmd := step(t, m, keyEsc)
	assert.Nil(t, cmd)
	assert.Equal(t, screenPresenters, m.current)
	assert.Empty(t, m.draft.name)
}

func TestMissingKeyIsFatal(t *testing.T) {
	m := newTestModel(t, "http://127.0.0.1:1")
	m.current = screenStation

	m, cmd := step(t, m, patchDoneMsg{field: "name", err: session.ErrNoKey})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.ErrorIs(t, m.fatal, session.ErrNoKey)
}

func TestEveryScreenHasAPathBack(t *testing.T) {
	m := newTestModel(t, "http://127.0.0.1:1")
	cases := []struct {
		from screen
		want screen
	}{
		{screenStation, screenHome},
		{screenFieldEdit, screenStation},
		{screenGenres, screenStation},
		{screenPresenters, screenHome},
		{screenPresenterName, screenPresenters},
		{screenScheduleMore, screenPresenters},
		{screenScheduleDay, screenScheduleMore},
		{screenScheduleStart, screenScheduleMore},
		{screenScheduleEnd, screenScheduleMore},
		{screenRoles, screenScheduleMore},
		{screenActivity, screenHome},
	}
	for _, tc := range cases {
		m.current = tc.from
		next, _ := step(t, m, keyEsc)
		assert.Equal(t, tc.want, next.current, "esc from %d", tc.from)
	}
}
