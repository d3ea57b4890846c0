package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rexradio/wrench/internal/activity"
	"github.com/rexradio/wrench/internal/catalog"
	"github.com/rexradio/wrench/internal/logging"
	"github.com/rexradio/wrench/internal/prefs"
	"github.com/rexradio/wrench/internal/rexapi"
	"github.com/rexradio/wrench/internal/session"
)

// screen identifies the active state of the menu machine. Every non-terminal
// screen has exactly one way back up the tree (esc, or modal dismissal).
type screen int

const (
	screenKeyEntry screen = iota
	screenHome
	screenStation
	screenFieldEdit
	screenGenres
	screenPresenters
	screenPresenterName
	screenScheduleMore
	screenScheduleDay
	screenScheduleStart
	screenScheduleEnd
	screenRoles
	screenActivity
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *rexapi.Client
	Session   *session.Session
	Feed      *activity.Feed
	Log       logging.Logger
	ThemeName string
	PrefsPath string
}

// draftPresenter accumulates the add-presenter wizard state. It is discarded
// on cancel and on submission; nothing survives the flow.
type draftPresenter struct {
	name         string
	entries      []rexapi.ScheduleEntry
	pendingDay   string
	pendingStart string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    *rexapi.Client
	session   *session.Session
	feed      *activity.Feed
	log       logging.Logger
	prefsPath string

	theme Theme
	keys  keyMap

	width  int
	height int

	current  screen
	modal    *modalState
	showHelp bool
	busy     bool
	busyText string

	// Key entry
	keyInput textinput.Model
	keyErr   string

	// Menus
	homeMenu      menu
	stationMenu   menu
	presenterMenu menu
	presenters    []rexapi.Presenter

	// Scalar field edit
	editField   string
	editTitle   string
	editInitial string
	editInput   textinput.Model
	editErr     string

	// Genres
	genreList checklist

	// Add-presenter wizard
	draft     draftPresenter
	nameInput textinput.Model
	nameErr   string
	dayMenu   menu
	moreMenu  menu
	timeInput textinput.Model
	timeErr   string
	roleList  checklist

	// Set when an authenticated flow ran without a key; surfaced by Run.
	fatal error
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	keyInput := textinput.New()
	keyInput.Placeholder = "HMAC key"
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.Focus()

	editInput := textinput.New()
	editInput.CharLimit = 0

	nameInput := textinput.New()
	nameInput.Placeholder = "Presenter name"

	timeInput := textinput.New()
	timeInput.Placeholder = "HH:MM"
	timeInput.CharLimit = 5

	genreItems := make([]menuItem, 0, len(catalog.Genres()))
	for _, g := range catalog.Genres() {
		genreItems = append(genreItems, menuItem{ID: g.ID, Label: g.Label})
	}
	dayItems := make([]menuItem, 0, 7)
	for _, d := range catalog.Weekdays() {
		dayItems = append(dayItems, menuItem{ID: d, Label: d})
	}
	roleItems := make([]menuItem, 0, len(catalog.Roles()))
	for _, r := range catalog.Roles() {
		roleItems = append(roleItems, menuItem{ID: r.Code, Label: r.Label})
	}

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		session:   opts.Session,
		feed:      opts.Feed,
		log:       log,
		prefsPath: prefsPath,
		theme:     GetTheme(opts.ThemeName),
		keys:      defaultKeyMap(),
		current:   screenKeyEntry,
		keyInput:  keyInput,
		editInput: editInput,
		nameInput: nameInput,
		timeInput: timeInput,
		homeMenu: newMenu([]menuItem{
			{ID: "station", Label: "Update radio station"},
			{ID: "presenters", Label: "Presenters"},
			{ID: "activity", Label: "Activity log"},
			{ID: "exit", Label: "Exit"},
		}),
		stationMenu: newMenu([]menuItem{
			{ID: "name", Label: "Station name"},
			{ID: "description", Label: "Description"},
			{ID: "genres", Label: "Genres"},
			{ID: "back", Label: "Back"},
		}),
		dayMenu: newMenu(dayItems),
		moreMenu: newMenu([]menuItem{
			{ID: "add", Label: "Add a schedule entry"},
			{ID: "finish", Label: "Finish"},
		}),
		genreList: newChecklist(genreItems),
		roleList:  newChecklist(roleItems),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scalarLoadedMsg:
		return m.handleScalarLoaded(msg)

	case genresLoadedMsg:
		return m.handleGenresLoaded(msg)

	case patchDoneMsg:
		return m.handlePatchDone(msg)

	case presentersLoadedMsg:
		return m.handlePresentersLoaded(msg)

	case createDoneMsg:
		return m.handleCreateDone(msg)
	}

	return m, nil
}

// checkFatal traps the broken-invocation case: an authenticated call ran
// before key capture. The process terminates rather than recovering.
func (m *Model) checkFatal(err error) bool {
	if errors.Is(err, session.ErrNoKey) {
		m.fatal = err
		return true
	}
	return false
}

func (m Model) handleScalarLoaded(msg scalarLoadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if m.checkFatal(msg.err) {
			return m, tea.Quit
		}
		m.modal = errorModal("Load failed", msg.err, screenStation)
		return m, nil
	}
	m.editInitial = msg.field.Value.Scalar
	m.editInput.SetValue(m.editInitial)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	m.editErr = ""
	m.current = screenFieldEdit
	return m, nil
}

func (m Model) handleGenresLoaded(msg genresLoadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if m.checkFatal(msg.err) {
			return m, tea.Quit
		}
		m.modal = errorModal("Load failed", msg.err, screenStation)
		return m, nil
	}
	var checked []string
	for _, v := range msg.field.Value.List {
		if g, ok := catalog.GenreByValue(v); ok {
			checked = append(checked, g.ID)
		}
	}
	m.genreList.reset(checked)
	m.current = screenGenres
	return m, nil
}

func (m Model) handlePatchDone(msg patchDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if m.checkFatal(msg.err) {
			return m, tea.Quit
		}
		m.modal = errorModal("Save failed", msg.err, screenStation)
		return m, nil
	}
	m.modal = infoModal("Saved", "Updated "+msg.field+".", screenStation)
	return m, nil
}

func (m Model) handlePresentersLoaded(msg presentersLoadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if m.checkFatal(msg.err) {
			return m, tea.Quit
		}
		// Keep the menu usable with an empty roster.
		m.presenters = nil
		m.rebuildPresenterMenu()
		m.modal = errorModal("Load failed", msg.err, screenPresenters)
		return m, nil
	}
	m.presenters = msg.items
	m.rebuildPresenterMenu()
	if m.modal == nil {
		m.current = screenPresenters
	}
	return m, nil
}

func (m Model) handleCreateDone(msg createDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if m.checkFatal(msg.err) {
			return m, tea.Quit
		}
		m.modal = errorModal("Create failed", msg.err, screenPresenters)
		return m, nil
	}
	m.draft = draftPresenter{}
	m.modal = infoModal("Presenter created", "Created "+msg.name+".", screenPresenters)
	// Refresh the roster behind the modal.
	return m, m.listPresentersCmd()
}

func (m *Model) rebuildPresenterMenu() {
	items := make([]menuItem, 0, len(m.presenters)+2)
	for _, p := range m.presenters {
		items = append(items, menuItem{ID: "presenter", Label: p.Name})
	}
	items = append(items,
		menuItem{ID: "add", Label: "Add presenter"},
		menuItem{ID: "back", Label: "Back"},
	)
	m.presenterMenu.setItems(items)
}

// Run starts the Bubble Tea program and blocks until it finishes.
func Run(opts Options) error {
	prog := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	final, err := prog.Run()
	if err != nil {
		if opts.Context != nil && opts.Context.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := final.(Model); ok && fm.fatal != nil {
		return fm.fatal
	}
	return nil
}
