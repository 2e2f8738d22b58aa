// Package state holds the interactive contact list: the search and paging
// state machine and the bubbletea model that drives it.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/errors"
	"github.com/cristianoliveira/contactbook/internal/logging"
	"github.com/cristianoliveira/contactbook/internal/search"
	"github.com/cristianoliveira/contactbook/internal/source"
	"github.com/cristianoliveira/contactbook/internal/tui/events"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	statusClearDuration   = 5 * time.Second

	inputPrompt      = "Search: "
	inputPlaceholder = "Type a name"

	// Screen rows of the fixed layout; suggestions start below the input.
	inputRow    = 1
	dropdownTop = 2
)

// Directory is the contact source the model reads from.
type Directory interface {
	Load(ctx context.Context) (source.Result, error)
	Engine() *search.Engine
	PageSize() int
	SortOrder() domain.SortOrder
	// Presorted reports whether Load returns the collection ordered by
	// SortOrder rather than in source order.
	Presorted() bool
}

// Model represents the TUI model for bubbletea.
type Model struct {
	ctx context.Context
	dir Directory
	ui  *UIState
	log logging.Logger

	keys     keyMap
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model

	bus      *events.Bus
	releases []func()

	errorHandler *errors.TUIHandler
	status       errors.Message
	statusSeq    int

	// dropdownOffset is the first suggestion shown; dropdownRows how many
	// fit on screen.
	dropdownOffset int
	dropdownRows   int

	width             int
	height            int
	searchMode        bool
	pointerInDropdown bool
}

// NewModel creates the model. It panics if dir is nil.
func NewModel(ctx context.Context, dir Directory) *Model {
	if dir == nil {
		panic("NewModel: directory dependency cannot be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Prompt = inputPrompt
	input.Placeholder = inputPlaceholder

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:      ctx,
		dir:      dir,
		ui:       NewUIState(dir.Engine(), dir.PageSize(), dir.SortOrder()),
		log:      logging.With("component", "tui"),
		keys:     newKeyMap(),
		input:    input,
		spinner:  sp,
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight),
		help:     help.New(),
		bus:      events.NewBus(),
	}
	if !dir.Presorted() {
		m.ui.MarkUnsorted()
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = msg
		m.statusSeq++
	})
	return m
}

// UIState exposes the search and paging state.
func (m *Model) UIState() *UIState { return m.ui }

// Bus returns the pointer event bus.
func (m *Model) Bus() *events.Bus { return m.bus }

// SearchMode reports whether keys edit the search input.
func (m *Model) SearchMode() bool { return m.searchMode }

// Init subscribes the pointer handlers and starts the fetch.
func (m *Model) Init() tea.Cmd {
	if len(m.releases) == 0 {
		m.releases = append(m.releases,
			m.bus.SubscribeContext(m.ctx, events.PointerDown, m.onPointerDown),
			m.bus.SubscribeContext(m.ctx, events.PointerMove, m.onPointerMove),
		)
	}
	return tea.Batch(m.spinner.Tick, m.loadContacts())
}

// Close releases the pointer subscriptions. It is safe to call more than
// once.
func (m *Model) Close() {
	for _, release := range m.releases {
		release()
	}
	m.releases = nil
	m.bus.Close()
}

func (m *Model) loadContacts() tea.Cmd {
	dir, ctx := m.dir, m.ctx
	return func() tea.Msg {
		res, err := dir.Load(ctx)
		return ContactsLoadedMsg{Result: res, Err: err}
	}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ContactsLoadedMsg:
		return m, m.handleContactsLoaded(msg)
	case spinner.TickMsg:
		if m.ui.Loaded() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m, m.handleMouseMsg(msg)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = errors.Message{}
			m.errorHandler.Clear()
			m.refresh()
		}
		return m, nil
	}

	if m.searchMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleContactsLoaded(msg ContactsLoadedMsg) tea.Cmd {
	m.ui.SetContacts(msg.Result.Contacts)
	m.viewport.GotoTop()
	m.refresh()

	switch {
	case msg.Err != nil:
		m.log.Error("store contacts failed", "error", msg.Err)
		return m.notify(errors.MessageTypeError, fmt.Sprintf("Could not store contacts: %v", msg.Err))
	case msg.Result.Err != nil:
		return m.notify(errors.MessageTypeWarning, "Could not load contacts")
	}
	m.log.Info("contacts shown", "count", len(msg.Result.Contacts))
	return nil
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	if w := msg.Width - len(inputPrompt) - 1; w > 0 {
		m.input.Width = w
	}
	m.refresh()
}

// notify shows text on the status line and schedules its removal.
func (m *Model) notify(kind errors.MessageType, text string) tea.Cmd {
	switch kind {
	case errors.MessageTypeError:
		m.errorHandler.Error(text)
	case errors.MessageTypeWarning:
		m.errorHandler.Warning(text)
	case errors.MessageTypeSuccess:
		m.errorHandler.Success(text)
	default:
		m.errorHandler.Info(text)
	}
	m.refresh()
	return clearStatusAfter(statusClearDuration, m.statusSeq)
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultViewportWidth
	}
	if h <= 0 {
		h = defaultViewportHeight
	}
	return w, h
}
