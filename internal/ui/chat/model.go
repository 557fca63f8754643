// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/components"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus identifies the region receiving keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusActions
	FocusSidebar
	FocusWelcome
)

// =============================================================================
// MODEL
// =============================================================================

// Options configures a chat screen.
type Options struct {
	Client  Backend
	Theme   *styles.Theme
	Printer *locale.Printer

	// Banners is shared with the rest of the application. A private manager
	// is created when nil.
	Banners *components.BannerManager

	Timeout         time.Duration
	SidebarOpen     bool
	ShowTimestamps  bool
	DefaultCategory string
}

// Model is the chat screen.
type Model struct {
	client  Backend
	timeout time.Duration
	theme   *styles.Theme
	printer *locale.Printer
	keys    KeyMap

	// Conversation state
	sessions   *components.SessionList
	current    *model.Session
	messages   []model.Message
	categories []model.Category

	defaultCategory string

	// UI components
	viewport    viewport.Model
	input       textinput.Model
	typing      components.TypingIndicator
	banners     *components.BannerManager
	confirm     *components.ConfirmDialog
	messageView *components.MessageView

	// Interaction state
	focus          Focus
	sidebarOpen    bool
	busy           bool
	acting         bool
	loadingSession bool
	cardIndex      int
	welcomeCursor  int

	width  int
	height int

	now func() time.Time
}

// New creates the chat screen. Call Init to start loading sessions.
func New(opts Options) *Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	p := opts.Printer
	if p == nil {
		p = locale.Default()
	}
	banners := opts.Banners
	if banners == nil {
		banners = components.NewBannerManager()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ti := textinput.New()
	ti.Placeholder = p.T(locale.WelcomePlaceholder)
	ti.Prompt = "> "
	ti.CharLimit = 4000
	ti.Focus()

	mv := components.NewMessageView(theme, p, 80)
	mv.ShowTime = opts.ShowTimestamps

	return &Model{
		client:          opts.Client,
		timeout:         timeout,
		theme:           theme,
		printer:         p,
		keys:            DefaultKeyMap(),
		sessions:        components.NewSessionList(theme, p),
		defaultCategory: opts.DefaultCategory,
		viewport:        viewport.New(80, 20),
		input:           ti,
		typing:          components.NewTypingIndicator(theme, p.T(locale.Typing)),
		banners:         banners,
		confirm:         components.NewConfirmDialog(theme, p),
		messageView:     mv,
		focus:           FocusInput,
		sidebarOpen:     opts.SidebarOpen,
		width:           80,
		height:          24,
		now:             time.Now,
	}
}

// Init loads the session list and the welcome categories.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		loadSessionsCmd(m.client, m.timeout),
		loadCategoriesCmd(m.client, m.timeout),
		textinput.Blink,
	)
}

// Keys returns the bindings shown in the status bar.
func (m *Model) Keys() KeyMap {
	return m.keys
}

// Current returns the open session, or nil on the welcome screen.
func (m *Model) Current() *model.Session {
	return m.current
}

// Messages returns the messages of the open session.
func (m *Model) Messages() []model.Message {
	return m.messages
}

// Sessions returns the sidebar sessions, newest first.
func (m *Model) Sessions() []model.Session {
	return m.sessions.Sessions()
}

// Categories returns the categories offered on the welcome screen.
func (m *Model) Categories() []model.Category {
	return m.categories
}

// Busy reports whether a chat request is in flight.
func (m *Model) Busy() bool {
	return m.busy
}

// Focus returns the focused region.
func (m *Model) Focus() Focus {
	return m.focus
}

// SidebarOpen reports whether the session list is shown.
func (m *Model) SidebarOpen() bool {
	return m.sidebarOpen
}

// SetSidebarOpen shows or hides the session list.
func (m *Model) SetSidebarOpen(open bool) {
	m.sidebarOpen = open
	if !open && m.focus == FocusSidebar {
		m.setFocus(FocusInput)
	}
	m.layout()
}

// SetClient points later requests at a different backend.
func (m *Model) SetClient(client Backend) {
	m.client = client
}

// ConfirmVisible reports whether a confirmation dialog is open.
func (m *Model) ConfirmVisible() bool {
	return m.confirm.IsVisible()
}

// SetShowTimestamps toggles message times, used on config reload.
func (m *Model) SetShowTimestamps(show bool) {
	m.messageView.ShowTime = show
	m.refreshViewport(false)
}

// SetSize sets the area available to the screen.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.confirm.SetWidth(width)
	m.layout()
}

// sidebarWidth returns the rendered sidebar width, 0 when hidden.
func (m *Model) sidebarWidth() int {
	if !m.sidebarOpen {
		return 0
	}
	return m.theme.SidebarWidth()
}

func (m *Model) layout() {
	mainWidth := m.width - m.sidebarWidth()
	if mainWidth < 20 {
		mainWidth = 20
	}
	// Input box takes three rows, the typing line one more.
	vpHeight := m.height - 4
	if vpHeight < 3 {
		vpHeight = 3
	}

	m.viewport.Width = mainWidth
	m.viewport.Height = vpHeight
	m.input.Width = mainWidth - 6
	m.messageView.SetWidth(mainWidth)
	m.sessions.SetSize(m.sidebarWidth(), m.height)
	m.refreshViewport(false)
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusInput && !m.busy {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.refreshViewport(false)
}

// focusOrder lists the regions tab cycles through in the current state.
func (m *Model) focusOrder() []Focus {
	order := []Focus{FocusInput}
	if len(m.cardIDs()) > 0 {
		order = append(order, FocusActions)
	}
	if m.current == nil && len(m.categories) > 0 {
		order = append(order, FocusWelcome)
	}
	if m.sidebarOpen && m.sidebarWidth() > 0 {
		order = append(order, FocusSidebar)
	}
	return order
}

func (m *Model) cycleFocus(step int) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + step + len(order)) % len(order)
	next := order[idx]
	if next == FocusActions {
		// Start at the newest card.
		m.cardIndex = len(m.cardIDs()) - 1
	}
	m.setFocus(next)
}

func (m *Model) cardIDs() []string {
	return components.ActionCardIDs(m.messages)
}

// focusedCardID returns the message id whose card has focus, or "".
func (m *Model) focusedCardID() string {
	if m.focus != FocusActions {
		return ""
	}
	ids := m.cardIDs()
	if m.cardIndex < 0 || m.cardIndex >= len(ids) {
		return ""
	}
	return ids[m.cardIndex]
}

func (m *Model) findMessage(id string) (model.Message, bool) {
	for _, msg := range m.messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return model.Message{}, false
}

// refreshViewport re-renders the conversation. bottom scrolls to the end.
func (m *Model) refreshViewport(bottom bool) {
	if m.current == nil {
		m.viewport.SetContent("")
		return
	}
	content := m.messageView.RenderAll(m.messages, m.focusedCardID())
	if len(m.messages) == 0 && !m.loadingSession {
		content = m.theme.Empty.Render(m.printer.T(locale.ChatEmpty))
	}
	if m.loadingSession {
		content = m.theme.Empty.Render(m.printer.T(locale.Loading))
	}
	m.viewport.SetContent(content)
	if bottom {
		m.viewport.GotoBottom()
	}
}
