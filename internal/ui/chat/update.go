// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/components"
)

const confirmDeletePrefix = "chat-delete:"

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the chat screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		return m, cmd

	case SessionsLoadedMsg:
		m.handleSessionsLoaded(msg)
		return m, nil

	case SessionLoadedMsg:
		m.handleSessionLoaded(msg)
		return m, nil

	case SessionCreatedMsg:
		return m, m.handleSessionCreated(msg)

	case MessageSentMsg:
		return m, m.handleMessageSent(msg)

	case SessionDeletedMsg:
		m.handleSessionDeleted(msg)
		return m, nil

	case CategoriesLoadedMsg:
		if msg.Err != nil {
			log.Printf("chat: load categories: %v", msg.Err)
			return m, nil
		}
		m.categories = msg.Categories
		if m.welcomeCursor >= len(m.categories) {
			m.welcomeCursor = 0
		}
		return m, nil

	case ActionDoneMsg:
		m.handleActionDone(msg)
		return m, nil

	case components.SessionSelectedMsg:
		return m, m.openSession(msg.ID)

	case components.SessionNewMsg:
		m.newChat()
		return m, nil

	case components.SessionDeleteMsg:
		m.confirm.Show(confirmDeletePrefix+msg.ID,
			m.printer.T(locale.ConfirmDeleteTitle),
			m.printer.T(locale.ConfirmDeleteChat),
			components.ConfirmDanger)
		return m, nil

	case components.ConfirmResultMsg:
		if id, ok := strings.CutPrefix(msg.ID, confirmDeletePrefix); ok && msg.Confirmed {
			return m, deleteSessionCmd(m.client, m.timeout, id)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Reload refetches the session list and categories.
func (m *Model) Reload() tea.Cmd {
	m.sessions.SetLoading(true)
	return tea.Batch(
		loadSessionsCmd(m.client, m.timeout),
		loadCategoriesCmd(m.client, m.timeout),
	)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.IsVisible() {
		cmd, _ := m.confirm.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.ToggleSidebar):
		m.SetSidebarOpen(!m.sidebarOpen)
		return nil
	case key.Matches(msg, m.keys.NewChat):
		m.newChat()
		return nil
	case key.Matches(msg, m.keys.Admin):
		return func() tea.Msg { return components.SwitchToAdminMsg{} }
	case key.Matches(msg, m.keys.NextFocus):
		m.cycleFocus(1)
		return nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.cycleFocus(-1)
		return nil
	case key.Matches(msg, m.keys.Back):
		m.setFocus(FocusInput)
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return nil
	}

	switch m.focus {
	case FocusSidebar:
		return m.sessions.Update(msg)
	case FocusActions:
		return m.handleActionKey(msg)
	case FocusWelcome:
		return m.handleWelcomeKey(msg)
	}

	if key.Matches(msg, m.keys.Send) {
		return m.submit()
	}
	if m.busy {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleActionKey(msg tea.KeyMsg) tea.Cmd {
	ids := m.cardIDs()
	if len(ids) == 0 {
		m.setFocus(FocusInput)
		return nil
	}
	switch msg.String() {
	case "up", "left", "k", "h":
		if m.cardIndex > 0 {
			m.cardIndex--
			m.refreshViewport(false)
		}
	case "down", "right", "j", "l":
		if m.cardIndex < len(ids)-1 {
			m.cardIndex++
			m.refreshViewport(false)
		}
	case "enter", " ":
		return m.runAction(m.focusedCardID())
	}
	return nil
}

func (m *Model) handleWelcomeKey(msg tea.KeyMsg) tea.Cmd {
	if len(m.categories) == 0 {
		m.setFocus(FocusInput)
		return nil
	}
	switch msg.String() {
	case "up", "left", "k", "h":
		if m.welcomeCursor > 0 {
			m.welcomeCursor--
		}
	case "down", "right", "j", "l":
		if m.welcomeCursor < len(m.categories)-1 {
			m.welcomeCursor++
		}
	case "enter", " ":
		return m.startWithCategory(m.categories[m.welcomeCursor])
	}
	return nil
}

// =============================================================================
// ACTIONS
// =============================================================================

// newChat returns to the welcome screen. The session is created on first send.
func (m *Model) newChat() {
	m.current = nil
	m.messages = nil
	m.loadingSession = false
	m.sessions.SetCurrent("")
	m.input.Placeholder = m.printer.T(locale.WelcomePlaceholder)
	m.setFocus(FocusInput)
}

func (m *Model) openSession(id string) tea.Cmd {
	if m.current != nil && m.current.ID == id {
		m.setFocus(FocusInput)
		return nil
	}
	s, ok := model.FindSession(m.sessions.Sessions(), id)
	if !ok {
		s = model.Session{ID: id}
	}
	m.current = &s
	m.messages = nil
	m.loadingSession = true
	m.sessions.SetCurrent(id)
	m.input.Placeholder = m.printer.T(locale.InputPlaceholder)
	m.setFocus(FocusInput)
	m.refreshViewport(true)
	return loadSessionCmd(m.client, m.timeout, id)
}

// submit sends the input text, creating a session first when none is open.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.busy {
		return nil
	}
	m.input.Reset()

	if m.current == nil {
		m.busy = true
		m.input.Blur()
		name := model.NewSessionName(m.printer.T(locale.SessionNamePrefix), m.now())
		return createSessionCmd(m.client, m.timeout, name, m.defaultCategory, text)
	}
	return m.sendText(text)
}

func (m *Model) sendText(text string) tea.Cmd {
	local := model.NewUserMessage(m.current.ID, text)
	m.messages = append(m.messages, local)
	m.busy = true
	m.input.Blur()
	m.refreshViewport(true)

	return tea.Batch(
		sendMessageCmd(m.client, m.timeout, m.current.ID, local.ID, text),
		m.typing.Start(),
	)
}

func (m *Model) startWithCategory(cat model.Category) tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	m.input.Blur()
	name := model.NewSessionName(m.printer.T(locale.SessionNamePrefix), m.now())
	return createSessionCmd(m.client, m.timeout, name, cat.ID, "")
}

func (m *Model) runAction(messageID string) tea.Cmd {
	if m.acting || m.current == nil {
		return nil
	}
	msg, ok := m.findMessage(messageID)
	if !ok || msg.ActionCard == nil {
		return nil
	}
	m.acting = true
	return executeActionCmd(m.client, m.timeout, m.current.ID, msg.ActionCard.Action)
}

// =============================================================================
// RESULT HANDLERS
// =============================================================================

func (m *Model) handleSessionsLoaded(msg SessionsLoadedMsg) {
	if msg.Err != nil {
		log.Printf("chat: load sessions: %v", msg.Err)
		m.sessions.SetLoading(false)
		m.banners.Error(m.printer.T(locale.ErrLoadSessions))
		return
	}
	sessions := msg.Sessions
	model.SortSessionsByRecency(sessions)
	m.sessions.SetSessions(sessions)
	if m.current != nil {
		m.sessions.SetCurrent(m.current.ID)
	}
}

func (m *Model) handleSessionLoaded(msg SessionLoadedMsg) {
	// A newer selection supersedes this response.
	if m.current == nil || m.current.ID != msg.ID {
		return
	}
	m.loadingSession = false
	if msg.Err != nil {
		log.Printf("chat: load session %s: %v", msg.ID, msg.Err)
		m.banners.Error(m.printer.T(locale.ErrLoadMessages))
		m.refreshViewport(true)
		return
	}
	if msg.Session != nil {
		s := *msg.Session
		m.current = &s
	}
	m.messages = msg.Messages
	m.refreshViewport(true)
}

func (m *Model) handleSessionCreated(msg SessionCreatedMsg) tea.Cmd {
	m.busy = false
	if msg.Err != nil {
		log.Printf("chat: create session: %v", msg.Err)
		m.banners.Error(m.printer.T(locale.ErrCreateSession))
		if msg.Pending != "" && m.input.Value() == "" {
			m.input.SetValue(msg.Pending)
		}
		m.setFocus(FocusInput)
		return nil
	}

	s := *msg.Session
	sessions := append([]model.Session{s}, m.sessions.Sessions()...)
	m.sessions.SetSessions(sessions)
	m.sessions.SetCurrent(s.ID)
	m.current = &s
	m.messages = nil
	m.loadingSession = false
	m.input.Placeholder = m.printer.T(locale.InputPlaceholder)
	m.setFocus(FocusInput)

	if msg.Pending != "" {
		return m.sendText(msg.Pending)
	}
	m.refreshViewport(true)
	return nil
}

func (m *Model) handleMessageSent(msg MessageSentMsg) tea.Cmd {
	m.busy = false
	m.typing.Stop()
	if m.focus == FocusInput {
		m.input.Focus()
	}

	stillOpen := m.current != nil && m.current.ID == msg.SessionID

	if msg.Err != nil {
		log.Printf("chat: send message: %v", msg.Err)
		m.banners.Error(m.printer.T(locale.ErrSendMessage))
		if stillOpen {
			m.messages = model.RemoveMessage(m.messages, msg.LocalID)
			m.refreshViewport(true)
		}
		return nil
	}

	reply := msg.Response.Message
	if reply.ActionCard == nil && msg.Response.ActionCard != nil {
		reply.ActionCard = msg.Response.ActionCard
	}
	if stillOpen {
		m.messages = append(m.messages, reply)
		m.refreshViewport(true)
	}

	sessions := append([]model.Session(nil), m.sessions.Sessions()...)
	m.sessions.SetSessions(model.TouchSession(sessions, msg.SessionID, m.now()))
	if m.current != nil {
		m.sessions.SetCurrent(m.current.ID)
	}
	return nil
}

func (m *Model) handleSessionDeleted(msg SessionDeletedMsg) {
	if msg.Err != nil {
		log.Printf("chat: delete session %s: %v", msg.ID, msg.Err)
		m.banners.Error(m.printer.T(locale.ErrDeleteSession))
		return
	}
	m.sessions.SetSessions(model.RemoveSession(m.sessions.Sessions(), msg.ID))
	if m.current != nil && m.current.ID == msg.ID {
		m.newChat()
	}
	m.banners.Success(m.printer.T(locale.SessionDeleted))
}

func (m *Model) handleActionDone(msg ActionDoneMsg) {
	m.acting = false

	var text string
	switch {
	case msg.Err != nil:
		log.Printf("chat: action: %v", msg.Err)
		text = m.printer.T(locale.ErrCreateTicket)
		m.banners.Error(text)
	case msg.Result.Error != "":
		text = msg.Result.Error
		m.banners.Error(text)
	default:
		text = msg.Result.Message
	}

	if text == "" || m.current == nil || m.current.ID != msg.SessionID {
		return
	}
	m.messages = append(m.messages, model.NewAssistantNote(msg.SessionID, text))
	m.refreshViewport(true)
}
