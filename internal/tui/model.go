package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wellnesshub/wellnesshub-cli/internal/config"
	apierrors "github.com/wellnesshub/wellnesshub-cli/internal/errors"
	"github.com/wellnesshub/wellnesshub-cli/internal/models"
	"github.com/wellnesshub/wellnesshub-cli/internal/render"
)

// transportErrorText is shown for any failure that is not an explicit
// backend-reported error.
const transportErrorText = "Error: Could not connect to server."

// Message types for the chat panel
type (
	// responseMsg carries a successful backend response
	responseMsg struct {
		text string
	}
	// errMsg carries a failed request
	errMsg struct {
		err error
	}
	// revealTickMsg drives the character-by-character reveal
	revealTickMsg struct{}
)

// ChatClient is the backend operation the panel needs.
type ChatClient interface {
	SendChat(query, category string) (string, error)
}

// Model is the chat panel controller. It owns the conversation
// history, the selected category, and the input buffer for the
// lifetime of the session.
type Model struct {
	client    ChatClient
	serverURL string

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	conv           *models.Conversation
	loading        bool
	ready          bool
	err            error
	revealInterval time.Duration
	rev            *reveal

	// Category selection state
	categories        []config.Category
	activeCategory    string
	selectingCategory bool
	catCursor         int

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat panel model
func NewChatModel(client ChatClient, serverURL string, cats *config.CategoryConfig, cfg config.Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	interval := time.Duration(cfg.RevealIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = models.DefaultRevealInterval
	}

	active := cats.DefaultCategory
	if active == "" && len(cats.Categories) > 0 {
		active = cats.Categories[0].Name
	}

	return Model{
		client:         client,
		serverURL:      serverURL,
		textarea:       ta,
		spinner:        s,
		conv:           models.NewConversation(),
		revealInterval: interval,
		categories:     cats.Categories,
		activeCategory: active,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// revealTick returns a command that advances the reveal after the
// configured interval.
func revealTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return revealTickMsg{}
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.selectingCategory {
		return m.updateCategorySelection(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 6
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.loading {
				m.loading = false
			} else {
				return m, tea.Quit
			}

		case "enter":
			if m.loading {
				break
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				// Whitespace-only input: no message, no request
				break
			}

			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			if input == "/category" || input == "/categories" {
				m.textarea.Reset()
				m.selectingCategory = true
				m.catCursor = m.activeCategoryIndex()
				return m, nil
			}

			// A new submission completes any reveal still in flight
			m.flushReveal()

			m.conv.Append(models.RoleUser, models.FormatUserMessage(m.activeCategory, input))
			m.updateViewport()
			m.viewport.GotoBottom()

			m.loading = true
			m.err = nil
			m.textarea.Reset()

			return m, tea.Batch(
				m.sendQuery(input),
				m.spinner.Tick,
			)
		}

	case responseMsg:
		m.loading = false
		m.flushReveal()

		idx := m.conv.Append(models.RoleAssistant, "")
		m.rev = newReveal(idx, msg.text)
		m.updateViewport()
		m.viewport.GotoBottom()

		if m.rev.done() {
			// Empty response: nothing to animate
			m.rev = nil
		} else {
			cmds = append(cmds, revealTick(m.revealInterval))
		}

	case errMsg:
		m.loading = false
		m.flushReveal()

		// Every failure degrades to a visible assistant message and the
		// panel returns to idle; errors render fully formed.
		m.conv.Append(models.RoleAssistant, errorText(msg.err))
		m.updateViewport()
		m.viewport.GotoBottom()

	case revealTickMsg:
		if m.rev != nil {
			prefix, done := m.rev.advance()
			if err := m.conv.Grow(m.rev.index, prefix); err != nil {
				// The message can only have been replaced by a flush;
				// stop the stale reveal.
				done = true
			}
			m.updateViewport()
			m.viewport.GotoBottom()
			if done {
				m.rev = nil
			} else {
				cmds = append(cmds, revealTick(m.revealInterval))
			}
		}

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Only pass KeyMsg to the textarea to prevent escape sequence leaks
	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// flushReveal completes an in-flight reveal instantly. Submitting a
// new query while a response is still animating must not leave two
// reveals interleaving.
func (m *Model) flushReveal() {
	if m.rev == nil {
		return
	}
	_ = m.conv.Grow(m.rev.index, m.rev.full())
	m.rev = nil
}

// errorText maps a request error to the message shown in the panel.
func errorText(err error) string {
	if apierrors.IsBackendError(err) {
		return "Error: " + apierrors.BackendMessage(err)
	}
	return transportErrorText
}

// sendQuery creates a command that performs one chat request
func (m Model) sendQuery(query string) tea.Cmd {
	client := m.client
	category := m.activeCategory
	return func() tea.Msg {
		text, err := client.SendChat(query, category)
		if err != nil {
			return errMsg{err: err}
		}
		return responseMsg{text: text}
	}
}

// activeCategoryIndex returns the index of the active category, or 0
func (m Model) activeCategoryIndex() int {
	for i, c := range m.categories {
		if c.Name == m.activeCategory {
			return i
		}
	}
	return 0
}

// View renders the chat panel
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	if m.selectingCategory {
		return m.renderCategorySelector()
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerParts := []string{
		titleStyle.Render("♥ WellnessHub"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.serverURL),
		hintStyle.Render("  •  "),
		selectorSelectedStyle.Render(m.activeCategory),
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// Messages area
	var messagesContent string
	if m.conv.Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	// Input area
	var inputContent string
	if m.loading {
		inputContent = fmt.Sprintf("%s %s", m.spinner.View(),
			loadingStyle.Render("WellnessHub is thinking..."))
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("⚠ %v", m.err)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the empty-history screen
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("♥")
	title := welcomeTitleStyle.Width(width).Render("Welcome to WellnessHub")
	subtitle := welcomeStyle.Width(width).Render(
		fmt.Sprintf("Ask about %s, or pick another category with /category", strings.ToLower(m.activeCategory)))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
	)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"/category", "Category"},
		{"↑↓", "Scroll"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.conv.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("♥ WellnessHub")

			rendered, err := render.MarkdownWithWidth(msg.Text, bubbleWidth-4)
			if err != nil {
				rendered = msg.Text
			}
			rendered = strings.TrimRight(rendered, "\n")

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat panel
func RunChat(client ChatClient, serverURL string, cats *config.CategoryConfig, cfg config.Config) error {
	m := NewChatModel(client, serverURL, cats, cfg)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
