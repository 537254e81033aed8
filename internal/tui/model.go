package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fruitstand/internal/domain"
	"fruitstand/internal/service"
)

// mode tracks which inline form, if any, currently owns the keyboard.
type mode int

const (
	modeBrowse mode = iota
	modeAddItem
	modeLogin
)

// Model is the single-screen TUI state. It mirrors the reactive page it
// stands in for: cached result lists, a status message line, a loading
// flag that disables actions while a simulated call is in flight, and a
// held token gating the protected-data action.
type Model struct {
	items service.ItemService
	users service.UserService
	stats service.StatsService
	auth  service.AuthService

	latency time.Duration

	mode    mode
	loading bool
	message string

	itemList      []string
	userList      []domain.User
	statsView     *domain.Stats
	token         string
	protectedData string

	itemInput     textinput.Model
	usernameInput textinput.Model
	passwordInput textinput.Model
	loginFocus    int

	spin  spinner.Model
	width int
}

// New builds the TUI model over the shared services. latency is the
// artificial delay applied to every action.
func New(items service.ItemService, users service.UserService, stats service.StatsService, auth service.AuthService, latency time.Duration) Model {
	itemInput := textinput.New()
	itemInput.Prompt = "> "
	itemInput.Placeholder = "Enter new item"
	itemInput.CharLimit = 200

	usernameInput := textinput.New()
	usernameInput.Prompt = "> "
	usernameInput.Placeholder = "Username"
	usernameInput.CharLimit = 100

	passwordInput := textinput.New()
	passwordInput.Prompt = "> "
	passwordInput.Placeholder = "Password"
	passwordInput.CharLimit = 100
	passwordInput.EchoMode = textinput.EchoPassword

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	return Model{
		items:         items,
		users:         users,
		stats:         stats,
		auth:          auth,
		latency:       latency,
		itemInput:     itemInput,
		usernameInput: usernameInput,
		passwordInput: passwordInput,
		spin:          spin,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case itemsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Error loading items: %v", msg.err)
			return m, nil
		}
		m.itemList = msg.items
		m.message = "Items loaded successfully!"
		return m, nil

	case itemAddedMsg:
		m.loading = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Error adding item: %v", msg.err)
			return m, nil
		}
		m.itemList = msg.items
		m.message = fmt.Sprintf("Item '%s' added successfully!", msg.raw)
		m.itemInput.SetValue("")
		return m, nil

	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Error loading users: %v", msg.err)
			return m, nil
		}
		m.userList = msg.users
		m.message = "Users loaded successfully!"
		return m, nil

	case statsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Error loading stats: %v", msg.err)
			return m, nil
		}
		m.statsView = &msg.stats
		m.message = "Stats loaded successfully!"
		return m, nil

	case loginResultMsg:
		m.loading = false
		switch {
		case msg.err == nil:
			m.token = msg.token
			m.message = "Login successful!"
		case errors.Is(msg.err, service.ErrInvalidCredentials):
			m.message = "Invalid credentials"
		default:
			m.message = fmt.Sprintf("Login error: %v", msg.err)
		}
		return m, nil

	case protectedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Error accessing protected data: %v", msg.err)
			return m, nil
		}
		m.protectedData = msg.data
		m.message = "Protected data accessed successfully!"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAddItem:
		return m.handleAddItemKey(msg)
	case modeLogin:
		return m.handleLoginKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	}

	// Actions are disabled while a call is in flight, like the
	// original page's disabled buttons.
	if m.loading {
		return m, nil
	}

	switch msg.String() {
	case "i":
		return m.startLoading(m.loadItemsCmd())
	case "u":
		return m.startLoading(m.loadUsersCmd())
	case "s":
		return m.startLoading(m.loadStatsCmd())
	case "a":
		m.mode = modeAddItem
		m.itemInput.Focus()
		return m, textinput.Blink
	case "l":
		m.mode = modeLogin
		m.loginFocus = 0
		m.usernameInput.Focus()
		m.passwordInput.Blur()
		return m, textinput.Blink
	case "p":
		if m.token == "" {
			m.message = "Please login first"
			return m, nil
		}
		return m.startLoading(m.accessProtectedCmd(m.token))
	}

	return m, nil
}

func (m Model) handleAddItemKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := m.itemInput.Value()
		if strings.TrimSpace(raw) == "" {
			m.message = "Please enter an item name"
			return m, nil
		}
		m.mode = modeBrowse
		m.itemInput.Blur()
		return m.startLoading(m.addItemCmd(raw))
	case "esc":
		m.mode = modeBrowse
		m.itemInput.SetValue("")
		m.itemInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.itemInput, cmd = m.itemInput.Update(msg)
	return m, cmd
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.usernameInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.usernameInput.Blur()
			m.passwordInput.Focus()
		}
		return m, textinput.Blink
	case "enter":
		username := m.usernameInput.Value()
		password := m.passwordInput.Value()
		if username == "" || password == "" {
			m.message = "Please enter username and password"
			return m, nil
		}
		m.mode = modeBrowse
		m.usernameInput.Blur()
		m.passwordInput.Blur()
		m.passwordInput.SetValue("")
		return m.startLoading(m.loginCmd(username, password))
	case "esc":
		m.mode = modeBrowse
		m.usernameInput.Blur()
		m.passwordInput.Blur()
		m.passwordInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m Model) startLoading(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(cmd, m.spin.Tick)
}
