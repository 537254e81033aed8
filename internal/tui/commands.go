package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fruitstand/internal/domain"
)

// Result messages delivered back to Update once a simulated API call
// finishes. Each command sleeps the configured latency first, the way the
// original page simulated a network round trip. The delay always resolves;
// there is no timeout and no cancellation.

type itemsLoadedMsg struct {
	items []string
	err   error
}

type itemAddedMsg struct {
	// raw is the untrimmed input; the success message echoes it even
	// though the store receives the trimmed value.
	raw   string
	items []string
	err   error
}

type usersLoadedMsg struct {
	users []domain.User
	err   error
}

type statsLoadedMsg struct {
	stats domain.Stats
	err   error
}

type loginResultMsg struct {
	token string
	err   error
}

type protectedLoadedMsg struct {
	data string
	err  error
}

func (m Model) loadItemsCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(m.latency)
		items, err := m.items.List(context.Background())
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m Model) addItemCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(m.latency)
		_, items, err := m.items.Add(context.Background(), raw)
		return itemAddedMsg{raw: raw, items: items, err: err}
	}
}

func (m Model) loadUsersCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(m.latency)
		users, err := m.users.List(context.Background())
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m Model) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(m.latency)
		stats, err := m.stats.Snapshot(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(m.latency)
		token, err := m.auth.Login(context.Background(), username, password)
		return loginResultMsg{token: token, err: err}
	}
}

func (m Model) accessProtectedCmd(token string) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(m.latency)
		if err := m.auth.Verify(context.Background(), token); err != nil {
			return protectedLoadedMsg{err: err}
		}
		return protectedLoadedMsg{data: "This is protected data from the API!"}
	}
}
