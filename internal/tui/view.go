package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Fruitstand Integration Demo"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("A terminal UI and a REST API sharing one in-memory store."))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(calloutStyle.Render(m.message))
		b.WriteString("\n\n")
	}
	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(mutedStyle.Render(" working..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.itemsCard())
	b.WriteString("\n")
	b.WriteString(m.usersCard())
	b.WriteString("\n")
	b.WriteString(m.statsCard())
	b.WriteString("\n")
	b.WriteString(m.authCard())
	b.WriteString("\n")
	b.WriteString(endpointsCard())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) itemsCard() string {
	var lines []string
	lines = append(lines, headingStyle.Render("Items Management"))

	if m.mode == modeAddItem {
		lines = append(lines, m.itemInput.View())
		lines = append(lines, helpStyle.Render("enter: add item  esc: cancel"))
	}

	if len(m.itemList) > 0 {
		lines = append(lines, "Current Items:")
		for _, item := range m.itemList {
			lines = append(lines, "  "+badgeStyle.Render(item))
		}
	} else {
		lines = append(lines, mutedStyle.Render("Press i to load items."))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) usersCard() string {
	var lines []string
	lines = append(lines, headingStyle.Render("Users"))

	if len(m.userList) > 0 {
		for _, user := range m.userList {
			lines = append(lines, fmt.Sprintf("  Name: %s", user.Name))
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("  Email: %s", user.Email)))
		}
	} else {
		lines = append(lines, mutedStyle.Render("Press u to load users."))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) statsCard() string {
	var lines []string
	lines = append(lines, headingStyle.Render("Statistics"))

	if m.statsView != nil {
		lines = append(lines, fmt.Sprintf("  Total Items: %d", m.statsView.TotalItems))
		lines = append(lines, fmt.Sprintf("  Total Users: %d", m.statsView.TotalUsers))
		lines = append(lines, fmt.Sprintf("  Status: %s", m.statsView.Status))
	} else {
		lines = append(lines, mutedStyle.Render("Press s to load stats."))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) authCard() string {
	var lines []string
	lines = append(lines, headingStyle.Render("Authentication Demo"))
	lines = append(lines, mutedStyle.Render("Use admin/secret to login"))

	if m.mode == modeLogin {
		lines = append(lines, m.usernameInput.View())
		lines = append(lines, m.passwordInput.View())
		lines = append(lines, helpStyle.Render("tab: switch field  enter: login  esc: cancel"))
	}

	if m.token != "" {
		lines = append(lines, successStyle.Render("  Logged in"))
		if m.protectedData != "" {
			lines = append(lines, successStyle.Render("  "+m.protectedData))
		} else {
			lines = append(lines, mutedStyle.Render("  Press p to access protected data."))
		}
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func endpointsCard() string {
	lines := []string{
		headingStyle.Render("Available API Endpoints"),
		"  GET  /api/items     - Get all items",
		"  POST /api/items     - Add a new item",
		"  GET  /api/users     - Get all users",
		"  GET  /api/stats     - Get application statistics",
		"  POST /token         - Login endpoint",
		"  GET  /api/protected - Protected endpoint",
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeAddItem, modeLogin:
		return "enter: submit  esc: cancel  ctrl+c: quit"
	}
	return "i: load items  a: add item  u: load users  s: load stats  l: login  p: protected data  q: quit"
}
