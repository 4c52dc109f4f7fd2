package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/flowdeck-app/flowdeck/internal/constants"
	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/timer"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateTimer:
		content = m.viewTimer()
	case constants.StateTasks:
		content = docStyle.Render(m.taskList.View())
	case constants.StateRules:
		content = m.viewRules()
	case constants.StatePresetPicker:
		content = m.viewPresetPicker()
	case constants.StatePauseReason:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Timer", "Tasks", "Rules"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTimer() string {
	if m.session == nil {
		idle := []string{phaseStyle.Render("Ready")}
		if m.preset != nil {
			idle = append(idle,
				countdownStyle.Render(utils.FormatCountdown(m.preset.Duration)),
				mutedStyle.Render(m.preset.Name),
			)
		} else {
			idle = append(idle, mutedStyle.Render("No presets. Add one with 'flowdeck preset add'."))
		}
		idle = append(idle, "", mutedStyle.Render("space to start · p for presets"))
		return m.place(lipgloss.JoinVertical(lipgloss.Center, idle...))
	}

	remaining := timer.Remaining(m.session, m.now)

	phase := "Focus"
	switch m.session.Type {
	case models.SessionBreak:
		phase = "Break"
	case models.SessionLongBreak:
		phase = "Long break"
	}

	var status string
	switch {
	case m.session.Paused():
		status = "paused"
	case m.session.Completed && m.session.Type == models.SessionWork:
		if m.longBreakDue {
			status = "done! space for a long break"
		} else {
			status = "done! space for a break"
		}
	}

	percent := 0.0
	if m.session.Duration > 0 {
		percent = 1 - float64(remaining)/float64(m.session.Duration)
	}

	lines := []string{
		phaseStyle.Render(phase),
		countdownStyle.Render(utils.FormatCountdown(remaining)),
		m.progress.ViewAs(percent),
	}
	if m.preset != nil {
		counter := fmt.Sprintf("%s · session %d/%d", m.preset.Name,
			m.session.SessionCount+1, m.preset.SessionsUntilLongBreak)
		lines = append(lines, mutedStyle.Render(counter))
	}
	if status != "" {
		lines = append(lines, "", mutedStyle.Render(status))
	}
	if interrupted := m.session.InterruptedFor(); interrupted > 0 {
		lines = append(lines, mutedStyle.Render("interrupted "+utils.FormatDuration(int(interrupted/time.Second))))
	}

	return m.place(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Model) viewRules() string {
	if len(m.rules) == 0 {
		return docStyle.Render(mutedStyle.Render("No notification rules. Add one with 'flowdeck rule add'."))
	}

	var b strings.Builder
	b.WriteString(phaseStyle.Render("Notification rules") + "\n")
	for _, rule := range m.rules {
		marker := "●"
		if !rule.Enabled {
			marker = "○"
		}
		action := "allow"
		if rule.Actions.Mute {
			action = "mute"
		} else if rule.Actions.OverrideTemplate != "" {
			action = "template " + rule.Actions.OverrideTemplate
		}
		b.WriteString(fmt.Sprintf("  %s %-24s %-6s priority %-4d %s\n",
			marker, rule.Name, rule.Conditions.Type, rule.Priority, mutedStyle.Render(action)))
	}
	return docStyle.Render(b.String())
}

func (m Model) viewPresetPicker() string {
	var b strings.Builder
	b.WriteString("Select a preset:\n\n")
	for i, preset := range m.presets {
		cursor := "  "
		if i == m.presetIndex {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s (%dm/%dm/%dm)\n", cursor, preset.Name,
			preset.Duration/60, preset.BreakDuration/60, preset.LongBreakDuration/60))
	}
	b.WriteString("\n" + mutedStyle.Render("enter to select · esc to cancel"))
	return m.place(b.String())
}

func (m Model) viewConfirmDelete() string {
	return m.place(lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render("Are you sure you want to delete this task?"),
		"",
		"[y] Yes",
		"[n] No",
	))
}

func (m Model) place(content string) string {
	if m.width > 0 && m.height > 4 {
		return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
