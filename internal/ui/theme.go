package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// habitcore theme (CLI + TUI).

const (
	IconBrand   = "⬡"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconFire    = "🔥"
	IconUp      = "▲"
	IconEmpty   = "◈"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconTrash   = "🗑️"
	IconLoop    = "🔁"
)

var (
	cPrimary = lipgloss.Color("51")  // cyan
	cAccent  = lipgloss.Color("201") // magenta
	cGood    = lipgloss.Color("46")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(lipgloss.Color("236"))
	RippleRow   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(cGood)

	LevelUpBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(cAccent).
			Foreground(cGold).
			Bold(true).
			Padding(1, 4).
			Align(lipgloss.Center)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StreakText describes a streak the way the habit list shows it.
func StreakText(streak int) string {
	if streak <= 0 {
		return Muted.Render("Start your streak")
	}
	return Warn.Render(fmt.Sprintf("%s %d day streak", IconFire, streak))
}

// Badge marks a habit completed today.
func Badge(completed bool, xp int) string {
	if !completed {
		return Muted.Render("[ ]")
	}
	return Good.Render(fmt.Sprintf("[%s +%d XP]", IconDone, xp))
}

// XPBar renders a fixed-width bar filled to pct (0..100).
func XPBar(pct float64, width int) string {
	if width <= 3 {
		width = 3
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled)) + "]"
}

// LevelUpBanner is the celebratory box shown after a level-up.
func LevelUpBanner(level int) string {
	body := strings.Join([]string{
		"LEVEL UP",
		fmt.Sprintf("%s LVL %d", IconUp, level),
		Muted.Render("SYSTEM UPGRADE COMPLETE"),
		"",
		Muted.Render("press any key to continue"),
	}, "\n")
	return LevelUpBox.Render(body)
}
