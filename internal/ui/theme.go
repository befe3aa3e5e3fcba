package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DudeGolf theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconGolf    = "⛳"
	IconSparkle = "✨"
	IconClub    = "🏌️"
	IconBag     = "🎒"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconLock    = "🔒"
	IconOpen    = "🔓"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconStar    = "⭐"
)

var (
	cPrimary = lipgloss.Color("34")  // green
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
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
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
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

// LockText renders an item's availability marker.
func LockText(unlocked, equipped bool) string {
	switch {
	case equipped:
		return Gold.Render("equipped")
	case unlocked:
		return Good.Render("unlocked")
	default:
		return Muted.Render("locked")
	}
}

// XPBar renders a simple progress bar of XP earned toward the next
// level threshold.
func XPBar(current, next uint32, width int) string {
	if width < 4 {
		width = 4
	}
	filled := 0
	if next > 0 {
		filled = int(float64(width) * float64(current) / float64(next))
	}
	if filled > width {
		filled = width
	}
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
