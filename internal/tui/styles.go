package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Work      lipgloss.Style
	Break     lipgloss.Style
	Banner    lipgloss.Style
	Selected  lipgloss.Style
	Warning   lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("#282C34")
	muted := lipgloss.Color("#5C6370")

	if dark {
		fg = lipgloss.Color("#ABB2BF")
		muted = lipgloss.Color("#828997")
	}

	green := lipgloss.Color("#98C379")
	blue := lipgloss.Color("#61AFEF")
	yellow := lipgloss.Color("#E5C07B")

	return styles{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Foreground(fg).Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(fg),
		Hint:      lipgloss.NewStyle().Foreground(muted),
		Work: lipgloss.NewStyle().
			Foreground(green).
			Bold(true).
			SetString("[Work]").
			MarginRight(1),
		Break: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true).
			SetString("[Break]").
			MarginRight(1),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(yellow).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().Foreground(green).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(yellow),
	}
}
