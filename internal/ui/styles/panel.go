package styles

import "github.com/charmbracelet/lipgloss"

// SectionTitle returns the style of a carousel section title.
func SectionTitle(focused bool) lipgloss.Style {
	t := T()
	if focused {
		return lipgloss.NewStyle().Foreground(t.BorderFocus).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.FgMuted)
}

// CardBorder returns the border style of a card.
// Emphasized cards use a thick border in the given accent color.
func CardBorder(emphasized bool, accent lipgloss.Color) lipgloss.Style {
	t := T()
	if emphasized {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(accent)
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
}
