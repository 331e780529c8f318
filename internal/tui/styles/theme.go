// Package styles holds the color palette and shared lipgloss styles for the
// TUI. Colors come from the catppuccin palette, adapting between Latte and
// Mocha based on the terminal background.
package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var (
	light = catppuccin.Latte
	dark  = catppuccin.Mocha
)

func adaptive(lightColor, darkColor string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: lightColor, Dark: darkColor}
}

var (
	Primary   = adaptive(light.Mauve().Hex, dark.Mauve().Hex)
	Secondary = adaptive(light.Blue().Hex, dark.Blue().Hex)

	Text      = adaptive(light.Text().Hex, dark.Text().Hex)
	TextMuted = adaptive(light.Subtext0().Hex, dark.Subtext0().Hex)

	Background        = adaptive(light.Base().Hex, dark.Base().Hex)
	BackgroundDarker  = adaptive(light.Mantle().Hex, dark.Mantle().Hex)
	BackgroundElement = adaptive(light.Surface0().Hex, dark.Surface0().Hex)

	Success = adaptive(light.Green().Hex, dark.Green().Hex)
	Info    = adaptive(light.Sapphire().Hex, dark.Sapphire().Hex)
	Warning = adaptive(light.Yellow().Hex, dark.Yellow().Hex)
	Error   = adaptive(light.Red().Hex, dark.Red().Hex)
)

func Regular() lipgloss.Style {
	return lipgloss.NewStyle()
}

func Bold() lipgloss.Style {
	return Regular().Bold(true)
}

func Muted() lipgloss.Style {
	return Regular().Foreground(TextMuted)
}

func Padded() lipgloss.Style {
	return Regular().Padding(0, 1)
}

func Title() lipgloss.Style {
	return Bold().Foreground(Primary)
}

// Chip renders one set member in the chip list.
func Chip() lipgloss.Style {
	return Padded().
		Background(BackgroundElement).
		Foreground(Text)
}

// SelectedChip renders the chip the removal cursor points at.
func SelectedChip() lipgloss.Style {
	return Padded().
		Background(Primary).
		Foreground(Background).
		Bold(true)
}
