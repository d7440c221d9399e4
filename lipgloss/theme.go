// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/folio"

// Compile-time interface verification.
var _ folio.Theme = (*Theme)(nil)

// Theme implements folio.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  folio.Styles
	palette folio.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() folio.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() folio.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme called name, falling back to the default.
func ThemeByName(name string) *Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: folio.Styles{
			Title:          folio.ColorPair{Foreground: "#f5e0dc"},
			Meta:           folio.ColorPair{Foreground: "#a6adc8"},
			Context:        folio.ColorPair{Foreground: "#b4befe", Background: "#1e2030"},
			ParagraphLabel: folio.ColorPair{Foreground: "#1e1e2e", Background: "#89b4fa"},
			Original:       folio.ColorPair{Foreground: "#cdd6f4"},
			Translation: folio.ColorPair{
				Foreground: "#a6e3a1", // Green, mirrors the translation rule in print editions
			},
			UserTranslation: folio.ColorPair{Foreground: "#cba6f7"},
			Anchor: folio.ColorPair{
				Foreground: "#f9e2af", // Yellow underline-like emphasis
				Background: "#3a3520",
			},
			AnchorActive: folio.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f9e2af",
			},
			Card:       folio.ColorPair{Foreground: "#bac2de"},
			CardActive: folio.ColorPair{Foreground: "#1e1e2e", Background: "#f9e2af"},
			Intertext:  folio.ColorPair{Foreground: "#94e2d5", Background: "#1e2030"},
			Selected:   folio.ColorPair{Foreground: "#1e1e2e", Background: "#89b4fa"},
		},
		palette: folio.Palette{
			// Catppuccin Mocha
			Background:   "#1e1e2e",
			Foreground:   "#cdd6f4",
			Muted:        "#6c7086",
			Accent:       "#89b4fa",
			Warning:      "#f38ba8",
			UIBackground: "#313244",
			UIForeground: "#a6adc8",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: folio.Styles{
			Title:           folio.ColorPair{Foreground: "#4c4f69"},
			Meta:            folio.ColorPair{Foreground: "#6c6f85"},
			Context:         folio.ColorPair{Foreground: "#1e66f5", Background: "#e6e9ef"},
			ParagraphLabel:  folio.ColorPair{Foreground: "#ffffff", Background: "#7287fd"},
			Original:        folio.ColorPair{Foreground: "#4c4f69"},
			Translation:     folio.ColorPair{Foreground: "#40a02b"},
			UserTranslation: folio.ColorPair{Foreground: "#8839ef"},
			Anchor: folio.ColorPair{
				Foreground: "#df8e1d",
				Background: "#faf0d7",
			},
			AnchorActive: folio.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#df8e1d",
			},
			Card:       folio.ColorPair{Foreground: "#5c5f77"},
			CardActive: folio.ColorPair{Foreground: "#ffffff", Background: "#df8e1d"},
			Intertext:  folio.ColorPair{Foreground: "#179299", Background: "#e6e9ef"},
			Selected:   folio.ColorPair{Foreground: "#ffffff", Background: "#7287fd"},
		},
		palette: folio.Palette{
			// Catppuccin Latte
			Background:   "#eff1f5",
			Foreground:   "#4c4f69",
			Muted:        "#9ca0b0",
			Accent:       "#1e66f5",
			Warning:      "#d20f39",
			UIBackground: "#e6e9ef",
			UIForeground: "#6c6f85",
		},
	}
}
