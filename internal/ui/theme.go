package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the configurable colors of the terminal shell.
type Theme struct {
	Title tcell.Color // root word
	Alert tcell.Color // rejection alert background
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return Theme{
		Title: tcell.NewHexColor(0xFFD700),
		Alert: tcell.NewHexColor(0x8B0000),
	}
}

// ParseTheme builds a theme from color strings. Empty strings keep the defaults.
func ParseTheme(title, alert string) (Theme, error) {
	t := DefaultTheme()
	if title != "" {
		c, err := ParseColor(title)
		if err != nil {
			return Theme{}, fmt.Errorf("title color: %w", err)
		}
		t.Title = c
	}
	if alert != "" {
		c, err := ParseColor(alert)
		if err != nil {
			return Theme{}, fmt.Errorf("alert color: %w", err)
		}
		t.Alert = c
	}
	return t, nil
}

// ParseColor accepts "#RRGGBB", "RRGGBB" or a color name tcell knows, like "gold".
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex := strings.TrimPrefix(s, "#"); len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return tcell.NewHexColor(int32(v)), nil
		}
	}
	if c := tcell.GetColor(s); c != tcell.ColorDefault && !strings.HasPrefix(s, "#") {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}
