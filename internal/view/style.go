package view

import (
	"strings"

	"github.com/Makepad-fr/dayplan/internal/model"
)

// CSS renders settings as inline body style declarations. Unset fields
// emit nothing so the page falls back to its defaults.
func CSS(s model.Settings) string {
	var parts []string
	if s.Bg != "" {
		parts = append(parts, "background: "+s.Bg)
	}
	if s.Color != "" {
		parts = append(parts, "color: "+s.Color)
	}
	if s.Size != "" {
		parts = append(parts, "font-size: "+s.Size+"px")
	}
	if s.Font != "" {
		parts = append(parts, "font-family: "+s.Font)
	}
	return strings.Join(parts, "; ")
}
