package shared

import (
	"strings"

	"github.com/Guerrilla-Interactive/neolt/app/settings"
)

// Footer joins navigation tips with a consistent separator and applies
// the theme's help style.
func Footer(theme settings.Theme, parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	return theme.Help().Render(strings.Join(parts, "  •  "))
}
