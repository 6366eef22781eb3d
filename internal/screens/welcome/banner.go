package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const bannerArt = `
 ░█▀█░█░█░▀█▀░▀▀█░█▀▄░█▀▀░█▀▀░█░█
 ░█░█░█░█░░█░░▄▀░░█░█░█▀▀░█░░░█▀▄
 ░▀▀█░▀▀▀░▀▀▀░▀▀▀░▀▀░░▀▀▀░▀▀▀░▀░▀`

const bannerCompact = "Q U I Z D E C K"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 40

// RenderBanner returns the banner styled in the primary color, or a
// compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
