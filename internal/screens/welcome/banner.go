package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/theme"
)

const bannerArt = `
 ┳┳┓┏┓┏┳┓┓┏  ┳┓┏┓┏┓┓┏
 ┃┃┃┣┫ ┃ ┣┫  ┃┃┣┫┗┓┣┫
 ┛ ┗┛┗ ┻ ┛┗  ┻┛┛┗┗┛┛┗`

const bannerCompact = "M A T H D A S H"

// RenderBanner returns the banner in the primary colour, falling back to a
// single line below 28 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 28 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
