package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(panelWidth - 2)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(8)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	logStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// GradientText blends each rune from start to end in Lab space.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(string(start))
	b, errB := colorful.Hex(string(end))
	if errA != nil || errB != nil {
		return text
	}

	var result strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
		result.WriteString(lipgloss.NewStyle().Bold(true).Foreground(col).Render(string(r)))
	}
	return result.String()
}

// BalanceBar shows the share of weight on each side around a centre mark.
func BalanceBar(left, right, width int) string {
	half := width / 2
	total := left + right
	lf, rf := 0, 0
	if total > 0 {
		lf = left * half / total
		rf = right * half / total
	}
	l := strings.Repeat("░", half-lf) + strings.Repeat("█", lf)
	r := strings.Repeat("█", rf) + strings.Repeat("░", half-rf)
	return lipgloss.NewStyle().Foreground(CurrentTheme.Left).Render(l) +
		lipgloss.NewStyle().Foreground(CurrentTheme.Pivot).Render("┃") +
		lipgloss.NewStyle().Foreground(CurrentTheme.Right).Render(r)
}
