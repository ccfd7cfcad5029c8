package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	salmonPink = lipgloss.Color("#FFB3BA") // failures
	mintGreen  = lipgloss.Color("#A8E6CF") // passes
	amber      = lipgloss.Color("#FFD58A") // redirects, warnings
	mutedGray  = lipgloss.Color("#6B7280") // rules and labels
)

const ruleWidth = 52

// styles are bound to one writer's renderer so colour is only emitted when
// that writer is a terminal.
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	bad   lipgloss.Style
	rule  string
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	rule := r.NewStyle().Foreground(mutedGray)
	return styles{
		title: r.NewStyle().Foreground(salmonPink).Bold(true),
		label: r.NewStyle().Foreground(mutedGray),
		ok:    r.NewStyle().Foreground(mintGreen),
		warn:  r.NewStyle().Foreground(amber),
		bad:   r.NewStyle().Foreground(salmonPink).Bold(true),
		rule:  rule.Render(strings.Repeat("━", ruleWidth)),
	}
}
