package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/flyconf/internal/resolver"
)

const mask = "********"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	legacyStyle = cellStyle.Faint(true)
	borderStyle = lipgloss.NewStyle().Faint(true)
)

// KeyTable renders one row per canonical key: the key, its value, the raw
// key that won it and the source it came from. Passwords are masked.
// Rows won by legacy FLYWAY_ variables are dimmed.
func KeyTable(resolutions []resolver.Resolution) string {
	rows := make([][]string, 0, len(resolutions))
	for _, r := range resolutions {
		rows = append(rows, []string{r.Key, displayValue(r.Key, r.Entry.Value), r.Entry.Key, r.Entry.Source.String()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("KEY", "VALUE", "FROM", "SOURCE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(resolutions) && resolutions[row].Entry.IsLegacy():
				return legacyStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

func displayValue(key, value string) string {
	if value != "" && strings.HasSuffix(strings.ToLower(key), "password") {
		return mask
	}
	return value
}
