package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/supakorn-kn/go-dashboard/paginator"
	"github.com/supakorn-kn/go-dashboard/resources"
)

const maxCellWidth = 40

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	currentStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// listView is a screen page with its rows as plain JSON objects, so one
// renderer serves every entity.
type listView struct {
	paginator.Window
	Data  []map[string]any     `json:"data"`
	Strip []paginator.PageItem `json:"strip"`
	Error string               `json:"error"`
}

func decodeView(view any) (listView, error) {

	var decoded listView

	b, err := json.Marshal(view)
	if err != nil {
		return decoded, err
	}

	err = json.Unmarshal(b, &decoded)
	return decoded, err
}

func renderView(name string, view listView) string {

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", name, view.TotalItems)))
	b.WriteString("\n")

	if view.Error != "" {
		b.WriteString(errorStyle.Render(view.Error))
		b.WriteString("\n")
	}

	if len(view.Data) == 0 {
		b.WriteString(mutedStyle.Render("No records on this page."))
		b.WriteString("\n")
	} else {
		b.WriteString(renderTable(view.Data))
		b.WriteString("\n")
	}

	b.WriteString(renderStrip(view.Strip, view.CurrentPage))

	return b.String()
}

// columns lists the keys of the rows, "_id" first and the rest sorted.
func columns(rows []map[string]any) []string {

	seen := map[string]bool{}
	for _, row := range rows {
		for key := range row {
			seen[key] = true
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		if key != "_id" {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	if seen["_id"] {
		keys = slices.Insert(keys, 0, "_id")
	}

	return keys
}

func renderTable(rows []map[string]any) string {

	headers := columns(rows)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	for _, row := range rows {

		cells := make([]string, len(headers))
		for i, header := range headers {
			cells[i] = cellValue(row[header])
		}

		t.Row(cells...)
	}

	return t.String()
}

func cellValue(value any) string {

	var text string

	switch v := value.(type) {
	case nil:
		return ""
	case string:
		text = v
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		text = strconv.FormatBool(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = cellValue(item)
		}
		text = strings.Join(parts, ", ")
	default:
		b, _ := json.Marshal(v)
		text = string(b)
	}

	text = strings.ReplaceAll(text, "\n", " ")

	if runes := []rune(text); len(runes) > maxCellWidth {
		text = string(runes[:maxCellWidth-1]) + "…"
	}

	return text
}

// renderStrip prints the page strip with the current page bracketed.
func renderStrip(strip []paginator.PageItem, currentPage int) string {

	parts := make([]string, len(strip))
	for i, item := range strip {

		switch {
		case item.Ellipsis:
			parts[i] = mutedStyle.Render(item.String())
		case item.Number == currentPage:
			parts[i] = currentStyle.Render("[" + item.String() + "]")
		default:
			parts[i] = item.String()
		}
	}

	return strings.Join(parts, " ")
}

func renderSummary(summary resources.Summary) string {

	lines := []string{titleStyle.Render("Dashboard")}

	for _, count := range summary.Counts {
		lines = append(lines, fmt.Sprintf("%-12s %d", count.Type, count.Count))
	}

	lines = append(lines,
		fmt.Sprintf("%-12s %d", "contacts", summary.Contacts),
		fmt.Sprintf("%-12s %d", "reachus", summary.ReachUs),
		fmt.Sprintf("%-12s %d", "subscribers", summary.Subscribers),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
