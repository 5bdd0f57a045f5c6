package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/dm/eia-go/internal/format"
	"github.com/dm/eia-go/internal/model"
)

// groupColumns are the 9 columns of the stream group table. Digit keys 1-9
// sort by the corresponding column.
var groupColumns = []string{
	"Log Name", "Impact", "Impact %", "Storage", "Shards",
	"Segments", "Docs", "Indices", "Est $/mo",
}

// groupTable is a sortable, paginated, filterable table over the scored
// stream groups of one report.
type groupTable struct {
	allRows     []model.GroupRow // rank order, unfiltered
	displayRows []model.GroupRow // after filter + sort
	normalized  bool             // normalized scores render with more precision

	sortCol   int // -1 = rank order
	sortDesc  bool
	page      int // 0-indexed
	pageSize  int
	search    string
	searching bool
	input     textinput.Model
}

// newGroupTable builds a table over rows, unsorted (rank order) by default.
func newGroupTable(rows []model.GroupRow, normalized bool) groupTable {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 80
	t := groupTable{
		allRows:    rows,
		normalized: normalized,
		sortCol:    -1,
		pageSize:   15,
		input:      ti,
	}
	t.refresh()
	return t
}

// refresh re-applies the current filter and sort and clamps the page.
func (t *groupTable) refresh() {
	filtered := filterGroupRows(t.allRows, t.search)
	t.displayRows = sortGroupRows(filtered, t.sortCol, t.sortDesc)
	pc := pageCount(len(t.displayRows), t.pageSize)
	if t.page >= pc {
		t.page = pc - 1
	}
	if t.page < 0 {
		t.page = 0
	}
}

// Update handles keyboard input for sorting, pagination, and filtering.
func (t groupTable) Update(msg tea.Msg) (groupTable, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	if t.searching {
		switch {
		case key.Matches(keyMsg, keys.Escape):
			t.searching = false
			t.input.Blur()
			if t.input.Value() == "" {
				t.search = ""
				t.refresh()
			}
			return t, nil
		case keyMsg.String() == "enter":
			t.search = t.input.Value()
			t.searching = false
			t.input.Blur()
			t.page = 0
			t.refresh()
			return t, nil
		default:
			var cmd tea.Cmd
			t.input, cmd = t.input.Update(msg)
			return t, cmd
		}
	}

	switch {
	case key.Matches(keyMsg, keys.Search):
		t.searching = true
		t.input.SetValue(t.search)
		t.input.Focus()
		return t, textinput.Blink
	case key.Matches(keyMsg, keys.Escape):
		t.search = ""
		t.input.SetValue("")
		t.page = 0
		t.refresh()
		return t, nil
	case key.Matches(keyMsg, keys.PrevPage):
		if t.page > 0 {
			t.page--
		}
		return t, nil
	case key.Matches(keyMsg, keys.NextPage):
		if t.page < pageCount(len(t.displayRows), t.pageSize)-1 {
			t.page++
		}
		return t, nil
	default:
		if col := digitToCol(keyMsg.String()); col >= 0 && col < len(groupColumns) {
			if col == t.sortCol {
				t.sortDesc = !t.sortDesc
			} else {
				t.sortCol = col
				t.sortDesc = true // descending first for a new column
			}
			t.page = 0
			t.refresh()
		}
		return t, nil
	}
}

// render renders the table body for the current page, with a status line on
// top showing page position and any active filter.
func (t *groupTable) render(width int) string {
	pc := pageCount(len(t.displayRows), t.pageSize)
	status := fmt.Sprintf("Stream Groups — page %d/%d", t.page+1, pc)
	if t.searching {
		status += "  filter: " + t.input.View()
	} else if t.search != "" {
		status += fmt.Sprintf("  filter: %q", t.search)
	}

	headers := make([]string, len(groupColumns))
	for i, title := range groupColumns {
		if i == t.sortCol {
			arrow := "↓"
			if !t.sortDesc {
				arrow = "↑"
			}
			headers[i] = title + arrow
		} else {
			headers[i] = title
		}
	}

	start := t.page * t.pageSize
	if start > len(t.displayRows) {
		start = 0
	}
	end := start + t.pageSize
	if end > len(t.displayRows) {
		end = len(t.displayRows)
	}
	pageRows := t.displayRows[start:end]

	if len(pageRows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, status, StyleDim.Render("  (no groups)"))
	}

	sortCol := t.sortCol
	body := ltable.New().
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				if col == sortCol {
					return lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
				}
				return lipgloss.NewStyle().Bold(true).Foreground(colorGray)
			}
			base := lipgloss.NewStyle()
			if row%2 == 0 {
				base = base.Background(colorAlt)
			}
			switch col {
			case 1, 2:
				return base.Foreground(colorGreen)
			case 3:
				return base.Foreground(colorCyan)
			case 8:
				return base.Foreground(colorYellow)
			default:
				return base.Foreground(colorWhite)
			}
		}).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	if width > 0 {
		body = body.Width(width)
	}

	for _, r := range pageRows {
		cells := make([]string, len(groupColumns))
		for col := range groupColumns {
			cells[col] = t.cellValue(r, col)
		}
		body = body.Row(cells...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, status, body.Render())
}

// cellValue formats one cell of a group row.
func (t *groupTable) cellValue(r model.GroupRow, col int) string {
	switch col {
	case 0:
		return r.LogName
	case 1:
		if t.normalized {
			return fmt.Sprintf("%.4f", r.ImpactScore)
		}
		return fmt.Sprintf("%.2f", r.ImpactScore)
	case 2:
		return format.FormatPercent(r.ImpactPercent)
	case 3:
		return format.FormatGB(r.StorageGB)
	case 4:
		return format.FormatNumber(int64(r.TotalShards))
	case 5:
		return format.FormatNumber(r.TotalSegments)
	case 6:
		return format.FormatNumber(r.DocCount)
	case 7:
		return strconv.Itoa(r.IndexCount)
	case 8:
		return format.FormatMoney(r.MonthlyCost)
	default:
		return ""
	}
}

// digitToCol converts a "1"–"9" key string to a 0-indexed column number.
// Returns -1 for any other string.
func digitToCol(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}

// pageCount returns the total number of pages for totalRows rows at pageSize
// rows per page. Always at least 1.
func pageCount(totalRows, pageSize int) int {
	if totalRows == 0 || pageSize <= 0 {
		return 1
	}
	c := totalRows / pageSize
	if totalRows%pageSize != 0 {
		c++
	}
	return c
}
