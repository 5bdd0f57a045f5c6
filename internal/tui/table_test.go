package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/dm/eia-go/internal/model"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDigitToCol(t *testing.T) {
	assert.Equal(t, 0, digitToCol("1"))
	assert.Equal(t, 8, digitToCol("9"))
	assert.Equal(t, -1, digitToCol("0"))
	assert.Equal(t, -1, digitToCol("a"))
	assert.Equal(t, -1, digitToCol("12"))
	assert.Equal(t, -1, digitToCol(""))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, pageCount(0, 15))
	assert.Equal(t, 1, pageCount(15, 15))
	assert.Equal(t, 2, pageCount(16, 15))
	assert.Equal(t, 1, pageCount(5, 0))
}

func TestGroupTableDigitKeySorting(t *testing.T) {
	tbl := newGroupTable(sampleRows(), false)
	assert.Equal(t, -1, tbl.sortCol, "rank order by default")

	tbl, _ = tbl.Update(keyRunes("1"))
	assert.Equal(t, 0, tbl.sortCol)
	assert.True(t, tbl.sortDesc, "new column starts descending")
	assert.Equal(t, "syslog", tbl.displayRows[0].LogName)

	// Same digit again flips direction.
	tbl, _ = tbl.Update(keyRunes("1"))
	assert.False(t, tbl.sortDesc)
	assert.Equal(t, "app", tbl.displayRows[0].LogName)
}

func TestGroupTablePaging(t *testing.T) {
	rows := make([]model.GroupRow, 20)
	for i := range rows {
		rows[i] = model.GroupRow{LogName: "group"}
	}
	tbl := newGroupTable(rows, false)
	assert.Equal(t, 0, tbl.page)

	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, tbl.page)

	// Already on the last page; does not advance further.
	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, tbl.page)

	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, tbl.page)
	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, tbl.page)
}

func TestGroupTableFilterFlow(t *testing.T) {
	tbl := newGroupTable(sampleRows(), false)

	tbl, _ = tbl.Update(keyRunes("/"))
	assert.True(t, tbl.searching)

	for _, r := range "sys" {
		tbl, _ = tbl.Update(keyRunes(string(r)))
	}
	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, tbl.searching)
	assert.Equal(t, "sys", tbl.search)
	assert.Equal(t, []string{"syslog"}, names(tbl.displayRows))

	// Escape clears the filter.
	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, tbl.search)
	assert.Len(t, tbl.displayRows, 3)
}

func TestGroupTableRender(t *testing.T) {
	tbl := newGroupTable(sampleRows(), false)
	out := tbl.render(120)

	assert.Contains(t, out, "Stream Groups — page 1/1")
	assert.Contains(t, out, "Log Name")
	assert.Contains(t, out, "nginx")
	assert.Contains(t, out, "$600.00")
	assert.Contains(t, out, "10.00G")
}

func TestGroupTableRenderEmpty(t *testing.T) {
	tbl := newGroupTable(nil, false)
	out := tbl.render(80)
	assert.Contains(t, out, "(no groups)")
}

func TestGroupTableRenderShowsSortArrow(t *testing.T) {
	tbl := newGroupTable(sampleRows(), false)
	tbl, _ = tbl.Update(keyRunes("2"))
	out := tbl.render(120)
	assert.True(t, strings.Contains(out, "Impact↓"), "active sort column carries an arrow")
}

func TestGroupTableNormalizedPrecision(t *testing.T) {
	rows := []model.GroupRow{{LogName: "nginx", ImpactScore: 0.1234}}
	tbl := newGroupTable(rows, true)
	out := tbl.render(120)
	assert.Contains(t, out, "0.1234")
}
