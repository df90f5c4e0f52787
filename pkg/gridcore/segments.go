package gridcore

import "github.com/ukaji3/gridcore-go/pkg/gridcore/models"

// Direction selects how consecutive segment targets advance.
type Direction int

const (
	// Down fills successive rows of one column.
	Down Direction = iota
	// Right fills successive columns of one row.
	Right
)

// SegmentTargets returns up to count addresses starting at start and
// advancing in dir, clipped at the grid edge.
func (m *Model) SegmentTargets(start models.Address, count int, dir Direction) []models.Address {
	var avail int
	if dir == Right {
		avail = m.ColumnCount() - start.Col
	} else {
		avail = m.RowCount() - start.Row
	}
	count = max(0, min(count, avail))
	out := make([]models.Address, 0, count)
	for i := 0; i < count; i++ {
		if dir == Right {
			out = append(out, models.At(start.Row, start.Col+i))
		} else {
			out = append(out, models.At(start.Row+i, start.Col))
		}
	}
	return out
}

// FillSegments writes values into consecutive cells from start as a single
// undoable action and returns the addresses written. Values beyond the grid
// edge are dropped.
func (m *Model) FillSegments(start models.Address, values []string, dir Direction) []models.Address {
	targets := m.SegmentTargets(start, len(values), dir)
	if len(targets) == 0 {
		return nil
	}
	st := m.activeHistory()
	st.Begin()
	defer m.endCompound(st)
	for i, addr := range targets {
		m.SetCell(addr, values[i])
	}
	return targets
}
