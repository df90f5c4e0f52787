package gridcore

import (
	"log/slog"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/history"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

// SetCell writes value at addr on the active sheet. It reports false when
// the value is unchanged.
func (m *Model) SetCell(addr models.Address, value string) bool {
	cells := m.cells()
	before := cells.Get(addr)
	if before == value {
		return false
	}
	cells.Set(addr, value)

	m.record(history.ChangeSet{{Addr: addr, Old: before, New: cells.Get(addr)}}, false)
	m.emitDataChanged(models.RangeOf(addr, addr))
	m.emitSaveRequested()
	return true
}

// SetCellsBatch writes many values in one pass without recording history.
// It reports false for an empty input.
func (m *Model) SetCellsBatch(changes map[models.Address]string) bool {
	if len(changes) == 0 {
		return false
	}
	cells := m.cells()
	var bounds models.Range
	first := true
	for addr, value := range changes {
		cells.Set(addr, value)
		if first {
			bounds = models.RangeOf(addr, addr)
			first = false
			continue
		}
		bounds = bounds.Extend(addr)
	}
	m.emitDataChanged(bounds)
	m.emitSaveRequested()
	return true
}

// ClearCells empties every listed cell that holds a value. Duplicate
// addresses are collapsed. It reports false when nothing was cleared.
func (m *Model) ClearCells(addrs []models.Address) bool {
	cells := m.cells()
	seen := make(map[models.Address]struct{}, len(addrs))
	var cs history.ChangeSet
	for _, addr := range addrs {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		previous := cells.Get(addr)
		if previous == "" {
			continue
		}
		cells.Set(addr, "")
		cs = append(cs, history.Change{Addr: addr, Old: previous, New: ""})
	}
	if len(cs) == 0 {
		return false
	}

	m.record(cs, false)
	bounds, _ := cs.Bounds()
	m.emitDataChanged(bounds)
	m.emitSaveRequested()
	return true
}

// SwapCells exchanges the values of two cells.
func (m *Model) SwapCells(a, b models.Address) {
	positions := []models.Address{a, b}
	cells := m.cells()
	before := cells.Snapshot(positions)
	cells.Swap(a, b)
	after := cells.Snapshot(positions)

	m.record(history.Diff(before, after), false)
	m.emitDataChanged(models.RangeOf(a, b))
	m.emitSaveRequested()
}

// SwapRows exchanges two rows across every column occupied anywhere in the
// sheet. It does nothing when r1 == r2.
func (m *Model) SwapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	cells := m.cells()
	cols := cells.Columns()
	positions := make([]models.Address, 0, 2*len(cols))
	for _, c := range cols {
		positions = append(positions, models.At(r1, c), models.At(r2, c))
	}
	before := cells.Snapshot(positions)
	for _, c := range cols {
		cells.Swap(models.At(r1, c), models.At(r2, c))
	}
	after := cells.Snapshot(positions)

	m.record(history.Diff(before, after), true)
	m.emitLayoutChanged()
	m.emitSaveRequested()
}

// SwapColumns exchanges two columns across every row occupied anywhere in
// the sheet. It does nothing when c1 == c2.
func (m *Model) SwapColumns(c1, c2 int) {
	if c1 == c2 {
		return
	}
	cells := m.cells()
	rows := cells.Rows()
	positions := make([]models.Address, 0, 2*len(rows))
	for _, r := range rows {
		positions = append(positions, models.At(r, c1), models.At(r, c2))
	}
	before := cells.Snapshot(positions)
	for _, r := range rows {
		cells.Swap(models.At(r, c1), models.At(r, c2))
	}
	after := cells.Snapshot(positions)

	m.record(history.Diff(before, after), true)
	m.emitLayoutChanged()
	m.emitSaveRequested()
}

// SwapBlock exchanges two equally sized rectangles cell by cell. Mismatched
// dimensions leave the grid untouched and report false. Callers must reject
// a destination whose top-left equals the source's; see BlockSwapTarget.
func (m *Model) SwapBlock(src, dst models.Range) bool {
	if src.R2-src.R1 != dst.R2-dst.R1 || src.C2-src.C1 != dst.C2-dst.C1 {
		m.logger.Debug("block swap geometry mismatch",
			slog.Any("src", src), slog.Any("dst", dst))
		return false
	}
	height, width := src.R2-src.R1, src.C2-src.C1
	cells := m.cells()

	positions := append(src.Addresses(), dst.Addresses()...)
	before := cells.Snapshot(positions)

	// Both blocks are read before any write.
	srcVals := make(map[models.Address]string)
	dstVals := make(map[models.Address]string)
	for r := 0; r <= height; r++ {
		for c := 0; c <= width; c++ {
			off := models.At(r, c)
			srcVals[off] = cells.Get(models.At(src.R1+r, src.C1+c))
			dstVals[off] = cells.Get(models.At(dst.R1+r, dst.C1+c))
		}
	}
	for r := 0; r <= height; r++ {
		for c := 0; c <= width; c++ {
			off := models.At(r, c)
			cells.Set(models.At(src.R1+r, src.C1+c), dstVals[off])
			cells.Set(models.At(dst.R1+r, dst.C1+c), srcVals[off])
		}
	}
	after := cells.Snapshot(positions)

	m.record(history.Diff(before, after), true)
	m.emitLayoutChanged()
	m.emitSaveRequested()
	return true
}

// BlockSwapTarget derives the destination range for moving src to
// destTopLeft. It reports false when the destination coincides with the
// source, which callers must not pass to SwapBlock.
func BlockSwapTarget(src models.Range, destTopLeft models.Address) (models.Range, bool) {
	if src.TopLeft() == destTopLeft {
		return models.Range{}, false
	}
	return models.Range{
		R1: destTopLeft.Row,
		C1: destTopLeft.Col,
		R2: destTopLeft.Row + src.Height() - 1,
		C2: destTopLeft.Col + src.Width() - 1,
	}, true
}
