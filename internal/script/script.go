// Package script interprets line-oriented edit commands against a model.
//
// Each line holds one command followed by its arguments. Cells and ranges
// use A1 notation, rows are 1-based numbers and columns are letters or
// 1-based numbers. Blank lines and lines starting with '#' are ignored.
//
//	set A1 hello world     write the rest of the line into A1
//	get A1                 print the value of A1
//	clear A1 B2 ...        clear cells
//	swap A1 B1             swap two cells
//	swap-rows 1 3          swap two rows
//	swap-cols A C          swap two columns
//	swap-block A1:B2 D4    swap a block with the equally sized block at D4
//	fill right|down A1 v1 v2 ...
//	begin / end            open and close a compound action
//	undo / redo
//	sheet 2                switch to the second sheet
//	add-sheet [name]       append a sheet and switch to it
//	rename-sheet 2 name
//	remove-sheet 2
//	row-height 3 40        set a row height in pixels
//	col-width B 150        set a column width in pixels
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ukaji3/gridcore-go/pkg/gridcore"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/grid"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/xlsx"
)

var (
	// ErrUnknownCommand is returned for an unrecognized command name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command has the wrong arguments.
	ErrUsage = errors.New("invalid arguments")
)

// Commands that change the active sheet, which is not allowed while a
// compound action is open on the current one.
var sheetCommands = map[string]bool{
	"sheet":        true,
	"add-sheet":    true,
	"remove-sheet": true,
}

// Interpreter executes commands against a model.
type Interpreter struct {
	model  *gridcore.Model
	out    io.Writer
	logger *slog.Logger
	open   int
}

// New creates an interpreter that prints command output to out.
func New(model *gridcore.Model, out io.Writer, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{
		model:  model,
		out:    out,
		logger: logger.With(slog.String("component", "script")),
	}
}

// Run executes every line read from r. Compound actions still open at the
// end of the input are closed.
func (in *Interpreter) Run(r io.Reader) error {
	defer in.closeOpen()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := in.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func (in *Interpreter) closeOpen() {
	for ; in.open > 0; in.open-- {
		in.model.EndCompoundAction()
	}
}

// Exec executes a single command line.
func (in *Interpreter) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)
	in.logger.Debug("exec", slog.String("command", name), slog.Int("args", len(args)))

	name = strings.ToLower(name)
	if in.open > 0 && sheetCommands[name] {
		return fmt.Errorf("%w: %s inside a compound action", ErrUsage, name)
	}

	switch name {
	case "set":
		ref, value, _ := strings.Cut(rest, " ")
		addr, err := parseCell(ref)
		if err != nil {
			return err
		}
		in.model.SetCell(addr, strings.TrimSpace(value))
	case "get":
		if len(args) != 1 {
			return usage(name, "CELL")
		}
		addr, err := parseCell(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, in.model.Cell(addr))
	case "clear":
		if len(args) == 0 {
			return usage(name, "CELL...")
		}
		addrs := make([]models.Address, 0, len(args))
		for _, arg := range args {
			addr, err := parseCell(arg)
			if err != nil {
				return err
			}
			addrs = append(addrs, addr)
		}
		in.model.ClearCells(addrs)
	case "swap":
		if len(args) != 2 {
			return usage(name, "CELL CELL")
		}
		a, err := parseCell(args[0])
		if err != nil {
			return err
		}
		b, err := parseCell(args[1])
		if err != nil {
			return err
		}
		in.model.SwapCells(a, b)
	case "swap-rows":
		if len(args) != 2 {
			return usage(name, "ROW ROW")
		}
		r1, err := parseRow(args[0])
		if err != nil {
			return err
		}
		r2, err := parseRow(args[1])
		if err != nil {
			return err
		}
		in.model.SwapRows(r1, r2)
	case "swap-cols":
		if len(args) != 2 {
			return usage(name, "COL COL")
		}
		c1, err := parseColumn(args[0])
		if err != nil {
			return err
		}
		c2, err := parseColumn(args[1])
		if err != nil {
			return err
		}
		in.model.SwapColumns(c1, c2)
	case "swap-block":
		if len(args) != 2 {
			return usage(name, "RANGE CELL")
		}
		src, err := xlsx.ParseRange(args[0])
		if err != nil {
			return fmt.Errorf("%w: range %q", ErrUsage, args[0])
		}
		dest, err := parseCell(args[1])
		if err != nil {
			return err
		}
		if !inGrid(src.BottomRight()) {
			return fmt.Errorf("%w: range %q outside the grid", ErrUsage, args[0])
		}
		dst, ok := gridcore.BlockSwapTarget(src, dest)
		if !ok {
			return fmt.Errorf("%w: block cannot be swapped with itself", ErrUsage)
		}
		if !inGrid(dst.BottomRight()) {
			return fmt.Errorf("%w: block at %s extends outside the grid", ErrUsage, args[1])
		}
		in.model.SwapBlock(src, dst)
	case "fill":
		if len(args) < 3 {
			return usage(name, "right|down CELL VALUE...")
		}
		var dir gridcore.Direction
		switch strings.ToLower(args[0]) {
		case "right":
			dir = gridcore.Right
		case "down":
			dir = gridcore.Down
		default:
			return usage(name, "right|down CELL VALUE...")
		}
		start, err := parseCell(args[1])
		if err != nil {
			return err
		}
		in.model.FillSegments(start, args[2:], dir)
	case "begin":
		in.model.BeginCompoundAction()
		in.open++
	case "end":
		if in.open == 0 {
			return fmt.Errorf("%w: end without begin", ErrUsage)
		}
		in.model.EndCompoundAction()
		in.open--
	case "undo":
		in.model.Undo()
	case "redo":
		in.model.Redo()
	case "sheet":
		index, err := parseSheetIndex(name, args)
		if err != nil {
			return err
		}
		return in.model.SwitchSheet(index)
	case "add-sheet":
		in.model.AddSheet(rest)
	case "rename-sheet":
		index, err := parseSheetIndex(name, args[:min(len(args), 1)])
		if err != nil {
			return err
		}
		_, newName, _ := strings.Cut(rest, " ")
		return in.model.RenameSheet(index, newName)
	case "remove-sheet":
		index, err := parseSheetIndex(name, args)
		if err != nil {
			return err
		}
		return in.model.RemoveSheet(index)
	case "row-height":
		if len(args) != 2 {
			return usage(name, "ROW PIXELS")
		}
		row, err := parseRow(args[0])
		if err != nil {
			return err
		}
		px, err := strconv.Atoi(args[1])
		if err != nil {
			return usage(name, "ROW PIXELS")
		}
		in.model.SetRowHeight(row, px)
	case "col-width":
		if len(args) != 2 {
			return usage(name, "COL PIXELS")
		}
		col, err := parseColumn(args[0])
		if err != nil {
			return err
		}
		px, err := strconv.Atoi(args[1])
		if err != nil {
			return usage(name, "COL PIXELS")
		}
		in.model.SetColumnWidth(col, px)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return nil
}

func parseCell(ref string) (models.Address, error) {
	addr, err := xlsx.ParseCell(ref)
	if err != nil {
		return models.Address{}, fmt.Errorf("%w: cell %q", ErrUsage, ref)
	}
	if !inGrid(addr) {
		return models.Address{}, fmt.Errorf("%w: cell %q outside the grid", ErrUsage, ref)
	}
	return addr, nil
}

func parseRow(ref string) (int, error) {
	row, err := xlsx.ParseRow(ref)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if row >= grid.MaxRows {
		return 0, fmt.Errorf("%w: row %q outside the grid", ErrUsage, ref)
	}
	return row, nil
}

func parseColumn(ref string) (int, error) {
	col, err := xlsx.ParseColumn(ref)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q", ErrUsage, ref)
	}
	if col >= grid.MaxColumns {
		return 0, fmt.Errorf("%w: column %q outside the grid", ErrUsage, ref)
	}
	return col, nil
}

// inGrid reports whether addr lies within the editable grid.
func inGrid(addr models.Address) bool {
	return addr.Row < grid.MaxRows && addr.Col < grid.MaxColumns
}

func parseSheetIndex(name string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, usage(name, "N")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, usage(name, "N")
	}
	return n - 1, nil
}

func usage(name, args string) error {
	return fmt.Errorf("%w: usage: %s %s", ErrUsage, name, args)
}
