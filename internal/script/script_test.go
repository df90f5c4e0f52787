package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/gridcore-go/pkg/gridcore"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/models"
)

func newInterpreter() (*Interpreter, *gridcore.Model, *bytes.Buffer) {
	m := gridcore.New(document.New("test"), gridcore.DefaultOptions())
	var out bytes.Buffer
	return New(m, &out, nil), m, &out
}

func TestRunEditSession(t *testing.T) {
	in, m, out := newInterpreter()
	script := `
# header row
set A1 Name
set B1 Total amount
set A2 x
swap A1 A2
undo
get A1
swap-rows 1 2
swap-cols A B
undo
undo
get B1
`
	if err := in.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := out.String(); got != "Name\nTotal amount\n" {
		t.Errorf("Unexpected output %q", got)
	}
	if got := m.Cell(models.At(0, 0)); got != "Name" {
		t.Errorf("Expected A1 'Name', got %q", got)
	}
	if got := m.Cell(models.At(1, 0)); got != "x" {
		t.Errorf("Expected A2 'x', got %q", got)
	}
}

func TestCompoundCommands(t *testing.T) {
	in, m, _ := newInterpreter()
	script := "set A1 base\nbegin\nset A1 x\nset A1 y\nset B1 z\nend\nundo\n"
	if err := in.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := m.Cell(models.At(0, 0)); got != "base" {
		t.Errorf("Expected A1 restored to 'base', got %q", got)
	}
	if got := m.Cell(models.At(0, 1)); got != "" {
		t.Errorf("Expected B1 empty, got %q", got)
	}
	if !m.CanRedo() {
		t.Error("Expected redo to be available")
	}
}

func TestRunClosesOpenCompound(t *testing.T) {
	in, m, _ := newInterpreter()
	if err := in.Run(strings.NewReader("begin\nset A1 a\nset A2 b\n")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !m.Undo() {
		t.Fatal("Expected the unclosed compound to be recorded")
	}
	if m.Cell(models.At(0, 0)) != "" || m.Cell(models.At(1, 0)) != "" {
		t.Error("Expected one undo to revert both cells")
	}
}

func TestSwapBlockAndFill(t *testing.T) {
	in, m, _ := newInterpreter()
	script := `
fill right A1 one two three
fill down A2 four five
swap-block A1:B2 D5
`
	if err := in.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := map[models.Address]string{
		models.At(0, 2): "three",
		models.At(2, 0): "five",
		models.At(4, 3): "one",
		models.At(4, 4): "two",
		models.At(5, 3): "four",
	}
	for addr, v := range want {
		if got := m.Cell(addr); got != v {
			t.Errorf("cell %v = %q, want %q", addr, got, v)
		}
	}
	if m.Cell(models.At(0, 0)) != "" {
		t.Error("Expected A1 to be empty after the block swap")
	}

	if err := in.Exec("swap-block A1:B2 A1"); !errors.Is(err, ErrUsage) {
		t.Errorf("Expected ErrUsage for self swap, got %v", err)
	}
}

func TestSheetCommands(t *testing.T) {
	in, m, _ := newInterpreter()
	script := `
set A1 first
add-sheet Plan
set A1 second
rename-sheet 2 Budget 2024
row-height 3 40
col-width C 150
sheet 1
`
	if err := in.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	doc := m.Document()
	if doc.Len() != 2 || doc.ActiveIndex() != 0 {
		t.Fatalf("Unexpected sheets: len=%d active=%d", doc.Len(), doc.ActiveIndex())
	}
	second, _ := doc.Sheet(1)
	if second.Name != "Budget 2024" {
		t.Errorf("Expected renamed sheet, got %q", second.Name)
	}
	if second.RowHeight(2) != 40 || second.ColumnWidth(2) != 150 {
		t.Errorf("Unexpected sizes: row=%d col=%d", second.RowHeight(2), second.ColumnWidth(2))
	}
	if got := m.Cell(models.At(0, 0)); got != "first" {
		t.Errorf("Expected first sheet value, got %q", got)
	}

	if err := in.Exec("remove-sheet 2"); err != nil {
		t.Fatalf("remove-sheet failed: %v", err)
	}
	if err := in.Exec("remove-sheet 1"); !errors.Is(err, document.ErrLastSheet) {
		t.Errorf("Expected ErrLastSheet, got %v", err)
	}
}

func TestExecErrors(t *testing.T) {
	in, _, _ := newInterpreter()
	tests := []struct {
		line string
		want error
	}{
		{"frobnicate A1", ErrUnknownCommand},
		{"set", ErrUsage},
		{"set 1A x", ErrUsage},
		{"swap A1", ErrUsage},
		{"fill sideways A1 x", ErrUsage},
		{"end", ErrUsage},
		{"sheet zero", ErrUsage},
		{"row-height 1 tall", ErrUsage},
		{"sheet 5", document.ErrSheetIndex},
		{"rename-sheet 1", document.ErrEmptyName},
	}
	for _, tt := range tests {
		if err := in.Exec(tt.line); !errors.Is(err, tt.want) {
			t.Errorf("Exec(%q) error = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestGridLimits(t *testing.T) {
	in, m, _ := newInterpreter()
	lines := []string{
		"set A2001 far",
		"set GS1 wide",
		"set XFD1 wide",
		"get A2001",
		"clear A1 A2001",
		"swap A1 A2001",
		"swap-rows 1 2001",
		"swap-cols A GS",
		"swap-cols 1 201",
		"swap-block A1:GS2 A5",
		"swap-block A1:B2 GR10",
		"swap-block A1:B2 A2000",
		"fill right GS1 x",
		"row-height 2001 40",
		"col-width GS 150",
	}
	for _, line := range lines {
		if err := in.Exec(line); !errors.Is(err, ErrUsage) {
			t.Errorf("Exec(%q) error = %v, want ErrUsage", line, err)
		}
	}
	if n := m.ActiveSheet().Cells.Len(); n != 0 {
		t.Errorf("Expected no cells written, got %d", n)
	}
	if m.CanUndo() {
		t.Error("Expected nothing recorded")
	}

	edges := `set A2000 bottom
set GR1 right
swap-rows 1 2000
swap-cols A GR
`
	if err := in.Run(strings.NewReader(edges)); err != nil {
		t.Fatalf("Run at the grid edge failed: %v", err)
	}
	if got := m.Cell(models.At(0, 199)); got != "bottom" {
		t.Errorf("Expected GR1 'bottom' after edge swaps, got %q", got)
	}
	if got := m.Cell(models.At(1999, 0)); got != "right" {
		t.Errorf("Expected A2000 'right' after edge swaps, got %q", got)
	}
}

func TestSheetSwitchInsideCompound(t *testing.T) {
	in, _, _ := newInterpreter()
	err := in.Run(strings.NewReader("begin\nadd-sheet\n"))
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("Expected ErrUsage, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("Expected line number in error, got %q", err)
	}
}
