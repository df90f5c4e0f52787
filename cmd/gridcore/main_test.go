package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&errOut)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLIWorkflow(t *testing.T) {
	dir := t.TempDir()
	state := filepath.Join(dir, "state", "app_state.json")

	if _, err := execute(t, "", "--state", state, "new", "Budget"); err != nil {
		t.Fatalf("new failed: %v", err)
	}

	edits := "set A1 Item\nset B1 Cost\nset A2 Rent\nset B2 =SUM(1,2)\nset A3 typo\nundo\n"
	if _, err := execute(t, edits, "--state", state, "edit", "Budget"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	out, err := execute(t, "", "--state", state, "show", "1")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	want := "# Budget / Sheet1\nA1\tItem\nB1\tCost\nA2\tRent\nB2\t=SUM(1,2)\n"
	if out != want {
		t.Errorf("show output = %q, want %q", out, want)
	}

	out, err = execute(t, "", "--state", state, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out != "1\tBudget\t1 sheets\t4 cells\n" {
		t.Errorf("Unexpected list output %q", out)
	}

	xlsxPath := filepath.Join(dir, "budget.xlsx")
	if _, err := execute(t, "", "--state", state, "export", "budget", xlsxPath); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	out, err = execute(t, "", "--state", state, "import", "--keep-formulas", xlsxPath)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if out != "2\tbudget\t1 sheets\n" {
		t.Errorf("Unexpected import output %q", out)
	}

	out, err = execute(t, "", "--state", state, "show", "2")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "B2\t=SUM(1,2)\n") {
		t.Errorf("Expected formula to survive the round trip, got %q", out)
	}
}

func TestCLIErrors(t *testing.T) {
	state := filepath.Join(t.TempDir(), "app_state.json")

	if _, err := execute(t, "", "--state", state, "show", "missing"); err == nil {
		t.Error("Expected error for unknown document")
	}
	if _, err := execute(t, "", "--state", state, "new", "Doc"); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if _, err := execute(t, "bogus A1\n", "--state", state, "edit", "Doc"); err == nil {
		t.Error("Expected error for unknown edit command")
	}
	if _, err := execute(t, "", "--state", state, "export", "Doc", filepath.Join(t.TempDir(), "out.xlsx")); err == nil {
		t.Error("Expected error exporting an empty document")
	}
	if _, err := execute(t, "", "--state", state, "--log-format", "xml", "list"); err == nil {
		t.Error("Expected error for unknown log format")
	}
}

func TestFindDocument(t *testing.T) {
	docs := []*document.Document{document.New("Alpha"), document.New("Beta")}
	tests := []struct {
		ref     string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"2", 1, false},
		{"beta", 1, false},
		{"3", 0, true},
		{"0", 0, true},
		{"Gamma", 0, true},
	}
	for _, tt := range tests {
		got, err := findDocument(docs, tt.ref)
		if (err != nil) != tt.wantErr || (!tt.wantErr && got != tt.want) {
			t.Errorf("findDocument(%q) = %d, %v; want %d, wantErr %v", tt.ref, got, err, tt.want, tt.wantErr)
		}
	}
}
