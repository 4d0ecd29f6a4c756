package cli

import (
	"fmt"
	"strings"
	"testing"
)

// plainTable returns a table whose header styling is a no-op.
func plainTable(headers []string) *Table {
	table := NewTable(headers)
	table.header = fmt.Sprint
	return table
}

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Input", "Hex", "Inverted"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := plainTable([]string{"Input", "Hex"})

	table.AddRow([]string{"rgb(0, 0, 0)", "#000000"})
	table.AddRow([]string{"rgb(1, 2, 3)"})
	table.AddRow([]string{"rgb(4, 5, 6)", "#040506", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := plainTable([]string{"Input", "Hex"})
	table.AddRow([]string{"rgb(255, 0, 128)", "#ff0080"})
	table.AddRow([]string{"rgb(0, 0, 0)", "#000000"})

	want := strings.Join([]string{
		"Input             Hex    ",
		"----------------  -------",
		"rgb(255, 0, 128)  #ff0080",
		"rgb(0, 0, 0)      #000000",
	}, "\n") + "\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := plainTable(nil).Render(); got != "" {
		t.Errorf("Render() of headerless table = %q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcdef", 4, "abcdef"},
	}
	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
