package cli

import (
	"strings"
	"testing"

	"github.com/Paul-Toth/ColorTools/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})

	table.AddRow([]string{"red", "#ff0000"})
	table.AddRow([]string{"blue"})
	table.AddRow([]string{"green", "#008000", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"NAME", "HEX"})
	table.AddRow([]string{"viridis", "#440154"})
	table.AddRow([]string{"greys", "#ffffff"})

	want := "NAME     HEX\n" +
		"-------  -------\n" +
		"viridis  #440154\n" +
		"greys    #ffffff\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}

	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() with no headers = %q, want empty", got)
	}
}

func TestTableRenderIgnoresEscapes(t *testing.T) {
	table := NewTable([]string{"S", "HEX"})
	table.AddRow([]string{colour.Swatch(colour.RGB{R: 255}, 4), "#ff0000"})

	lines := strings.Split(table.Render(), "\n")
	if lines[1] != "----  -------" {
		t.Errorf("rule line = %q, want column widths from visible text", lines[1])
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "plain", want: 5},
		{in: "\033[48;2;1;2;3m  \033[0m", want: 2},
		{in: "a\033[0mb", want: 2},
	}

	for _, tt := range tests {
		if got := visibleLen(tt.in); got != tt.want {
			t.Errorf("visibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
