package logging

import (
	"math"
	"strings"
	"testing"
)

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"zero", 0.0, 2, "0.00"},
		{"positive", 3.14159, 2, "3.14"},
		{"negative", -16.5, 1, "-16.5"},
		{"large", 12345.6789, 2, "12345.68"},
		{"small_normal", 0.001, 3, "0.001"},
		{"very_small_scientific", 0.00001, 2, "1.00e-05"},
		{"nan", math.NaN(), 2, MissingValue},
		{"positive_inf", math.Inf(1), 2, MissingValue},
		{"negative_inf", math.Inf(-1), 2, MissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMetric(tt.value, tt.decimals)
			if got != tt.want {
				t.Errorf("formatMetric(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatMetricSigned(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"positive", 2.5, 1, "+2.5"},
		{"negative", -1.2, 1, "-1.2"},
		{"zero", 0.0, 1, "+0.0"},
		{"nan", math.NaN(), 1, MissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMetricSigned(tt.value, tt.decimals)
			if got != tt.want {
				t.Errorf("formatMetricSigned(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{"five_megabytes", 5 * 1024 * 1024, "5.00"},
		{"fractional", 3670016, "3.50"},
		{"zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatBytes(tt.size); got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestMetricTableString(t *testing.T) {
	t.Run("before_after_columns", func(t *testing.T) {
		table := NewMetricTable()
		table.AddRow("File Size", []string{"48.20", "31.10"}, "MB", "")
		table.AddRow("Duration", []string{"52m 10s", "49m 3s"}, "", "")

		output := table.String()

		for _, want := range []string{"Before", "After", "File Size", "48.20", "MB", "49m 3s"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("custom_headers", func(t *testing.T) {
		table := NewMetricTable("Input")
		table.AddRow("Sample Rate", []string{"44100"}, "Hz", "")

		output := table.String()
		if !strings.Contains(output, "Input") {
			t.Errorf("output missing custom header:\n%s", output)
		}
	})

	t.Run("with_note_column", func(t *testing.T) {
		table := NewMetricTable()
		table.AddRow("Bit Rate", []string{"128", "96"}, "kb/s", "constant")

		output := table.String()
		if !strings.Contains(output, "Note") {
			t.Error("note header missing when a row has a note")
		}
		if !strings.Contains(output, "constant") {
			t.Error("note text missing")
		}
	})

	t.Run("missing_values_show_placeholder", func(t *testing.T) {
		table := NewMetricTable()
		table.AddRow("Duration", []string{"", "10m 2s"}, "", "")

		output := table.String()
		if !strings.Contains(output, MissingValue) {
			t.Errorf("missing value placeholder absent:\n%s", output)
		}
	})

	t.Run("numeric_helper_formats_values", func(t *testing.T) {
		table := NewMetricTable()
		table.AddMetricRow("File Size", 2, "MB", "", 48.2, math.NaN())

		output := table.String()
		if !strings.Contains(output, "48.20") {
			t.Errorf("formatted value missing:\n%s", output)
		}
		if !strings.Contains(output, MissingValue) {
			t.Errorf("NaN should render as %q:\n%s", MissingValue, output)
		}
	})

	t.Run("empty_table", func(t *testing.T) {
		table := NewMetricTable()
		if got := table.String(); got != "" {
			t.Errorf("String() on empty table = %q, want empty", got)
		}
	})

	t.Run("columns_align", func(t *testing.T) {
		table := NewMetricTable()
		table.AddRow("Size", []string{"1.00", "2.00"}, "MB", "")
		table.AddRow("A Much Longer Label", []string{"300.00", "4.00"}, "MB", "")

		lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		// Unit column should start at the same offset on every data row.
		first := strings.Index(lines[1], "MB")
		second := strings.Index(lines[2], "MB")
		if first != second {
			t.Errorf("unit columns misaligned: %d vs %d\n%s", first, second, table.String())
		}
	})
}
