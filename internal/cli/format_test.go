package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{35, "35"},
		{1234, "1,234"},
		{1234.5, "1,234.5"},
		{0.33, "0.33"},
		{22500, "22,500"},
	}
	for _, tt := range tests {
		if got := FormatQuantity(tt.in); got != tt.want {
			t.Errorf("FormatQuantity(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPlain(t *testing.T) {
	if got := FormatPlain(1234); got != "1234" {
		t.Errorf("FormatPlain(1234) = %q, want 1234", got)
	}
	if got := FormatPlain(87.5); got != "87.5" {
		t.Errorf("FormatPlain(87.5) = %q, want 87.5", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent1(40); got != "40.0" {
		t.Errorf("FormatPercent1(40) = %q, want 40.0", got)
	}
	if got := FormatPercent(2.3333333); got != "2.3%" {
		t.Errorf("FormatPercent(2.333...) = %q, want 2.3%%", got)
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney0(22500.4); got != "22500" {
		t.Errorf("FormatMoney0 = %q, want 22500", got)
	}
	if got := FormatMoney2(50); got != "50.00" {
		t.Errorf("FormatMoney2 = %q, want 50.00", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty sparkline = %q, want empty", got)
	}
	got := RenderSparkline([]float64{0, 50, 100})
	if len([]rune(got)) != 3 {
		t.Errorf("sparkline rune count = %d, want 3", len([]rune(got)))
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}
