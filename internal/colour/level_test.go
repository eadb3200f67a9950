package colour

import "testing"

func TestContrastLevelThreshold(t *testing.T) {
	tests := []struct {
		level ContrastLevel
		want  float64
	}{
		{LevelA, 3.0},
		{LevelAA, 4.5},
		{LevelAAA, 7.0},
		{ContrastLevel("bogus"), 3.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.Threshold(); got != tt.want {
				t.Errorf("Threshold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseContrastLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    ContrastLevel
		wantErr bool
	}{
		{in: "A", want: LevelA},
		{in: "aa", want: LevelAA},
		{in: " AAA ", want: LevelAAA},
		{in: "AAAA", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseContrastLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseContrastLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseContrastLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestContrastLevelSet(t *testing.T) {
	level := LevelA
	if err := level.Set("aaa"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if level != LevelAAA {
		t.Errorf("level = %q, want %q", level, LevelAAA)
	}
	if err := level.Set("x"); err == nil {
		t.Error("Set(\"x\") should fail")
	}
	if level != LevelAAA {
		t.Errorf("failed Set changed level to %q", level)
	}
	if level.Type() != "level" {
		t.Errorf("Type() = %q", level.Type())
	}
}
