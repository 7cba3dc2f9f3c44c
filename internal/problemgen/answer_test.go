package problemgen

import (
	"errors"
	"testing"
)

func TestCheckAnswer_Integer(t *testing.T) {
	p := &MathProblem{Answer: 42}

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"42,0", true},
		{"42.0", true},
		{"43", false},
		{"-42", false},
	}

	for _, tc := range tests {
		got, err := CheckAnswer(tc.input, p)
		if err != nil {
			t.Errorf("CheckAnswer(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 42) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Decimal(t *testing.T) {
	p := &MathProblem{Answer: 3.5}

	tests := []struct {
		input string
		want  bool
	}{
		{"3.5", true},
		{"3,5", true},
		{"3.50", true},
		{"7/2", true},
		{"3.49", false},
	}

	for _, tc := range tests {
		got, err := CheckAnswer(tc.input, p)
		if err != nil {
			t.Errorf("CheckAnswer(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 3.5) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_FloatNoise(t *testing.T) {
	p := &MathProblem{Answer: 0.1 + 0.2}
	if ok, _ := CheckAnswer("0,3", p); !ok {
		t.Fatal("0,3 should match 0.1+0.2")
	}
}

func TestCheckAnswer_ThousandsSeparator(t *testing.T) {
	p := &MathProblem{Answer: 1250.5}
	if ok, _ := CheckAnswer("1.250,5", p); !ok {
		t.Fatal("1.250,5 should match 1250.5")
	}
}

func TestCheckAnswer_NotANumber(t *testing.T) {
	p := &MathProblem{Answer: 4}
	for _, input := range []string{"", "   ", "bốn", "1/0", "1,2,3", "Inf", "NaN"} {
		ok, err := CheckAnswer(input, p)
		if ok || !errors.Is(err, ErrNotANumber) {
			t.Errorf("CheckAnswer(%q) = %v, %v; want false, ErrNotANumber", input, ok, err)
		}
	}
}

func TestFormatAnswer(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{2.5, "2,5"},
		{-0.75, "-0,75"},
		{1000000, "1000000"},
	}
	for _, tc := range tests {
		if got := FormatAnswer(tc.in); got != tc.want {
			t.Errorf("FormatAnswer(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" MEDIUM ", DifficultyMedium, false},
		{"Khó", DifficultyHard, false},
		{"trung bình", DifficultyMedium, false},
		{"extreme", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v; want %q, err=%v", tc.in, got, err, tc.want, tc.wantErr)
		}
	}
}

func TestDifficultyLabel(t *testing.T) {
	if DifficultyEasy.Label() != "Dễ" || DifficultyMedium.Label() != "Trung bình" || DifficultyHard.Label() != "Khó" {
		t.Fatal("unexpected labels")
	}
	if Difficulty("x").Valid() {
		t.Fatal("unknown difficulty should be invalid")
	}
}
