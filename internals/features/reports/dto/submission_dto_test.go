package dto

import "testing"

func TestParseFloodDepthClamping(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"-5", 0},
		{"abc", 0},
		{"250", 0},
		{"201", 0},
		{"", 0},
		{"0", 0},
		{"150", 150},
		{"200", 200},
		{" 75 ", 75},
	}
	for _, tc := range cases {
		if got := ParseFloodDepth(tc.in); got != tc.want {
			t.Errorf("ParseFloodDepth(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseCoord(t *testing.T) {
	if got := ParseCoord(""); got != nil {
		t.Errorf("empty coord should be nil, got %v", *got)
	}
	if got := ParseCoord("not-a-number"); got != nil {
		t.Errorf("malformed coord should be nil, got %v", *got)
	}
	got := ParseCoord("12.9716")
	if got == nil || *got != 12.9716 {
		t.Errorf("ParseCoord(12.9716) = %v", got)
	}
}
