package engine

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases and strips punctuation",
			in:   "Senior Backend Engineer (Remote)",
			want: "senior backend engineer remote",
		},
		{
			name: "keeps tech tokens intact",
			in:   "C++, C# and Node.js experience",
			want: "c++ c# and node.js experience",
		},
		{
			name: "collapses whitespace runs",
			in:   "python \t\n  developer",
			want: "python developer",
		},
		{
			name: "trims ends",
			in:   "  · Python ·  ",
			want: "python",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "only punctuation",
			in:   "•|—!?",
			want: "",
		},
		{
			name: "unicode bullets and dashes become spaces",
			in:   "React • Vue.js — Docker",
			want: "react vue.js docker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 4); got != "abcd" {
		t.Errorf("Truncate() = %q, want %q", got, "abcd")
	}
	if got := Truncate("abc", 10); got != "abc" {
		t.Errorf("Truncate() = %q, want %q", got, "abc")
	}
}
