package score

import (
	"reflect"
	"testing"
)

func TestSortKeywords(t *testing.T) {
	ss := []string{"sql", "python", "aws", "machine learning", "fastapi"}
	sortKeywords(ss)

	want := []string{"machine learning", "fastapi", "python", "aws", "sql"}
	if !reflect.DeepEqual(ss, want) {
		t.Errorf("sortKeywords = %v, want %v", ss, want)
	}
}

func TestSortKeywordsTiesLexical(t *testing.T) {
	ss := []string{"vue", "php", "aws", "git"}
	sortKeywords(ss)

	want := []string{"aws", "git", "php", "vue"}
	if !reflect.DeepEqual(ss, want) {
		t.Errorf("sortKeywords = %v, want %v", ss, want)
	}
}

func TestCapList(t *testing.T) {
	ss := []string{"a", "b", "c", "d"}
	if got := capList(ss, 2); len(got) != 2 || got[0] != "a" {
		t.Errorf("capList(4, 2) = %v", got)
	}
	if got := capList(ss, 10); len(got) != 4 {
		t.Errorf("capList(4, 10) = %v", got)
	}
}

func TestEnsureNonEmpty(t *testing.T) {
	if got := ensureNonEmpty(nil, "fallback"); !reflect.DeepEqual(got, []string{"fallback"}) {
		t.Errorf("ensureNonEmpty(nil) = %v", got)
	}
	if got := ensureNonEmpty([]string{"x"}, "fallback"); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("ensureNonEmpty([x]) = %v", got)
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"2024", true},
		{"0", true},
		{"", false},
		{"12a", false},
		{"v12", false},
		{"3.14", false},
	}
	for _, tt := range tests {
		if got := isNumeric(tt.s); got != tt.want {
			t.Errorf("isNumeric(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
