package score

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestMatchEmptyInput(t *testing.T) {
	tests := []struct {
		name   string
		jd     string
		resume string
	}{
		{"empty job description", "", "python developer"},
		{"empty resume", "python developer", ""},
		{"both empty", "", ""},
		{"punctuation-only resume", "python developer", "•|—!?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Match(tt.jd, tt.resume)
			if report.Score != 0 {
				t.Errorf("Score = %d, want 0", report.Score)
			}
			if len(report.MatchedKeywords) != 0 {
				t.Errorf("MatchedKeywords = %v, want empty", report.MatchedKeywords)
			}
			want := []string{"Content empty or unreadable"}
			if !reflect.DeepEqual(report.MissingKeywords, want) {
				t.Errorf("MissingKeywords = %v, want %v", report.MissingKeywords, want)
			}
		})
	}
}

func TestMatchDegenerateVocabulary(t *testing.T) {
	// Both sides survive normalization but one yields no vocabulary terms.
	report := Match("the and of to", "python developer")
	if report.Score != 0 {
		t.Errorf("Score = %d, want 0", report.Score)
	}
	want := []string{"No keywords found internally"}
	if !reflect.DeepEqual(report.MissingKeywords, want) {
		t.Errorf("MissingKeywords = %v, want %v", report.MissingKeywords, want)
	}
}

func TestMatchIdenticalDocuments(t *testing.T) {
	text := "Senior Python developer building REST APIs with FastAPI and PostgreSQL"
	report := Match(text, text)
	if report.Score != 100 {
		t.Errorf("Score = %d, want 100 for identical documents", report.Score)
	}
	if len(report.MissingKeywords) != 0 {
		t.Errorf("MissingKeywords = %v, want empty", report.MissingKeywords)
	}
}

func TestMatchIdempotent(t *testing.T) {
	jd := "Seeking a Python developer with FastAPI and SQL experience"
	resume := "Built REST APIs using Python and FastAPI, strong SQL skills"

	first := Match(jd, resume)
	for i := 0; i < 5; i++ {
		if got := Match(jd, resume); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed: %+v vs %+v", i, got, first)
		}
	}
}

func TestMatchKeywordBreakdown(t *testing.T) {
	jd := "Seeking a Python developer with FastAPI and SQL experience"
	resume := "Built REST APIs using Python and FastAPI, strong SQL skills"
	report := Match(jd, resume)

	wantMatched := []string{"fastapi", "python", "sql"}
	if !reflect.DeepEqual(report.MatchedKeywords, wantMatched) {
		t.Errorf("MatchedKeywords = %v, want %v", report.MatchedKeywords, wantMatched)
	}
	if report.Score <= 0 || report.Score > 100 {
		t.Errorf("Score = %d, want in (0, 100]", report.Score)
	}
	for _, term := range report.MissingKeywords {
		for _, m := range wantMatched {
			if term == m {
				t.Errorf("term %q is both matched and missing", term)
			}
		}
	}
	found := false
	for _, term := range report.MissingKeywords {
		if term == "developer" {
			found = true
		}
	}
	if !found {
		t.Errorf("MissingKeywords = %v, want to include %q", report.MissingKeywords, "developer")
	}
}

func TestMatchHighOverlapScoresHigh(t *testing.T) {
	jd := "Seeking a Python developer with FastAPI and SQL experience"
	resume := "Python developer with FastAPI and SQL experience building REST APIs"
	report := Match(jd, resume)

	if report.Score < 70 {
		t.Errorf("Score = %d, want >= 70 for near-verbatim overlap", report.Score)
	}
	for _, want := range []string{"python", "fastapi", "sql"} {
		found := false
		for _, m := range report.MatchedKeywords {
			if m == want {
				found = true
			}
		}
		if !found {
			t.Errorf("MatchedKeywords = %v, want to include %q", report.MatchedKeywords, want)
		}
	}
}

func TestMatchMonotonicOverlap(t *testing.T) {
	jd := "python kubernetes terraform ansible"
	resumes := []string{
		"cooking gardening painting swimming",
		"python gardening painting swimming",
		"python kubernetes painting swimming",
		"python kubernetes terraform swimming",
	}

	prev := -1
	for _, resume := range resumes {
		score := Match(jd, resume).Score
		if score < prev {
			t.Errorf("score dropped to %d (prev %d) for resume %q", score, prev, resume)
		}
		prev = score
	}

	low := Match(jd, resumes[0]).Score
	high := Match(jd, resumes[len(resumes)-1]).Score
	if high <= low {
		t.Errorf("high overlap score %d not above zero overlap score %d", high, low)
	}
}

func TestMatchDisplayCapsAndOrder(t *testing.T) {
	var jdWords, resWords []string
	for i := 0; i < 30; i++ {
		jdWords = append(jdWords, fmt.Sprintf("keyword%02d", i))
		resWords = append(resWords, fmt.Sprintf("unrelated%02d", i))
	}
	jd := strings.Join(jdWords, " ")

	// Full overlap: matched list hits its cap.
	full := Match(jd, jd)
	if len(full.MatchedKeywords) != 25 {
		t.Errorf("MatchedKeywords len = %d, want capped at 25", len(full.MatchedKeywords))
	}
	assertLengthSorted(t, full.MatchedKeywords)

	// Zero overlap: missing list hits its cap.
	none := Match(jd, strings.Join(resWords, " "))
	if len(none.MissingKeywords) != 20 {
		t.Errorf("MissingKeywords len = %d, want capped at 20", len(none.MissingKeywords))
	}
	assertLengthSorted(t, none.MissingKeywords)
}

func assertLengthSorted(t *testing.T, ss []string) {
	t.Helper()
	for i := 1; i < len(ss); i++ {
		if len(ss[i]) > len(ss[i-1]) {
			t.Errorf("list not sorted by descending length at %d: %q after %q", i, ss[i], ss[i-1])
		}
	}
}

func TestMatchMissingFiltersNoise(t *testing.T) {
	// Bare digits and short fragments never reach the missing list.
	report := Match("python 2024 ab experience", "golang backend services")
	for _, term := range report.MissingKeywords {
		if term == "2024" {
			t.Errorf("numeric term leaked into missing list: %v", report.MissingKeywords)
		}
		if len(term) < 4 {
			t.Errorf("short term %q leaked into missing list", term)
		}
	}
}
