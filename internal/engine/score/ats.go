package score

import "github.com/anatolykoptev/go_ats/internal/engine"

// Score-curve tuning constants. Raw cosine similarity between a resume
// and a job description rarely approaches 1.0 even for strong matches
// (0.4–0.6 is already excellent), so the curve saturates early and
// bottoms out at a non-zero floor. Deliberate values — change with care.
const (
	simSaturation = 0.6 // similarity at or above this maps to scoreMax
	simFloor      = 0.05
	scoreMax      = 100.0
	scoreMin      = 10.0

	// minMissingTermLen filters noise (bare digits, 2-letter fragments)
	// out of the missing-keywords list.
	minMissingTermLen = 4
)

// Reasons placed in MissingKeywords when a zero-score report is
// returned instead of a hard failure.
const (
	reasonEmptyContent = "Content empty or unreadable"
	reasonNoKeywords   = "No keywords found internally"
)

// MatchReport is the resume/job-description compatibility result.
type MatchReport struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// Match scores a resume against a job description.
//
// Both documents are normalized, reduced to a shared 1–3-gram vocabulary
// (stop words excluded) and represented as term-count vectors; the raw
// cosine similarity is mapped through the piecewise-linear curve above
// into a 0–100 score. Terms present in the job description but absent
// from the resume populate MissingKeywords (short and purely numeric
// terms filtered out); terms present in both populate MatchedKeywords.
// Both lists are sorted longest-phrase-first and capped for display.
//
// Never fails: empty or degenerate input yields a zero-score report with
// an explanatory reason in MissingKeywords.
func Match(jobDescription, resume string) MatchReport {
	jd := engine.Normalize(jobDescription)
	res := engine.Normalize(resume)
	if jd == "" || res == "" {
		return MatchReport{Score: 0, MatchedKeywords: []string{}, MissingKeywords: []string{reasonEmptyContent}}
	}

	jdVec := termCounts(tokenize(jd))
	resVec := termCounts(tokenize(res))
	if len(jdVec) == 0 || len(resVec) == 0 {
		return MatchReport{Score: 0, MatchedKeywords: []string{}, MissingKeywords: []string{reasonNoKeywords}}
	}

	sim := cosine(jdVec, resVec)

	var base float64
	switch {
	case sim > simSaturation:
		base = scoreMax
	case sim < simFloor:
		base = scoreMin
	default:
		base = scoreMin + (sim-simFloor)*(scoreMax-scoreMin)/(simSaturation-simFloor)
	}
	score := int(min(max(base, 0), 100))

	matched := make([]string, 0, len(jdVec))
	missing := make([]string, 0, len(jdVec))
	for term := range jdVec {
		if _, ok := resVec[term]; ok {
			matched = append(matched, term)
		} else if len(term) >= minMissingTermLen && !isNumeric(term) {
			missing = append(missing, term)
		}
	}
	sortKeywords(matched)
	sortKeywords(missing)

	return MatchReport{
		Score:           score,
		MatchedKeywords: capList(matched, maxMatchedKeywords),
		MissingKeywords: capList(missing, maxMissingKeywords),
	}
}
