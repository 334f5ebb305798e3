package score

import (
	"sort"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
)

// minResumeSectionHits is how many distinct section keywords a document
// must contain before it looks like an actual resume.
const minResumeSectionHits = 3

// ScanResult is the structured output of resume_scan.
type ScanResult struct {
	Filename        string   `json:"filename,omitempty"`
	Skills          []string `json:"extracted_skills"`
	LooksLikeResume bool     `json:"looks_like_resume"`
	TextPreview     string   `json:"text_preview"`
}

// ExtractSkills returns the canonical skill labels found in the document
// text, sorted alphabetically. Matching is whole-token: a dictionary
// entry only fires when its occurrence is not embedded in a larger token
// ("java" never matches inside "javascript", "vue" never matches inside
// "vue.js"). Multi-word skills must appear as contiguous phrases.
func ExtractSkills(text string) []string {
	norm := engine.Normalize(text)
	if norm == "" {
		return []string{}
	}

	tokens := wordTokens(norm)
	found := make(map[string]bool)
	for _, e := range skillDict {
		if hasPhrase(tokens, e.parts) {
			found[e.display] = true
		}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// LooksLikeResume reports whether the text reads like a resume/CV:
// at least minResumeSectionHits distinct section keywords present.
// Advisory only — extraction and scoring run regardless.
func LooksLikeResume(text string) bool {
	t := strings.ToLower(text)
	hits := 0
	for _, kw := range resumeSectionKeywords {
		if strings.Contains(t, kw) {
			hits++
			if hits >= minResumeSectionHits {
				return true
			}
		}
	}
	return false
}

// Scan runs skill extraction plus the resume-likeness heuristic and
// packages the result for the resume_scan tool.
func Scan(text, filename string) *ScanResult {
	limit := engine.Cfg.MaxPreviewBytes
	if limit <= 0 {
		limit = 500
	}
	return &ScanResult{
		Filename:        filename,
		Skills:          ExtractSkills(text),
		LooksLikeResume: LooksLikeResume(text),
		TextPreview:     engine.Truncate(text, limit),
	}
}

// wordTokens splits normalized text into whole word tokens, trimming
// sentence-punctuation dots at token edges ("node.js." → "node.js").
func wordTokens(norm string) []string {
	fields := strings.Split(norm, " ")
	tokens := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "."); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// hasPhrase reports whether phrase occurs as a contiguous run of whole
// tokens. Whole-token equality is what makes matching boundary-safe:
// "java" never equals "javascript", "vue" never equals "vue.js".
func hasPhrase(tokens, phrase []string) bool {
	if len(phrase) == 0 {
		return false
	}
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, p := range phrase {
			if tokens[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
