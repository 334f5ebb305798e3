package score

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
)

// Skip sentinels: answers the UI records when a candidate passes on a
// question. Counted separately from short-but-present answers.
const (
	sentinelNoAnswer = "(No Answer)"
	sentinelSkipped  = "SKIPPED"
)

// Transcript scoring constants. The floor rule is an explicit
// encouragement policy: a candidate who answered most questions never
// scores below encourageFloor, even when the raw formula says otherwise.
const (
	wordTierHigh = 50 // words per answer for the top substance tier
	wordTierMid  = 30
	wordTierLow  = 10

	softSkillWeight = 0.5 // communication keywords count half a point
	perEntryBudget  = 3   // normalization denominator per transcript entry
	scoreScale      = 10  // final score range [0, scoreScale]
	skipPenalty     = 1.5 // deducted per skipped question
	encourageFloor  = 2
)

// TranscriptEntry is a single interview question/answer pair.
type TranscriptEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// InterviewReport is the outcome of a transcript evaluation.
// Pros and Cons are never both empty.
type InterviewReport struct {
	Score int      `json:"score"`
	Pros  []string `json:"pros"`
	Cons  []string `json:"cons"`
}

// isSkip classifies an answer as a skip (empty, whitespace, or an
// explicit non-answer sentinel). An entry with a missing answer field
// lands here too rather than failing.
func isSkip(answer string) bool {
	ans := strings.TrimSpace(answer)
	return ans == "" || ans == sentinelNoAnswer || ans == sentinelSkipped
}

// Transcript evaluates an ordered interview transcript.
//
// Every valid (non-skipped) answer earns tiered points for length,
// one point per technical skill mentioned, and half a point per
// communication keyword. The total is normalized by the transcript
// length, scaled to [0, 10], then reduced by a per-skip penalty.
// An all-skipped transcript short-circuits to a fixed zero report.
// Deterministic for fixed inputs; never fails.
func Transcript(entries []TranscriptEntry) InterviewReport {
	if len(entries) == 0 {
		return InterviewReport{Score: 0, Pros: []string{"None"}, Cons: []string{"No answers recorded."}}
	}

	var wordScore, techScore, softScore int
	valid, skipped := 0, 0

	for _, e := range entries {
		if isSkip(e.Answer) {
			skipped++
			continue
		}
		valid++

		ans := strings.TrimSpace(e.Answer)
		words := len(strings.Fields(ans))
		switch {
		case words > wordTierHigh:
			wordScore += 3
		case words > wordTierMid:
			wordScore += 2
		case words > wordTierLow:
			wordScore += 1
		}

		norm := engine.Normalize(ans)
		for _, skill := range skillNorms {
			if strings.Contains(norm, skill) {
				techScore++
			}
		}
		for _, hr := range hrKeywords {
			if strings.Contains(norm, hr) {
				softScore++
			}
		}
	}

	if valid == 0 {
		return InterviewReport{
			Score: 0,
			Pros:  []string{"Attempted the session"},
			Cons: []string{
				"You skipped every question. A zero score is assigned for no participation.",
				"Please answer at least one question to get a rating.",
			},
		}
	}

	raw := float64(wordScore+techScore) + softSkillWeight*float64(softScore)
	normalized := raw / float64(len(entries)*perEntryBudget) * scoreScale
	final := normalized - float64(skipped)*skipPenalty

	score := int(final)
	if score < 0 {
		score = 0
	}
	if score > scoreScale {
		score = scoreScale
	}
	// Encouragement floor: answering most questions guarantees a
	// minimum rating.
	if score < encourageFloor && float64(valid) > float64(len(entries))/2 {
		score = encourageFloor
	}

	var pros, cons []string
	if valid == len(entries) {
		pros = append(pros, "You answered every question!")
	}
	if wordScore > len(entries) {
		pros = append(pros, "Good elaboration on your answers.")
	}
	if techScore > 2 {
		pros = append(pros, fmt.Sprintf("Detected %d technical keywords in your answers.", techScore))
	}
	if skipped > 0 {
		cons = append(cons, fmt.Sprintf("You skipped %d questions.", skipped))
	}
	if wordScore < len(entries) {
		cons = append(cons, "Try to give longer, more detailed answers (STAR method).")
	}
	if techScore == 0 {
		cons = append(cons, "Try to mention specific technologies or skills you know.")
	}

	return InterviewReport{
		Score: score,
		Pros:  ensureNonEmpty(pros, "Good start, keep practicing!"),
		Cons:  ensureNonEmpty(cons, "Excellent performance!"),
	}
}

// maxPrepQuestions caps the generated question list.
const maxPrepQuestions = 10

// defaultPrepQuestions pad the list when a resume triggers few
// skill-specific questions. Appended in order, never sampled, so the
// output stays deterministic.
var defaultPrepQuestions = []string{
	"What are your strengths and weaknesses?",
	"Describe a time you had a conflict with a coworker.",
	"How do you prioritize tasks under pressure?",
	"What motivates you?",
}

// Questions generates interview prep questions from resume text using
// simple keyword triggers. Deterministic for fixed input.
func Questions(resumeText string) []string {
	text := strings.ToLower(resumeText)
	questions := []string{"Tell me about yourself and your background."}

	if strings.Contains(text, "experience") || strings.Contains(text, "work history") {
		questions = append(questions,
			"Can you describe a challenging situation you faced in your previous role and how you handled it?",
			"What is your biggest professional achievement so far?",
		)
	}
	if strings.Contains(text, "project") {
		questions = append(questions,
			"Pick one of the projects on your resume and explain its architecture and your specific contribution.",
			"What were the technical trade-offs you made in your projects?",
		)
	}

	if strings.Contains(text, "react") {
		questions = append(questions, "I see you know React. Can you explain the Virtual DOM and how it improves performance?")
	}
	if strings.Contains(text, "python") {
		questions = append(questions, "Since you use Python, can you explain the difference between a list and a tuple?")
	}
	if strings.Contains(text, "node") {
		questions = append(questions, "Explain the event loop in Node.js.")
	}
	if strings.Contains(text, "sql") || strings.Contains(text, "database") {
		questions = append(questions, "How do you optimize a slow SQL query?")
	}

	questions = append(questions,
		"Where do you see yourself in 5 years?",
		"Why do you want to join our company specifically?",
	)

	for i := 0; len(questions) < 5 && i < len(defaultPrepQuestions); i++ {
		questions = append(questions, defaultPrepQuestions[i])
	}
	if len(questions) > maxPrepQuestions {
		questions = questions[:maxPrepQuestions]
	}
	return questions
}
