// Package score implements the document matching and scoring engine:
// skill extraction, resume/job-description similarity scoring, and
// interview transcript evaluation. All operations are pure, synchronous
// and safe for concurrent use — the dictionaries below are read-only
// after init.
package score

import (
	"sort"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
)

// technicalSkills is the curated skill dictionary, grouped by category.
// Entries are written in display-source form; matching runs against
// their normalized form (see init below).
var technicalSkills = map[string][]string{
	"languages": {
		"python", "java", "javascript", "typescript", "c++", "c#", "golang",
		"rust", "swift", "kotlin", "php", "ruby", "scala",
	},
	"frontend": {
		"react", "angular", "vue.js", "vue", "next.js", "nuxt.js", "svelte",
		"html", "css", "sass", "tailwind", "bootstrap",
	},
	"backend": {
		"node.js", "express", "django", "flask", "fastapi", "spring boot",
		"ruby on rails", "asp.net", "graphql",
	},
	"databases": {
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"cassandra", "firebase", "sqlite",
	},
	"devops": {
		"docker", "kubernetes", "aws", "azure", "gcp", "google cloud",
		"terraform", "jenkins", "circleci", "git", "linux", "bash",
	},
	"ai_data": {
		"machine learning", "deep learning", "nlp", "tensorflow", "pytorch",
		"pandas", "numpy", "scikit-learn", "keras", "opencv", "spark", "hadoop",
	},
	"tools": {
		"jira", "agile", "scrum", "figma", "adobe xd", "selenium", "jest",
		"cypress",
	},
}

// casingOverrides fixes display casing for skills where plain
// title-casing is wrong. Everything else gets title-cased per word.
var casingOverrides = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"mysql":      "MySQL",
	"postgresql": "PostgreSQL",
	"mongodb":    "MongoDB",
	"react":      "React",
	"vue":        "Vue.js",
	"vue.js":     "Vue.js",
	"node.js":    "Node.js",
}

// hrKeywords are communication/soft-skill markers for transcript scoring.
var hrKeywords = []string{
	"team", "collaborate", "leader", "challenge", "learn", "growth",
	"project", "deadline", "result", "success", "fail", "improve",
}

// resumeSectionKeywords drive the resume-likeness heuristic: a genuine
// resume is expected to contain at least a few of these section markers.
var resumeSectionKeywords = []string{
	"experience", "work history", "employment", "internship",
	"education", "university", "college", "degree",
	"skills", "technologies", "technical skills", "competencies",
	"projects", "summary", "profile", "objective",
	"certifications", "achievements", "languages",
	"resume", "curriculum vitae", "cv",
	"contact", "phone", "email", "linkedin", "github",
}

// stopWords are excluded from the n-gram vocabulary. Roughly the standard
// English list, trimmed to words that actually show up in job postings.
var stopWords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "against": true,
	"all": true, "also": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "being": true, "below": true,
	"between": true, "both": true, "but": true, "by": true, "can": true,
	"could": true, "did": true, "do": true, "does": true, "doing": true,
	"down": true, "during": true, "each": true, "few": true, "for": true,
	"from": true, "further": true, "had": true, "has": true, "have": true,
	"having": true, "he": true, "her": true, "here": true, "hers": true,
	"him": true, "his": true, "how": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "itself": true,
	"just": true, "me": true, "more": true, "most": true, "my": true,
	"no": true, "nor": true, "not": true, "now": true, "of": true,
	"off": true, "on": true, "once": true, "only": true, "or": true,
	"other": true, "our": true, "ours": true, "out": true, "over": true,
	"own": true, "same": true, "she": true, "should": true, "so": true,
	"some": true, "such": true, "than": true, "that": true, "the": true,
	"their": true, "theirs": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "those": true, "through": true,
	"to": true, "too": true, "under": true, "until": true, "up": true,
	"very": true, "was": true, "we": true, "were": true, "what": true,
	"when": true, "where": true, "which": true, "while": true, "who": true,
	"whom": true, "why": true, "will": true, "with": true, "would": true,
	"you": true, "your": true, "yours": true,
}

// skillEntry binds a normalized matchable form to its display label.
type skillEntry struct {
	norm    string   // normalized form, used for substring counting
	parts   []string // norm split into word tokens, for boundary-safe matching
	display string   // canonical display casing
}

// skillDict is the flattened, deduplicated dictionary in deterministic
// (sorted by normalized form) order. Built once in init, never mutated.
var skillDict []skillEntry

// skillNorms is the flattened set of normalized skill forms, used for
// substring counting in transcript evaluation.
var skillNorms []string

func init() {
	seen := make(map[string]bool)
	for _, skills := range technicalSkills {
		for _, s := range skills {
			norm := engine.Normalize(s)
			if norm == "" || seen[norm] {
				continue
			}
			seen[norm] = true
			skillDict = append(skillDict, skillEntry{
				norm:    norm,
				parts:   strings.Fields(norm),
				display: canonicalSkill(s),
			})
		}
	}
	sort.Slice(skillDict, func(i, j int) bool { return skillDict[i].norm < skillDict[j].norm })
	for _, e := range skillDict {
		skillNorms = append(skillNorms, e.norm)
	}
}

// canonicalSkill returns the display casing for a dictionary entry:
// the override table for known ambiguous names, else each
// whitespace-separated word title-cased.
func canonicalSkill(s string) string {
	if fixed, ok := casingOverrides[strings.ToLower(s)]; ok {
		return fixed
	}
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
