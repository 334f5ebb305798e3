package score

// --- Tool input types ---

// ResumeScanInput is the input for resume_scan. Text is plain document
// text, already extracted from PDF/DOCX upstream.
type ResumeScanInput struct {
	Text     string `json:"text" jsonschema:"Plain resume text (PDF/DOCX extraction happens upstream)"`
	Filename string `json:"filename,omitempty" jsonschema:"Original filename, echoed back for context"`
}

// ATSCheckInput is the input for ats_check.
type ATSCheckInput struct {
	JobDescription string `json:"job_description" jsonschema:"Target job description text"`
	Resume         string `json:"resume" jsonschema:"Candidate resume text"`
}

// InterviewEvalInput is the input for interview_evaluate.
type InterviewEvalInput struct {
	Transcript []TranscriptEntry `json:"transcript" jsonschema:"Ordered question/answer pairs; empty or sentinel answers count as skips"`
}

// InterviewPrepInput is the input for interview_prep.
type InterviewPrepInput struct {
	Resume string `json:"resume" jsonschema:"Resume text to derive prep questions from"`
}

// InterviewPrepResult is the output for interview_prep.
type InterviewPrepResult struct {
	Questions []string `json:"questions"`
}
