package score

import (
	"reflect"
	"testing"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple list with canonical casing",
			text: "I know Python, React and Node.js",
			want: []string{"Node.js", "Python", "React"},
		},
		{
			name: "no partial match inside longer token",
			text: "JavaScript developer",
			want: []string{"JavaScript"},
		},
		{
			name: "multi-word skills match as phrases",
			text: "Built machine learning pipelines on Ruby on Rails",
			want: []string{"Machine Learning", "Ruby", "Ruby On Rails"},
		},
		{
			name: "display casing overrides",
			text: "postgresql and mongodb and typescript",
			want: []string{"MongoDB", "PostgreSQL", "TypeScript"},
		},
		{
			name: "vue.js is not double counted as vue",
			text: "Frontend with Vue.js",
			want: []string{"Vue.js"},
		},
		{
			name: "bare vue canonicalizes to Vue.js",
			text: "Frontend with vue",
			want: []string{"Vue.js"},
		},
		{
			name: "tech punctuation survives",
			text: "Fluent in C++ and C#.",
			want: []string{"C#", "C++"},
		},
		{
			name: "sentence-final dot does not hide a skill",
			text: "My strongest runtime is Node.js.",
			want: []string{"Node.js"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "no recognized skills",
			text: "Fifteen years of carpentry and woodworking",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSkills(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSkills(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractSkillsDeterministic(t *testing.T) {
	text := "Python, Docker, Kubernetes, machine learning, SQL, AWS"
	first := ExtractSkills(text)
	for i := 0; i < 5; i++ {
		if got := ExtractSkills(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed: %v vs %v", i, got, first)
		}
	}
}

func TestLooksLikeResume(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "classic section trio",
			text: "EDUCATION\nB.Sc. CS\nEXPERIENCE\nBackend dev\nSKILLS\nGo, SQL",
			want: true,
		},
		{
			name: "contact block counts",
			text: "email: a@b.c, phone: 123, linkedin profile attached",
			want: true,
		},
		{
			name: "plain prose is not a resume",
			text: "The quarterly revenue grew by 14 percent over projections.",
			want: false,
		},
		{
			name: "two hits are not enough",
			text: "summary of skills",
			want: false,
		},
		{
			name: "empty",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeResume(tt.text); got != tt.want {
				t.Errorf("LooksLikeResume(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestScan(t *testing.T) {
	text := "EXPERIENCE: Python developer. SKILLS: Docker, SQL. EDUCATION: CS degree."
	result := Scan(text, "resume.pdf")

	if result.Filename != "resume.pdf" {
		t.Errorf("Filename = %q", result.Filename)
	}
	if !result.LooksLikeResume {
		t.Error("expected LooksLikeResume = true")
	}
	want := []string{"Docker", "Python", "SQL"}
	if !reflect.DeepEqual(result.Skills, want) {
		t.Errorf("Skills = %v, want %v", result.Skills, want)
	}
	if result.TextPreview != text {
		t.Errorf("TextPreview = %q", result.TextPreview)
	}
}
