package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/mastaskillz/course_studio/authoring"
)

func TestSuggestTitles_LocalFallback(t *testing.T) {
	titles := SuggestTitles(TitleSuggestionRequest{
		Summary:    "Learn practical welding techniques",
		Objectives: []string{"Master safety procedures"},
	})
	if len(titles) != 5 {
		t.Fatalf("expected 5 suggestions, got %d: %v", len(titles), titles)
	}
	found := false
	for _, title := range titles {
		if strings.Contains(title, "Learn") {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("suggestions should lead with the first keyword: %v", titles)
	}
}

func TestSuggestTitles_EmptyInputStillSuggests(t *testing.T) {
	titles := SuggestTitles(TitleSuggestionRequest{})
	if len(titles) == 0 {
		t.Fatalf("expected suggestions even without input")
	}
	if !strings.Contains(titles[0], "Your Topic") {
		t.Fatalf("expected placeholder topic, got %q", titles[0])
	}
}

func TestSuggestSummary_LocalFallback(t *testing.T) {
	summary := SuggestSummary(SummarySuggestionRequest{
		Title:      "Advanced Photography Masterclass",
		Objectives: []string{"Understand composition"},
	})
	if !strings.Contains(summary, "Advanced") {
		t.Fatalf("summary should mention the title keywords: %q", summary)
	}
	if !strings.Contains(summary, "comprehensive course") {
		t.Fatalf("unexpected summary shape: %q", summary)
	}
}

func TestGenerateQuizQuestions_CyclesTypes(t *testing.T) {
	lessons := []authoring.Lesson{
		{ID: "lesson_1", Title: "Shutter Speed"},
		{ID: "lesson_2", Title: "Aperture"},
	}
	questions := GenerateQuizQuestions(QuizGenerationRequest{
		ModuleTitle: "Camera Basics",
		Lessons:     lessons,
		Count:       6,
	})
	if len(questions) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(questions))
	}

	wantTypes := []string{
		authoring.QuestionTypeMCQ,
		authoring.QuestionTypeTrueFalse,
		authoring.QuestionTypeShortAnswer,
	}
	for i, q := range questions {
		if q.Type != wantTypes[i%3] {
			t.Fatalf("question %d: type %q, want %q", i, q.Type, wantTypes[i%3])
		}
		if q.ID == "" || q.Text == "" {
			t.Fatalf("question %d is missing id or text: %+v", i, q)
		}
		switch q.Type {
		case authoring.QuestionTypeMCQ:
			if len(q.Options) != 4 {
				t.Fatalf("mcq question %d: expected 4 options, got %d", i, len(q.Options))
			}
			correct := 0
			for _, opt := range q.Options {
				if opt.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				t.Fatalf("mcq question %d: expected exactly one correct option, got %d", i, correct)
			}
		case authoring.QuestionTypeTrueFalse:
			if q.CorrectAnswer == nil {
				t.Fatalf("truefalse question %d has no answer", i)
			}
		case authoring.QuestionTypeShortAnswer:
			if len(q.AcceptedAnswers) == 0 {
				t.Fatalf("shortanswer question %d has no accepted answers", i)
			}
		}
	}
}

func TestGenerateQuizQuestions_TopicsFromLessons(t *testing.T) {
	questions := GenerateQuizQuestions(QuizGenerationRequest{
		ModuleTitle: "Camera Basics",
		Lessons:     []authoring.Lesson{{ID: "lesson_1", Title: "Shutter Speed"}},
		Count:       1,
	})
	if !strings.Contains(questions[0].Text, "Shutter Speed") {
		t.Fatalf("question should reference the lesson topic: %q", questions[0].Text)
	}
}

func TestTranslateCourse_LocalFallbackMarksContent(t *testing.T) {
	course := authoring.NewCourse()
	course.Title = "Intro to Baking"
	course.Summary = "Bread and pastry fundamentals"
	course.Objectives = []string{"Bake a loaf"}
	course.Modules = []authoring.Module{{
		ID:    "module_1",
		Title: "Dough",
		Lessons: []authoring.Lesson{
			{ID: "lesson_1", Title: "Kneading"},
		},
		Quizzes: []authoring.Quiz{
			{ID: "quiz_1", Title: "Dough Check"},
		},
	}}

	tr := TranslateCourse(TranslationRequest{Course: course, TargetLanguage: "French"})
	if !strings.HasSuffix(tr.Title, "(Translated to French)") {
		t.Fatalf("title not marked: %q", tr.Title)
	}
	if len(tr.Objectives) != 1 || !strings.Contains(tr.Objectives[0], "Bake a loaf") {
		t.Fatalf("objectives not carried over: %v", tr.Objectives)
	}
	if len(tr.Modules) != 1 {
		t.Fatalf("expected one module translation, got %d", len(tr.Modules))
	}
	if len(tr.Modules[0].Lessons) != 1 || !strings.Contains(tr.Modules[0].Lessons[0].Title, "Kneading") {
		t.Fatalf("lesson titles not translated: %+v", tr.Modules[0].Lessons)
	}
	if len(tr.Modules[0].Quizzes) != 1 || !strings.Contains(tr.Modules[0].Quizzes[0].Title, "Dough Check") {
		t.Fatalf("quiz titles not translated: %+v", tr.Modules[0].Quizzes)
	}
	// Empty source fields stay empty instead of getting a dangling marker.
	if tr.Modules[0].Lessons[0].Description != "" {
		t.Fatalf("empty description should stay empty, got %q", tr.Modules[0].Lessons[0].Description)
	}
}

func TestSuggestTitles_RemoteBackendWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/titles" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string][]string{"titles": {"Remote Title"}})
	}))
	defer srv.Close()

	os.Setenv("SUGGESTION_API_URL", srv.URL)
	defer os.Unsetenv("SUGGESTION_API_URL")

	titles := SuggestTitles(TitleSuggestionRequest{Summary: "anything"})
	if len(titles) != 1 || titles[0] != "Remote Title" {
		t.Fatalf("expected remote suggestions, got %v", titles)
	}
}

func TestSuggestTitles_RemoteFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	os.Setenv("SUGGESTION_API_URL", srv.URL)
	defer os.Unsetenv("SUGGESTION_API_URL")

	titles := SuggestTitles(TitleSuggestionRequest{Summary: "resilient fallback"})
	if len(titles) != 5 {
		t.Fatalf("expected local fallback, got %v", titles)
	}
}
