package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mastaskillz/course_studio/authoring"
	config "github.com/mastaskillz/course_studio/configs"
	"github.com/mastaskillz/course_studio/utils"
)

// The suggestion backend is optional. Every call falls back to a local
// deterministic generator when the remote endpoint is unreachable, so the
// wizard never blocks on suggestion availability.

var suggestionClient = &http.Client{Timeout: 10 * time.Second}

type TitleSuggestionRequest struct {
	Summary    string   `json:"summary"`
	Objectives []string `json:"objectives"`
}

type SummarySuggestionRequest struct {
	Title      string   `json:"title"`
	Objectives []string `json:"objectives"`
}

type QuizGenerationRequest struct {
	CourseTitle       string             `json:"course_title"`
	ModuleTitle       string             `json:"module_title"`
	ModuleDescription string             `json:"module_description"`
	Lessons           []authoring.Lesson `json:"lessons"`
	Count             int                `json:"count"`
}

type TranslationRequest struct {
	Course         authoring.Course `json:"course"`
	TargetLanguage string           `json:"target_language"`
}

func SuggestTitles(req TitleSuggestionRequest) []string {
	var out struct {
		Titles []string `json:"titles"`
	}
	if err := callSuggestionAPI("/titles", req, &out); err == nil && len(out.Titles) > 0 {
		return out.Titles
	}
	return localTitleSuggestions(req.Summary, req.Objectives)
}

func SuggestSummary(req SummarySuggestionRequest) string {
	var out struct {
		Summary string `json:"summary"`
	}
	if err := callSuggestionAPI("/summary", req, &out); err == nil && out.Summary != "" {
		return out.Summary
	}
	return localSummary(req.Title, req.Objectives)
}

func GenerateQuizQuestions(req QuizGenerationRequest) []authoring.Question {
	var out struct {
		Questions []authoring.Question `json:"questions"`
	}
	if err := callSuggestionAPI("/quiz-questions", req, &out); err == nil && len(out.Questions) > 0 {
		return out.Questions
	}
	return localQuizQuestions(req.ModuleTitle, req.Lessons, req.Count)
}

func TranslateCourse(req TranslationRequest) authoring.Translation {
	var out struct {
		Translation authoring.Translation `json:"translation"`
	}
	if err := callSuggestionAPI("/translate", req, &out); err == nil && out.Translation.Title != "" {
		return out.Translation
	}
	return localTranslation(req.Course, req.TargetLanguage)
}

func callSuggestionAPI(path string, payload any, out any) error {
	baseURL := config.Config("SUGGESTION_API_URL")
	if baseURL == "" {
		return fmt.Errorf("suggestion API not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := suggestionClient.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("Suggestion API call failed, using local fallback: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Suggestion API returned %d, using local fallback", resp.StatusCode)
		return fmt.Errorf("suggestion API returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// --- Local fallback generators ---

func localTitleSuggestions(summary string, objectives []string) []string {
	keywords := extractKeywords(summary, objectives)
	first := keywords[0]
	second := ""
	if len(keywords) > 1 {
		second = keywords[1]
	}

	titles := []string{
		fmt.Sprintf("The Complete %s Course: From Beginner to Expert", first),
		fmt.Sprintf("%s Essentials: Practical Skills for Success", first),
		fmt.Sprintf("Professional %s: Skills and Techniques for the Real World", first),
	}
	if second != "" {
		titles = append([]string{
			fmt.Sprintf("Mastering %s and %s: A Comprehensive Guide", first, second),
			fmt.Sprintf("%s Fundamentals: Integrating %s", first, second),
		}, titles...)
	} else {
		titles = append([]string{
			fmt.Sprintf("Mastering %s: A Comprehensive Guide", first),
			fmt.Sprintf("%s Fundamentals", first),
		}, titles...)
	}
	return titles
}

func localSummary(title string, objectives []string) string {
	terms := extractKeywords(title, objectives)
	if len(terms) > 3 {
		terms = terms[:3]
	}
	lead := terms[0]
	return fmt.Sprintf(
		"This comprehensive course covers everything you need to know about %s and more. "+
			"Designed for both beginners and experienced learners, you'll gain practical skills "+
			"that can be immediately applied in real-world scenarios. Through a combination of "+
			"theoretical concepts and hands-on exercises, this course will empower you to master "+
			"%s with confidence. By the end, you'll have developed a strong foundation and the "+
			"ability to tackle complex challenges in this field.",
		strings.Join(terms, ", "), lead)
}

func localQuizQuestions(moduleTitle string, lessons []authoring.Lesson, count int) []authoring.Question {
	types := []string{
		authoring.QuestionTypeMCQ,
		authoring.QuestionTypeTrueFalse,
		authoring.QuestionTypeShortAnswer,
	}

	questions := make([]authoring.Question, 0, count)
	for i := 0; i < count; i++ {
		topic := moduleTitle
		if len(lessons) > 0 {
			topic = lessons[i%len(lessons)].Title
			if topic == "" {
				topic = moduleTitle
			}
		}

		id := utils.NewContentID("question")
		switch types[i%len(types)] {
		case authoring.QuestionTypeMCQ:
			options := []authoring.Option{
				{ID: utils.NewContentID("option"), Text: "This is the correct answer", IsCorrect: true},
				{ID: utils.NewContentID("option"), Text: "This is an incorrect answer"},
				{ID: utils.NewContentID("option"), Text: "This is another incorrect answer"},
				{ID: utils.NewContentID("option"), Text: "This is yet another incorrect answer"},
			}
			questions = append(questions, authoring.Question{
				ID:      id,
				Type:    authoring.QuestionTypeMCQ,
				Text:    fmt.Sprintf("Based on %s, which of the following is correct?", topic),
				Options: options,
			})
		case authoring.QuestionTypeTrueFalse:
			answer := true
			questions = append(questions, authoring.Question{
				ID:            id,
				Type:          authoring.QuestionTypeTrueFalse,
				Text:          fmt.Sprintf("According to %s, the following statement is true: \"%s is an important concept in this field.\"", topic, topic),
				CorrectAnswer: &answer,
			})
		default:
			questions = append(questions, authoring.Question{
				ID:              id,
				Type:            authoring.QuestionTypeShortAnswer,
				Text:            fmt.Sprintf("In your own words, explain the main concept of %s.", topic),
				AcceptedAnswers: []string{"concept", "understanding", "explanation"},
			})
		}
	}
	return questions
}

func localTranslation(course authoring.Course, targetLanguage string) authoring.Translation {
	mark := func(s string) string {
		if s == "" {
			return s
		}
		return fmt.Sprintf("%s (Translated to %s)", s, targetLanguage)
	}

	t := authoring.Translation{
		Title:   mark(course.Title),
		Summary: mark(course.Summary),
	}
	for _, obj := range course.Objectives {
		t.Objectives = append(t.Objectives, mark(obj))
	}
	for _, m := range course.Modules {
		mt := authoring.ModuleTranslation{
			Title:       mark(m.Title),
			Description: mark(m.Description),
		}
		for _, l := range m.Lessons {
			mt.Lessons = append(mt.Lessons, authoring.TitleTranslation{
				Title:       mark(l.Title),
				Description: mark(l.Description),
			})
		}
		for _, q := range m.Quizzes {
			mt.Quizzes = append(mt.Quizzes, authoring.TitleTranslation{
				Title:       mark(q.Title),
				Description: mark(q.Description),
			})
		}
		t.Modules = append(t.Modules, mt)
	}
	return t
}

func extractKeywords(text string, objectives []string) []string {
	seen := map[string]bool{}
	var keywords []string

	collect := func(s string) {
		for _, word := range strings.Fields(s) {
			word = strings.Trim(word, ".,!?:;\"'()")
			if len(word) <= 3 {
				continue
			}
			lower := strings.ToLower(word)
			if seen[lower] {
				continue
			}
			seen[lower] = true
			keywords = append(keywords, capitalize(lower))
		}
	}

	collect(text)
	for _, obj := range objectives {
		collect(obj)
	}

	if len(keywords) == 0 {
		keywords = []string{"Your Topic"}
	}
	return keywords
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
