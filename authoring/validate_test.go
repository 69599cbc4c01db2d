package authoring

import (
	"reflect"
	"testing"
)

func validOverviewCourse() Course {
	c := NewCourse()
	c.Title = "Intro to Go"
	c.Category = "Technology"
	c.Summary = "A practical introduction to Go."
	c.Objectives = []string{"Understand the basics"}
	return c
}

func TestValidateOverview_EmptyDraft(t *testing.T) {
	c := NewCourse()
	errs := ValidateOverview(&c)
	want := ValidationErrors{
		"title":      "Course title is required",
		"category":   "Please select a category",
		"summary":    "Course summary is required",
		"objectives": "At least one course objective is required",
	}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("got %v, want %v", errs, want)
	}
}

func TestValidateOverview_WhitespaceDoesNotCount(t *testing.T) {
	c := validOverviewCourse()
	c.Title = "   "
	c.Objectives = []string{"", "  "}
	errs := ValidateOverview(&c)
	if errs["title"] == "" {
		t.Fatalf("whitespace-only title should fail")
	}
	if errs["objectives"] == "" {
		t.Fatalf("blank objectives should fail")
	}
}

func TestValidateOverview_Valid(t *testing.T) {
	c := validOverviewCourse()
	if errs := ValidateOverview(&c); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateCurriculum_NoModulesShortCircuits(t *testing.T) {
	c := NewCourse()
	errs := ValidateCurriculum(&c)
	if errs["modules"] != "You need to create at least one module" {
		t.Fatalf("got %v", errs)
	}
	if _, ok := errs["content"]; ok {
		t.Fatalf("content error should not be reported without modules")
	}
}

func TestValidateCurriculum_EmptyModuleClearedByLesson(t *testing.T) {
	s := NewSession(newFakeStore())
	m := s.AddModule(ModulePatch{Title: strPtr("Intro")})

	c := s.Course()
	errs := ValidateCurriculum(&c)
	if errs["content"] != "All modules must have at least one lesson or quiz" {
		t.Fatalf("got %v", errs)
	}

	s.AddLesson(m, LessonPatch{Title: strPtr("Hello")})
	c = s.Course()
	if errs := ValidateCurriculum(&c); len(errs) != 0 {
		t.Fatalf("adding a lesson should clear the error, got %v", errs)
	}
}

func TestValidateCurriculum_QuizCountsAsContent(t *testing.T) {
	s := NewSession(newFakeStore())
	m := s.AddModule(ModulePatch{})
	s.AddQuiz(m, QuizPatch{Title: strPtr("Check")})
	c := s.Course()
	if errs := ValidateCurriculum(&c); len(errs) != 0 {
		t.Fatalf("a quiz-only module is valid, got %v", errs)
	}
}

func TestValidatePricing_PaidZeroPrice(t *testing.T) {
	c := NewCourse()
	c.Pricing.CourseType = CourseTypePaid
	c.Pricing.Price = 0

	errs := ValidatePricing(&c)
	if errs["price"] != "Please enter a valid price for your course" {
		t.Fatalf("got %v", errs)
	}
	if _, ok := errs["freemium"]; ok {
		t.Fatalf("paid course must not report freemium errors")
	}
}

func TestValidatePricing_FreemiumNeedsSelection(t *testing.T) {
	c := NewCourse()
	c.Pricing.CourseType = CourseTypeFreemium

	errs := ValidatePricing(&c)
	if errs["freemium"] != "Please select at least one module or lesson to offer as free preview" {
		t.Fatalf("got %v", errs)
	}

	c.Pricing.FreemiumContent = []string{ContentKey(FreemiumModule, "module_abc")}
	if errs := ValidatePricing(&c); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidatePricing_FreeAlwaysPasses(t *testing.T) {
	c := NewCourse()
	if errs := ValidatePricing(&c); len(errs) != 0 {
		t.Fatalf("free course should pass, got %v", errs)
	}
}

func publishReadyCourse() Course {
	c := validOverviewCourse()
	c.Modules = []Module{{
		ID:      "module_1",
		Title:   "Intro",
		Lessons: []Lesson{{ID: "lesson_1", Title: "Hello", ContentType: ContentTypeVideo}},
		Quizzes: []Quiz{},
	}}
	return c
}

func fullChecklist() Checklist {
	return Checklist{
		ContentComplete:       true,
		LanguagesApplied:      true,
		AccessibilityReviewed: true,
		TermsAccepted:         true,
	}
}

func TestValidatePublish_IncompleteChecklist(t *testing.T) {
	c := publishReadyCourse()
	cl := fullChecklist()
	cl.TermsAccepted = false

	errs := ValidatePublish(&c, cl)
	if errs["checklist"] != "Please complete all items in the checklist before publishing" {
		t.Fatalf("got %v", errs)
	}
}

func TestValidatePublish_QuizOnlyCourseFailsContentGate(t *testing.T) {
	c := publishReadyCourse()
	c.Modules[0].Lessons = []Lesson{}
	c.Modules[0].Quizzes = []Quiz{{ID: "quiz_1", Title: "Check"}}

	errs := ValidatePublish(&c, fullChecklist())
	if errs["content"] != "Your course must have at least one module with content" {
		t.Fatalf("publishing requires at least one lesson, got %v", errs)
	}
}

func TestValidatePublish_Ready(t *testing.T) {
	c := publishReadyCourse()
	if errs := ValidatePublish(&c, fullChecklist()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidatePublish_Idempotent(t *testing.T) {
	c := NewCourse()
	first := ValidatePublish(&c, Checklist{})
	second := ValidatePublish(&c, Checklist{})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated validation must report the same errors: %v vs %v", first, second)
	}
}

func TestValidateStep_Dispatch(t *testing.T) {
	c := NewCourse()
	if errs := ValidateStep(&c, StepOverview); len(errs) == 0 {
		t.Fatalf("overview step should fail on an empty draft")
	}
	if errs := ValidateStep(&c, StepCurriculum); len(errs) == 0 {
		t.Fatalf("curriculum step should fail on an empty draft")
	}
	if errs := ValidateStep(&c, StepLocalization); len(errs) != 0 {
		t.Fatalf("localization has no forward requirements, got %v", errs)
	}
	if errs := ValidateStep(&c, StepReview); len(errs) != 0 {
		t.Fatalf("review validates at publish time, got %v", errs)
	}
}
