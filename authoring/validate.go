package authoring

import "strings"

// ValidationErrors maps a field to its message. An empty set means the step
// may advance. Validation failures are never errors in the Go sense; they
// are data handed back to the client.
type ValidationErrors map[string]string

// Checklist holds the review-step confirmations required before publishing.
type Checklist struct {
	ContentComplete       bool `json:"contentComplete"`
	LanguagesApplied      bool `json:"languagesApplied"`
	AccessibilityReviewed bool `json:"accessibilityReviewed"`
	TermsAccepted         bool `json:"termsAccepted"`
}

func (cl Checklist) Complete() bool {
	return cl.ContentComplete && cl.LanguagesApplied && cl.AccessibilityReviewed && cl.TermsAccepted
}

// Wizard step indices.
const (
	StepOverview = iota
	StepCurriculum
	StepLocalization
	StepPricing
	StepReview
	stepCount
)

func ValidateOverview(c *Course) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(c.Title) == "" {
		errs["title"] = "Course title is required"
	}
	if c.Category == "" {
		errs["category"] = "Please select a category"
	}
	if strings.TrimSpace(c.Summary) == "" {
		errs["summary"] = "Course summary is required"
	}
	hasObjective := false
	for _, obj := range c.Objectives {
		if strings.TrimSpace(obj) != "" {
			hasObjective = true
			break
		}
	}
	if !hasObjective {
		errs["objectives"] = "At least one course objective is required"
	}
	return errs
}

func ValidateCurriculum(c *Course) ValidationErrors {
	errs := ValidationErrors{}
	if len(c.Modules) == 0 {
		errs["modules"] = "You need to create at least one module"
		return errs
	}
	for _, m := range c.Modules {
		if len(m.Lessons) == 0 && len(m.Quizzes) == 0 {
			errs["content"] = "All modules must have at least one lesson or quiz"
			break
		}
	}
	return errs
}

func ValidatePricing(c *Course) ValidationErrors {
	errs := ValidationErrors{}
	if c.Pricing.CourseType == CourseTypePaid && c.Pricing.Price <= 0 {
		errs["price"] = "Please enter a valid price for your course"
	}
	if c.Pricing.CourseType == CourseTypeFreemium && len(c.Pricing.FreemiumContent) == 0 {
		errs["freemium"] = "Please select at least one module or lesson to offer as free preview"
	}
	return errs
}

// ValidatePublish is the final gate. It re-checks the content and overview
// requirements even when earlier steps already passed.
func ValidatePublish(c *Course, cl Checklist) ValidationErrors {
	errs := ValidationErrors{}
	if !cl.Complete() {
		errs["checklist"] = "Please complete all items in the checklist before publishing"
	}
	if len(c.Modules) == 0 || c.TotalLessons() == 0 {
		errs["content"] = "Your course must have at least one module with content"
	}
	if strings.TrimSpace(c.Title) == "" {
		errs["title"] = "Your course needs a title"
	}
	if strings.TrimSpace(c.Summary) == "" {
		errs["summary"] = "Your course needs a summary"
	}
	return errs
}

// ValidateStep dispatches to the step-local validator. Localization and
// review have no forward-navigation requirements of their own; the review
// step validates via ValidatePublish at publish time.
func ValidateStep(c *Course, step int) ValidationErrors {
	switch step {
	case StepOverview:
		return ValidateOverview(c)
	case StepCurriculum:
		return ValidateCurriculum(c)
	case StepPricing:
		return ValidatePricing(c)
	default:
		return ValidationErrors{}
	}
}
