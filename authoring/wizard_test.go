package authoring

import "testing"

func TestWizard_NextStopsAtLastStep(t *testing.T) {
	var w Wizard
	for i := 0; i < stepCount-1; i++ {
		if !w.Next() {
			t.Fatalf("Next failed at step %d", i)
		}
	}
	if w.Step() != StepReview {
		t.Fatalf("expected review step, got %d", w.Step())
	}
	if w.Next() {
		t.Fatalf("Next past the last step must fail")
	}
	if w.Step() != StepReview {
		t.Fatalf("failed Next must not move, got %d", w.Step())
	}
}

func TestWizard_PrevStopsAtFirstStep(t *testing.T) {
	var w Wizard
	if w.Prev() {
		t.Fatalf("Prev at the first step must fail")
	}
	w.Next()
	if !w.Prev() || w.Step() != StepOverview {
		t.Fatalf("Prev should return to overview, got %d", w.Step())
	}
}

func TestWizard_GoToOnlyReachedSteps(t *testing.T) {
	var w Wizard
	w.Next()
	w.Next() // reached localization
	w.Prev() // back on curriculum

	if w.GoTo(StepPricing) {
		t.Fatalf("jumping past unvisited steps must fail")
	}
	if !w.GoTo(StepLocalization) {
		t.Fatalf("jumping to a reached step must succeed")
	}
	if !w.GoTo(StepOverview) {
		t.Fatalf("jumping backwards must succeed")
	}
	if w.GoTo(-1) {
		t.Fatalf("negative steps are invalid")
	}
}

func TestWizard_RestartForgetsProgress(t *testing.T) {
	var w Wizard
	w.Next()
	w.Next()
	w.Restart()
	if w.Step() != StepOverview {
		t.Fatalf("restart should return to overview, got %d", w.Step())
	}
	if w.GoTo(StepCurriculum) {
		t.Fatalf("restart should forget reached steps")
	}
}

func TestStepNames_MatchStepOrder(t *testing.T) {
	if StepNames[StepOverview] != "Overview" || StepNames[StepReview] != "Review & Publish" {
		t.Fatalf("unexpected step names: %v", StepNames)
	}
}
