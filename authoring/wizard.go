package authoring

// Wizard sequences the five authoring steps. It never validates; callers
// run the step validator and only call Next once the error set is empty.
// Jumping forward past unvisited steps is not allowed.
type Wizard struct {
	step    int
	reached int
}

// StepNames in wizard order.
var StepNames = [stepCount]string{"Overview", "Curriculum", "Localization", "Pricing", "Review & Publish"}

func (w *Wizard) Step() int { return w.step }

// Next advances one step. Reports false at the last step.
func (w *Wizard) Next() bool {
	if w.step >= stepCount-1 {
		return false
	}
	w.step++
	if w.step > w.reached {
		w.reached = w.step
	}
	return true
}

// Prev steps back. Reports false at the first step.
func (w *Wizard) Prev() bool {
	if w.step <= 0 {
		return false
	}
	w.step--
	return true
}

// GoTo jumps to a step the wizard has already reached.
func (w *Wizard) GoTo(step int) bool {
	if step < 0 || step > w.reached {
		return false
	}
	w.step = step
	return true
}

// Restart returns to the first step and forgets progress.
func (w *Wizard) Restart() {
	w.step = 0
	w.reached = 0
}
