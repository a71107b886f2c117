package forms

import "sync"

// Values holds raw field input keyed by field name. Checkboxes use "true".
type Values map[string]string

// Step is one page of a multi-step form.
type Step struct {
	Name     string
	Validate func(Values) Errors
}

// Wizard tracks the step index, field values and field errors of a multi-step form.
// Advancing validates the current step; going back never does.
type Wizard struct {
	mu         sync.Mutex
	steps      []Step
	index      int
	values     Values
	errors     Errors
	submitting bool
}

func NewWizard(steps ...Step) *Wizard {
	return &Wizard{steps: steps, values: Values{}, errors: Errors{}}
}

// Set stores a field value and clears that field's error.
func (w *Wizard) Set(field, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.values[field] = value
	delete(w.errors, field)
}

// SetAll stores every value in vals.
func (w *Wizard) SetAll(vals Values) {
	for k, v := range vals {
		w.Set(k, v)
	}
}

// Next validates the current step and advances when it passes. On the last
// step a passing validation leaves the index unchanged.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.validateLocked() {
		return false
	}
	if w.index < len(w.steps)-1 {
		w.index++
	}
	return true
}

// Back moves to the previous step without validating.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.index > 0 {
		w.index--
	}
}

// GoTo jumps to step i, validating every step before it. It stops at the first
// failing step and reports whether i was reached.
func (w *Wizard) GoTo(i int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.steps) {
		return false
	}
	w.index = 0
	for w.index < i {
		if !w.validateLocked() {
			return false
		}
		w.index++
	}
	return true
}

// Begin validates the final step and marks a submission in flight. It returns
// false when not on the last step, when validation fails, or when a submission
// is already in flight.
func (w *Wizard) Begin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting || w.index != len(w.steps)-1 {
		return false
	}
	if !w.validateLocked() {
		return false
	}
	w.submitting = true
	return true
}

// Finish clears the in-flight flag.
func (w *Wizard) Finish() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
}

func (w *Wizard) validateLocked() bool {
	if len(w.steps) == 0 {
		return true
	}
	step := w.steps[w.index]
	w.errors = Errors{}
	if step.Validate != nil {
		for k, v := range step.Validate(w.values) {
			w.errors[k] = v
		}
	}
	return w.errors.Valid()
}

// Step returns the zero-based index of the current step.
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.index
}

func (w *Wizard) StepName() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.steps) == 0 {
		return ""
	}
	return w.steps[w.index].Name
}

// Len returns the number of steps.
func (w *Wizard) Len() int {
	return len(w.steps)
}

func (w *Wizard) IsLast() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.index == len(w.steps)-1
}

func (w *Wizard) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

func (w *Wizard) Value(field string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.values[field]
}

// Errors returns a copy of the current field errors.
func (w *Wizard) Errors() Errors {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(Errors, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}
