// Package formflow implements the intake form engine: step partitioning,
// conditional visibility and display numbering, step validation, and the
// flattening of answer state into submission payloads. Everything in this
// package is pure: functions derive results from an explicit Form and
// AnswerState and never mutate either.
package formflow

import "strings"

// ModType identifies how a question is captured. Values mirror the
// clinical-records schema's mod_type field.
type ModType string

const (
	ModLabel           ModType = "label"
	ModReadOnly        ModType = "read_only"
	ModStaticText      ModType = "static_text"
	ModText            ModType = "text"
	ModTextarea        ModType = "textarea"
	ModDate            ModType = "date"
	ModRadio           ModType = "radio"
	ModHorizontalRadio ModType = "horizontal_radio"
	ModCheckbox        ModType = "checkbox"
	ModLocation        ModType = "location"
	ModSignature       ModType = "signature"
	ModHeight          ModType = "height_component"
	ModWeight          ModType = "weight_component"
	ModBMIResult       ModType = "bmi_result"
)

// Section sentinels. Their position in the question list defines step
// boundaries; the labels are fixed in the upstream form definition.
const (
	SentinelPainAssessment   = "PAIN ASSESSMENT"
	SentinelMedicalHistory   = "MEDICAL HISTORY"
	SentinelPatientAgreement = "PATIENT AGREEMENT"
)

// Question is one externally-defined form field. The label doubles as a
// pattern-matching key for the special-casing rules in this package.
type Question struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Type     ModType  `json:"mod_type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// DisplayOnly reports whether the question renders text without capturing
// an answer.
func (q Question) DisplayOnly() bool {
	return q.Type == ModLabel || q.Type == ModReadOnly || q.Type == ModStaticText
}

// Form is the named, ordered collection of questions for one intake
// instrument. Order is semantically significant.
type Form struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"custom_modules"`
}

// FindQuestion returns the first question satisfying pred, or nil.
func (f *Form) FindQuestion(pred func(Question) bool) *Question {
	for i := range f.Questions {
		if pred(f.Questions[i]) {
			return &f.Questions[i]
		}
	}
	return nil
}

func labelContains(q Question, substr string) bool {
	return strings.Contains(q.Label, substr)
}

func labelContainsFold(q Question, substr string) bool {
	return strings.Contains(strings.ToLower(q.Label), strings.ToLower(substr))
}

// indexOfLabel returns the position of the first question with the exact
// label, or -1.
func indexOfLabel(questions []Question, label string) int {
	for i, q := range questions {
		if q.Label == label {
			return i
		}
	}
	return -1
}
