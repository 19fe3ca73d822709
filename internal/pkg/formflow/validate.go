package formflow

import (
	"fmt"
	"strings"
)

// StepValidation is the outcome of validating one wizard step. Missing
// holds human-readable field names in render order, cross-field findings
// first.
type StepValidation struct {
	IsValid bool     `json:"is_valid"`
	Missing []string `json:"missing"`
}

// ValidateOptions tunes validation behavior. TestMode skips every check so
// the flow can be exercised end to end without real data.
type ValidateOptions struct {
	TestMode bool
}

const phoneFormatHint = "(invalid format - example: (123)123-1234)"

// ValidateStep checks the given step against the current answer state.
// Hidden entries and display-only text never validate; a question that the
// schema marks optional is skipped unless a flow rule promotes it.
func ValidateStep(form *Form, step int, state *AnswerState, opts ValidateOptions) StepValidation {
	if opts.TestMode {
		return StepValidation{IsValid: true}
	}

	var missing []string
	missing = append(missing, crossFieldMissing(step, state)...)

	layout := PlaceStep(form, step, state)
	for _, entry := range layout.Entries {
		if entry.Placement.Hidden || entry.Synthetic {
			continue
		}
		q := entry.Question
		if q == nil || q.DisplayOnly() {
			continue
		}
		if !effectivelyRequired(*q) {
			continue
		}
		missing = append(missing, missingForQuestion(*q, entry.Placement, step, state)...)
	}

	return StepValidation{IsValid: len(missing) == 0, Missing: missing}
}

// effectivelyRequired applies flow-level overrides on top of the schema's
// required flag. Anything labeled date of birth is mandatory regardless of
// what the schema says because downstream patient matching needs it.
func effectivelyRequired(q Question) bool {
	if labelContainsFold(q, "date of birth") {
		return true
	}
	return q.Required
}

// crossFieldMissing covers the synthetic fields and format rules that a
// per-question walk cannot see.
func crossFieldMissing(step int, state *AnswerState) []string {
	var missing []string
	switch step {
	case 1:
		if state == nil || strings.TrimSpace(state.PatientID) == "" {
			missing = append(missing, "Patient ID")
		}
	case 2:
		if state.Custom.PrimaryLanguage == "" {
			missing = append(missing, "Primary Language")
		} else if state.Custom.PrimaryLanguage == OptionOther && strings.TrimSpace(state.Custom.PrimaryLanguageOther) == "" {
			missing = append(missing, "Specify your primary language")
		}
		if phone := strings.TrimSpace(state.Custom.PrimaryCareProviderPhone); phone != "" && !IsValidPhoneNumber(phone) {
			missing = append(missing, "Primary care provider phone number "+phoneFormatHint)
		}
	case 3:
		if phone := strings.TrimSpace(state.Custom.EmergencyContactPhone); phone != "" && !IsValidPhoneNumber(phone) {
			missing = append(missing, "Emergency contact phone number "+phoneFormatHint)
		}
	}
	return missing
}

// missingForQuestion checks one visible required question and returns the
// names to report. The assessment steps use positional names because their
// labels are full clinical sentences.
func missingForQuestion(q Question, placement Placement, step int, state *AnswerState) []string {
	name := q.Label
	if (step == 4 || step == 5) && placement.Number != "" {
		name = fmt.Sprintf("Question %s", placement.Number)
	}

	switch q.Type {
	case ModDate:
		if !state.Dates[q.ID].Complete() {
			return []string{name}
		}
	case ModCheckbox:
		if state.Selections[q.ID].Empty() {
			return []string{name}
		}
	case ModHeight:
		var missing []string
		if !state.HeightComplete() {
			missing = append(missing, "Height")
		}
		if strings.TrimSpace(state.Weight) == "" {
			missing = append(missing, "Weight")
		}
		return missing
	case ModWeight, ModBMIResult:
		// Folded into the height composite.
	default:
		if strings.TrimSpace(state.Answer(q.ID)) == "" {
			return []string{name}
		}
	}
	return nil
}
