package formflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStep_TestModeBypassesEverything(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("")

	result := ValidateStep(form, 2, state, ValidateOptions{TestMode: true})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Missing)
}

func TestValidateStep_PatientIDRequired(t *testing.T) {
	form := sampleForm()

	result := ValidateStep(form, 1, NewAnswerState("  "), ValidateOptions{})
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"Patient ID"}, result.Missing)

	result = ValidateStep(form, 1, NewAnswerState("patient-1"), ValidateOptions{})
	assert.True(t, result.IsValid)
}

func TestValidateStep_Demographics(t *testing.T) {
	form := sampleForm()

	t.Run("empty state reports everything required", func(t *testing.T) {
		result := ValidateStep(form, 2, NewAnswerState("patient-1"), ValidateOptions{})

		assert.False(t, result.IsValid)
		// Date of birth validates even though the schema leaves it
		// optional.
		assert.Contains(t, result.Missing, "Date of birth")
		assert.Contains(t, result.Missing, "Primary Language")
		assert.Contains(t, result.Missing, "Sex")
		assert.Contains(t, result.Missing, "Height")
		assert.Contains(t, result.Missing, "Weight")
	})

	t.Run("complete state passes", func(t *testing.T) {
		state := completeDemographics()
		result := ValidateStep(form, 2, state, ValidateOptions{})

		assert.True(t, result.IsValid, "missing: %v", result.Missing)
	})

	t.Run("other language requires detail", func(t *testing.T) {
		state := completeDemographics()
		state.Custom.PrimaryLanguage = OptionOther

		result := ValidateStep(form, 2, state, ValidateOptions{})

		assert.Contains(t, result.Missing, "Specify your primary language")
	})

	t.Run("partial date counts as missing", func(t *testing.T) {
		state := completeDemographics()
		state.DateFor("4").Day = ""

		result := ValidateStep(form, 2, state, ValidateOptions{})

		assert.Contains(t, result.Missing, "Date of birth")
	})
}

func TestEffectivelyRequired_DateOfBirthByLabelAlone(t *testing.T) {
	// The promotion keys off the label, not the question type.
	assert.True(t, effectivelyRequired(Question{Label: "Date of Birth", Type: ModText}))
	assert.True(t, effectivelyRequired(Question{Label: "Patient date of birth", Type: ModDate}))
	assert.False(t, effectivelyRequired(Question{Label: "Date of injury", Type: ModDate}))
}

func TestValidateStep_PhoneFormats(t *testing.T) {
	form := sampleForm()

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "formatted", phone: "(555)123-4567", valid: true},
		{name: "dotted", phone: "555.123.4567", valid: true},
		{name: "too short", phone: "12345", valid: false},
		{name: "letters", phone: "555-CALL-NOW", valid: false},
		{name: "blank is optional", phone: "", valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := completeDemographics()
			state.Custom.PrimaryCareProviderPhone = tt.phone

			result := ValidateStep(form, 2, state, ValidateOptions{})

			if tt.valid {
				assert.True(t, result.IsValid, "missing: %v", result.Missing)
			} else {
				assert.Contains(t, result.Missing,
					"Primary care provider phone number "+phoneFormatHint)
			}
		})
	}
}

func TestValidateStep_EmergencyContactPhone(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")
	state.Custom.EmergencyContactPhone = "911"

	result := ValidateStep(form, 3, state, ValidateOptions{})

	assert.Contains(t, result.Missing, "Emergency contact phone number "+phoneFormatHint)
}

func TestValidateStep_AssessmentUsesQuestionNumbers(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")

	result := ValidateStep(form, 4, state, ValidateOptions{})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"Question 1", "Question 2"}, result.Missing)
}

func TestValidateStep_HiddenSubQuestionsSkipped(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")
	state.SetAnswer("20", "None")
	state.SelectionFor("22").Add("MRI")

	result := ValidateStep(form, 5, state, ValidateOptions{})

	assert.True(t, result.IsValid, "missing: %v", result.Missing)
}

func TestValidateStep_SignatureRequired(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")

	result := ValidateStep(form, 6, state, ValidateOptions{})
	assert.Equal(t, []string{"Patient signature"}, result.Missing)

	state.SetAnswer("30", `{"agreed":true,"typedName":"Pat Doe"}`)
	result = ValidateStep(form, 6, state, ValidateOptions{})
	assert.True(t, result.IsValid)
}

func completeDemographics() *AnswerState {
	state := NewAnswerState("patient-1")
	*state.DateFor("4") = DateParts{Month: "7", Day: "4", Year: "1990"}
	state.SetAnswer("5", "12 Main St, Springfield, IL 62701")
	state.SetAnswer("6", "Female")
	state.HeightFeet, state.HeightInches = "5", "6"
	state.Weight = "150"
	state.Custom.PrimaryLanguage = "English"
	return state
}
