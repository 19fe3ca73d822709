package formflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedState() *AnswerState {
	state := NewAnswerState("patient-1")
	state.SetAnswer("2", "Pat")
	state.SetAnswer("3", "Doe")
	*state.DateFor("4") = DateParts{Month: "7", Day: "4", Year: "1990"}
	state.SetAnswer("5", "12 Main St, Springfield, IL 62701")
	state.SetAnswer("6", "Female")
	state.HeightFeet, state.HeightInches = "5", "6"
	state.Weight = "150"
	state.Custom.PrimaryLanguage = "English"
	state.Custom.PrimaryCareProviderPhone = "(555)123-4567"
	state.Custom.EmergencyContactName = "Sam Doe"
	state.Custom.EmergencyContactRelationship = "Spouse"
	state.Custom.EmergencyContactPhone = "(555)765-4321"
	state.SelectionFor("22").Add("X-Ray")
	state.SelectionFor("22").Add("MRI")
	state.SetAnswer("30", `{"agreed":true,"timestamp":"2024-06-01T10:00:00Z","typedName":"Pat Doe","imageDataURL":"data:image/png;base64,iVBORw0KGgo="}`)
	return state
}

func answersByID(answers []FormAnswer) map[string]string {
	out := make(map[string]string, len(answers))
	for _, a := range answers {
		out[a.QuestionID] = a.Answer
	}
	return out
}

func TestBuildFormAnswers_Deterministic(t *testing.T) {
	form := sampleForm()
	state := completedState()

	first := BuildFormAnswers(form, state)
	second := BuildFormAnswers(form, state)

	assert.Equal(t, first, second)
}

func TestBuildFormAnswers_DateAndSelections(t *testing.T) {
	form := sampleForm()
	state := completedState()

	byID := answersByID(BuildFormAnswers(form, state))

	assert.Equal(t, "1990-07-04", byID["4"], "date parts join zero-padded")
	assert.Equal(t, "X-Ray, MRI", byID["22"], "selections keep insertion order")
	assert.Equal(t, `5'6"`, byID["7"])
	assert.Equal(t, "150", byID["8"])
	assert.Equal(t, "24.2", byID["9"])
}

func TestBuildFormAnswers_EmptyValuesOmitted(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")
	state.SetAnswer("2", "Pat")
	state.SetAnswer("13", "")

	answers := BuildFormAnswers(form, state)

	byID := answersByID(answers)
	assert.Equal(t, "Pat", byID["2"])
	assert.NotContains(t, byID, "13")
	assert.Len(t, answers, 1)
}

func TestBuildFormAnswers_SignatureFanOut(t *testing.T) {
	form := sampleForm()
	state := completedState()

	byID := answersByID(BuildFormAnswers(form, state))

	require.Contains(t, byID, "30")
	assert.Equal(t, "true", byID["30_agreed"])
	assert.Equal(t, "2024-06-01T10:00:00Z", byID["30_timestamp"])
	assert.Equal(t, "Pat Doe", byID["30_typed_name"])
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", byID["30_image"])
}

func TestBuildFormAnswers_LegacySignaturePassthrough(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")
	state.SetAnswer("30", "data:image/png;base64,iVBORw0KGgo=")

	byID := answersByID(BuildFormAnswers(form, state))

	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", byID["30"])
	assert.NotContains(t, byID, "30_agreed")
}

func TestBuildFormAnswers_SyntheticMerge(t *testing.T) {
	form := sampleForm()
	state := completedState()
	state.Custom.HospitalizedRecently = AnswerNo
	state.Custom.PTParticipation = AnswerYes

	byID := answersByID(BuildFormAnswers(form, state))

	// Emergency contact folds back into its schema question.
	assert.Equal(t, "Name: Sam Doe; Relationship: Spouse; Phone: (555)765-4321", byID["14"])
	assert.NotContains(t, byID, KeyEmergencyContactName)

	// Fields with no matching question land under their fixed keys.
	assert.Equal(t, "English", byID[KeyPrimaryLanguage])
	assert.Equal(t, "(555)123-4567", byID[KeyPrimaryCareProviderPhone])
	assert.Equal(t, AnswerNo, byID[KeyHospitalizedRecently])
	assert.Equal(t, AnswerYes, byID[KeyPTParticipation])
}

func TestBuildFormAnswers_OtherLanguageUsesDetail(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")
	state.Custom.PrimaryLanguage = OptionOther
	state.Custom.PrimaryLanguageOther = "Portuguese"

	byID := answersByID(BuildFormAnswers(form, state))

	assert.Equal(t, "Portuguese", byID[KeyPrimaryLanguage])
}

func TestBuildDocumentData(t *testing.T) {
	form := sampleForm()
	state := completedState()

	doc := BuildDocumentData(form, state)

	assert.Equal(t, "Pat", doc.FirstName)
	assert.Equal(t, "Doe", doc.LastName)
	assert.Equal(t, "1990-07-04", doc.DOB)
	assert.Equal(t, "X-Ray,MRI", doc.Answers["22"], "document sink joins without a space")
}

func TestParseSignature(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		structured bool
	}{
		{name: "structured", raw: `{"agreed":true,"typedName":"Pat"}`, structured: true},
		{name: "image only", raw: `{"imageDataURL":"data:image/png;base64,AA=="}`, structured: true},
		{name: "legacy data url", raw: "data:image/png;base64,AA==", structured: false},
		{name: "empty object", raw: "{}", structured: false},
		{name: "not json", raw: "{broken", structured: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseSignature(tt.raw)
			assert.Equal(t, tt.structured, ok)
		})
	}
}

func TestSelectionOrderAndJSON(t *testing.T) {
	sel := NewSelection("Tobacco", "Alcohol", "Tobacco")
	assert.Equal(t, []string{"Tobacco", "Alcohol"}, sel.Values())

	sel.Toggle("Alcohol")
	assert.Equal(t, []string{"Tobacco"}, sel.Values())

	sel.Toggle("Alcohol")
	assert.Equal(t, []string{"Tobacco", "Alcohol"}, sel.Values())
}

func TestNormalizeScaleQuestions(t *testing.T) {
	form := sampleForm()
	NormalizeScaleQuestions(form)

	q := form.FindQuestion(func(q Question) bool { return q.ID == "27" })
	require.NotNil(t, q)
	assert.Equal(t, []string{AnswerYes, AnswerNo}, q.Options)
	// Only the options change; the question keeps its upstream type.
	assert.Equal(t, ModRadio, q.Type)

	// Unrelated questions keep their options.
	sex := form.FindQuestion(func(q Question) bool { return q.ID == "6" })
	assert.NotEqual(t, []string{AnswerYes, AnswerNo}, sex.Options)
}
