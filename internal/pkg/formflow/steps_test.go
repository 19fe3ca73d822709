package formflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionsForStep_Partition(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")

	tests := []struct {
		name string
		step int
		want []string
	}{
		{name: "intro only", step: 1, want: []string{"1"}},
		{name: "demographics", step: 2, want: []string{"4", "5", "6", "7", "8", "9", "10"}},
		{name: "background excludes location", step: 3, want: []string{"11", "12", "13", "14"}},
		{name: "pain assessment slice", step: 4, want: []string{"15", "16", "17", "18"}},
		{name: "medical history minus removed and conditional", step: 5, want: []string{"19", "20", "21", "22", "24", "25", "26", "27"}},
		{name: "agreement and signature", step: 6, want: []string{"29", "30"}},
		{name: "unknown step", step: 7, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuestionsForStep(form, tt.step, state)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, questionIDs(got))
		})
	}
}

func TestQuestionsForStep_OtherProceduresConditional(t *testing.T) {
	form := sampleForm()

	state := NewAnswerState("patient-1")
	state.SelectionFor("22").Add("MRI")
	assert.NotContains(t, questionIDs(QuestionsForStep(form, 5, state)), "23")

	state.SelectionFor("22").Add(OptionOther)
	assert.Contains(t, questionIDs(QuestionsForStep(form, 5, state)), "23")
}

func TestQuestionsForStep_RemovedQuestionsNeverRender(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")
	for step := 1; step <= TotalSteps; step++ {
		assert.NotContains(t, questionIDs(QuestionsForStep(form, step, state)), "19056499", "step %d", step)
	}
}

func TestQuestionsForStep_MissingSentinels(t *testing.T) {
	form := &Form{Questions: []Question{
		{ID: "2", Label: "First name", Type: ModText},
	}}
	state := NewAnswerState("patient-1")

	assert.Nil(t, QuestionsForStep(form, 4, state))
	assert.Nil(t, QuestionsForStep(form, 5, state))
}

func TestQuestionsForStep_PainSectionExcludesAddress(t *testing.T) {
	form := &Form{Questions: []Question{
		{ID: "s", Label: "PAIN ASSESSMENT", Type: ModLabel},
		{ID: "p1", Label: "Please rate your current pain level", Type: ModRadio},
		{ID: "loc", Label: "Where did the injury occur?", Type: ModLocation},
		{ID: "p2", Label: "Where is your pain located?", Type: ModTextarea},
		{ID: "e", Label: "MEDICAL HISTORY", Type: ModLabel},
	}}
	state := NewAnswerState("patient-1")

	assert.Equal(t, []string{"s", "p1", "p2"}, questionIDs(QuestionsForStep(form, 4, state)))
}

func TestQuestionsForStep_OpenEndedPainSection(t *testing.T) {
	// Without a MEDICAL HISTORY sentinel the pain section runs to the end.
	form := &Form{Questions: []Question{
		{ID: "a", Label: "PAIN ASSESSMENT", Type: ModLabel},
		{ID: "b", Label: "Please rate your current pain level", Type: ModRadio},
	}}
	state := NewAnswerState("patient-1")

	assert.Equal(t, []string{"a", "b"}, questionIDs(QuestionsForStep(form, 4, state)))
}
