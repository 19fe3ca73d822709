package formflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placementNumber(t *testing.T, layout *StepLayout, key string) string {
	t.Helper()
	p, ok := layout.PlacementFor(key)
	require.True(t, ok, "no placement for %s", key)
	require.False(t, p.Hidden, "%s unexpectedly hidden", key)
	return p.Number
}

func TestPlaceStep_SyntheticFieldsShiftNumbering(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")

	layout := PlaceStep(form, 2, state)

	assert.Equal(t, "1", placementNumber(t, layout, "4"))
	assert.Equal(t, "2", placementNumber(t, layout, "5"))
	assert.Equal(t, "3", placementNumber(t, layout, "6"))
	assert.Equal(t, "4", placementNumber(t, layout, "7"))
	assert.Equal(t, "5", placementNumber(t, layout, KeyPrimaryLanguage))
	assert.Equal(t, "6", placementNumber(t, layout, "10"))
	assert.Equal(t, "7", placementNumber(t, layout, KeyPrimaryCareProviderPhone))

	// Weight and BMI fold into the height composite.
	for _, id := range []string{"8", "9"} {
		p, ok := layout.PlacementFor(id)
		require.True(t, ok)
		assert.True(t, p.Hidden)
	}
}

func TestPlaceStep_LanguageDetailVisibility(t *testing.T) {
	form := sampleForm()

	state := NewAnswerState("patient-1")
	layout := PlaceStep(form, 2, state)
	p, ok := layout.PlacementFor(KeyPrimaryLanguageOther)
	require.True(t, ok)
	assert.True(t, p.Hidden)

	state.Custom.PrimaryLanguage = OptionOther
	layout = PlaceStep(form, 2, state)
	p, _ = layout.PlacementFor(KeyPrimaryLanguageOther)
	assert.False(t, p.Hidden)
	// Detail rows never take a slot in the sequence.
	assert.Empty(t, p.Number)
	assert.Equal(t, "6", placementNumber(t, layout, "10"))
}

func TestPlaceStep_SectionHeaderHidden(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")

	layout := PlaceStep(form, 4, state)
	p, ok := layout.PlacementFor("15")
	require.True(t, ok)
	assert.True(t, p.Hidden)

	assert.Equal(t, "1", placementNumber(t, layout, "16"))
	assert.Equal(t, "2", placementNumber(t, layout, "17"))
	assert.Equal(t, "3", placementNumber(t, layout, "18"))
}

func TestPlaceStep_SubQuestionNumbersAreFixed(t *testing.T) {
	form := sampleForm()

	t.Run("surgery detail hidden until affirmed", func(t *testing.T) {
		state := NewAnswerState("patient-1")
		layout := PlaceStep(form, 5, state)
		p, ok := layout.PlacementFor("21")
		require.True(t, ok)
		assert.True(t, p.Hidden)

		state.Custom.HospitalizedRecently = AnswerYes
		layout = PlaceStep(form, 5, state)
		assert.Equal(t, "2b", placementNumber(t, layout, "21"))
		// Surrounding sequence stays identical either way.
		assert.Equal(t, "3", placementNumber(t, layout, "22"))
	})

	t.Run("other procedures detail", func(t *testing.T) {
		state := NewAnswerState("patient-1")
		state.SelectionFor("22").Add(OptionOther)
		layout := PlaceStep(form, 5, state)
		assert.Equal(t, "5b", placementNumber(t, layout, "23"))
	})

	t.Run("substance detail", func(t *testing.T) {
		state := NewAnswerState("patient-1")
		layout := PlaceStep(form, 5, state)
		p, _ := layout.PlacementFor("26")
		assert.True(t, p.Hidden)

		state.SelectionFor("25").Add(OptionNoneOfAbove)
		layout = PlaceStep(form, 5, state)
		p, _ = layout.PlacementFor("26")
		assert.True(t, p.Hidden, "opt-out alone keeps the detail hidden")

		state.SelectionFor("25").Add("Alcohol")
		layout = PlaceStep(form, 5, state)
		assert.Equal(t, "8b", placementNumber(t, layout, "26"))
	})
}

func TestPlaceStep_MedicalHistorySequence(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")

	layout := PlaceStep(form, 5, state)

	assert.Equal(t, "1", placementNumber(t, layout, "20"))
	assert.Equal(t, "2", placementNumber(t, layout, KeyHospitalizedRecently))
	assert.Equal(t, "3", placementNumber(t, layout, "22"))
	assert.Equal(t, "4", placementNumber(t, layout, "24"))
	assert.Equal(t, "5", placementNumber(t, layout, KeyPTParticipation))
	assert.Equal(t, "6", placementNumber(t, layout, KeyPhysicalActivity))
	assert.Equal(t, "7", placementNumber(t, layout, "25"))
	assert.Equal(t, "8", placementNumber(t, layout, "27"))
}

func TestPlaceStep_SignatureStep(t *testing.T) {
	form := sampleForm()
	state := NewAnswerState("patient-1")

	layout := PlaceStep(form, 6, state)

	p, ok := layout.PlacementFor("29")
	require.True(t, ok)
	assert.False(t, p.Hidden)
	assert.Empty(t, p.Number)
	assert.Equal(t, "1", placementNumber(t, layout, "30"))
}
