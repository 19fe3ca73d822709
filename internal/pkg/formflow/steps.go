package formflow

// TotalSteps is the number of wizard pages the form is partitioned into.
const TotalSteps = 6

// introMarker identifies the welcome text that anchors step 1.
const introMarker = "Thank you for taking"

// step5RemovedIDs lists questions that still exist in the upstream schema
// but were taken out of the flow. They never render and never validate.
var step5RemovedIDs = map[string]struct{}{
	"19056499": {}, // "anything more you would like your providers to know"
	"19056490": {}, // duplicate of the other-procedures comment box
}

// QuestionsForStep partitions the form into the subset rendered on the
// given wizard step. Partitioning is label- and position-based because the
// upstream schema carries no step metadata. Unknown steps yield nil.
func QuestionsForStep(form *Form, step int, state *AnswerState) []Question {
	if form == nil {
		return nil
	}
	switch step {
	case 1:
		return filterQuestions(form.Questions, func(q Question) bool {
			return labelContains(q, introMarker)
		})
	case 2:
		return filterQuestions(form.Questions, func(q Question) bool {
			return labelContainsFold(q, "date of birth") ||
				q.Type == ModLocation ||
				q.Label == "Sex" ||
				q.Type == ModHeight || q.Type == ModWeight || q.Type == ModBMIResult ||
				labelContainsFold(q, "primary care physician")
		})
	case 3:
		return filterQuestions(form.Questions, func(q Question) bool {
			if q.Type == ModLocation {
				return false
			}
			return labelContainsFold(q, "relationship status") ||
				labelContainsFold(q, "employment status") ||
				labelContainsFold(q, "occupation") ||
				labelContainsFold(q, "emergency contact")
		})
	case 4:
		section := sliceBetween(form.Questions, SentinelPainAssessment, SentinelMedicalHistory)
		return filterQuestions(section, func(q Question) bool {
			return q.Type != ModLocation
		})
	case 5:
		return step5Questions(form, state)
	case 6:
		return filterQuestions(form.Questions, func(q Question) bool {
			return q.Type == ModSignature || labelContains(q, SentinelPatientAgreement)
		})
	default:
		return nil
	}
}

// step5Questions covers the section from MEDICAL HISTORY to the end of the
// form, minus fields that belong to other steps and minus removed
// questions. The free-text "If other, list them here" box only appears once
// the procedures checkbox includes Other.
func step5Questions(form *Form, state *AnswerState) []Question {
	section := sliceFrom(form.Questions, SentinelMedicalHistory)
	return filterQuestions(section, func(q Question) bool {
		if _, removed := step5RemovedIDs[q.ID]; removed {
			return false
		}
		if q.Type == ModLocation || q.Type == ModSignature {
			return false
		}
		if labelContains(q, SentinelPatientAgreement) {
			return false
		}
		if labelContainsFold(q, "if other, list them here") {
			return otherProceduresSelected(form, state)
		}
		return true
	})
}

// otherProceduresSelected reports whether the procedures checkbox currently
// includes the Other option.
func otherProceduresSelected(form *Form, state *AnswerState) bool {
	if state == nil {
		return false
	}
	procedures := form.FindQuestion(func(q Question) bool {
		return q.Type == ModCheckbox && labelContainsFold(q, "any of the following procedures")
	})
	if procedures == nil {
		return false
	}
	return state.Selections[procedures.ID].Has(OptionOther)
}

func filterQuestions(questions []Question, keep func(Question) bool) []Question {
	var out []Question
	for _, q := range questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// sliceBetween returns the questions from the start sentinel (inclusive) up
// to the end sentinel (exclusive). A missing start yields nil; a missing
// end runs to the end of the list.
func sliceBetween(questions []Question, startLabel, endLabel string) []Question {
	start := indexOfLabel(questions, startLabel)
	if start < 0 {
		return nil
	}
	end := indexOfLabel(questions, endLabel)
	if end < 0 || end < start {
		end = len(questions)
	}
	return questions[start:end]
}

// sliceFrom returns the questions from the sentinel (inclusive) to the end.
func sliceFrom(questions []Question, startLabel string) []Question {
	start := indexOfLabel(questions, startLabel)
	if start < 0 {
		return nil
	}
	return questions[start:]
}
