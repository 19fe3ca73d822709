package formflow

// yesNoLabelFragments identify screening questions the upstream form
// defines as 1-to-5 scales but the flow presents as plain Yes/No choices.
var yesNoLabelFragments = []string{
	"surgery upcoming",
	"opioid medication",
	"therapist or counselor",
	"unhealthy relationship with alcohol",
}

// NormalizeScaleQuestions swaps the option list of scale questions that only
// need a binary answer for plain Yes/No. The question type is left alone.
// Applied once to every fetched form before it is served or cached.
func NormalizeScaleQuestions(form *Form) {
	if form == nil {
		return
	}
	for i := range form.Questions {
		q := &form.Questions[i]
		if q.DisplayOnly() {
			continue
		}
		for _, fragment := range yesNoLabelFragments {
			if labelContainsFold(*q, fragment) {
				q.Options = []string{AnswerYes, AnswerNo}
				break
			}
		}
	}
}
