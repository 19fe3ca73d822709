package formflow

import "strconv"

// Placement describes how a single step entry renders: hidden entirely, or
// visible with an optional display number ("3", "5b", or "" for unnumbered
// text).
type Placement struct {
	Hidden bool   `json:"hidden"`
	Number string `json:"number,omitempty"`
}

// Entry is one renderable unit of a step: either a real schema question or
// a synthetic client-side field.
type Entry struct {
	Question  *Question `json:"question,omitempty"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Synthetic bool      `json:"synthetic"`
	Placement Placement `json:"placement"`
}

// StepLayout is the fully-resolved rendering plan for one step: entries in
// render order with their placements decided.
type StepLayout struct {
	Step    int     `json:"step"`
	Entries []Entry `json:"entries"`

	byKey map[string]Placement
}

// PlacementFor looks up the placement of a question id or synthetic key.
func (l *StepLayout) PlacementFor(key string) (Placement, bool) {
	p, ok := l.byKey[key]
	return p, ok
}

// subQuestionRule marks a question as a conditionally-visible follow-up to
// another answer. Sub-questions never consume a sequence number; they carry
// a fixed letter-suffixed display number so the numbering of everything
// around them is stable whether or not they are shown.
type subQuestionRule struct {
	match   func(Question) bool
	number  string
	visible func(*Form, *AnswerState) bool
}

var subQuestionRules = []subQuestionRule{
	{
		// Details of a recent surgery or hospitalization, asked only
		// after an affirmative screen.
		match: func(q Question) bool {
			return labelContainsFold(q, "surgery or hospitalization")
		},
		number: "2b",
		visible: func(_ *Form, s *AnswerState) bool {
			return s != nil && s.Custom.HospitalizedRecently == AnswerYes
		},
	},
	{
		// Free-text procedure list behind the Other checkbox option.
		match: func(q Question) bool {
			return labelContainsFold(q, "if other, list them here")
		},
		number:  "5b",
		visible: otherProceduresSelected,
	},
	{
		// Substance-use frequency follow-up. Hidden until something is
		// checked, and also when the only selection is the opt-out.
		match: func(q Question) bool {
			return labelContainsFold(q, "how much and how often")
		},
		number:  "8b",
		visible: substanceDetailVisible,
	},
}

func substanceDetailVisible(form *Form, state *AnswerState) bool {
	if state == nil {
		return false
	}
	substances := form.FindQuestion(func(q Question) bool {
		return q.Type == ModCheckbox && labelContainsFold(q, "use any of the following")
	})
	if substances == nil {
		return false
	}
	sel := state.Selections[substances.ID]
	if sel.Empty() {
		return false
	}
	return !(sel.Len() == 1 && sel.Has(OptionNoneOfAbove))
}

// syntheticField declares a client-side field inserted into a step after an
// anchor question. Numbered fields take a slot in the step's sequence,
// shifting every question after them by one; unnumbered ones are detail
// rows hanging off the previous entry.
type syntheticField struct {
	step     int
	key      string
	label    string
	numbered bool
	after    func(Question) bool
	visible  func(*AnswerState) bool
}

var syntheticFields = []syntheticField{
	{
		step:     2,
		key:      KeyPrimaryLanguage,
		label:    "Primary Language",
		numbered: true,
		after:    func(q Question) bool { return q.Type == ModBMIResult },
	},
	{
		step:  2,
		key:   KeyPrimaryLanguageOther,
		label: "Specify your primary language",
		after: func(q Question) bool { return q.Type == ModBMIResult },
		visible: func(s *AnswerState) bool {
			return s != nil && s.Custom.PrimaryLanguage == OptionOther
		},
	},
	{
		step:     2,
		key:      KeyPrimaryCareProviderPhone,
		label:    "Primary care provider phone number",
		numbered: true,
		after:    func(q Question) bool { return labelContainsFold(q, "primary care physician") },
	},
	{
		step:     3,
		key:      KeyEmergencyContactRelationship,
		label:    "Emergency contact relationship",
		numbered: true,
		after:    func(q Question) bool { return labelContainsFold(q, "emergency contact") },
	},
	{
		step:     3,
		key:      KeyEmergencyContactPhone,
		label:    "Emergency contact phone number",
		numbered: true,
		after:    func(q Question) bool { return labelContainsFold(q, "emergency contact") },
	},
	{
		step:     5,
		key:      KeyHospitalizedRecently,
		label:    "Have you had any surgeries or hospitalizations recently?",
		numbered: true,
		after:    func(q Question) bool { return labelContainsFold(q, "allergies") },
	},
	{
		step:     5,
		key:      KeyPTParticipation,
		label:    "Are you currently participating in physical therapy?",
		numbered: true,
		after:    func(q Question) bool { return labelContainsFold(q, "physical therapy") },
	},
	{
		step:     5,
		key:      KeyPhysicalActivity,
		label:    "Do you take part in regular physical activity?",
		numbered: true,
		after:    func(q Question) bool { return labelContainsFold(q, "physical therapy") },
	},
	{
		step:  5,
		key:   KeyPhysicalActivityDescription,
		label: "Describe your regular physical activity",
		after: func(q Question) bool { return labelContainsFold(q, "physical therapy") },
		visible: func(s *AnswerState) bool {
			return s != nil && s.Custom.PhysicalActivity == AnswerYes
		},
	},
}

// PlaceStep resolves the full layout of one step: the step's questions
// interleaved with the synthetic fields declared for it, each entry carrying
// its visibility and display number. Rules apply first-match-wins, in the
// order: sub-question rules, merged-composite and section-header hiding,
// then default sequential numbering.
func PlaceStep(form *Form, step int, state *AnswerState) *StepLayout {
	layout := &StepLayout{Step: step, byKey: map[string]Placement{}}
	questions := QuestionsForStep(form, step, state)

	counter := 0
	appendEntry := func(e Entry) {
		layout.Entries = append(layout.Entries, e)
		layout.byKey[e.Key] = e.Placement
	}

	appendSynthetics := func(anchor Question) {
		for _, sf := range syntheticFields {
			if sf.step != step || !sf.after(anchor) {
				continue
			}
			entry := Entry{Key: sf.key, Label: sf.label, Synthetic: true}
			switch {
			case sf.visible != nil && !sf.visible(state):
				entry.Placement = Placement{Hidden: true}
			case sf.numbered:
				counter++
				entry.Placement = Placement{Number: strconv.Itoa(counter)}
			}
			appendEntry(entry)
		}
	}

	for i := range questions {
		q := questions[i]
		entry := Entry{Question: &questions[i], Key: q.ID, Label: q.Label}

		switch {
		case matchSubQuestion(q) != nil:
			rule := matchSubQuestion(q)
			if rule.visible(form, state) {
				entry.Placement = Placement{Number: rule.number}
			} else {
				entry.Placement = Placement{Hidden: true}
			}
		case q.Type == ModWeight || q.Type == ModBMIResult:
			// Folded into the height composite entry.
			entry.Placement = Placement{Hidden: true}
		case stepHeaderLabel(q, step):
			// The section sentinel repeats the page title; drop it.
			entry.Placement = Placement{Hidden: true}
		case q.DisplayOnly():
			entry.Placement = Placement{}
		default:
			counter++
			entry.Placement = Placement{Number: strconv.Itoa(counter)}
		}

		appendEntry(entry)
		appendSynthetics(q)
	}
	return layout
}

func matchSubQuestion(q Question) *subQuestionRule {
	for i := range subQuestionRules {
		if subQuestionRules[i].match(q) {
			return &subQuestionRules[i]
		}
	}
	return nil
}

// stepHeaderLabel reports whether the question is the sentinel heading of
// the step it opens.
func stepHeaderLabel(q Question, step int) bool {
	switch step {
	case 4:
		return q.Label == SentinelPainAssessment
	case 5:
		return q.Label == SentinelMedicalHistory
	default:
		return false
	}
}
