package formflow

import (
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// FormAnswer is one flattened answer as the clinical-records API expects
// it.
type FormAnswer struct {
	QuestionID string `json:"custom_module_id"`
	Answer     string `json:"answer"`
}

// SignatureData is the structured payload a signature capture produces. A
// plain data URL string is the legacy shape and is passed through as-is.
type SignatureData struct {
	Agreed       bool   `json:"agreed"`
	Timestamp    string `json:"timestamp"`
	TypedName    string `json:"typedName"`
	ImageDataURL string `json:"imageDataURL"`
}

// ParseSignature attempts to decode a raw signature answer as structured
// JSON. It returns ok=false for legacy data-URL answers and anything else
// that is not a signature object.
func ParseSignature(raw string) (*SignatureData, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	var sig SignatureData
	if err := json.Unmarshal([]byte(trimmed), &sig); err != nil {
		return nil, false
	}
	if !sig.Agreed && sig.TypedName == "" && sig.ImageDataURL == "" {
		return nil, false
	}
	return &sig, true
}

// DocumentData is the denormalized view of a finished intake, built for the
// secondary document store. Demographics are lifted out of the answers by
// label so the admin dashboard can list submissions without re-walking the
// schema.
type DocumentData struct {
	FirstName string
	LastName  string
	DOB       string
	Email     string
	Phone     string
	Answers   map[string]string
}

// BuildFormAnswers flattens the answer state into the submission payload
// for the clinical-records API. The result is deterministic for a given
// form and state: schema order first, then remaining synthetic and fan-out
// keys sorted, with empty values dropped. Building twice from the same
// inputs yields identical output.
func BuildFormAnswers(form *Form, state *AnswerState) []FormAnswer {
	combined := flattenAnswers(form, state, ", ")

	var answers []FormAnswer
	emitted := map[string]struct{}{}
	for _, q := range form.Questions {
		if v, ok := combined[q.ID]; ok && v != "" {
			answers = append(answers, FormAnswer{QuestionID: q.ID, Answer: v})
			emitted[q.ID] = struct{}{}
		}
	}

	var rest []string
	for key, v := range combined {
		if _, done := emitted[key]; done || v == "" {
			continue
		}
		rest = append(rest, key)
	}
	sort.Strings(rest)
	for _, key := range rest {
		answers = append(answers, FormAnswer{QuestionID: key, Answer: combined[key]})
	}
	return answers
}

// BuildDocumentData assembles the document-store view of the state: the
// same flattened answers keyed by question id, joined with "," for
// multi-select values, plus demographics extracted by label scan.
func BuildDocumentData(form *Form, state *AnswerState) DocumentData {
	doc := DocumentData{Answers: flattenAnswers(form, state, ",")}
	for _, q := range form.Questions {
		value := doc.Answers[q.ID]
		if value == "" {
			continue
		}
		switch {
		case labelContainsFold(q, "first name"):
			doc.FirstName = value
		case labelContainsFold(q, "last name"):
			doc.LastName = value
		case labelContainsFold(q, "date of birth"):
			doc.DOB = value
		case labelContainsFold(q, "email"):
			doc.Email = value
		case q.Type != ModLocation &&
			labelContainsFold(q, "phone") &&
			!labelContainsFold(q, "primary care") &&
			!labelContainsFold(q, "emergency"):
			doc.Phone = value
			if IsValidPhoneNumber(value) {
				doc.Phone = FormatPhoneNumber(value)
			}
		}
	}
	return doc
}

// flattenAnswers merges scalar answers, dates, selections, signatures and
// synthetic fields into one id-to-value map. selectionSep joins checkbox
// values; the two sinks use different separators.
func flattenAnswers(form *Form, state *AnswerState, selectionSep string) map[string]string {
	combined := make(map[string]string, len(state.Answers))
	for id, v := range state.Answers {
		combined[id] = v
	}
	for id, parts := range state.Dates {
		if parts.Complete() {
			combined[id] = parts.ISO()
		}
	}
	for id, sel := range state.Selections {
		if !sel.Empty() {
			combined[id] = sel.Join(selectionSep)
		}
	}
	if state.HeightComplete() {
		mergeHeightAnswers(form, state, combined)
	}
	fanOutSignatures(form, combined)
	mergeSyntheticAnswers(form, state, combined)
	return combined
}

// mergeHeightAnswers writes the height composite's parts back onto their
// schema questions.
func mergeHeightAnswers(form *Form, state *AnswerState, combined map[string]string) {
	for _, q := range form.Questions {
		switch q.Type {
		case ModHeight:
			combined[q.ID] = state.HeightFeet + "'" + state.HeightInches + `"`
		case ModWeight:
			if state.Weight != "" {
				combined[q.ID] = state.Weight
			}
		case ModBMIResult:
			if bmi := state.BMI(); bmi > 0 {
				combined[q.ID] = formatBMI(bmi)
			}
		}
	}
}

// formatBMI renders the index with one decimal place, dropping a trailing
// ".0".
func formatBMI(bmi float64) string {
	s := strconv.FormatFloat(bmi, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// fanOutSignatures inspects signature answers; structured payloads keep the
// original JSON under the question id and additionally emit their parts
// under suffixed keys so the downstream record stays searchable.
func fanOutSignatures(form *Form, combined map[string]string) {
	for _, q := range form.Questions {
		if q.Type != ModSignature {
			continue
		}
		raw, ok := combined[q.ID]
		if !ok {
			continue
		}
		sig, structured := ParseSignature(raw)
		if !structured {
			continue
		}
		if sig.Agreed {
			combined[q.ID+"_agreed"] = "true"
		}
		if sig.Timestamp != "" {
			combined[q.ID+"_timestamp"] = sig.Timestamp
		}
		if sig.TypedName != "" {
			combined[q.ID+"_typed_name"] = sig.TypedName
		}
		if sig.ImageDataURL != "" {
			combined[q.ID+"_image"] = sig.ImageDataURL
		}
	}
}

// mergeSyntheticAnswers folds the client-only fields into the combined map.
// Each tries to land on a heuristically-matched real question first and
// falls back to its fixed key, so forms that do carry the field natively
// get the value where the API expects it.
func mergeSyntheticAnswers(form *Form, state *AnswerState, combined map[string]string) {
	putSynthetic := func(value, fallbackKey string, match func(Question) bool) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		if q := form.FindQuestion(match); q != nil {
			combined[q.ID] = value
			return
		}
		combined[fallbackKey] = value
	}

	language := state.Custom.PrimaryLanguage
	if language == OptionOther {
		language = state.Custom.PrimaryLanguageOther
	}
	putSynthetic(language, KeyPrimaryLanguage, func(q Question) bool {
		return labelContainsFold(q, "primary language")
	})

	putSynthetic(state.Custom.PrimaryCareProviderPhone, KeyPrimaryCareProviderPhone, func(q Question) bool {
		return labelContainsFold(q, "primary care") && labelContainsFold(q, "phone")
	})

	mergeEmergencyContact(form, state, combined)

	putSynthetic(state.Custom.HospitalizedRecently, KeyHospitalizedRecently, func(q Question) bool {
		return !q.DisplayOnly() && labelContainsFold(q, "hospitalized")
	})
	putSynthetic(state.Custom.PTParticipation, KeyPTParticipation, func(q Question) bool {
		return q.Type == ModRadio && labelContainsFold(q, "physical therapy")
	})
	putSynthetic(state.Custom.PhysicalActivity, KeyPhysicalActivity, func(q Question) bool {
		return q.Type == ModRadio && labelContainsFold(q, "physical activity")
	})
	if state.Custom.PhysicalActivity == AnswerYes {
		putSynthetic(state.Custom.PhysicalActivityDescription, KeyPhysicalActivityDescription, func(q Question) bool {
			return q.Type == ModTextarea && labelContainsFold(q, "physical activity")
		})
	}
}

// mergeEmergencyContact joins the three split fields back into the single
// textarea the schema defines, when present.
func mergeEmergencyContact(form *Form, state *AnswerState, combined map[string]string) {
	var parts []string
	if v := strings.TrimSpace(state.Custom.EmergencyContactName); v != "" {
		parts = append(parts, "Name: "+v)
	}
	if v := strings.TrimSpace(state.Custom.EmergencyContactRelationship); v != "" {
		parts = append(parts, "Relationship: "+v)
	}
	if v := strings.TrimSpace(state.Custom.EmergencyContactPhone); v != "" {
		parts = append(parts, "Phone: "+v)
	}
	if len(parts) == 0 {
		return
	}
	if q := form.FindQuestion(func(q Question) bool {
		return !q.DisplayOnly() && labelContainsFold(q, "emergency contact")
	}); q != nil {
		combined[q.ID] = strings.Join(parts, "; ")
		return
	}
	if v := strings.TrimSpace(state.Custom.EmergencyContactName); v != "" {
		combined[KeyEmergencyContactName] = v
	}
	if v := strings.TrimSpace(state.Custom.EmergencyContactRelationship); v != "" {
		combined[KeyEmergencyContactRelationship] = v
	}
	if v := strings.TrimSpace(state.Custom.EmergencyContactPhone); v != "" {
		combined[KeyEmergencyContactPhone] = v
	}
}
