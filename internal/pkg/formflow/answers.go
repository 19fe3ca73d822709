package formflow

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Synthetic field keys. These fields are rendered by the client but have no
// backing question in the upstream schema; they are merged into submissions
// under these keys unless a matching real question can be found.
const (
	KeyPrimaryLanguage              = "primary_language"
	KeyPrimaryLanguageOther         = "primary_language_other"
	KeyPrimaryCareProviderPhone     = "primary_care_provider_phone"
	KeyEmergencyContactName         = "emergency_contact_name"
	KeyEmergencyContactRelationship = "emergency_contact_relationship"
	KeyEmergencyContactPhone        = "emergency_contact_phone"
	KeyHospitalizedRecently         = "hospitalized_recently"
	KeyPTParticipation              = "pt_participation"
	KeyPhysicalActivity             = "physical_activity"
	KeyPhysicalActivityDescription  = "physical_activity_description"
)

// Option literals that carry special meaning for visibility rules.
const (
	OptionOther       = "Other"
	OptionNoneOfAbove = "None of the above"
	AnswerYes         = "Yes"
	AnswerNo          = "No"
)

// DateParts holds a date as its three entry fields. Values are kept as the
// raw strings the client sent; ISO re-pads them on the way out.
type DateParts struct {
	Month string `json:"month"`
	Day   string `json:"day"`
	Year  string `json:"year"`
}

// Complete reports whether all three parts are present.
func (d *DateParts) Complete() bool {
	return d != nil && d.Month != "" && d.Day != "" && d.Year != ""
}

// ISO renders the date as YYYY-MM-DD with zero-padded month and day.
func (d *DateParts) ISO() string {
	m, _ := strconv.Atoi(d.Month)
	day, _ := strconv.Atoi(d.Day)
	return fmt.Sprintf("%s-%02d-%02d", d.Year, m, day)
}

// Selection is an insertion-ordered set of chosen checkbox options. It
// round-trips JSON as a plain array so snapshots stay readable.
type Selection struct {
	values []string
}

// NewSelection builds a selection from values, dropping duplicates while
// keeping first-seen order.
func NewSelection(values ...string) *Selection {
	s := &Selection{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add appends value if not already present.
func (s *Selection) Add(value string) {
	if s.Has(value) {
		return
	}
	s.values = append(s.values, value)
}

// Remove deletes value, preserving the order of the rest.
func (s *Selection) Remove(value string) {
	for i, v := range s.values {
		if v == value {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return
		}
	}
}

// Toggle adds value when absent and removes it when present.
func (s *Selection) Toggle(value string) {
	if s.Has(value) {
		s.Remove(value)
	} else {
		s.Add(value)
	}
}

// Has reports membership.
func (s *Selection) Has(value string) bool {
	if s == nil {
		return false
	}
	for _, v := range s.values {
		if v == value {
			return true
		}
	}
	return false
}

// Values returns the selected options in insertion order.
func (s *Selection) Values() []string {
	if s == nil {
		return nil
	}
	return s.values
}

// Len returns the number of selected options.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool { return s.Len() == 0 }

// Join renders the selection as a single string with the given separator.
func (s *Selection) Join(sep string) string {
	return strings.Join(s.Values(), sep)
}

func (s *Selection) MarshalJSON() ([]byte, error) {
	if s == nil || s.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.values)
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.values = nil
	for _, v := range values {
		s.Add(v)
	}
	return nil
}

// CustomFields carries the synthetic answers that have no backing question
// in the upstream schema.
type CustomFields struct {
	PrimaryLanguage              string `json:"primary_language,omitempty"`
	PrimaryLanguageOther         string `json:"primary_language_other,omitempty"`
	PrimaryCareProviderPhone     string `json:"primary_care_provider_phone,omitempty"`
	EmergencyContactName         string `json:"emergency_contact_name,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty"`
	HospitalizedRecently         string `json:"hospitalized_recently,omitempty"`
	PTParticipation              string `json:"pt_participation,omitempty"`
	PhysicalActivity             string `json:"physical_activity,omitempty"`
	PhysicalActivityDescription  string `json:"physical_activity_description,omitempty"`
}

// AnswerState is the full in-progress answer set for one patient. It is the
// unit of progress persistence and the input to validation and submission
// building.
type AnswerState struct {
	PatientID    string                `json:"patient_id"`
	CurrentStep  int                   `json:"current_step"`
	Answers      map[string]string     `json:"answers"`
	Dates        map[string]*DateParts `json:"dates"`
	Selections   map[string]*Selection `json:"selections"`
	HeightFeet   string                `json:"height_feet,omitempty"`
	HeightInches string                `json:"height_inches,omitempty"`
	Weight       string                `json:"weight,omitempty"`
	Custom       CustomFields          `json:"custom"`
}

// NewAnswerState returns an empty state for the given patient.
func NewAnswerState(patientID string) *AnswerState {
	return &AnswerState{
		PatientID:   patientID,
		CurrentStep: 1,
		Answers:     map[string]string{},
		Dates:       map[string]*DateParts{},
		Selections:  map[string]*Selection{},
	}
}

// Answer returns the scalar answer for a question id, or "".
func (s *AnswerState) Answer(id string) string {
	if s.Answers == nil {
		return ""
	}
	return s.Answers[id]
}

// SetAnswer records a scalar answer.
func (s *AnswerState) SetAnswer(id, value string) {
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}
	s.Answers[id] = value
}

// DateFor returns the date parts for a question id, allocating on first use.
func (s *AnswerState) DateFor(id string) *DateParts {
	if s.Dates == nil {
		s.Dates = map[string]*DateParts{}
	}
	if s.Dates[id] == nil {
		s.Dates[id] = &DateParts{}
	}
	return s.Dates[id]
}

// SelectionFor returns the selection for a question id, allocating on first
// use.
func (s *AnswerState) SelectionFor(id string) *Selection {
	if s.Selections == nil {
		s.Selections = map[string]*Selection{}
	}
	if s.Selections[id] == nil {
		s.Selections[id] = &Selection{}
	}
	return s.Selections[id]
}

// HeightComplete reports whether both height parts were entered.
func (s *AnswerState) HeightComplete() bool {
	return s.HeightFeet != "" && s.HeightInches != ""
}

// TotalHeightInches converts the two height fields to inches.
func (s *AnswerState) TotalHeightInches() int {
	feet, _ := strconv.Atoi(s.HeightFeet)
	inches, _ := strconv.Atoi(s.HeightInches)
	return feet*12 + inches
}

// BMI computes body mass index from the imperial height and weight fields.
// It returns 0 when the inputs are incomplete or out of range.
func (s *AnswerState) BMI() float64 {
	if !s.HeightComplete() || s.Weight == "" {
		return 0
	}
	totalInches := s.TotalHeightInches()
	weight, err := strconv.ParseFloat(s.Weight, 64)
	if err != nil || totalInches <= 0 || weight <= 0 {
		return 0
	}
	return weight / float64(totalInches*totalInches) * 703
}
