package models

// IntakeSubmission is the document-store record of one intake, written as a
// draft while the patient works through the form and flipped to completed
// once the clinical-records submission succeeds.
type IntakeSubmission struct {
	ID                string            `json:"id" bson:"_id,omitempty"`
	PatientHealthieID string            `json:"patientHealthieId" bson:"patientHealthieId"`
	FormID            string            `json:"formId" bson:"formId"`
	FirstName         string            `json:"firstName" bson:"firstName"`
	LastName          string            `json:"lastName" bson:"lastName"`
	DateOfBirth       string            `json:"dateOfBirth" bson:"dateOfBirth"`
	Email             string            `json:"email,omitempty" bson:"email,omitempty"`
	Phone             string            `json:"phone,omitempty" bson:"phone,omitempty"`
	Status            string            `json:"status" bson:"status"`
	SchemaVersion     string            `json:"schemaVersion" bson:"schemaVersion"`
	FormAnswerGroupID string            `json:"formAnswerGroupId,omitempty" bson:"formAnswerGroupId,omitempty"`
	SignatureObject   string            `json:"signatureObject,omitempty" bson:"signatureObject,omitempty"`
	FormData          map[string]string `json:"formData" bson:"formData"`
	TimeModel         `bson:",inline"`
}
