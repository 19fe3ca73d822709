package formflow

// sampleForm mirrors the shape of the production intake instrument: intro
// text, demographics, section sentinels, assessment scales, conditional
// follow-ups and a closing agreement with signature.
func sampleForm() *Form {
	return &Form{
		ID:   "form-100",
		Name: "New Patient Intake",
		Questions: []Question{
			{ID: "1", Label: "Thank you for taking the time to complete this intake form.", Type: ModLabel},
			{ID: "2", Label: "First name", Type: ModText, Required: true},
			{ID: "3", Label: "Last name", Type: ModText, Required: true},
			{ID: "4", Label: "Date of birth", Type: ModDate},
			{ID: "5", Label: "Address", Type: ModLocation},
			{ID: "6", Label: "Sex", Type: ModRadio, Required: true, Options: []string{"Male", "Female"}},
			{ID: "7", Label: "Height", Type: ModHeight, Required: true},
			{ID: "8", Label: "Weight", Type: ModWeight},
			{ID: "9", Label: "BMI", Type: ModBMIResult},
			{ID: "10", Label: "Who is your primary care physician?", Type: ModText},
			{ID: "11", Label: "Relationship status", Type: ModRadio},
			{ID: "12", Label: "Employment status", Type: ModRadio},
			{ID: "13", Label: "Occupation", Type: ModText},
			{ID: "14", Label: "Emergency contact", Type: ModTextarea},
			{ID: "15", Label: "PAIN ASSESSMENT", Type: ModLabel},
			{ID: "16", Label: "Please rate your current pain level", Type: ModRadio, Required: true},
			{ID: "17", Label: "Where is your pain located?", Type: ModTextarea, Required: true},
			{ID: "18", Label: "What makes your pain worse?", Type: ModTextarea},
			{ID: "19", Label: "MEDICAL HISTORY", Type: ModLabel},
			{ID: "20", Label: "Do you have any medication allergies?", Type: ModTextarea, Required: true},
			{ID: "21", Label: "Please describe your surgery or hospitalization", Type: ModTextarea},
			{ID: "22", Label: "Have you had any of the following procedures?", Type: ModCheckbox, Required: true, Options: []string{"X-Ray", "MRI", "Other"}},
			{ID: "23", Label: "If other, list them here", Type: ModText},
			{ID: "24", Label: "When did you last attend physical therapy?", Type: ModText},
			{ID: "25", Label: "Do you use any of the following substances?", Type: ModCheckbox, Options: []string{"Tobacco", "Alcohol", "None of the above"}},
			{ID: "26", Label: "How much and how often?", Type: ModText},
			{ID: "27", Label: "Do you have a surgery upcoming?", Type: ModRadio, Options: []string{"1", "2", "3", "4", "5"}},
			{ID: "19056499", Label: "Is there anything more you would like your providers to know?", Type: ModTextarea},
			{ID: "29", Label: "PATIENT AGREEMENT", Type: ModLabel},
			{ID: "30", Label: "Patient signature", Type: ModSignature, Required: true},
		},
	}
}

func questionIDs(questions []Question) []string {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}
