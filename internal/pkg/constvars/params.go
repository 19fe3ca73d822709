package constvars

const (
	URLParamPatientID    = "patient_id"
	URLParamFormID       = "form_id"
	URLParamSubmissionID = "submission_id"
	URLParamGroupID      = "group_id"
)

const (
	URLQueryParamStep        = "step"
	URLQueryParamKeywords    = "keywords"
	URLQueryParamDateOfBirth = "dob"
	URLQueryParamStatus      = "status"
	URLQueryParamEmail       = "email"
	URLQueryParamPage        = "page"
	URLQueryParamPageSize    = "page_size"
)
