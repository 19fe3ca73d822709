package constvars

const (
	GetFormSuccessMessage        = "Successfully retrieved intake form"
	GetPatientSuccessMessage     = "Successfully retrieved patient"
	SearchPatientsSuccessMessage = "Successfully searched patients"
	SubmitIntakeSuccessMessage   = "Form submitted successfully"
	SaveProgressSuccessMessage   = "Progress saved"
	GetProgressSuccessMessage    = "Successfully retrieved progress"
	ClearProgressSuccessMessage  = "Progress cleared"
	ListIntakesSuccessMessage    = "Successfully listed intake submissions"
	GetIntakeSuccessMessage      = "Successfully retrieved intake submission"
	DeleteIntakeSuccessMessage   = "Intake submission deleted"
	ListPatientFormsSuccess      = "Successfully listed patient form submissions"
	GetFormDetailsSuccessMessage = "Successfully retrieved form submission details"
	DeleteRemoteFormSuccess      = "Form submission deleted"
	ValidateStepSuccessMessage   = "Step validated"
	IssueAdminTokenSuccess       = "Admin token issued"
)
