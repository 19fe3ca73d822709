// Package healthie_dto holds the wire types of the Healthie GraphQL API as
// this service consumes them. Field names follow the API's snake_case
// selection sets.
package healthie_dto

type Patient struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	DOB         string `json:"dob,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

// FullName joins the name parts for display.
func (p Patient) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
