package models

// Student defines a student record maintained by the admin. Placed is the
// literal text "Yes" or "No"; PlacedCompany is only meaningful when Placed is
// "Yes".
type Student struct {
	ID             string `json:"id"`
	Name           string `json:"name" example:"Jane Doe"`
	RegisterNumber string `json:"registerNumber" example:"CS2021001"`
	Email          string `json:"email" example:"jane@college.edu"`
	Department     string `json:"department" example:"Computer Science"`
	Year           string `json:"year" example:"2021"`
	CGPA           string `json:"cgpa" example:"8.5"`
	Skills         string `json:"skills" example:"Go, SQL"`
	ContactNumber  string `json:"contactNumber" example:"9876543210"`
	Placed         string `json:"placed" example:"No"`
	PlacedCompany  string `json:"placedCompany,omitempty"`
}
