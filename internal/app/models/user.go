package models

// User is the current session identity. It is synthesized at login (there is
// no credential store) and persisted under the "user" key; the student-only
// profile fields stay empty for admins. ProfilePhoto is an inline data URL;
// Resume holds the uploaded file name reference.
type User struct {
	ID             string   `json:"id" example:"2"`
	Name           string   `json:"name" example:"Student User"`
	Email          string   `json:"email" example:"user@college.edu"`
	Role           Role     `json:"role" example:"student"`
	RegisterNumber string   `json:"registerNumber,omitempty"`
	Department     string   `json:"department,omitempty"`
	Year           string   `json:"year,omitempty"`
	CGPA           string   `json:"cgpa,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	ContactNumber  string   `json:"contactNumber,omitempty"`
	ProfilePhoto   string   `json:"profilePhoto,omitempty"`
	Resume         string   `json:"resume,omitempty"`
}
