package models

// Company defines a recruiting company running a placement drive.
// Numeric-looking fields (CTC, eligibility CGPA) are kept as strings; they are
// form inputs, never computed with.
type Company struct {
	ID          string `json:"id" example:"1d2c63f2-3f7a-4f8e-9a3e-2f1b7c9d0e4a"`
	Name        string `json:"name" example:"Globex"`
	DriveDate   string `json:"date" example:"15 Nov 2025"`
	CTC         string `json:"ctc" example:"8"`
	Role        string `json:"role" example:"Analyst"`
	Eligibility string `json:"eligibility" example:"6.5"`
	JobType     string `json:"jobType" example:"Full-time"`
	Skills      string `json:"skills" example:"SQL, Java"`
}
