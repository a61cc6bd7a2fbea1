package dto

// CreateRegistrationRequest is submitted by a student applying to a
// company drive. Identity fields come from the session, not the body.
type CreateRegistrationRequest struct {
	CompanyID      string `json:"companyId" binding:"required" example:"1"`
	Department     string `json:"department" binding:"required" example:"Computer Science"`
	Percentage10th string `json:"percentage10th" binding:"required" example:"92.4"`
	Percentage12th string `json:"percentage12th" binding:"required" example:"88.1"`
	UGCgpa         string `json:"ugCgpa" binding:"required" example:"8.5"`
	ResumeFileName string `json:"resumeFileName"`
	ResumeData     string `json:"resumeData"`
}

// StatsResponse summarizes collection sizes for the admin dashboard.
type StatsResponse struct {
	Companies     int `json:"companies" example:"4"`
	Students      int `json:"students" example:"120"`
	Rounds        int `json:"rounds" example:"12"`
	Registrations int `json:"registrations" example:"37"`
}
