package models

import "time"

// Registration is created when a student registers for a company drive.
// StudentName, StudentEmail and CompanyName are snapshots taken at
// registration time. Registrations are never updated; they can only be
// deleted in bulk by an admin.
type Registration struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"studentId"`
	StudentName    string    `json:"studentName"`
	StudentEmail   string    `json:"studentEmail"`
	CompanyID      string    `json:"companyId"`
	CompanyName    string    `json:"companyName"`
	Department     string    `json:"department"`
	Percentage10th string    `json:"percentage10th"`
	Percentage12th string    `json:"percentage12th"`
	UGCgpa         string    `json:"ugCgpa"`
	Resume         string    `json:"resume"`
	RegisteredAt   time.Time `json:"registeredAt"`
}
