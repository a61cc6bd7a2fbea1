package dto

import "github.com/kaanyilmaz/placehub/internal/app/models"

// StartEditorRequest opens a round editing session for a company.
type StartEditorRequest struct {
	CompanyID string `json:"companyId" binding:"required" example:"1"`
}

// SectionUpdateRequest updates the metadata of the section currently
// open in the editor.
type SectionUpdateRequest struct {
	RoundName  string `json:"roundName" example:"Technical Interview"`
	Mode       string `json:"mode" binding:"omitempty,oneof=Online Offline" example:"Online"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard" example:"Medium"`
}

// QuestionUpdateRequest sets the text of one question slot in the
// current section.
type QuestionUpdateRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AttachmentRequest uploads a file for the current section, either for
// the whole round or for one of its questions.
type AttachmentRequest struct {
	Target   string `json:"target" binding:"required,oneof=round question" example:"round"`
	Index    int    `json:"index" example:"0"`
	FileName string `json:"fileName" binding:"required" example:"aptitude-set.pdf"`
	Data     string `json:"data" binding:"required"`
}

// EditorSectionView is the serialized form of one editor section.
type EditorSectionView struct {
	RoundName       string            `json:"roundName"`
	Mode            string            `json:"mode"`
	Difficulty      string            `json:"difficulty"`
	RoundAttachment string            `json:"roundAttachment,omitempty"`
	RoundFileName   string            `json:"roundFileName,omitempty"`
	Questions       []models.Question `json:"questions"`
	Valid           bool              `json:"valid"`
	Saved           bool              `json:"saved"`
}

// EditorStateResponse is a snapshot of the editing session.
type EditorStateResponse struct {
	CompanyID    string              `json:"companyId"`
	CompanyName  string              `json:"companyName"`
	State        string              `json:"state"`
	CurrentIndex int                 `json:"currentIndex"`
	Sections     []EditorSectionView `json:"sections"`
	Skipped      bool                `json:"skipped,omitempty"`
}

// UpdateRoundRequest replaces the editable fields of a stored round.
type UpdateRoundRequest struct {
	RoundName       string            `json:"roundName" binding:"required"`
	Mode            string            `json:"mode" binding:"omitempty,oneof=Online Offline"`
	Difficulty      string            `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	RoundAttachment string            `json:"roundAttachment"`
	RoundFileName   string            `json:"roundFileName"`
	Questions       []models.Question `json:"questions"`
}
