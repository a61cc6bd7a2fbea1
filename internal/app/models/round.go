package models

// Question is one question/answer pair inside a round. The attachment, when
// present, is an inline data URL; FileName keeps the original upload name.
type Question struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Attachment string `json:"attachment,omitempty"`
	FileName   string `json:"fileName,omitempty"`
}

// Round defines one interview round for a company. CompanyName is a snapshot
// recorded at creation time; it is not resynced if the company is renamed.
type Round struct {
	ID              string     `json:"id"`
	CompanyID       string     `json:"companyId"`
	CompanyName     string     `json:"companyName"`
	RoundName       string     `json:"roundName" example:"Aptitude"`
	Mode            RoundMode  `json:"mode" example:"Online"`
	Difficulty      Difficulty `json:"difficulty" example:"Medium"`
	RoundAttachment string     `json:"roundAttachment,omitempty"`
	RoundFileName   string     `json:"roundFileName,omitempty"`
	Questions       []Question `json:"questions"`
}
