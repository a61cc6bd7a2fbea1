package services

import (
	"context"
	"strings"
	"sync"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/pkg/attachment"
	"github.com/kaanyilmaz/placehub/internal/pkg/logger"
)

// SectionCount is the fixed number of sections in an editing session.
const SectionCount = 10

// EditorState tracks where an editing session is in its lifecycle.
type EditorState string

// Editor lifecycle states
const (
	EditorNotStarted EditorState = "NotStarted"
	EditorEditing    EditorState = "Editing"
	EditorDone       EditorState = "Done"
)

// SectionDraft is the in-memory working copy of one round section.
type SectionDraft struct {
	RoundName       string
	Mode            string
	Difficulty      string
	RoundAttachment string
	RoundFileName   string
	Questions       []models.Question
	Saved           bool
}

// editorSession holds one admin's in-progress round editing workflow.
// Sections are committed one at a time; nothing here survives a restart.
type editorSession struct {
	CompanyID    string
	CompanyName  string
	State        EditorState
	CurrentIndex int
	Sections     [SectionCount]SectionDraft
}

// RoundEditorService drives the multi-step round creation workflow. A
// single session is held in memory; starting a new one replaces it.
type RoundEditorService struct {
	mu          sync.Mutex
	session     *editorSession
	companyRepo *repositories.CompanyRepository
	roundRepo   *repositories.RoundRepository
}

// NewRoundEditorService creates a new round editor service
func NewRoundEditorService(companyRepo *repositories.CompanyRepository, roundRepo *repositories.RoundRepository) *RoundEditorService {
	return &RoundEditorService{
		companyRepo: companyRepo,
		roundRepo:   roundRepo,
	}
}

// Start opens a session for a company. Any prior session is discarded;
// its already-committed rounds remain persisted.
func (s *RoundEditorService) Start(ctx context.Context, companyID string) (*dto.EditorStateResponse, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := &editorSession{
		CompanyID:    company.ID,
		CompanyName:  company.Name,
		State:        EditorNotStarted,
		CurrentIndex: -1,
	}
	for i := range session.Sections {
		session.Sections[i] = newSectionDraft()
	}
	s.session = session

	logger.Info().
		Str("companyId", company.ID).
		Str("companyName", company.Name).
		Msg("Round editor session started")

	return snapshot(session, false), nil
}

// Begin moves the session from the intro step to the first section.
func (s *RoundEditorService) Begin(ctx context.Context) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	if session.State == EditorEditing {
		return nil, apperrors.NewBadRequestError("Editing has already begun")
	}

	session.State = EditorEditing
	session.CurrentIndex = 0
	return snapshot(session, false), nil
}

// Snapshot returns the current session state.
func (s *RoundEditorService) Snapshot(ctx context.Context) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	return snapshot(session, false), nil
}

// UpdateSection sets the metadata fields of the current section.
func (s *RoundEditorService) UpdateSection(ctx context.Context, req dto.SectionUpdateRequest) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, section, err := s.currentSection()
	if err != nil {
		return nil, err
	}

	section.RoundName = req.RoundName
	if req.Mode != "" {
		section.Mode = req.Mode
	}
	if req.Difficulty != "" {
		section.Difficulty = req.Difficulty
	}
	return snapshot(session, false), nil
}

// AddQuestion appends an empty question row to the current section.
func (s *RoundEditorService) AddQuestion(ctx context.Context) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, section, err := s.currentSection()
	if err != nil {
		return nil, err
	}

	section.Questions = append(section.Questions, models.Question{})
	return snapshot(session, false), nil
}

// UpdateQuestion sets the texts of one question row in the current section.
func (s *RoundEditorService) UpdateQuestion(ctx context.Context, index int, req dto.QuestionUpdateRequest) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, section, err := s.currentSection()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(section.Questions) {
		return nil, apperrors.ErrQuestionIndexInvalid
	}

	section.Questions[index].Question = req.Question
	section.Questions[index].Answer = req.Answer
	return snapshot(session, false), nil
}

// RemoveQuestion deletes one question row from the current section.
// A section with zero rows is allowed.
func (s *RoundEditorService) RemoveQuestion(ctx context.Context, index int) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, section, err := s.currentSection()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(section.Questions) {
		return nil, apperrors.ErrQuestionIndexInvalid
	}

	section.Questions = append(section.Questions[:index], section.Questions[index+1:]...)
	return snapshot(session, false), nil
}

// Attach stores an uploaded file against the round or one of its
// questions. Oversized files are rejected without touching the session;
// empty data clears the slot.
func (s *RoundEditorService) Attach(ctx context.Context, req dto.AttachmentRequest) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, section, err := s.currentSection()
	if err != nil {
		return nil, err
	}

	var att *attachment.Attachment
	if req.Data != "" {
		att, err = attachment.FromDataURL(req.FileName, req.Data)
		if err != nil {
			return nil, err
		}
	}

	switch req.Target {
	case "round":
		if att == nil {
			section.RoundAttachment = ""
			section.RoundFileName = ""
		} else {
			section.RoundAttachment = att.DataURL
			section.RoundFileName = att.FileName
		}
	case "question":
		if req.Index < 0 || req.Index >= len(section.Questions) {
			return nil, apperrors.ErrQuestionIndexInvalid
		}
		q := &section.Questions[req.Index]
		if att == nil {
			q.Attachment = ""
			q.FileName = ""
		} else {
			q.Attachment = att.DataURL
			q.FileName = att.FileName
		}
	default:
		return nil, apperrors.NewBadRequestError("Attachment target must be round or question")
	}

	return snapshot(session, false), nil
}

// SaveCurrentAndNext commits the current section when it is valid and
// advances to the next one either way. An invalid section is skipped
// with a warning rather than blocking progress. Committing the last
// section ends the session.
func (s *RoundEditorService) SaveCurrentAndNext(ctx context.Context) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, section, err := s.currentSection()
	if err != nil {
		return nil, err
	}

	skipped := false
	if sectionValid(section) {
		if err := s.commitSection(ctx, session, section); err != nil {
			return nil, err
		}
	} else if !section.Saved {
		skipped = true
		logger.Warn().
			Int("sectionIndex", session.CurrentIndex).
			Str("companyId", session.CompanyID).
			Msg("Section skipped: missing round name or content")
	}

	if session.CurrentIndex == SectionCount-1 {
		session.State = EditorDone
	} else {
		session.CurrentIndex++
		s.ensureQuestionRow(session)
	}

	return snapshot(session, skipped), nil
}

// Previous steps back one section. Rounds committed from later sections
// stay committed.
func (s *RoundEditorService) Previous(ctx context.Context) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, _, err := s.currentSection()
	if err != nil {
		return nil, err
	}
	if session.CurrentIndex == 0 {
		return nil, apperrors.NewBadRequestError("Already at the first section")
	}

	session.CurrentIndex--
	return snapshot(session, false), nil
}

// Finish commits the current section when valid and ends the session.
func (s *RoundEditorService) Finish(ctx context.Context) (*dto.EditorStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, section, err := s.currentSection()
	if err != nil {
		return nil, err
	}

	if sectionValid(section) {
		if err := s.commitSection(ctx, session, section); err != nil {
			return nil, err
		}
	}

	session.State = EditorDone
	logger.Info().
		Str("companyId", session.CompanyID).
		Msg("Round editor session finished")

	return snapshot(session, false), nil
}

// activeSession returns the session or an error when none exists.
// Callers must hold the mutex.
func (s *RoundEditorService) activeSession() (*editorSession, error) {
	if s.session == nil {
		return nil, apperrors.ErrNoEditorSession
	}
	return s.session, nil
}

// currentSection returns the session and the draft under the cursor.
// Callers must hold the mutex.
func (s *RoundEditorService) currentSection() (*editorSession, *SectionDraft, error) {
	session, err := s.activeSession()
	if err != nil {
		return nil, nil, err
	}
	switch session.State {
	case EditorNotStarted:
		return nil, nil, apperrors.ErrEditorNotStarted
	case EditorDone:
		return nil, nil, apperrors.ErrEditorFinished
	}
	return session, &session.Sections[session.CurrentIndex], nil
}

// commitSection persists the section as a round. Already-saved sections
// are committed again as a fresh record only if re-validated; the saved
// flag keeps SaveCurrentAndNext from duplicating on repeat visits.
func (s *RoundEditorService) commitSection(ctx context.Context, session *editorSession, section *SectionDraft) error {
	if section.Saved {
		return nil
	}

	round := models.Round{
		CompanyID:       session.CompanyID,
		CompanyName:     session.CompanyName,
		RoundName:       section.RoundName,
		Mode:            models.RoundMode(section.Mode),
		Difficulty:      models.Difficulty(section.Difficulty),
		RoundAttachment: section.RoundAttachment,
		RoundFileName:   section.RoundFileName,
		Questions:       completeQuestions(section.Questions),
	}

	created, err := s.roundRepo.Append(ctx, round)
	if err != nil {
		return err
	}

	section.Saved = true
	logger.Info().
		Str("roundId", created.ID).
		Str("roundName", created.RoundName).
		Int("questions", len(created.Questions)).
		Msg("Round section committed")
	return nil
}

// ensureQuestionRow guarantees the section under the cursor has at
// least one question row to type into.
func (s *RoundEditorService) ensureQuestionRow(session *editorSession) {
	section := &session.Sections[session.CurrentIndex]
	if len(section.Questions) == 0 && !section.Saved {
		section.Questions = append(section.Questions, models.Question{})
	}
}

// newSectionDraft returns a draft with the form's default selections
// and a single empty question row.
func newSectionDraft() SectionDraft {
	return SectionDraft{
		Mode:       string(models.ModeOnline),
		Difficulty: string(models.DifficultyMedium),
		Questions:  []models.Question{{}},
	}
}

// sectionValid reports whether a section can be committed: it needs a
// round name plus either one fully answered question or an attachment.
func sectionValid(section *SectionDraft) bool {
	if strings.TrimSpace(section.RoundName) == "" {
		return false
	}
	if section.RoundAttachment != "" {
		return true
	}
	for _, q := range section.Questions {
		if strings.TrimSpace(q.Question) != "" && strings.TrimSpace(q.Answer) != "" {
			return true
		}
	}
	return false
}

// completeQuestions drops rows missing either text. Partially filled
// rows are discarded silently.
func completeQuestions(questions []models.Question) []models.Question {
	kept := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Question) != "" && strings.TrimSpace(q.Answer) != "" {
			kept = append(kept, q)
		}
	}
	return kept
}

// snapshot serializes the session for API consumers.
func snapshot(session *editorSession, skipped bool) *dto.EditorStateResponse {
	sections := make([]dto.EditorSectionView, 0, SectionCount)
	for i := range session.Sections {
		section := &session.Sections[i]
		sections = append(sections, dto.EditorSectionView{
			RoundName:       section.RoundName,
			Mode:            section.Mode,
			Difficulty:      section.Difficulty,
			RoundAttachment: section.RoundAttachment,
			RoundFileName:   section.RoundFileName,
			Questions:       section.Questions,
			Valid:           sectionValid(section),
			Saved:           section.Saved,
		})
	}

	return &dto.EditorStateResponse{
		CompanyID:    session.CompanyID,
		CompanyName:  session.CompanyName,
		State:        string(session.State),
		CurrentIndex: session.CurrentIndex,
		Sections:     sections,
		Skipped:      skipped,
	}
}
