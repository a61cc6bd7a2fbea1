package services

import (
	"context"
	"strings"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/pkg/logger"
)

// RoundService handles stored interview rounds outside the editor flow
type RoundService struct {
	roundRepo *repositories.RoundRepository
}

// NewRoundService creates a new round service
func NewRoundService(roundRepo *repositories.RoundRepository) *RoundService {
	return &RoundService{roundRepo: roundRepo}
}

// ListRounds returns every stored round
func (s *RoundService) ListRounds(ctx context.Context) ([]models.Round, error) {
	return s.roundRepo.List(ctx)
}

// GetRound returns one round by identifier
func (s *RoundService) GetRound(ctx context.Context, id string) (*models.Round, error) {
	return s.roundRepo.GetByID(ctx, id)
}

// UpdateRound replaces the editable fields of a stored round. The edit
// always works against the persisted record, so concurrent editor
// commits are not clobbered. Partially filled questions are dropped,
// matching the editor's commit behavior.
func (s *RoundService) UpdateRound(ctx context.Context, id string, req dto.UpdateRoundRequest) (*models.Round, error) {
	round, err := s.roundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.RoundName) == "" {
		return nil, apperrors.NewValidationError("Round name is required")
	}

	round.RoundName = req.RoundName
	if req.Mode != "" {
		round.Mode = models.RoundMode(req.Mode)
	}
	if req.Difficulty != "" {
		round.Difficulty = models.Difficulty(req.Difficulty)
	}
	round.RoundAttachment = req.RoundAttachment
	round.RoundFileName = req.RoundFileName
	round.Questions = completeQuestions(req.Questions)

	updated, err := s.roundRepo.Update(ctx, *round)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("roundId", updated.ID).Msg("Round updated")
	return updated, nil
}

// DeleteRound removes a stored round
func (s *RoundService) DeleteRound(ctx context.Context, id string) error {
	if err := s.roundRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("roundId", id).Msg("Round deleted")
	return nil
}
