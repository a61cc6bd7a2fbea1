package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
	"github.com/kaanyilmaz/placehub/internal/store"
)

func newRoundFixture(t *testing.T) (*RoundService, *repositories.Repositories) {
	t.Helper()

	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err, "Failed to open test store")
	t.Cleanup(func() { st.Close() })

	repos := repositories.NewRepositories(st)
	return NewRoundService(repos.RoundRepository), repos
}

func TestUpdateRoundReplacesFields(t *testing.T) {
	svc, repos := newRoundFixture(t)
	ctx := context.Background()

	created, err := repos.RoundRepository.Append(ctx, models.Round{
		CompanyID:   "c1",
		CompanyName: "Globex",
		RoundName:   "Aptitude",
		Mode:        models.ModeOnline,
		Questions:   []models.Question{{Question: "old", Answer: "old"}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRound(ctx, created.ID, dto.UpdateRoundRequest{
		RoundName:  "Aptitude Test",
		Mode:       "Offline",
		Difficulty: "Hard",
		Questions: []models.Question{
			{Question: "new", Answer: "answer"},
			{Question: "incomplete", Answer: ""},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Aptitude Test", updated.RoundName)
	assert.Equal(t, models.ModeOffline, updated.Mode)
	assert.Equal(t, "Globex", updated.CompanyName, "the company snapshot is never resynced")
	require.Len(t, updated.Questions, 1, "incomplete rows are dropped like in the editor")
	assert.Equal(t, "new", updated.Questions[0].Question)

	// The change is persisted, not just returned
	stored, err := repos.RoundRepository.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aptitude Test", stored.RoundName)
}

func TestUpdateRoundRequiresName(t *testing.T) {
	svc, repos := newRoundFixture(t)
	ctx := context.Background()

	created, err := repos.RoundRepository.Append(ctx, models.Round{RoundName: "HR"})
	require.NoError(t, err)

	_, err = svc.UpdateRound(ctx, created.ID, dto.UpdateRoundRequest{RoundName: "   "})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	stored, err := repos.RoundRepository.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "HR", stored.RoundName, "a rejected update changes nothing")
}

func TestUpdateRoundMissing(t *testing.T) {
	svc, _ := newRoundFixture(t)

	_, err := svc.UpdateRound(context.Background(), "missing", dto.UpdateRoundRequest{RoundName: "X"})
	assert.True(t, errors.Is(err, apperrors.ErrRoundNotFound))
}

func TestDeleteRound(t *testing.T) {
	svc, repos := newRoundFixture(t)
	ctx := context.Background()

	created, err := repos.RoundRepository.Append(ctx, models.Round{RoundName: "Coding"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRound(ctx, created.ID))

	rounds, err := repos.RoundRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rounds)
}
