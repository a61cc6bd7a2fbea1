package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/store"
)

func TestCreateDemoData(t *testing.T) {
	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, CreateDemoData(ctx, st))

	var companies []models.Company
	found, err := st.Get(ctx, store.KeyCompanies, &companies)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, companies, 1)
	assert.Equal(t, "IBM", companies[0].Name)
	assert.Equal(t, "15 Nov 2025", companies[0].DriveDate)

	var rounds []models.Round
	found, err = st.Get(ctx, store.KeyRounds, &rounds)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, rounds, 3)
	assert.Equal(t, "Aptitude", rounds[0].RoundName)
	assert.Equal(t, "Coding", rounds[1].RoundName)
	assert.Equal(t, "HR", rounds[2].RoundName)
	for _, r := range rounds {
		assert.Equal(t, "1", r.CompanyID)
		assert.Equal(t, "IBM", r.CompanyName)
	}
}

func TestCreateDemoDataIsIdempotent(t *testing.T) {
	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	require.NoError(t, CreateDemoData(ctx, st))
	require.NoError(t, CreateDemoData(ctx, st))

	var companies []models.Company
	_, err = st.Get(ctx, store.KeyCompanies, &companies)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestCreateDemoDataSkipsNonEmptyStore(t *testing.T) {
	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	existing := []models.Company{{ID: "x", Name: "Globex"}}
	require.NoError(t, st.Set(ctx, store.KeyCompanies, existing))

	require.NoError(t, CreateDemoData(ctx, st))

	var companies []models.Company
	_, err = st.Get(ctx, store.KeyCompanies, &companies)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Globex", companies[0].Name, "existing data is never overwritten")
}
