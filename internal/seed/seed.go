package seed

import (
	"context"

	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/pkg/logger"
	"github.com/kaanyilmaz/placehub/internal/store"
)

// CreateDemoData seeds the IBM company and its three rounds so a fresh
// install has something to browse. It only runs when both the companies
// and rounds collections are empty.
func CreateDemoData(ctx context.Context, st store.Store) error {
	var companies []models.Company
	if _, err := st.Get(ctx, store.KeyCompanies, &companies); err != nil {
		return err
	}
	var rounds []models.Round
	if _, err := st.Get(ctx, store.KeyRounds, &rounds); err != nil {
		return err
	}
	if len(companies) > 0 || len(rounds) > 0 {
		return nil
	}

	ibm := models.Company{
		ID:          "1",
		Name:        "IBM",
		DriveDate:   "15 Nov 2025",
		CTC:         "12",
		Role:        "Software Engineer",
		Eligibility: "7.0",
		JobType:     "Full-time",
		Skills:      "Java, Python, DSA, Cloud",
	}

	ibmRounds := []models.Round{
		{
			ID:          "r1",
			CompanyID:   "1",
			CompanyName: "IBM",
			RoundName:   "Aptitude",
			Mode:        models.ModeOnline,
			Difficulty:  models.DifficultyMedium,
			Questions: []models.Question{
				{
					Question: "A train running at the speed of 60 km/hr crosses a pole in 9 seconds. What is the length of the train?",
					Answer:   "45",
				},
			},
		},
		{
			ID:          "r2",
			CompanyID:   "1",
			CompanyName: "IBM",
			RoundName:   "Coding",
			Mode:        models.ModeOnline,
			Difficulty:  models.DifficultyMedium,
			Questions: []models.Question{
				{
					Question: "Reverse String input : hi",
					Answer:   "output : ih",
				},
			},
		},
		{
			ID:          "r3",
			CompanyID:   "1",
			CompanyName: "IBM",
			RoundName:   "HR",
			Mode:        models.ModeOnline,
			Difficulty:  models.DifficultyMedium,
			Questions: []models.Question{
				{
					Question: "Self Introduction Project Explanation",
					Answer:   "",
				},
			},
		},
	}

	if err := st.Set(ctx, store.KeyCompanies, []models.Company{ibm}); err != nil {
		return err
	}
	if err := st.Set(ctx, store.KeyRounds, ibmRounds); err != nil {
		return err
	}

	logger.Info().
		Int("companies", 1).
		Int("rounds", len(ibmRounds)).
		Msg("Demo data seeded")
	return nil
}
