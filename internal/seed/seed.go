// Package seed inserts the default dimension rows of an empty database.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/gradmap/internal/app/models"
	appRepos "github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
)

var defaultIndustries = []string{
	"Technology",
	"Finance",
	"Healthcare",
	"Education",
	"Manufacturing",
	"Consulting",
}

var defaultLocations = []struct {
	City  string
	State string
}{
	{"Chicago", "IL"},
	{"New York", "NY"},
	{"San Francisco", "CA"},
	{"Seattle", "WA"},
	{"Austin", "TX"},
	{"Boston", "MA"},
}

var defaultClubs = []struct {
	Name        string
	Category    string
	Description string
}{
	{"Robotics", "Engineering", "Designs and builds robots for regional competitions"},
	{"Chess", "Games", "Weekly chess practice and tournament play"},
	{"Investment", "Business", "Student-run portfolio management and market research"},
	{"Debate", "Academic", "Competitive debate and public speaking practice"},
}

// CreateDefaultData fills the industry, location and club tables when they
// are empty. A table that already has rows is left alone. Individual insert
// failures are collected and returned together.
func CreateDefaultData(ctx context.Context, q db.Querier, lgr zerolog.Logger) error {
	lookupRepo := appRepos.NewLookupRepository()
	clubRepo := appRepos.NewClubRepository()

	lgr.Info().Msg("Checking/Creating default data (Industries/Locations/Clubs)...")
	var finalErr error

	if empty, err := isEmpty(ctx, q, lookupRepo, "industry"); err != nil {
		finalErr = errors.Join(finalErr, err)
	} else if empty {
		for _, name := range defaultIndustries {
			_, err := lookupRepo.CreateIndustry(ctx, q, &appModels.Industry{Name: name})
			if err != nil && !errors.Is(err, apperrors.ErrIndustryAlreadyExists) {
				lgr.Error().Err(err).Str("industry", name).Msg("Error creating default industry")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if empty, err := isEmpty(ctx, q, lookupRepo, "location"); err != nil {
		finalErr = errors.Join(finalErr, err)
	} else if empty {
		for _, l := range defaultLocations {
			state, country := l.State, appModels.DefaultCountry
			_, err := lookupRepo.CreateLocation(ctx, q, &appModels.Location{City: l.City, State: &state, Country: &country})
			if err != nil {
				lgr.Error().Err(err).Str("city", l.City).Msg("Error creating default location")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if empty, err := isEmpty(ctx, q, lookupRepo, "club"); err != nil {
		finalErr = errors.Join(finalErr, err)
	} else if empty {
		for _, c := range defaultClubs {
			category, description := c.Category, c.Description
			_, err := clubRepo.Create(ctx, q, &appModels.Club{Name: c.Name, Category: &category, Description: &description})
			if err != nil && !errors.Is(err, apperrors.ErrClubAlreadyExists) {
				lgr.Error().Err(err).Str("club", c.Name).Msg("Error creating default club")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check completed.")
	}
	return finalErr
}

func isEmpty(ctx context.Context, q db.Querier, repo *appRepos.LookupRepository, table string) (bool, error) {
	n, err := repo.CountRows(ctx, q, table)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
