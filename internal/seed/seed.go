// Package seed creates the reference rows the service needs on first boot.
package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/hostelops/washline/internal/app/models"
	"github.com/hostelops/washline/internal/app/repositories"
	"github.com/hostelops/washline/internal/pkg/auth"
)

var defaultHostels = []string{
	"Hostel 1A",
	"Hostel 1B",
	"Hostel 2A",
	"Hostel 2B",
}

// CreateDefaultData creates the default hostels and the initial staff
// account if they don't exist. Errors are collected rather than aborting so
// a partially seeded database still fills in the gaps on the next boot.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	hostelRepo := repositories.NewHostelRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/creating default data (hostels, staff account)")
	var finalErr error

	for _, name := range defaultHostels {
		hostel := &models.Hostel{Name: name}
		if _, err := hostelRepo.CreateHostel(ctx, hostel); err != nil && !errors.Is(err, repositories.ErrDuplicate) {
			lgr.Error().Err(err).Str("hostel", name).Msg("Error creating default hostel")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createStaffAccount(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func createStaffAccount(ctx context.Context, userRepo *repositories.UserRepository, lgr zerolog.Logger) error {
	email := os.Getenv("STAFF_EMAIL")
	password := os.Getenv("STAFF_PASSWORD")
	if email == "" || password == "" {
		lgr.Warn().Msg("STAFF_EMAIL/STAFF_PASSWORD not set, skipping staff account seed")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	staff := &models.User{
		Email:    email,
		Password: hashed,
		Name:     "Laundry Staff",
		RoleType: models.RoleStaff,
	}
	if _, err := userRepo.CreateUser(ctx, staff); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil
		}
		lgr.Error().Err(err).Str("email", email).Msg("Error creating staff account")
		return err
	}

	lgr.Info().Str("email", email).Msg("Staff account created")
	return nil
}
