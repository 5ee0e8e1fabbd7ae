package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/pkg/auth"
)

// Services groups every service the controllers depend on.
// - AuthService: sign-in and sign-up against app_user
// - StudentService: add, list, profile and delete students
// - ClubService: create, search and guarded delete of clubs
// - GraduateService: home listing, years and statistics
// - LookupService: locations, industries and form dropdowns
type Services struct {
	Auth      *AuthService
	Students  StudentService
	Clubs     ClubService
	Graduates GraduateService
	Lookups   LookupService
}

// NewServices wires services to repositories
func NewServices(repos *repositories.Repositories, hasher *auth.PasswordHasher, logger zerolog.Logger) *Services {
	return &Services{
		Auth:      NewAuthService(repos.AccountRepository, hasher, logger),
		Students:  NewStudentService(repos.StudentRepository),
		Clubs:     NewClubService(repos.ClubRepository),
		Graduates: NewGraduateService(repos.GraduateRepository),
		Lookups:   NewLookupService(repos.LookupRepository, repos.ClubRepository),
	}
}
