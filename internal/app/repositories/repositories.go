package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

// ErrNotFound is returned when a lookup by key matches no row.
var ErrNotFound = errors.New("record not found")

// Repositories holds all the repository instances. Repositories keep no
// connection of their own: every method receives the request's db.Querier.
type Repositories struct {
	AccountRepository  *AccountRepository
	StudentRepository  *StudentRepository
	ClubRepository     *ClubRepository
	GraduateRepository *GraduateRepository
	LookupRepository   *LookupRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		AccountRepository:  NewAccountRepository(),
		StudentRepository:  NewStudentRepository(),
		ClubRepository:     NewClubRepository(),
		GraduateRepository: NewGraduateRepository(),
		LookupRepository:   NewLookupRepository(),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
