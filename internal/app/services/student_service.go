package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
	"github.com/yigit/gradmap/internal/pkg/dberrors"
	"github.com/yigit/gradmap/internal/pkg/logger"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	AddStudent(ctx context.Context, conn db.Conn, student *models.NewStudent) (int64, error)
	GetAllStudents(ctx context.Context, q db.Querier) ([]*models.Student, error)
	GetProfile(ctx context.Context, q db.Querier, id int64) (*models.AlumniProfile, error)
	DeleteStudent(ctx context.Context, conn db.Conn, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	now         func() time.Time
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		now:         time.Now,
	}
}

// AddStudent inserts the student with its residence and the optional
// employment, membership and graduation rows in one transaction.
func (s *studentServiceImpl) AddStudent(ctx context.Context, conn db.Conn, student *models.NewStudent) (int64, error) {
	if student == nil {
		return 0, fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	var id int64
	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		id, err = s.studentRepo.Create(ctx, tx, student)
		if err != nil {
			return err
		}

		if err := s.studentRepo.AddResidence(ctx, tx, id, student.LocationID); err != nil {
			return err
		}
		if student.IndustryID != nil {
			if err := s.studentRepo.AddEmployment(ctx, tx, id, *student.IndustryID, student.Company, s.now().Year()); err != nil {
				return err
			}
		}
		if student.ClubID != nil {
			if err := s.studentRepo.AddMembership(ctx, tx, id, *student.ClubID); err != nil {
				return err
			}
		}
		if student.GraduationYear != nil && student.Degree != "" {
			if err := s.studentRepo.AddGraduation(ctx, tx, id, *student.GraduationYear, student.Degree); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, repositories.StudentEmailConstraint):
			return 0, apperrors.ErrStudentEmailExists
		case dberrors.IsForeignKeyViolation(err):
			return 0, apperrors.ErrUnknownReference
		}
		return 0, err
	}

	logger.Info().Int64("studentID", id).Msg("Student added")
	return id, nil
}

// GetAllStudents lists students by last name, then first name
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, q db.Querier) ([]*models.Student, error) {
	return s.studentRepo.List(ctx, q)
}

// GetProfile assembles the alumni profile page
func (s *studentServiceImpl) GetProfile(ctx context.Context, q db.Querier, id int64) (*models.AlumniProfile, error) {
	student, err := s.studentRepo.GetByID(ctx, q, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	profile := &models.AlumniProfile{Student: *student}
	if profile.Residence, err = s.studentRepo.CurrentResidence(ctx, q, id); err != nil {
		return nil, err
	}
	if profile.Employment, err = s.studentRepo.CurrentEmployment(ctx, q, id); err != nil {
		return nil, err
	}
	if profile.Memberships, err = s.studentRepo.Memberships(ctx, q, id); err != nil {
		return nil, err
	}
	if profile.Graduation, err = s.studentRepo.Graduation(ctx, q, id); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteStudent removes the student and every link row in one transaction
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, conn db.Conn, id int64) error {
	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		return s.studentRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}

	logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}
