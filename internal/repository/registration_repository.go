package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/Freeeeeet/tutoring_server/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicate is returned when the student already has a live registration for the course
var ErrDuplicate = errors.New("duplicate registration")

// ErrCourseMissing is returned when the course disappeared before the registration was inserted
var ErrCourseMissing = errors.New("course missing")

const registrationColumns = `r.id, r.course_id, r.student_id, r.tutor_id, r.status, r.message, r.tutor_response, r.created_at, r.updated_at`

type RegistrationRepository struct {
	*base.Repository
}

func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{Repository: base.NewRepository(pool)}
}

func registrationDest(reg *model.CourseRegistration) []any {
	return []any{
		&reg.ID,
		&reg.CourseID,
		&reg.StudentID,
		&reg.TutorID,
		&reg.Status,
		&reg.Message,
		&reg.TutorResponse,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	}
}

// Create inserts a registration. TutorID is taken from the course row, not from reg.
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.CourseRegistration) error {
	query := `
		INSERT INTO course_registrations (course_id, student_id, tutor_id, status, message)
		SELECT c.id, $2, c.tutor_id, $3, $4
		FROM courses c
		WHERE c.id = $1
		RETURNING id, tutor_id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		reg.CourseID,
		reg.StudentID,
		reg.Status,
		reg.Message,
	).Scan(&reg.ID, &reg.TutorID, &reg.CreatedAt)

	if err != nil {
		if base.IsUniqueViolation(err) {
			return fmt.Errorf("create registration: %w", ErrDuplicate)
		}
		// INSERT ... SELECT returns no row when the course is gone
		if base.IsNotFound(err) {
			return fmt.Errorf("create registration: %w", ErrCourseMissing)
		}
		return fmt.Errorf("create registration: %w", err)
	}

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*model.CourseRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM course_registrations r WHERE r.id = $1`

	var reg model.CourseRegistration
	err := r.QueryRow(ctx, query, id).Scan(registrationDest(&reg)...)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}

	return &reg, nil
}

// GetByTutorWithStudent lists the tutor's registrations oldest first,
// joined with the applicant and the course for display.
func (r *RegistrationRepository) GetByTutorWithStudent(ctx context.Context, tutorID int64) ([]*model.RegistrationView, error) {
	query := `
		SELECT ` + registrationColumns + `,
			u.username, u.first_name, u.last_name, c.name
		FROM course_registrations r
		JOIN users u ON u.id = r.student_id
		JOIN courses c ON c.id = r.course_id
		WHERE r.tutor_id = $1
		ORDER BY r.created_at ASC, r.id ASC
	`

	rows, err := r.Query(ctx, query, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get tutor registrations: %w", err)
	}
	defer rows.Close()

	views := []*model.RegistrationView{}
	for rows.Next() {
		var view model.RegistrationView
		var student model.User
		dest := append(registrationDest(&view.CourseRegistration),
			&student.Username,
			&student.FirstName,
			&student.LastName,
			&view.CourseName,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		view.StudentName = student.DisplayName()
		views = append(views, &view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}

	return views, nil
}

// GetByStudent lists the student's own registrations newest first
func (r *RegistrationRepository) GetByStudent(ctx context.Context, studentID int64) ([]*model.CourseRegistration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM course_registrations r
		WHERE r.student_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`

	rows, err := r.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student registrations: %w", err)
	}
	defer rows.Close()

	regs := []*model.CourseRegistration{}
	for rows.Next() {
		var reg model.CourseRegistration
		if err := rows.Scan(registrationDest(&reg)...); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}

	return regs, nil
}

// HasActiveRegistration reports a pending or approved registration of the student for the course
func (r *RegistrationRepository) HasActiveRegistration(ctx context.Context, studentID, courseID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM course_registrations
			WHERE student_id = $1 AND course_id = $2 AND status IN ($3, $4)
		)
	`

	var exists bool
	err := r.QueryRow(ctx, query, studentID, courseID,
		model.RegistrationStatusPending, model.RegistrationStatusApproved).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active registration: %w", err)
	}

	return exists, nil
}

// Decide moves a pending registration owned by tutorID to status.
// Returns false when no row matched: unknown id, another tutor, or already decided.
func (r *RegistrationRepository) Decide(ctx context.Context, id, tutorID int64, status model.RegistrationStatus, response string) (bool, error) {
	query := `
		UPDATE course_registrations
		SET status = $1, tutor_response = $2, updated_at = $3
		WHERE id = $4 AND tutor_id = $5 AND status = $6
	`

	affected, err := r.ExecAffected(ctx, query, status, response, time.Now(), id, tutorID, model.RegistrationStatusPending)
	if err != nil {
		return false, fmt.Errorf("update registration status: %w", err)
	}

	return affected > 0, nil
}

// CountPendingByTutor returns tutor id -> number of pending registrations
func (r *RegistrationRepository) CountPendingByTutor(ctx context.Context) (map[int64]int, error) {
	query := `
		SELECT tutor_id, COUNT(*)
		FROM course_registrations
		WHERE status = $1
		GROUP BY tutor_id
	`

	rows, err := r.Query(ctx, query, model.RegistrationStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending registrations: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var tutorID int64
		var count int
		if err := rows.Scan(&tutorID, &count); err != nil {
			return nil, fmt.Errorf("scan pending count: %w", err)
		}
		counts[tutorID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending counts: %w", err)
	}

	return counts, nil
}
