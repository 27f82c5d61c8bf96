package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/Freeeeeet/tutoring_server/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courseColumns = `id, tutor_id, name, description, subject, created_at`

type CourseRepository struct {
	*base.Repository
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{Repository: base.NewRepository(pool)}
}

func scanCourse(row base.Scanner) (*model.Course, error) {
	var course model.Course
	err := row.Scan(
		&course.ID,
		&course.TutorID,
		&course.Name,
		&course.Description,
		&course.Subject,
		&course.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	query := `
		INSERT INTO courses (tutor_id, name, description, subject)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		course.TutorID,
		course.Name,
		course.Description,
		course.Subject,
	).Scan(&course.ID, &course.CreatedAt)

	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}

	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course by id: %w", err)
	}

	return course, nil
}

func (r *CourseRepository) GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE tutor_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, tutorID)
}

func (r *CourseRepository) GetAll(ctx context.Context) ([]*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query)
}

func (r *CourseRepository) list(ctx context.Context, query string, args ...interface{}) ([]*model.Course, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	courses := []*model.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}

	return courses, nil
}

// Update writes name, description and subject. Returns false if the course is gone.
func (r *CourseRepository) Update(ctx context.Context, course *model.Course) (bool, error) {
	query := `
		UPDATE courses
		SET name = $1, description = $2, subject = $3
		WHERE id = $4
	`

	affected, err := r.ExecAffected(ctx, query, course.Name, course.Description, course.Subject, course.ID)
	if err != nil {
		return false, fmt.Errorf("update course: %w", err)
	}

	return affected > 0, nil
}

// Delete removes the course; registrations and lessons go with it (ON DELETE CASCADE)
func (r *CourseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.ExecAffected(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete course: %w", err)
	}

	return affected > 0, nil
}
