package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutoring_server/internal/model"
	"github.com/Freeeeeet/tutoring_server/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LessonRepository struct {
	*base.Repository
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{Repository: base.NewRepository(pool)}
}

func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	query := `
		INSERT INTO lessons (tutor_id, course_id, title, description, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		lesson.TutorID,
		lesson.CourseID,
		lesson.Title,
		lesson.Description,
		lesson.StartTime,
		lesson.EndTime,
	).Scan(&lesson.ID, &lesson.CreatedAt)

	if err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}

	return nil
}

// GetByTutorID lists the tutor's lessons by start time
func (r *LessonRepository) GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Lesson, error) {
	query := `
		SELECT id, tutor_id, course_id, title, description, start_time, end_time, created_at
		FROM lessons
		WHERE tutor_id = $1
		ORDER BY start_time ASC, id ASC
	`

	rows, err := r.Query(ctx, query, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get tutor lessons: %w", err)
	}
	defer rows.Close()

	lessons := []*model.Lesson{}
	for rows.Next() {
		var lesson model.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.TutorID,
			&lesson.CourseID,
			&lesson.Title,
			&lesson.Description,
			&lesson.StartTime,
			&lesson.EndTime,
			&lesson.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, &lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lessons: %w", err)
	}

	return lessons, nil
}
