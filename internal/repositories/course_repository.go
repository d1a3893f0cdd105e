package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursedeck/backend/internal/models"
	"go.uber.org/zap"
)

type courseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB, logger *zap.Logger) *courseRepository {
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a course by its ID
func (r *courseRepository) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	query := `
		SELECT id, title, description
		FROM courses
		WHERE id = ?
		LIMIT 1
	`

	var course models.Course
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(
		&course.ID,
		&course.Title,
		&description,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course not found")
	}
	if err != nil {
		r.logger.Error("failed to get course by id", zap.Error(err), zap.String("course_id", courseID))
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	course.Description = description.String
	return &course, nil
}

// GetSections retrieves all sections for a course, sorted by order index
func (r *courseRepository) GetSections(ctx context.Context, courseID string) ([]models.Section, error) {
	query := `
		SELECT id, course_id, title, order_index
		FROM sections
		WHERE course_id = ?
		ORDER BY order_index
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		r.logger.Error("failed to query sections", zap.Error(err), zap.String("course_id", courseID))
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(&section.ID, &section.CourseID, &section.Title, &section.OrderIndex); err != nil {
			r.logger.Error("failed to scan section", zap.Error(err))
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return sections, nil
}

// GetLessonsByCourseID retrieves all lessons for a course in a single query,
// sorted by section order index and then lesson order index
func (r *courseRepository) GetLessonsByCourseID(ctx context.Context, courseID string) ([]models.Lesson, error) {
	query := `
		SELECT l.id, l.section_id, l.title, l.video_url, l.duration, l.order_index
		FROM lessons l
		JOIN sections s ON s.id = l.section_id
		WHERE s.course_id = ?
		ORDER BY s.order_index, l.order_index
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		r.logger.Error("failed to query lessons", zap.Error(err), zap.String("course_id", courseID))
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		var videoURL sql.NullString
		if err := rows.Scan(
			&lesson.ID,
			&lesson.SectionID,
			&lesson.Title,
			&videoURL,
			&lesson.Duration,
			&lesson.OrderIndex,
		); err != nil {
			r.logger.Error("failed to scan lesson", zap.Error(err))
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lesson.VideoURL = videoURL.String
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}
