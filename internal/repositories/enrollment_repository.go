package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type enrollmentRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB, logger *zap.Logger) *enrollmentRepository {
	return &enrollmentRepository{
		db:     db,
		logger: logger,
	}
}

// Exists checks if a user is enrolled in a course
func (r *enrollmentRepository) Exists(ctx context.Context, userID, courseID string) (bool, error) {
	query := `
		SELECT 1
		FROM enrollments
		WHERE user_id = ? AND course_id = ?
		LIMIT 1
	`

	var one int
	err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.logger.Error("failed to check enrollment", zap.Error(err),
			zap.String("user_id", userID), zap.String("course_id", courseID))
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return true, nil
}

// Create enrolls a user into a course
func (r *enrollmentRepository) Create(ctx context.Context, userID, courseID string) error {
	query := `
		INSERT INTO enrollments (user_id, course_id)
		VALUES (?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, userID, courseID); err != nil {
		r.logger.Error("failed to create enrollment", zap.Error(err),
			zap.String("user_id", userID), zap.String("course_id", courseID))
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	return nil
}
