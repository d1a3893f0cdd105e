package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupEnrollmentTestRepository creates an enrollment repository with a mock database
func setupEnrollmentTestRepository(t *testing.T) (*enrollmentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	repo := NewEnrollmentRepository(db, logger)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestEnrollmentRepository_Exists(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(sqlmock.Sqlmock)
		expectedExists bool
		expectedError  bool
	}{
		{
			name: "enrolled",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"1"}).AddRow(1)
				mock.ExpectQuery(`SELECT 1.*FROM enrollments.*WHERE user_id = \? AND course_id = \?`).
					WithArgs("u1", "c1").
					WillReturnRows(rows)
			},
			expectedExists: true,
		},
		{
			name: "not enrolled",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT 1.*FROM enrollments.*WHERE user_id = \? AND course_id = \?`).
					WithArgs("u1", "c1").
					WillReturnError(sql.ErrNoRows)
			},
			expectedExists: false,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT 1.*FROM enrollments.*WHERE user_id = \? AND course_id = \?`).
					WithArgs("u1", "c1").
					WillReturnError(errors.New("connection lost"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			exists, err := repo.Exists(context.Background(), "u1", "c1")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedExists, exists)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupEnrollmentTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO enrollments \(user_id, course_id\)`).
		WithArgs("u1", "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), "u1", "c1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepository_Create_Error(t *testing.T) {
	repo, mock, cleanup := setupEnrollmentTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO enrollments \(user_id, course_id\)`).
		WithArgs("u1", "c1").
		WillReturnError(errors.New("duplicate entry"))

	err := repo.Create(context.Background(), "u1", "c1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create enrollment")
	assert.NoError(t, mock.ExpectationsWereMet())
}
