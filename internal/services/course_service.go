package services

import (
	"context"
	"fmt"

	"github.com/coursedeck/backend/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps methods for course data access
type CourseRepository interface {
	// Method GetByID retrieve a course by its ID using configured repository.
	//
	// If the course does not exist or some error will occur during data retrieve,
	// the error will be returned together with "nil" value.
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
	// Method GetSections retrieve all sections of a course sorted by order index.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetSections(ctx context.Context, courseID string) ([]models.Section, error)
	// Method GetLessonsByCourseID retrieve all lessons of a course sorted by
	// section order index and then lesson order index.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetLessonsByCourseID(ctx context.Context, courseID string) ([]models.Lesson, error)
}

// EnrollmentRepository is the interface that wraps methods for enrollment data access
type EnrollmentRepository interface {
	// Method Exists checks if a user is enrolled in a course.
	//
	// Returns a boolean and an error if any.
	Exists(ctx context.Context, userID, courseID string) (bool, error)
}

type courseService struct {
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
	logger         *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo CourseRepository, enrollmentRepo EnrollmentRepository, logger *zap.Logger) *courseService {
	return &courseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// GetCourseDetail assembles the course payload: the course, its sections in
// order with their lessons nested in order, and the enrollment indicator for
// the requesting user
func (s *courseService) GetCourseDetail(ctx context.Context, courseID, userID string) (*models.CourseDetailResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	sections, err := s.courseRepo.GetSections(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}

	lessons, err := s.courseRepo.GetLessonsByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	// Group lessons under their sections; both lists arrive already ordered,
	// so the nested order is preserved as-is
	lessonsBySection := make(map[string][]models.Lesson, len(sections))
	for _, lesson := range lessons {
		lessonsBySection[lesson.SectionID] = append(lessonsBySection[lesson.SectionID], lesson)
	}
	for i := range sections {
		sections[i].Lessons = lessonsBySection[sections[i].ID]
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return &models.CourseDetailResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Sections:    sections,
		Enrolled:    enrolled,
	}, nil
}
