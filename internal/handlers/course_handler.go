package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/coursedeck/backend/internal/auth"
	"github.com/coursedeck/backend/internal/models"
)

// CourseService is the interface that wraps methods for course business logic.
type CourseService interface {
	// Method GetCourseDetail retrieve the full course payload for a viewer.
	//
	// "courseID" parameter identifies the course, "userID" the requesting user.
	// The returned payload contains sections ordered by order index, lessons
	// ordered within their section, and the enrollment indicator for the user.
	// If the course does not exist or some error will occur during data retrieve,
	// the error will be returned together with "nil" value.
	GetCourseDetail(ctx context.Context, courseID, userID string) (*models.CourseDetailResponse, error)
}

// CourseHandler handles HTTP requests for courses
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/{courseID}", h.GetCourse)
	})
}

// GetCourse handles GET /api/v1/courses/{courseID}
// @Summary Get course payload
// @Description Get a course with ordered sections and lessons plus the enrollment indicator for the authenticated user
// @Tags courses
// @Accept json
// @Produce json
// @Param courseID path string true "Course ID"
// @Success 200 {object} models.CourseDetailResponse
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/courses/{courseID} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	course, err := h.service.GetCourseDetail(r.Context(), courseID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.logger.Info("course not found", zap.String("course_id", courseID))
			h.respondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.logger.Error("failed to get course", zap.Error(err), zap.String("course_id", courseID))
		h.respondError(w, http.StatusInternalServerError, "failed to get course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}
