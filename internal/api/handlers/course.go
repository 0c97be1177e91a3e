package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/jeichenberger88/golf-tracker/internal/api/response"
	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// CourseCatalog resolves free-text queries to courses.
type CourseCatalog interface {
	Search(ctx context.Context, query string) []models.Course
}

// CourseHandler handles course catalog API requests.
type CourseHandler struct {
	catalog CourseCatalog
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(catalog CourseCatalog) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

// SearchCourses returns courses matching the q query parameter.
// Queries shorter than two characters return an empty list without
// hitting any provider.
func (h *CourseHandler) SearchCourses(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < 2 {
		response.Success(w, []models.Course{})
		return
	}

	courses := h.catalog.Search(r.Context(), query)
	if courses == nil {
		courses = []models.Course{}
	}
	response.Success(w, courses)
}
