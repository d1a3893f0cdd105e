package models

// Lesson represents a single playable unit within a course section
type Lesson struct {
	ID         string `json:"id"`
	SectionID  string `json:"sectionId,omitempty"`
	Title      string `json:"title"`
	VideoURL   string `json:"videoUrl,omitempty"`
	Duration   int    `json:"duration"`
	OrderIndex int    `json:"orderIndex"`
}

// Section represents an ordered group of lessons within a course
type Section struct {
	ID         string   `json:"id"`
	CourseID   string   `json:"courseId,omitempty"`
	Title      string   `json:"title"`
	OrderIndex int      `json:"orderIndex"`
	Lessons    []Lesson `json:"lessons"`
}

// Course represents a course in the catalog
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CourseDetailResponse represents a course payload with ordered sections
// and the enrollment indicator for the requesting user
type CourseDetailResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Sections    []Section `json:"sections"`
	Enrolled    bool      `json:"enrolled"`
}

// SignURLResponse represents the URL-signing service response
type SignURLResponse struct {
	SignedURL string `json:"signedUrl"`
}
