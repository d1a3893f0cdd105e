// Package player implements the course player session: resolving the
// current lesson from a navigable identifier and caching the signed
// playback URL for it.
package player

import (
	"github.com/coursedeck/backend/internal/models"
)

// ResolveLesson returns the lesson the given identifier refers to.
//
// An empty identifier or one matching no lesson falls back to the first
// lesson in the list, so a shared link with a stale lesson id still lands
// the viewer somewhere playable. Returns nil only when the list is empty.
func ResolveLesson(lessonID string, lessons []models.Lesson) *models.Lesson {
	if len(lessons) == 0 {
		return nil
	}
	if lessonID == "" {
		return &lessons[0]
	}
	for i := range lessons {
		if lessons[i].ID == lessonID {
			return &lessons[i]
		}
	}
	return &lessons[0]
}

// FlattenLessons flattens the sections of a course payload into a single
// lesson list, preserving the section and lesson ordering of the payload
func FlattenLessons(sections []models.Section) []models.Lesson {
	var lessons []models.Lesson
	for _, section := range sections {
		lessons = append(lessons, section.Lessons...)
	}
	return lessons
}
