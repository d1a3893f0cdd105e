package player

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/coursedeck/backend/internal/models"
)

// Signer is the interface that wraps the URL-signing collaborator.
type Signer interface {
	// Method SignURL exchanges a storage key for a time-limited playable URL.
	//
	// "storageKey" parameter is the path of the media object within the bucket.
	// If some error will occur during signing, the error will be returned together with an empty value.
	SignURL(ctx context.Context, storageKey string) (string, error)
}

// signedURLTTL is how long a signed URL is assumed playable after it was
// issued. The signing service does not report its own expiry, so the
// session must not assume more than the signer's minimum policy.
const signedURLTTL = time.Hour

// cacheEntry holds the one signed URL the session may serve
type cacheEntry struct {
	signedURL   string
	expiresAt   time.Time
	forLessonID string
}

// usable reports whether the entry may be served for the given lesson at the given time
func (e cacheEntry) usable(lessonID string, now time.Time) bool {
	return e.signedURL != "" && e.forLessonID == lessonID && now.Before(e.expiresAt)
}

// Session owns the playback state for one viewer of one course: the lesson
// list, the selected lesson identifier and a single cached signed URL.
//
// A signed URL is served only while it was issued for the current lesson
// and has not outlived its TTL; anything else yields an empty playback URL
// until a fresh signing request completes. Signing failures and malformed
// media locators are absorbed the same way, they never surface as errors.
type Session struct {
	mu     sync.Mutex
	signer Signer
	logger *zap.Logger
	now    func() time.Time

	lessons    []models.Lesson
	selectedID string

	entry       cacheEntry
	fetchingFor string
	closed      bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSession creates a playback session backed by the given signer
func NewSession(signer Signer, logger *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		signer: signer,
		logger: logger,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetCourse replaces the lesson list with the flattened lessons of the
// given course sections and refreshes the signed URL for the lesson that
// is current after the swap
func (s *Session) SetCourse(sections []models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lessons = FlattenLessons(sections)
	s.refreshLocked()
}

// SelectLesson changes the selected lesson identifier. The identifier is
// taken as-is: whether it names an existing lesson is resolved on read,
// with the first lesson as the fallback. Selecting the already-current
// lesson keeps the cached URL and issues no signing request.
func (s *Session) SelectLesson(lessonID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = lessonID
	s.refreshLocked()
}

// CurrentLesson returns the lesson the session currently points at,
// or nil when no lessons are loaded
func (s *Session) CurrentLesson() *models.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ResolveLesson(s.selectedID, s.lessons)
}

// PlaybackURL returns the signed URL for the current lesson, or an empty
// string while no valid URL is available (no media, signing in flight,
// signing failed, or URL expired). An expired or mismatched entry triggers
// a new signing request as a side effect.
func (s *Session) PlaybackURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshLocked()

	cur := ResolveLesson(s.selectedID, s.lessons)
	if cur == nil {
		return ""
	}
	if s.entry.usable(cur.ID, s.now()) {
		return s.entry.signedURL
	}
	return ""
}

// refreshLocked clears an entry that can no longer be served and starts a
// signing request when the current lesson needs one. Callers must hold mu.
func (s *Session) refreshLocked() {
	if s.closed {
		return
	}

	cur := ResolveLesson(s.selectedID, s.lessons)
	if cur == nil || cur.VideoURL == "" {
		// Nothing playable here; a URL issued for a previous lesson must
		// not stay visible
		s.entry = cacheEntry{}
		return
	}

	if s.entry.usable(cur.ID, s.now()) {
		// Cached URL is still good, no request
		return
	}
	if s.fetchingFor == cur.ID {
		// A request for this lesson is already in flight
		return
	}

	key, ok := StorageKeyFromURL(cur.VideoURL)
	if !ok {
		s.logger.Warn("malformed media locator",
			zap.String("lesson_id", cur.ID),
			zap.String("video_url", cur.VideoURL),
		)
		s.entry = cacheEntry{}
		return
	}

	s.fetchingFor = cur.ID
	s.wg.Add(1)
	go s.fetch(cur.ID, key)
}

// fetch performs one signing request and commits the result only if the
// lesson it was requested for is still current when the response arrives.
// A response for a lesson the viewer has navigated away from is dropped.
func (s *Session) fetch(lessonID, storageKey string) {
	defer s.wg.Done()

	signedURL, err := s.signer.SignURL(s.ctx, storageKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetchingFor == lessonID {
		s.fetchingFor = ""
	}

	if err != nil || signedURL == "" {
		if err != nil {
			s.logger.Warn("signing request failed",
				zap.Error(err),
				zap.String("lesson_id", lessonID),
			)
		}
		// Recoverable: the next lesson change or expiry retriggers the fetch
		return
	}

	cur := ResolveLesson(s.selectedID, s.lessons)
	if cur == nil || cur.ID != lessonID {
		s.logger.Debug("discarding stale signing response",
			zap.String("lesson_id", lessonID),
		)
		return
	}

	s.entry = cacheEntry{
		signedURL:   signedURL,
		expiresAt:   s.now().Add(signedURLTTL),
		forLessonID: lessonID,
	}
}

// Close makes the session inert, cancels the in-flight signing request if
// any, and waits for it to finish
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
