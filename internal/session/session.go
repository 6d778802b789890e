// Package session keeps per-user editing state in memory. A session owns one
// resume slot, the render preferences, and the profile-photo handle. Nothing
// is persisted: losing the process loses the sessions, which matches the
// single-user editing model.
package session

import (
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/resume"
)

// Preferences are the sticky render options a client last selected. They are
// defaults for preview and export, overridable per request.
type Preferences struct {
	TemplateID   string        `json:"templateId"`
	PrimaryColor string        `json:"primaryColor"`
	Language     i18n.Language `json:"language"`
}

// Session is one user's editing state. All accessors copy: a caller never
// holds a reference into the slot, so concurrent edits cannot alias.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.Mutex
	data  resume.ResumeData
	prefs Preferences
	photo string
	gen   uint64

	// busy serializes extractions: capacity one, try-acquire only. A second
	// extraction while one runs is rejected, never queued.
	busy *semaphore.Weighted
}

// Resume returns a deep copy of the current slot.
func (s *Session) Resume() resume.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// SetResume replaces the slot wholesale and advances the generation, which
// invalidates any extraction still in flight.
func (s *Session) SetResume(data resume.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data.Clone()
	s.gen++
}

// Apply runs a pure transformation against a copy of the slot and installs
// the result. The edit counts as a write for last-write-wins purposes.
func (s *Session) Apply(fn func(resume.ResumeData) resume.ResumeData) resume.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = fn(s.data.Clone())
	s.gen++
	return s.data.Clone()
}

// Preferences returns the current render preferences.
func (s *Session) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetPreferences replaces the render preferences.
func (s *Session) SetPreferences(p Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
}

// Photo returns the stored profile-photo data URI, empty when unset.
func (s *Session) Photo() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.photo
}

// SetPhoto replaces the photo handle. The previous handle is simply dropped.
func (s *Session) SetPhoto(dataURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photo = dataURI
}

// ClearPhoto removes the photo handle.
func (s *Session) ClearPhoto() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photo = ""
}

// Busy reports whether an extraction currently holds the session.
func (s *Session) Busy() bool {
	if s.busy.TryAcquire(1) {
		s.busy.Release(1)
		return false
	}
	return true
}

// BeginExtraction claims the session for one extraction. It returns the
// generation the extraction is based on and false when another extraction
// already holds the session. Every successful claim must be paired with
// EndExtraction.
func (s *Session) BeginExtraction() (uint64, bool) {
	if !s.busy.TryAcquire(1) {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen, true
}

// EndExtraction releases the claim taken by BeginExtraction. It is called on
// every path out of an extraction, success or failure.
func (s *Session) EndExtraction() {
	s.busy.Release(1)
}

// InstallExtracted installs an extraction result if no write landed since the
// extraction began. A stale result is discarded and the slot is untouched.
func (s *Session) InstallExtracted(gen uint64, data resume.ResumeData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.data = data.Clone()
	s.gen++
	return true
}
