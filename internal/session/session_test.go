package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/resume"
	"github.com/jonathan/linkedin-cv/internal/template"
)

func testResume(name string) resume.ResumeData {
	var data resume.ResumeData
	data.PersonalInfo.FullName = name
	return data
}

func TestCreateDefaults(t *testing.T) {
	store := NewStore()
	s := store.Create()

	require.NotEmpty(t, s.ID)
	assert.Equal(t, template.DefaultID, s.Preferences().TemplateID)
	assert.Equal(t, i18n.English, s.Preferences().Language)
	fresh := s.Resume()
	assert.Empty(t, fresh.PersonalInfo.FullName)
	assert.Empty(t, fresh.Experience)
	assert.Empty(t, fresh.Skills)
	assert.False(t, s.Busy())
	assert.Empty(t, s.Photo())
}

func TestStoreGetDelete(t *testing.T) {
	store := NewStore()
	s := store.Create()

	got, ok := store.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, s.ID, got.ID)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	store.Delete(s.ID)
	_, ok = store.Get(s.ID)
	assert.False(t, ok)
	store.Delete(s.ID)
	assert.Equal(t, 0, store.Len())
}

func TestResumeReturnsCopy(t *testing.T) {
	s := NewStore().Create()
	s.SetResume(testResume("Jane Doe"))

	copy1 := s.Resume()
	copy1.PersonalInfo.FullName = "changed"

	assert.Equal(t, "Jane Doe", s.Resume().PersonalInfo.FullName)
}

func TestApplyInstallsResult(t *testing.T) {
	s := NewStore().Create()
	s.SetResume(testResume("Jane Doe"))

	got := s.Apply(func(data resume.ResumeData) resume.ResumeData {
		data.PersonalInfo.Location = "Berlin"
		return data
	})

	assert.Equal(t, "Berlin", got.PersonalInfo.Location)
	assert.Equal(t, "Berlin", s.Resume().PersonalInfo.Location)
}

func TestBeginExtractionRejectsSecondClaim(t *testing.T) {
	s := NewStore().Create()

	gen, ok := s.BeginExtraction()
	require.True(t, ok)
	assert.True(t, s.Busy())

	_, ok = s.BeginExtraction()
	assert.False(t, ok)

	s.EndExtraction()
	assert.False(t, s.Busy())

	gen2, ok := s.BeginExtraction()
	require.True(t, ok)
	assert.Equal(t, gen, gen2)
	s.EndExtraction()
}

func TestInstallExtracted(t *testing.T) {
	s := NewStore().Create()

	gen, ok := s.BeginExtraction()
	require.True(t, ok)

	installed := s.InstallExtracted(gen, testResume("Jane Doe"))
	s.EndExtraction()

	assert.True(t, installed)
	assert.Equal(t, "Jane Doe", s.Resume().PersonalInfo.FullName)
}

func TestInstallExtractedStaleGeneration(t *testing.T) {
	s := NewStore().Create()

	gen, ok := s.BeginExtraction()
	require.True(t, ok)

	// A manual replace lands while the extraction is still running.
	s.SetResume(testResume("Manual Edit"))

	installed := s.InstallExtracted(gen, testResume("From Extraction"))
	s.EndExtraction()

	assert.False(t, installed)
	assert.Equal(t, "Manual Edit", s.Resume().PersonalInfo.FullName)
}

func TestPhotoLifecycle(t *testing.T) {
	s := NewStore().Create()

	s.SetPhoto("data:image/png;base64,AAAA")
	assert.Equal(t, "data:image/png;base64,AAAA", s.Photo())

	s.SetPhoto("data:image/png;base64,BBBB")
	assert.Equal(t, "data:image/png;base64,BBBB", s.Photo())

	s.ClearPhoto()
	assert.Empty(t, s.Photo())
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := NewStore().Create()

	s.SetPreferences(Preferences{TemplateID: "template4", PrimaryColor: "#AB12CD", Language: i18n.German})
	got := s.Preferences()

	assert.Equal(t, "template4", got.TemplateID)
	assert.Equal(t, "#AB12CD", got.PrimaryColor)
	assert.Equal(t, i18n.German, got.Language)
}

func TestPurgeOlderThan(t *testing.T) {
	store := NewStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	old := store.Create()
	current = current.Add(2 * time.Hour)
	fresh := store.Create()

	removed := store.PurgeOlderThan(time.Hour)

	assert.Equal(t, 1, removed)
	_, ok := store.Get(old.ID)
	assert.False(t, ok)
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)
}

func TestPurgeKeepsBusySessions(t *testing.T) {
	store := NewStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	s := store.Create()
	_, ok := s.BeginExtraction()
	require.True(t, ok)

	current = current.Add(2 * time.Hour)
	assert.Equal(t, 0, store.PurgeOlderThan(time.Hour))

	s.EndExtraction()
	assert.Equal(t, 1, store.PurgeOlderThan(time.Hour))
}
