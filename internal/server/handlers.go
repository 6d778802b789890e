package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/linkedin-cv/internal/editor"
	"github.com/jonathan/linkedin-cv/internal/export"
	"github.com/jonathan/linkedin-cv/internal/extraction"
	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/ingestion"
	"github.com/jonathan/linkedin-cv/internal/resume"
	"github.com/jonathan/linkedin-cv/internal/session"
	"github.com/jonathan/linkedin-cv/internal/template"
)

const (
	maxUploadBytes = 10 << 20 // PDF upload cap
	maxPhotoBytes  = 4 << 20  // photo data URI cap
)

// sessionState is the wire representation of a session.
type sessionState struct {
	ID          string              `json:"id"`
	CreatedAt   time.Time           `json:"createdAt"`
	Resume      resume.ResumeData   `json:"resume"`
	Preferences session.Preferences `json:"preferences"`
	Busy        bool                `json:"busy"`
	HasPhoto    bool                `json:"hasPhoto"`
}

func stateOf(s *session.Session) sessionState {
	return sessionState{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		Resume:      s.Resume(),
		Preferences: s.Preferences(),
		Busy:        s.Busy(),
		HasPhoto:    s.Photo() != "",
	}
}

func (s *Server) session(r *http.Request) (*session.Session, error) {
	id := r.PathValue("id")
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, &ErrSessionNotFound{ID: id}
	}
	return sess, nil
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.store.Create()
	s.jsonResponse(w, http.StatusCreated, stateOf(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, stateOf(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.store.Delete(sess.ID)
	w.WriteHeader(http.StatusNoContent)
}

// handleExtract ingests an uploaded LinkedIn profile PDF and replaces the
// session's resume with the extraction result. The session is held for the
// duration; a concurrent upload gets 409. A manual edit that lands while the
// model is working wins over the extraction.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errResponse(w, &ErrValidation{Field: "file", Message: "invalid multipart upload"})
		return
	}

	lang := i18n.Language(r.FormValue("language"))
	if lang == "" {
		lang = sess.Preferences().Language
	}
	if !i18n.Valid(lang) {
		s.errResponse(w, &ErrValidation{Field: "language", Message: fmt.Sprintf("unsupported language %q", lang)})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.errResponse(w, &ErrValidation{Field: "file", Message: "missing file field"})
		return
	}
	defer file.Close()

	pdfBytes, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		s.errResponse(w, &ErrValidation{Field: "file", Message: "failed to read upload"})
		return
	}
	if len(pdfBytes) > maxUploadBytes {
		s.errResponse(w, &ErrValidation{Field: "file", Message: "upload exceeds size limit"})
		return
	}

	gen, ok := sess.BeginExtraction()
	if !ok {
		s.errResponse(w, &ErrSessionBusy{ID: sess.ID})
		return
	}
	defer sess.EndExtraction()

	text, err := ingestion.ExtractPDFText(pdfBytes)
	if err != nil {
		s.errResponse(w, &extraction.UnreadableDocumentError{Cause: err})
		return
	}

	extracted, err := s.extractor.Extract(r.Context(), text, lang)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	installed := sess.InstallExtracted(gen, *extracted)

	prefs := sess.Preferences()
	prefs.Language = lang
	sess.SetPreferences(prefs)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"installed": installed,
		"session":   stateOf(sess),
	})
}

// handleReplaceResume replaces the session's resume wholesale.
func (s *Server) handleReplaceResume(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	var data resume.ResumeData
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		s.errResponse(w, &ErrValidation{Field: "resume", Message: err.Error()})
		return
	}

	normalized := resume.Normalize(data)
	if strings.TrimSpace(normalized.PersonalInfo.FullName) == "" {
		s.errResponse(w, &ErrValidation{Field: "personal_info.fullName", Message: "must not be empty"})
		return
	}

	sess.SetResume(normalized)
	s.jsonResponse(w, http.StatusOK, stateOf(sess))
}

// editRequest is one edit command. Op selects the operation; the remaining
// fields are operation-specific arguments.
type editRequest struct {
	Op    string `json:"op"`
	Field string `json:"field"`
	Value string `json:"value"`
	Index int    `json:"index"`
	From  int    `json:"from"`
	To    int    `json:"to"`
	List  string `json:"list"`
	ID    string `json:"itemId"`
	Name  string `json:"name"`
}

// handleEdit applies one edit command to the session's resume.
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	apply, err := s.editFunc(req)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	sess.Apply(apply)
	s.jsonResponse(w, http.StatusOK, stateOf(sess))
}

// editFunc resolves an edit command to the pure transformation to run.
func (s *Server) editFunc(req editRequest) (func(resume.ResumeData) resume.ResumeData, error) {
	switch req.Op {
	case "set_personal":
		field := editor.PersonalField(req.Field)
		if !editor.ValidPersonalField(field) {
			return nil, &ErrValidation{Field: "field", Message: fmt.Sprintf("unknown personal field %q", req.Field)}
		}
		return func(d resume.ResumeData) resume.ResumeData {
			return editor.SetPersonalField(d, field, req.Value)
		}, nil

	case "add_experience":
		return editor.AddExperience, nil
	case "remove_experience":
		return func(d resume.ResumeData) resume.ResumeData {
			return editor.RemoveExperience(d, req.Index)
		}, nil
	case "update_experience":
		field := editor.ExperienceField(req.Field)
		if !editor.ValidExperienceField(field) {
			return nil, &ErrValidation{Field: "field", Message: fmt.Sprintf("unknown experience field %q", req.Field)}
		}
		return func(d resume.ResumeData) resume.ResumeData {
			return editor.UpdateExperienceField(d, req.Index, field, req.Value)
		}, nil
	case "set_experience_bullets":
		return func(d resume.ResumeData) resume.ResumeData {
			return editor.SetExperienceBullets(d, req.Index, req.Value)
		}, nil
	case "move_experience":
		return func(d resume.ResumeData) resume.ResumeData {
			return editor.MoveExperience(d, req.From, req.To)
		}, nil

	case "add_education":
		return editor.AddEducation, nil
	case "remove_education":
		return func(d resume.ResumeData) resume.ResumeData {
			return editor.RemoveEducation(d, req.Index)
		}, nil
	case "update_education":
		field := editor.EducationField(req.Field)
		if !editor.ValidEducationField(field) {
			return nil, &ErrValidation{Field: "field", Message: fmt.Sprintf("unknown education field %q", req.Field)}
		}
		return func(d resume.ResumeData) resume.ResumeData {
			return editor.UpdateEducationField(d, req.Index, field, req.Value)
		}, nil
	case "move_education":
		return func(d resume.ResumeData) resume.ResumeData {
			return editor.MoveEducation(d, req.From, req.To)
		}, nil

	case "add_item", "remove_item", "toggle_item", "rename_item", "move_item":
		list := editor.TaggedList(req.List)
		if !editor.ValidTaggedList(list) {
			return nil, &ErrValidation{Field: "list", Message: fmt.Sprintf("unknown list %q", req.List)}
		}
		switch req.Op {
		case "add_item":
			return func(d resume.ResumeData) resume.ResumeData {
				return editor.AddTagged(d, list, req.Name)
			}, nil
		case "remove_item":
			return func(d resume.ResumeData) resume.ResumeData {
				return editor.RemoveTagged(d, list, req.ID)
			}, nil
		case "toggle_item":
			return func(d resume.ResumeData) resume.ResumeData {
				return editor.ToggleTagged(d, list, req.ID)
			}, nil
		case "rename_item":
			return func(d resume.ResumeData) resume.ResumeData {
				return editor.RenameTagged(d, list, req.ID, req.Name)
			}, nil
		default:
			return func(d resume.ResumeData) resume.ResumeData {
				return editor.MoveTagged(d, list, req.From, req.To)
			}, nil
		}
	}

	return nil, &ErrValidation{Field: "op", Message: fmt.Sprintf("unknown op %q", req.Op)}
}

type photoRequest struct {
	Image string `json:"image"`
}

// handleSetPhoto stores the cropped profile photo as a data URI.
func (s *Server) handleSetPhoto(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	var req photoRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxPhotoBytes+1024)).Decode(&req); err != nil {
		s.errResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if !strings.HasPrefix(req.Image, "data:image/") {
		s.errResponse(w, &ErrValidation{Field: "image", Message: "must be an image data URI"})
		return
	}
	if len(req.Image) > maxPhotoBytes {
		s.errResponse(w, &ErrValidation{Field: "image", Message: "image exceeds size limit"})
		return
	}

	sess.SetPhoto(req.Image)
	s.jsonResponse(w, http.StatusOK, stateOf(sess))
}

func (s *Server) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	sess.ClearPhoto()
	w.WriteHeader(http.StatusNoContent)
}

// templateInfo is one catalog entry on the wire.
type templateInfo struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	DefaultPrimaryColor string `json:"defaultPrimaryColor"`
}

func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	list := template.List()
	out := make([]templateInfo, 0, len(list))
	for _, t := range list {
		out = append(out, templateInfo{ID: t.ID, Name: t.Name, DefaultPrimaryColor: t.DefaultPrimaryColor})
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// renderParams resolves template, color, and language from query parameters,
// falling back to the session's sticky preferences. A provided value becomes
// the new preference.
func (s *Server) renderParams(r *http.Request, sess *session.Session) (*template.Template, template.RenderOptions, error) {
	prefs := sess.Preferences()

	if v := r.URL.Query().Get("template"); v != "" {
		prefs.TemplateID = v
	}
	if v := r.URL.Query().Get("color"); v != "" {
		prefs.PrimaryColor = v
	}
	if v := r.URL.Query().Get("language"); v != "" {
		lang := i18n.Language(v)
		if !i18n.Valid(lang) {
			return nil, template.RenderOptions{}, &ErrValidation{Field: "language", Message: fmt.Sprintf("unsupported language %q", v)}
		}
		prefs.Language = lang
	}
	sess.SetPreferences(prefs)

	tmpl := template.Get(prefs.TemplateID)
	opts := template.RenderOptions{
		PrimaryColor: prefs.PrimaryColor,
		ProfileImage: sess.Photo(),
		Language:     prefs.Language,
	}
	return tmpl, opts, nil
}

// handlePreview renders the interactive screen HTML for the session.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	tmpl, opts, err := s.renderParams(r, sess)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	html, err := tmpl.RenderScreen(sess.Resume(), opts)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

// handleExport streams a downloadable artifact for the session.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	format := export.Format(r.URL.Query().Get("format"))
	if !export.ValidFormat(format) {
		s.errResponse(w, &ErrValidation{Field: "format", Message: fmt.Sprintf("unsupported format %q", format)})
		return
	}

	tmpl, opts, err := s.renderParams(r, sess)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	artifact, err := s.exporter.Export(r.Context(), sess.Resume(), tmpl, opts, format)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}
