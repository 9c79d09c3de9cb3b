package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-renderer/internal/export"
	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/schemas"
	"github.com/jonathan/resume-renderer/internal/store"
	"github.com/jonathan/resume-renderer/internal/types"
)

const maxBodySize = 1 << 20 // 1 MB

// templateInfo is the wire shape of one template listing entry
type templateInfo struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Capabilities render.Capabilities `json:"capabilities"`
}

// handleListTemplates returns the available templates in stable order
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	var infos []templateInfo
	for _, id := range s.registry.IDs() {
		tmpl, err := s.registry.Lookup(id)
		if err != nil {
			continue
		}
		infos = append(infos, templateInfo{
			ID:           tmpl.ID(),
			Name:         tmpl.Name(),
			Capabilities: tmpl.Capabilities(),
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": infos})
}

// resumeRequest is the wire shape for creating or replacing a resume
type resumeRequest struct {
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
}

// decodeResumeRequest reads and validates a resume payload. The content is
// checked against the JSON schema before it is decoded into the model.
func (s *Server) decodeResumeRequest(r *http.Request) (*resumeRequest, *types.ResumeData, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read request body: %w", err)
	}

	var req resumeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, nil, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if len(req.Content) == 0 {
		return nil, nil, &ErrValidation{Field: "content", Message: "content is required"}
	}

	if err := schemas.ValidateResumePayload(req.Content); err != nil {
		return nil, nil, err
	}

	var data types.ResumeData
	if err := json.Unmarshal(req.Content, &data); err != nil {
		return nil, nil, &ErrValidation{Field: "content", Message: "content does not match the resume shape"}
	}
	if err := data.Validate(); err != nil {
		return nil, nil, &ErrValidation{Field: "content", Message: err.Error()}
	}

	return &req, &data, nil
}

// handleCreateResume stores a new resume snapshot
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	req, data, err := s.decodeResumeRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.source.CreateResume(r.Context(), req.Title, data)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleListResumes returns recent resume summaries
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.source.ListResumes(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": summaries})
}

// handleGetResume returns one stored resume with its content
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.loadResume(w, r)
	if resume == nil || err != nil {
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleUpdateResume replaces the snapshot of an existing resume
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.loadResume(w, r)
	if resume == nil || err != nil {
		return
	}

	req, data, err := s.decodeResumeRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	title := req.Title
	if title == "" {
		title = resume.Title
	}
	if err := s.source.SaveResume(r.Context(), resume.ID, title, data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"id": resume.ID})
}

// handleDeleteResume removes a resume and its export history
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.loadResume(w, r)
	if resume == nil || err != nil {
		return
	}

	if err := s.source.DeleteResume(r.Context(), resume.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete resume")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePreview renders the screen surface of a stored resume
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	resume, err := s.loadResume(w, r)
	if resume == nil || err != nil {
		return
	}

	tmpl, err := s.lookupTemplate(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	html, err := tmpl.RenderScreen(s.applyPolicy(resume.Content))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "preview render failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, html)
}

// handleExport renders a stored resume to PDF
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	resume, err := s.loadResume(w, r)
	if resume == nil || err != nil {
		return
	}

	tmpl, err := s.lookupTemplate(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	engineName := r.URL.Query().Get("engine")
	if engineName == "" {
		engineName = s.defaultEngine
	}
	engine, err := export.ByName(engineName, s.chromePath)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdf, err := engine.Export(r.Context(), s.applyPolicy(resume.Content), tmpl)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "export failed")
		return
	}

	if s.store != nil {
		if err := s.store.RecordExport(r.Context(), resume.ID, tmpl.ID(), engine.Name(), len(pdf)); err != nil {
			// log only, the export itself succeeded
			log.Printf("failed to record export: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "resume-"+tmpl.ID()+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleParity reports whether both render surfaces carry the same sections
func (s *Server) handleParity(w http.ResponseWriter, r *http.Request) {
	resume, err := s.loadResume(w, r)
	if resume == nil || err != nil {
		return
	}

	tmpl, err := s.lookupTemplate(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := export.CheckParity(r.Context(), s.applyPolicy(resume.Content), tmpl)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "parity check failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleGetSections returns the current section selection
func (s *Server) handleGetSections(w http.ResponseWriter, _ *http.Request) {
	s.policyMu.Lock()
	configs := s.policy.Sections()
	s.policyMu.Unlock()
	s.jsonResponse(w, http.StatusOK, map[string]any{"sections": configs})
}

// sectionsRequest is the wire shape for section selection changes
type sectionsRequest struct {
	Toggle      string `json:"toggle,omitempty"`
	SelectAll   bool   `json:"select_all,omitempty"`
	DeselectAll bool   `json:"deselect_all,omitempty"`
}

// handleUpdateSections applies one selection change and returns the result.
// Toggling a required or unknown section is a no-op, not an error.
func (s *Server) handleUpdateSections(w http.ResponseWriter, r *http.Request) {
	var req sectionsRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	s.policyMu.Lock()
	switch {
	case req.SelectAll:
		s.policy.SelectAll()
	case req.DeselectAll:
		s.policy.DeselectAll()
	case req.Toggle != "":
		s.policy.Toggle(req.Toggle)
	}
	configs := s.policy.Sections()
	s.policyMu.Unlock()

	s.jsonResponse(w, http.StatusOK, map[string]any{"sections": configs})
}

// loadResume resolves the {id} path value to a stored resume. On failure it
// writes the error response and returns nil.
func (s *Server) loadResume(w http.ResponseWriter, r *http.Request) (*store.Resume, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return nil, err
	}

	resume, err := s.source.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load resume")
		return nil, err
	}
	if resume == nil {
		notFound := &ErrResumeNotFound{ResumeID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, errors.New("not found")
	}
	return resume, nil
}

// lookupTemplate resolves the template query parameter, falling back to the
// configured default.
func (s *Server) lookupTemplate(r *http.Request) (render.Template, error) {
	id := r.URL.Query().Get("template")
	if id == "" {
		id = s.defaultTemplate
	}
	return s.registry.Lookup(id)
}

// applyPolicy narrows a snapshot to the currently checked sections
func (s *Server) applyPolicy(data *types.ResumeData) *types.ResumeData {
	s.policyMu.Lock()
	defer s.policyMu.Unlock()
	return s.policy.Apply(data)
}
