package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akosarev/notekeeper/internal/common"
	"github.com/akosarev/notekeeper/internal/server/notes"
)

type addNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type editNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	IsPinned bool     `json:"isPinned"`
}

type updatePinnedRequest struct {
	IsPinned bool `json:"isPinned"`
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {

	claim := userFromContext(r.Context())

	var req addNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title required.")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content required.")
		return
	}

	note, err := s.notes.Create(r.Context(), claim.ID, req.Title, req.Content, req.Tags)
	if err != nil {
		s.logger.Error(r.Context(), "add note failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Note:    note,
		Message: "Note added successfully",
	})
}

func (s *Server) handleEditNote(w http.ResponseWriter, r *http.Request) {

	claim := userFromContext(r.Context())
	noteID := chi.URLParam(r, "noteId")

	var req editNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	patch := notes.Patch{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	}

	if patch.Empty() {
		writeError(w, http.StatusBadRequest, "No changes provided")
		return
	}

	note, err := s.notes.Edit(r.Context(), noteID, claim.ID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Note not found")
			return
		}
		s.logger.Error(r.Context(), "edit note failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Note:    note,
		Message: "Note updated successfully",
	})
}

func (s *Server) handleGetAllNotes(w http.ResponseWriter, r *http.Request) {

	claim := userFromContext(r.Context())

	list, err := s.notes.List(r.Context(), claim.ID)
	if err != nil {
		s.logger.Error(r.Context(), "list notes failed", "error", err)
		// the error flag stays false here, matching the original contract
		writeJSON(w, http.StatusInternalServerError, envelope{Message: "Internal Error Occur"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Notes:   list,
		Message: "All notes retrived successfully",
	})
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {

	claim := userFromContext(r.Context())
	noteID := chi.URLParam(r, "noteId")

	err := s.notes.Delete(r.Context(), noteID, claim.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Note not found")
			return
		}
		s.logger.Error(r.Context(), "delete note failed", "error", err)
		// same error:false quirk as get-all-note
		writeJSON(w, http.StatusInternalServerError, envelope{Message: "Internal Error Occur"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Message: "Note deleted successfully"})
}

func (s *Server) handleUpdateNotePinned(w http.ResponseWriter, r *http.Request) {

	claim := userFromContext(r.Context())
	noteID := chi.URLParam(r, "noteId")

	var req updatePinnedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	note, err := s.notes.SetPinned(r.Context(), noteID, claim.ID, req.IsPinned)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Note not found")
			return
		}
		s.logger.Error(r.Context(), "update pinned failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Note:    note,
		Message: "Note updated successfully",
	})
}

func (s *Server) handleSearchNotes(w http.ResponseWriter, r *http.Request) {

	claim := userFromContext(r.Context())

	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	found, err := s.notes.Search(r.Context(), claim.ID, query)
	if err != nil {
		s.logger.Error(r.Context(), "search notes failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Notes:   found,
		Message: "Notes matching the search query retrived successfully",
	})
}
