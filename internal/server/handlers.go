package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Veraticus/lifeone/internal/common"
	"github.com/Veraticus/lifeone/internal/model"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Model    string `json:"model"`
	Provider string `json:"provider"`
}

type historyResponse struct {
	Entries []model.HistoryEntry `json:"entries"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req model.ProcessRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.processor.Process(r.Context(), req)
	if err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: userErr.UserMessage})
			return
		}
		s.logger.Error("Processing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "처리 중 오류 발생: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClarify(w http.ResponseWriter, r *http.Request) {
	var req model.ClarifyRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.processor.Clarify(req)
	if err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: userErr.UserMessage})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		Model:    s.processor.ModelName(),
		Provider: s.provider,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: common.ErrHistoryDisabled.Error()})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid limit %q", raw)})
			return
		}
		limit = n
	}

	entries, err := s.history.RecentHistory(r.Context(), limit)
	if err != nil {
		s.logger.Error("Failed to read history", "error", err)
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{Entries: entries})
}

func (s *Server) handleHistoryEntry(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: common.ErrHistoryDisabled.Error()})
		return
	}

	entry, err := s.history.GetHistory(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case err != nil:
		s.logger.Error("Failed to read history entry", "error", err)
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// decode reads and validates a JSON body, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	if err := validateStruct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
