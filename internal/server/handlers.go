package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/tadoru/internal/session"
)

type expandRequest struct {
	ParentID string               `json:"parent_id,omitempty"`
	Items    []session.ExpandItem `json:"items"`
}

func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	var req expandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("expand request", zap.String("parent_id", req.ParentID), zap.Int("items", len(req.Items)))
	views, err := s.session.Expand(req.ParentID, req.Items)
	if err != nil {
		if errors.Is(err, session.ErrNodeNotFound) {
			s.respondError(w, http.StatusNotFound, "parent not found")
			return
		}
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"nodes": views,
		"count": len(views),
	})
}

func (s *Server) handleListNodes(w http.ResponseWriter, r *http.Request) {
	views := s.session.Nodes()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"nodes": views,
		"count": len(views),
	})
}

func (s *Server) handleGetNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := s.session.Node(id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "node not found")
		return
	}
	s.respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete node request", zap.String("id", id))
	if err := s.session.DeleteNode(id); err != nil {
		s.respondError(w, http.StatusNotFound, "node not found")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := s.session.Documents()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
		"count":     len(docs),
	})
}

func (s *Server) handleListLeaves(w http.ResponseWriter, r *http.Request) {
	leaves := s.session.Leaves()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"leaves": leaves,
		"count":  len(leaves),
	})
}

func (s *Server) handlePopLeaf(w http.ResponseWriter, r *http.Request) {
	end := r.URL.Query().Get("end")
	s.logger.Debug("pop leaf request", zap.String("end", end))
	view, err := s.session.PopLeaf(end)
	if err != nil {
		if errors.Is(err, session.ErrQueueEmpty) {
			s.respondError(w, http.StatusNotFound, "leaf queue is empty")
			return
		}
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.session.Stats()
	resp := map[string]interface{}{
		"root_id":          stats.RootID,
		"tokens":           stats.Tokens,
		"document_nodes":   stats.DocumentNodes,
		"total_nodes":      stats.TotalNodes,
		"live_documents":   stats.LiveDocuments,
		"leaf_queue_depth": stats.LeafQueueDepth,
	}
	if s.metrics != nil {
		resp["uptime_seconds"] = int64(s.metrics.Uptime().Seconds())
	}

	configInfo := map[string]interface{}{
		"embedding_model": stats.EmbeddingModel,
	}
	if s.config != nil {
		configInfo["page_content_keys"] = s.config.Content.PageContentKeys
		configInfo["max_chunk_size"] = s.config.Content.MaxChunkSize
		configInfo["tokenizer_offline"] = s.config.Tokenizer.Offline
	}
	resp["config"] = configInfo
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
