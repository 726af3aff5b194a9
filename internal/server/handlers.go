package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/planflow/planflow/internal/conversation"
	"github.com/planflow/planflow/internal/errors"
	"github.com/planflow/planflow/internal/plan"
	"github.com/planflow/planflow/internal/report"
)

// chatRequest is the body of POST /chat and POST /generate-plan.
type chatRequest struct {
	Messages []conversation.Turn `json:"messages"`
}

type errorResponse struct {
	Detail   string   `json:"detail"`
	Examples []string `json:"examples,omitempty"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	history, ok := s.decodeHistory(w, r)
	if !ok {
		return
	}
	result := s.chat.Handle(r.Context(), history)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	history, ok := s.decodeHistory(w, r)
	if !ok {
		return
	}

	p, err := s.planner.GeneratePlan(r.Context(), history)
	if err != nil {
		var pfErr *errors.PlanFlowError
		if errors.As(err, &pfErr) && pfErr.IsCategory("GATE") {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{
				Detail:   pfErr.Message,
				Examples: pfErr.Suggestions,
			})
			return
		}
		s.logger.WithError(err).ErrorContext(r.Context(), "plan generation failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "plan generation failed"})
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodePlan(w, r)
	if !ok {
		return
	}

	pdf, err := report.RenderPDF(p, s.now())
	if err != nil {
		s.logger.WithError(err).ErrorContext(r.Context(), "pdf rendering failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "PDF rendering failed"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="project-plan.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodePlan(w, r)
	if !ok {
		return
	}

	html, err := report.RenderHTML(p, s.now())
	if err != nil {
		s.logger.WithError(err).ErrorContext(r.Context(), "report rendering failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "report rendering failed"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(html)
}

// decodeHistory parses and validates the conversation body. It writes the
// error response itself and reports success through the bool.
func (s *Server) decodeHistory(w http.ResponseWriter, r *http.Request) (conversation.History, bool) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "request body is not valid JSON"})
		return conversation.History{}, false
	}
	for i, turn := range req.Messages {
		if !conversation.IsValidRole(turn.Role) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{
				Detail: fmt.Sprintf("messages[%d].role %q is not one of user, assistant, system", i, turn.Role),
			})
			return conversation.History{}, false
		}
	}
	return conversation.History{Messages: req.Messages}, true
}

func (s *Server) decodePlan(w http.ResponseWriter, r *http.Request) (*plan.ProjectPlan, bool) {
	var p plan.ProjectPlan
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "request body is not a valid plan"})
		return nil, false
	}
	if err := p.Validate(); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
		return nil, false
	}
	return &p, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("writing response body")
	}
}
