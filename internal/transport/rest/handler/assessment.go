package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anbusan19/wealth-empire-sub001/internal/model"
	"github.com/anbusan19/wealth-empire-sub001/internal/service"
	"github.com/anbusan19/wealth-empire-sub001/internal/transport/rest/middleware"
)

// AssessmentHandler handles health-check scoring and retrieval endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// ScoreRequest is the request body for scoring a finished questionnaire.
// Answer keys are question ids as JSON object keys.
type ScoreRequest struct {
	Answers         model.AnswerSet         `json:"answers"`
	FollowUpAnswers model.FollowUpAnswerSet `json:"followUpAnswers"`
}

// ScoreResponse wraps the persisted assessment with save status
type ScoreResponse struct {
	Assessment *model.Assessment `json:"assessment"`
	Saved      bool              `json:"saved"`
}

// Score handles POST /v1/assessments/score
func (h *AssessmentHandler) Score(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The engine is total; a missing answer map just scores worst-case
	assessment, saved := h.assessmentSvc.Score(r.Context(), userID, req.Answers, req.FollowUpAnswers)

	writeJSON(w, http.StatusOK, ScoreResponse{Assessment: assessment, Saved: saved})
}

// Latest handles GET /v1/assessments/latest
func (h *AssessmentHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	assessment, err := h.assessmentSvc.Latest(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if assessment == nil {
		writeError(w, http.StatusNotFound, "no assessment found")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// History handles GET /v1/assessments
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	assessments, err := h.assessmentSvc.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": assessments})
}
