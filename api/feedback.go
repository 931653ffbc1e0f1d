package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/qri-io/jsonschema"

	"github.com/jrocha/techbook/pkg/models"
	"github.com/jrocha/techbook/pkg/repository"
)

//go:embed feedback_schema.json
var feedbackSchemaJSON []byte

type FeedbackHandler struct {
	feedbackRepo repository.FeedbackRepo
}

func NewFeedbackHandler(fr repository.FeedbackRepo) *FeedbackHandler {
	return &FeedbackHandler{feedbackRepo: fr}
}

type submitFeedbackRequest struct {
	TechID        string  `json:"tech_id"`
	CustomerEmail string  `json:"customer_email"`
	BookingNumber string  `json:"booking_number"`
	ServiceCount  int     `json:"service_count"`
	ProblemStatus string  `json:"problem_status"`
	TimeHours     int     `json:"time_hours"`
	ProblemArea   string  `json:"problem_area"`
	UserFeedback  string  `json:"user_feedback"`
	SpareDetails  string  `json:"spare_details"`
	FeesPaid      string  `json:"fees_paid"`
	AmountPaid    float64 `json:"amount_paid"`
}

type submitFeedbackResponse struct {
	ID int64 `json:"id"`
}

// SubmitFeedback appends one feedback row. The body is checked against the
// embedded JSON schema (required fields, enums, numeric bounds) before
// anything touches the store, so an invalid submission creates zero rows.
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, fmt.Errorf("%w: read request body", models.ErrValidation))
		return
	}

	ctx := r.Context()

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(feedbackSchemaJSON, rs); err != nil {
		writeError(w, fmt.Errorf("load feedback schema: %w", err))
		return
	}

	keyErrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", models.ErrValidation))
		return
	}
	if len(keyErrs) > 0 {
		writeError(w, fmt.Errorf("%w: %s", models.ErrValidation, keyErrs[0].Message))
		return
	}

	var req submitFeedbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", models.ErrValidation))
		return
	}

	// minLength in the schema does not reject whitespace-only strings
	for field, v := range map[string]string{
		"tech_id":        req.TechID,
		"customer_email": req.CustomerEmail,
		"problem_area":   req.ProblemArea,
		"user_feedback":  req.UserFeedback,
		"spare_details":  req.SpareDetails,
	} {
		if strings.TrimSpace(v) == "" {
			writeError(w, fmt.Errorf("%w: %s is required", models.ErrValidation, field))
			return
		}
	}

	f := &models.ServiceFeedback{
		TechID:        req.TechID,
		CustomerEmail: req.CustomerEmail,
		BookingNumber: req.BookingNumber,
		ServiceCount:  req.ServiceCount,
		ProblemStatus: req.ProblemStatus,
		TimeHours:     req.TimeHours,
		ProblemArea:   req.ProblemArea,
		UserFeedback:  req.UserFeedback,
		SpareDetails:  req.SpareDetails,
		FeesPaid:      req.FeesPaid,
		AmountPaid:    req.AmountPaid,
	}
	id, err := h.feedbackRepo.CreateFeedback(ctx, f)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err))
		return
	}

	writeJSON(w, submitFeedbackResponse{ID: id}, http.StatusCreated)
}
