package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrocha/techbook/api"
	"github.com/jrocha/techbook/pkg/repository/mock"
)

func validFeedback() map[string]any {
	return map[string]any{
		"tech_id":        "TECH-001",
		"customer_email": "c@example.com",
		"booking_number": "BK-42",
		"service_count":  1,
		"problem_status": "resolved",
		"time_hours":     2,
		"problem_area":   "washing machine drum",
		"user_feedback":  "quick and tidy",
		"spare_details":  "drive belt",
		"fees_paid":      "paid",
		"amount_paid":    120.50,
	}
}

func postFeedback(t *testing.T, h *api.FeedbackHandler, payload any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.SubmitFeedback(w, req)
	return w
}

func TestSubmitFeedback_Success(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewFeedbackHandler(mocks.FeedbackRepo)

	w := postFeedback(t, h, validFeedback())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	if len(mocks.FeedbackRepo.Stored) != 1 {
		t.Fatalf("expected one stored row, got %d", len(mocks.FeedbackRepo.Stored))
	}
	got := mocks.FeedbackRepo.Stored[0]
	if got.TechID != "TECH-001" || got.AmountPaid != 120.50 || got.FeesPaid != "paid" {
		t.Fatalf("unexpected stored feedback: %+v", got)
	}
}

func TestSubmitFeedback_BookingNumberOptional(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewFeedbackHandler(mocks.FeedbackRepo)

	payload := validFeedback()
	delete(payload, "booking_number")
	if w := postFeedback(t, h, payload); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestSubmitFeedback_InvalidSubmissionsCreateZeroRows(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"MissingTechID", func(m map[string]any) { delete(m, "tech_id") }},
		{"EmptyTechID", func(m map[string]any) { m["tech_id"] = "" }},
		{"WhitespaceTechID", func(m map[string]any) { m["tech_id"] = "   " }},
		{"MissingEmail", func(m map[string]any) { delete(m, "customer_email") }},
		{"MissingProblemArea", func(m map[string]any) { delete(m, "problem_area") }},
		{"MissingUserFeedback", func(m map[string]any) { delete(m, "user_feedback") }},
		{"MissingSpareDetails", func(m map[string]any) { delete(m, "spare_details") }},
		{"BadProblemStatus", func(m map[string]any) { m["problem_status"] = "maybe" }},
		{"BadFeesPaid", func(m map[string]any) { m["fees_paid"] = "iou" }},
		{"ZeroServiceCount", func(m map[string]any) { m["service_count"] = 0 }},
		{"NegativeTimeHours", func(m map[string]any) { m["time_hours"] = -1 }},
		{"NegativeAmount", func(m map[string]any) { m["amount_paid"] = -0.01 }},
		{"FractionalServiceCount", func(m map[string]any) { m["service_count"] = 1.5 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			h := api.NewFeedbackHandler(mocks.FeedbackRepo)

			payload := validFeedback()
			c.mutate(payload)

			w := postFeedback(t, h, payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400 got %d body=%s", c.name, w.Code, w.Body.String())
			}
			if len(mocks.FeedbackRepo.Stored) != 0 {
				t.Fatalf("%s: invalid submission must create zero rows", c.name)
			}
		})
	}
}

func TestSubmitFeedback_InvalidJSON(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewFeedbackHandler(mocks.FeedbackRepo)

	req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	h.SubmitFeedback(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
