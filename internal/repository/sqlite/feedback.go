package sqlite

import (
	"context"
	"fmt"

	"github.com/jrocha/techbook/pkg/models"
)

// CreateFeedback appends one feedback row. There is no read, update or
// delete path for feedback in this service.
func (r *SQLiteRepo) CreateFeedback(ctx context.Context, f *models.ServiceFeedback) (int64, error) {
	if f == nil {
		return 0, fmt.Errorf("feedback is nil")
	}

	var booking any
	if f.BookingNumber != "" {
		booking = f.BookingNumber
	}
	res, err := r.conn.Exec(ctx, `INSERT INTO service_feedback (tech_id, customer_email, booking_number, service_count, problem_status, time_hours, problem_area, user_feedback, spare_details, fees_paid, amount_paid, submitted_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.TechID, f.CustomerEmail, booking, f.ServiceCount, f.ProblemStatus, f.TimeHours, f.ProblemArea, f.UserFeedback, f.SpareDetails, f.FeesPaid, f.AmountPaid, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}
