package repository

import (
	"context"

	"github.com/jrocha/techbook/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type TechnicianRepo interface {
	// NextTechID allocates the next public identifier. The counter is
	// monotonic: identifiers freed by deletion are never handed out again.
	NextTechID(ctx context.Context) (string, error)
	CreateTechnician(ctx context.Context, t *models.Technician) (int64, error)
	GetByTechID(ctx context.Context, techID string) (*models.Technician, error)
	// ListTechnicians returns rows in insertion order without the binary
	// attachments; fetch those through GetByTechID.
	ListTechnicians(ctx context.Context, limit, offset int) ([]models.Technician, error)
	CountTechnicians(ctx context.Context) (int64, error)
	UpdateTechnician(ctx context.Context, t *models.Technician) error
	// DeleteTechnician removes the row with the given internal id and
	// reports how many rows were affected.
	DeleteTechnician(ctx context.Context, id int64) (int64, error)
}

type AccountRepo interface {
	CreateAccount(ctx context.Context, a *models.Account) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}

type FeedbackRepo interface {
	CreateFeedback(ctx context.Context, f *models.ServiceFeedback) (int64, error)
}
