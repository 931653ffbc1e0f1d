package mock

import (
	"context"

	"github.com/jrocha/techbook/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	TechRepo     *mockTechnicianRepo
	AccountRepo  *mockAccountRepo
	FeedbackRepo *mockFeedbackRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		TechRepo:     &mockTechnicianRepo{},
		AccountRepo:  &mockAccountRepo{},
		FeedbackRepo: &mockFeedbackRepo{},
	}
}

type mockTechnicianRepo struct {
	Stored    []models.Technician
	NextErr   error
	CreateErr error
	ListErr   error
	UpdateErr error
	DeleteErr error
	nextSeq   int64
}

func (m *mockTechnicianRepo) NextTechID(ctx context.Context) (string, error) {
	if m.NextErr != nil {
		return "", m.NextErr
	}
	m.nextSeq++
	return models.FormatTechID(m.nextSeq), nil
}

func (m *mockTechnicianRepo) CreateTechnician(ctx context.Context, t *models.Technician) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *t
	stored.ID = int64(len(m.Stored) + 1)
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *mockTechnicianRepo) GetByTechID(ctx context.Context, techID string) (*models.Technician, error) {
	for i := range m.Stored {
		if m.Stored[i].TechID == techID {
			t := m.Stored[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *mockTechnicianRepo) ListTechnicians(ctx context.Context, limit, offset int) ([]models.Technician, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if offset >= len(m.Stored) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.Stored) {
		end = len(m.Stored)
	}
	out := make([]models.Technician, end-offset)
	copy(out, m.Stored[offset:end])
	return out, nil
}

func (m *mockTechnicianRepo) CountTechnicians(ctx context.Context) (int64, error) {
	if m.ListErr != nil {
		return 0, m.ListErr
	}
	return int64(len(m.Stored)), nil
}

func (m *mockTechnicianRepo) UpdateTechnician(ctx context.Context, t *models.Technician) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Stored {
		if m.Stored[i].TechID == t.TechID {
			id := m.Stored[i].ID
			m.Stored[i] = *t
			m.Stored[i].ID = id
		}
	}
	return nil
}

func (m *mockTechnicianRepo) DeleteTechnician(ctx context.Context, id int64) (int64, error) {
	if m.DeleteErr != nil {
		return 0, m.DeleteErr
	}
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type mockAccountRepo struct {
	Stored    *models.Account
	CreateErr error
	GetErr    error
}

func (m *mockAccountRepo) CreateAccount(ctx context.Context, a *models.Account) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.Account{ID: 1, Username: a.Username, PasswordHash: a.PasswordHash, Email: a.Email}
	return 1, nil
}

func (m *mockAccountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Username == username {
		return m.Stored, nil
	}
	return nil, nil
}

type mockFeedbackRepo struct {
	Stored    []models.ServiceFeedback
	CreateErr error
}

func (m *mockFeedbackRepo) CreateFeedback(ctx context.Context, f *models.ServiceFeedback) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *f
	stored.ID = int64(len(m.Stored) + 1)
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}
