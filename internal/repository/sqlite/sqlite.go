package sqlite

import (
	"time"

	"log/slog"

	"github.com/jrocha/techbook/internal/db"
	"github.com/jrocha/techbook/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.TechnicianRepo = (*SQLiteRepo)(nil)
var _ repository.AccountRepo = (*SQLiteRepo)(nil)
var _ repository.FeedbackRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

// now returns the current time as an RFC 3339 UTC string; timestamps are
// stored as TEXT.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
