package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jrocha/techbook/pkg/models"
)

// NextTechID allocates the next public identifier from a dedicated
// monotonic counter. Unlike MAX(id)+1, the counter never goes backwards
// after a delete, so identifiers cannot be reused.
func (r *SQLiteRepo) NextTechID(ctx context.Context) (string, error) {
	row := r.conn.QueryRow(ctx, `UPDATE technician_seq SET seq = seq + 1 RETURNING seq`)
	var n int64
	if err := row.Scan(&n); err != nil {
		return "", fmt.Errorf("advance technician sequence: %w", err)
	}

	return models.FormatTechID(n), nil
}

func (r *SQLiteRepo) CreateTechnician(ctx context.Context, t *models.Technician) (int64, error) {
	if t == nil {
		return 0, fmt.Errorf("technician is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO technicians (tech_id, name, phone, address, photo, certificate, uploaded_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.TechID, t.Name, t.Phone, t.Address, t.Photo, t.Certificate, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetByTechID(ctx context.Context, techID string) (*models.Technician, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, tech_id, name, phone, address, photo, certificate, uploaded_at FROM technicians WHERE tech_id = ?`, techID)
	var t models.Technician
	if err := row.Scan(&t.ID, &t.TechID, &t.Name, &t.Phone, &t.Address, &t.Photo, &t.Certificate, &t.UploadedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &t, nil
}

// ListTechnicians returns rows in insertion order. The binary attachments
// are left out; they are served whole through GetByTechID.
func (r *SQLiteRepo) ListTechnicians(ctx context.Context, limit, offset int) ([]models.Technician, error) {
	if limit <= 0 {
		limit = 4
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT id, tech_id, name, phone, address, uploaded_at FROM technicians ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Technician
	for rows.Next() {
		var t models.Technician
		if err := rows.Scan(&t.ID, &t.TechID, &t.Name, &t.Phone, &t.Address, &t.UploadedAt); err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CountTechnicians(ctx context.Context) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM technicians`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}

// UpdateTechnician replaces every stored field of the row identified by
// t.TechID. Callers that want to keep an existing attachment must pass the
// previously stored bytes back in.
func (r *SQLiteRepo) UpdateTechnician(ctx context.Context, t *models.Technician) error {
	if t == nil {
		return fmt.Errorf("technician is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE technicians SET name = ?, phone = ?, address = ?, photo = ?, certificate = ?, uploaded_at = ? WHERE tech_id = ?`,
		t.Name, t.Phone, t.Address, t.Photo, t.Certificate, now(), t.TechID)
	return err
}

func (r *SQLiteRepo) DeleteTechnician(ctx context.Context, id int64) (int64, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM technicians WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
