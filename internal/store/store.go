// Package store persists evaluation audit records and API keys in the
// workspace SQLite database. The evaluation core itself stays stateless;
// the store only records what the service layer already produced.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Store struct {
	DB *sql.DB
}

var ErrNotFound = errors.New("not found")

// Audit is one recorded evaluation run.
type Audit struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"created_at"`
	Operation  string `json:"operation"`
	Category   string `json:"category,omitempty"`
	Actor      string `json:"actor,omitempty"`
	Total      int    `json:"total"`
	Passed     int    `json:"passed"`
	Failed     int    `json:"failed"`
	Warnings   int    `json:"warnings"`
	Info       int    `json:"info"`
	ReportJSON string `json:"report_json,omitempty"`
}

func scanAudit(scan func(dest ...any) error) (Audit, error) {
	var a Audit
	err := scan(&a.ID, &a.CreatedAt, &a.Operation, &a.Category, &a.Actor,
		&a.Total, &a.Passed, &a.Failed, &a.Warnings, &a.Info, &a.ReportJSON)
	if err == sql.ErrNoRows {
		return a, ErrNotFound
	}
	return a, err
}

const auditColumns = `id,created_at,operation,category,actor,total,passed,failed,warnings,info,report_json`

func (s Store) InsertAudit(ctx context.Context, a Audit) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO audits(`+auditColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		a.ID, a.CreatedAt, a.Operation, a.Category, a.Actor,
		a.Total, a.Passed, a.Failed, a.Warnings, a.Info, a.ReportJSON)
	return err
}

func (s Store) GetAudit(ctx context.Context, id string) (Audit, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+auditColumns+` FROM audits WHERE id=?`, id)
	return scanAudit(row.Scan)
}

// LatestAudits returns the most recent audits, newest first, optionally
// filtered by operation name.
func (s Store) LatestAudits(ctx context.Context, operation string, limit int) ([]Audit, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + auditColumns + ` FROM audits`
	var args []any
	if operation != "" {
		query += ` WHERE operation=?`
		args = append(args, operation)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Audit
	for rows.Next() {
		a, err := scanAudit(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (s Store) CountAudits(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM audits`).Scan(&n)
	return n, err
}

// PruneAudits deletes all but the newest keep records. keep<=0 is a no-op.
func (s Store) PruneAudits(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := s.DB.ExecContext(ctx, fmt.Sprintf(
		`DELETE FROM audits WHERE id NOT IN (SELECT id FROM audits ORDER BY created_at DESC, id DESC LIMIT %d)`, keep))
	return err
}
