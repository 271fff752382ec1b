package db

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries holds the typed statements used by the stores.
type Queries struct {
	db DBTX
}

// New binds a query set to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a copy of q bound to tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Paper is a row of the papers table. Authors is a JSON array.
type Paper struct {
	ID        string
	Title     string
	Authors   string
	Year      int64
	Venue     string
	Abstract  string
	UpdatedAt int64
}

const upsertPaper = `
INSERT INTO papers (id, title, authors, year, venue, abstract, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    title      = excluded.title,
    authors    = excluded.authors,
    year       = excluded.year,
    venue      = excluded.venue,
    abstract   = excluded.abstract,
    updated_at = excluded.updated_at`

// UpsertPaper inserts or replaces a paper row.
func (q *Queries) UpsertPaper(ctx context.Context, p Paper) error {
	_, err := q.db.ExecContext(ctx, upsertPaper,
		p.ID, p.Title, p.Authors, p.Year, p.Venue, p.Abstract, p.UpdatedAt,
	)
	return err
}

const getPaper = `
SELECT id, title, authors, year, venue, abstract, updated_at
FROM papers WHERE id = ?`

// GetPaper returns one paper row or sql.ErrNoRows.
func (q *Queries) GetPaper(ctx context.Context, id string) (Paper, error) {
	var p Paper
	err := q.db.QueryRowContext(ctx, getPaper, id).Scan(
		&p.ID, &p.Title, &p.Authors, &p.Year, &p.Venue, &p.Abstract, &p.UpdatedAt,
	)
	return p, err
}

const listPapers = `
SELECT id, title, authors, year, venue, abstract, updated_at
FROM papers ORDER BY id`

// ListPapers returns all paper rows ordered by id.
func (q *Queries) ListPapers(ctx context.Context) ([]Paper, error) {
	rows, err := q.db.QueryContext(ctx, listPapers)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []Paper
	for rows.Next() {
		var p Paper
		if err := rows.Scan(&p.ID, &p.Title, &p.Authors, &p.Year, &p.Venue, &p.Abstract, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// Feedback is a row of the feedback table. Context is a JSON object.
type Feedback struct {
	ID        int64
	Kind      string
	Comment   string
	Context   string
	CreatedAt int64
}

const insertFeedback = `
INSERT INTO feedback (kind, comment, context, created_at)
VALUES (?, ?, ?, ?)`

// InsertFeedback stores a feedback row and returns its id.
func (q *Queries) InsertFeedback(ctx context.Context, f Feedback) (int64, error) {
	res, err := q.db.ExecContext(ctx, insertFeedback, f.Kind, f.Comment, f.Context, f.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const listFeedback = `
SELECT id, kind, comment, context, created_at
FROM feedback ORDER BY created_at DESC, id DESC`

// ListFeedback returns feedback rows, newest first.
func (q *Queries) ListFeedback(ctx context.Context) ([]Feedback, error) {
	rows, err := q.db.QueryContext(ctx, listFeedback)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Kind, &f.Comment, &f.Context, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}
