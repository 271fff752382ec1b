package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/colonyops/citereader/internal/core/paper"
	"github.com/colonyops/citereader/internal/data/db"
)

// PaperStore persists paper metadata in SQLite.
type PaperStore struct {
	db *db.DB
}

// NewPaperStore creates a new SQLite-backed paper store.
func NewPaperStore(db *db.DB) *PaperStore {
	return &PaperStore{db: db}
}

// Save creates or replaces a paper.
func (s *PaperStore) Save(ctx context.Context, p paper.Paper) error {
	return s.save(ctx, s.db.Queries(), p)
}

// SaveAll stores papers in one transaction; either all are saved or none.
func (s *PaperStore) SaveAll(ctx context.Context, papers []paper.Paper) error {
	return s.db.WithTx(ctx, func(q *db.Queries) error {
		for _, p := range papers {
			if err := s.save(ctx, q, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PaperStore) save(ctx context.Context, q *db.Queries, p paper.Paper) error {
	authors := p.Authors
	if authors == nil {
		authors = []string{}
	}
	authorsJSON, err := json.Marshal(authors)
	if err != nil {
		return fmt.Errorf("failed to marshal authors: %w", err)
	}

	err = q.UpsertPaper(ctx, db.Paper{
		ID:        p.ID,
		Title:     p.Title,
		Authors:   string(authorsJSON),
		Year:      int64(p.Year),
		Venue:     p.Venue,
		Abstract:  p.Abstract,
		UpdatedAt: time.Now().UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("failed to save paper %s: %w", p.ID, err)
	}
	return nil
}

// Get returns a paper by ID. Returns ErrNotFound if not found.
func (s *PaperStore) Get(ctx context.Context, id string) (paper.Paper, error) {
	row, err := s.db.Queries().GetPaper(ctx, id)
	if IsNotFoundError(err) {
		return paper.Paper{}, fmt.Errorf("paper %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return paper.Paper{}, fmt.Errorf("failed to get paper: %w", err)
	}
	return rowToPaper(row)
}

// GetMany returns the papers that exist among ids, in ids order. Missing ids
// are skipped.
func (s *PaperStore) GetMany(ctx context.Context, ids []string) ([]paper.Paper, error) {
	papers := make([]paper.Paper, 0, len(ids))
	for _, id := range ids {
		p, err := s.Get(ctx, id)
		if IsNotFoundError(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// List returns all papers ordered by id.
func (s *PaperStore) List(ctx context.Context) ([]paper.Paper, error) {
	rows, err := s.db.Queries().ListPapers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list papers: %w", err)
	}

	papers := make([]paper.Paper, 0, len(rows))
	for _, row := range rows {
		p, err := rowToPaper(row)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, nil
}

func rowToPaper(row db.Paper) (paper.Paper, error) {
	var authors []string
	if err := json.Unmarshal([]byte(row.Authors), &authors); err != nil {
		return paper.Paper{}, fmt.Errorf("failed to unmarshal authors of %s: %w", row.ID, err)
	}

	return paper.Paper{
		ID:       row.ID,
		Title:    row.Title,
		Authors:  authors,
		Year:     int(row.Year),
		Venue:    row.Venue,
		Abstract: row.Abstract,
	}, nil
}
