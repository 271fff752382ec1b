package reader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/citereader/internal/core/logging"
	"github.com/colonyops/citereader/internal/core/paper"
)

// PaperStore is the persistence the catalog needs.
type PaperStore interface {
	Save(ctx context.Context, p paper.Paper) error
	SaveAll(ctx context.Context, papers []paper.Paper) error
	Get(ctx context.Context, id string) (paper.Paper, error)
	GetMany(ctx context.Context, ids []string) ([]paper.Paper, error)
	List(ctx context.Context) ([]paper.Paper, error)
}

// Catalog is the on-disk format accepted by PaperService.Import.
type Catalog struct {
	Papers []paper.Paper `yaml:"papers"`
}

// ParseCatalog decodes and validates a YAML paper catalog.
func ParseCatalog(r io.Reader) (Catalog, error) {
	var cat Catalog
	if err := yaml.NewDecoder(r).Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return cat, nil
		}
		return cat, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]int, len(cat.Papers))
	for i, p := range cat.Papers {
		if err := p.Validate(); err != nil {
			return cat, fmt.Errorf("papers[%d]: %w", i, err)
		}
		if j, ok := seen[p.ID]; ok {
			return cat, fmt.Errorf("papers[%d]: %w: id %s duplicates papers[%d]", i, paper.ErrInvalid, p.ID, j)
		}
		seen[p.ID] = i
	}
	return cat, nil
}

// PaperService manages the local paper catalog.
type PaperService struct {
	store PaperStore
}

// NewPaperService creates a new PaperService.
func NewPaperService(store PaperStore) *PaperService {
	return &PaperService{store: store}
}

// Import reads a YAML catalog and stores every paper in one transaction.
// Returns the number of papers stored.
func (s *PaperService) Import(ctx context.Context, r io.Reader) (int, error) {
	cat, err := ParseCatalog(r)
	if err != nil {
		return 0, err
	}
	if err := s.Save(ctx, cat.Papers); err != nil {
		return 0, err
	}
	return len(cat.Papers), nil
}

// Save stores papers, replacing existing entries with the same id.
func (s *PaperService) Save(ctx context.Context, papers []paper.Paper) error {
	if len(papers) == 0 {
		return nil
	}
	if err := s.store.SaveAll(ctx, papers); err != nil {
		return err
	}
	logging.Component("papers").Info().Int("count", len(papers)).Msg("papers saved")
	return nil
}

// Get returns a single paper.
func (s *PaperService) Get(ctx context.Context, id string) (paper.Paper, error) {
	return s.store.Get(ctx, id)
}

// List returns the whole catalog.
func (s *PaperService) List(ctx context.Context) ([]paper.Paper, error) {
	return s.store.List(ctx)
}

// Index loads the papers referenced by ids into an in-memory index. Ids with
// no stored metadata are left out.
func (s *PaperService) Index(ctx context.Context, ids []string) (paper.Index, error) {
	papers, err := s.store.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load papers: %w", err)
	}
	return paper.NewIndex(papers), nil
}
