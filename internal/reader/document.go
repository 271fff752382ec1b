package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/citereader/internal/core/citation"
	"github.com/colonyops/citereader/internal/core/paper"
)

// Document is a citation file: the citation to show and, optionally, metadata
// for the papers it resolved to.
//
//	citation:
//	  id: c1
//	  label: "[3]"
//	  paper_ids: [p1, p2]
//	papers:
//	  - id: p1
//	    title: ...
type Document struct {
	Citation citation.Citation `yaml:"citation"`
	Papers   []paper.Paper     `yaml:"papers,omitempty"`
}

// ReadDocument decodes and validates a citation document.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, fmt.Errorf("%w: document is empty", citation.ErrMalformedProps)
		}
		return doc, fmt.Errorf("decode citation document: %w", err)
	}

	if err := doc.Citation.Validate(); err != nil {
		return doc, err
	}
	for i, p := range doc.Papers {
		if err := p.Validate(); err != nil {
			return doc, fmt.Errorf("papers[%d]: %w", i, err)
		}
	}
	return doc, nil
}

// LoadDocument reads a citation document from path.
func LoadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open citation document: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadDocument(f)
}
