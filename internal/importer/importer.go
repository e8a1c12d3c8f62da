// Package importer turns uploaded donation and bank files into record
// batches, composing decoding, field extraction, date canonicalization and
// category classification per row.
package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RHFBAH/donation-reconciler/internal/fields"
)

// ErrUnsupportedFormat is returned for file extensions no parser handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Parser reads one tabular file format into header-keyed rows.
type Parser interface {
	// Rows parses raw file bytes. The encoding name is honored by text
	// formats and ignored by binary ones; textenc.Auto requests detection.
	Rows(data []byte, encoding string) ([]fields.Row, error)
	// Extensions returns the lower-case file extensions handled.
	Extensions() []string
}

// Registry holds parsers keyed by file extension.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on a duplicate extension.
func (r *Registry) Register(p Parser) {
	for _, ext := range p.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.parsers[key]; ok {
			panic("duplicate parser extension: " + key)
		}
		r.parsers[key] = p
	}
}

// Get returns the parser for an extension, or nil.
func (r *Registry) Get(ext string) Parser {
	return r.parsers[strings.ToLower(ext)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&ExcelParser{})
	return r
}

// loadRows reads a file and parses it with the registry parser for its
// extension.
func loadRows(reg *Registry, path, encoding string) ([]fields.Row, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	p := reg.Get(ext)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return p.Rows(data, encoding)
}
