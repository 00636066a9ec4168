package importer

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/achrecon-dev/achrecon/internal/model"
)

// Reader converts an uploaded supplier invoice file into InvoiceRows.
type Reader interface {
	Read(r io.Reader) ([]model.InvoiceRow, error)
	Format() string
}

// Registry holds named readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(p Reader) {
	key := strings.ToLower(p.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = p
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// ForFile returns the reader matching a file name's extension, or nil.
func (r *Registry) ForFile(name string) Reader {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return r.Get(ext)
}

// DefaultRegistry returns a registry with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&XLSXReader{})
	r.Register(&CSVReader{})
	return r
}
