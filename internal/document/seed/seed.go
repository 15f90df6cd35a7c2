// Package seed loads documents from a YAML file for bulk insertion.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gogotex/docstore/internal/document"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCreated = errors.New("invalid created timestamp")

type file struct {
	Documents []entry `yaml:"documents"`
}

type entry struct {
	ID      string           `yaml:"id"`
	Title   *string          `yaml:"title"`
	Content *string          `yaml:"content"`
	Author  *document.Author `yaml:"author"`
	Created string           `yaml:"created"` // RFC 3339, empty means absent
}

// Decode reads a seed document list. Keys missing from an entry stay absent.
func Decode(r io.Reader) ([]*document.Document, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []*document.Document{}, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	out := make([]*document.Document, 0, len(f.Documents))
	for i, e := range f.Documents {
		d := &document.Document{ID: e.ID, Title: e.Title, Content: e.Content, Author: e.Author}
		if e.Created != "" {
			ts, err := time.Parse(time.RFC3339, e.Created)
			if err != nil {
				return nil, fmt.Errorf("seed entry %d: %w: %v", i, ErrInvalidCreated, err)
			}
			d.Created = &ts
		}
		out = append(out, d)
	}
	return out, nil
}

// LoadFile decodes the seed file at path.
func LoadFile(path string) ([]*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
