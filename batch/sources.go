package batch

import (
	"github.com/gridform/tablature/hocr"
	"github.com/gridform/tablature/model"
)

// FragmentSource is an in-memory Source for pages whose fragments are
// already available.
type FragmentSource struct {
	ID    string
	Frags []model.Fragment
	Lines []model.Ruling
}

// PageID identifies the page.
func (s *FragmentSource) PageID() string { return s.ID }

// Fragments returns the page's fragments.
func (s *FragmentSource) Fragments() ([]model.Fragment, error) { return s.Frags, nil }

// Rulings returns the page's ruling lines.
func (s *FragmentSource) Rulings() []model.Ruling { return s.Lines }

// FromHOCR builds one source per page of an hOCR file.
func FromHOCR(filename string) ([]Source, error) {
	pages, err := hocr.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	sources := make([]Source, len(pages))
	for i, p := range pages {
		sources[i] = &FragmentSource{ID: p.PageID, Frags: p.Fragments}
	}
	return sources, nil
}
