package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renocalc/renocalc/internal/model"
)

const templatesFile = "templates.json"

func (s *Store) templatesPath() string { return filepath.Join(s.dir, templatesFile) }

// ListTemplates returns the saved template store. A missing file yields
// an empty store, not an error.
func (s *Store) ListTemplates() (model.TemplateStore, *model.CalculatorError) {
	data, err := os.ReadFile(s.templatesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, model.WrapError(model.ErrLoad, "failed to read templates file", err)
	}
	var store model.TemplateStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.TemplateStore{}, model.WrapError(model.ErrLoad, "failed to parse templates file", err)
	}
	if store.Templates == nil {
		store.Templates = []model.RoomTemplate{}
	}
	return store, nil
}

// SaveTemplate persists a room template. Saving an existing ID
// replaces that template in place.
func (s *Store) SaveTemplate(t model.RoomTemplate) *model.CalculatorError {
	store, cerr := s.ListTemplates()
	if cerr != nil {
		return cerr
	}
	if existing := store.Find(t.ID); existing != nil {
		*existing = t
	} else {
		store.Add(t)
	}
	return s.writeTemplates(store)
}

// DeleteTemplate removes the template with the given ID.
func (s *Store) DeleteTemplate(id string) *model.CalculatorError {
	store, cerr := s.ListTemplates()
	if cerr != nil {
		return cerr
	}
	if !store.Remove(id) {
		return model.WrapError(model.ErrDelete, fmt.Sprintf("no template with id %q", id), nil)
	}
	return s.writeTemplates(store)
}

func (s *Store) writeTemplates(store model.TemplateStore) *model.CalculatorError {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return model.WrapError(model.ErrSave, "failed to create data directory", err)
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return model.WrapError(model.ErrSave, "failed to marshal templates", err)
	}
	if err := writeFileAtomic(s.templatesPath(), data); err != nil {
		return model.WrapError(model.ErrSave, "failed to write templates file", err)
	}
	return nil
}
