package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/renocalc/renocalc/internal/model"
)

// ListMaterials returns all saved materials. A missing file yields an
// empty list, not an error.
func (s *Store) ListMaterials() ([]model.SavedMaterial, *model.CalculatorError) {
	data, err := os.ReadFile(s.materialsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []model.SavedMaterial{}, nil
		}
		return nil, model.WrapError(model.ErrLoad, "failed to read materials file", err)
	}
	var mats []model.SavedMaterial
	if err := json.Unmarshal(data, &mats); err != nil {
		return nil, model.WrapError(model.ErrLoad, "failed to parse materials file", err)
	}
	return mats, nil
}

// SaveMaterial persists a material. A material with id 0 is new and
// receives the next integer id; a known id is updated in place.
func (s *Store) SaveMaterial(m model.SavedMaterial) (model.SavedMaterial, *model.CalculatorError) {
	mats, cerr := s.ListMaterials()
	if cerr != nil {
		return model.SavedMaterial{}, cerr
	}

	if m.ID == 0 {
		maxID := 0
		for _, existing := range mats {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		m.ID = maxID + 1
		mats = append(mats, m)
	} else {
		found := false
		for i, existing := range mats {
			if existing.ID == m.ID {
				mats[i] = m
				found = true
				break
			}
		}
		if !found {
			return model.SavedMaterial{}, model.WrapError(model.ErrSave,
				fmt.Sprintf("no saved material with id %d", m.ID), nil)
		}
	}

	if cerr := s.writeMaterials(mats); cerr != nil {
		return model.SavedMaterial{}, cerr
	}
	return m, nil
}

// DeleteMaterial removes the saved material with the given id.
func (s *Store) DeleteMaterial(id int) *model.CalculatorError {
	mats, cerr := s.ListMaterials()
	if cerr != nil {
		return cerr
	}
	kept := mats[:0]
	found := false
	for _, m := range mats {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return model.WrapError(model.ErrDelete, fmt.Sprintf("no saved material with id %d", id), nil)
	}
	return s.writeMaterials(kept)
}

func (s *Store) writeMaterials(mats []model.SavedMaterial) *model.CalculatorError {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return model.WrapError(model.ErrSave, "failed to create data directory", err)
	}
	data, err := json.MarshalIndent(mats, "", "  ")
	if err != nil {
		return model.WrapError(model.ErrSave, "failed to marshal materials", err)
	}
	if err := writeFileAtomic(s.materialsPath(), data); err != nil {
		return model.WrapError(model.ErrSave, "failed to write materials file", err)
	}
	return nil
}
