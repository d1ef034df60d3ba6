package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/renocalc/renocalc/internal/events"
	"github.com/renocalc/renocalc/internal/model"
)

const (
	estimatesFile = "estimates.json"
	materialsFile = "materials.json"
)

// Store reads and writes the saved-estimate and saved-material files in
// one data directory and reports its activity on the event bus.
type Store struct {
	dir string
	bus *events.Bus
}

// NewStore creates a store rooted at dir. The bus receives save:/load:
// lifecycle events for every operation.
func NewStore(dir string, bus *events.Bus) *Store {
	return &Store{dir: dir, bus: bus}
}

func (s *Store) estimatesPath() string { return filepath.Join(s.dir, estimatesFile) }
func (s *Store) materialsPath() string { return filepath.Join(s.dir, materialsFile) }

// ListEstimates returns all saved estimates. A missing file yields an
// empty list, not an error.
func (s *Store) ListEstimates() ([]model.Estimate, *model.CalculatorError) {
	data, err := os.ReadFile(s.estimatesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Estimate{}, nil
		}
		return nil, model.WrapError(model.ErrLoad, "failed to read estimates file", err)
	}
	var estimates []model.Estimate
	if err := json.Unmarshal(data, &estimates); err != nil {
		return nil, model.WrapError(model.ErrLoad, "failed to parse estimates file", err)
	}
	return estimates, nil
}

// SaveEstimate persists rooms under the given name. Saving an existing
// name overwrites that estimate in place, keeping its id; a new name
// gets the next integer id. The write is atomic: a failed save leaves
// the prior file unchanged.
func (s *Store) SaveEstimate(name string, rooms []model.RoomData) (model.Estimate, *model.CalculatorError) {
	s.bus.Emit(events.SaveStarted, events.SavePayload{Name: name})

	estimates, cerr := s.ListEstimates()
	if cerr != nil {
		s.bus.Emit(events.SaveFailed, events.SavePayload{Name: name, Err: cerr})
		return model.Estimate{}, cerr
	}

	estimate := model.Estimate{
		Name:  name,
		Date:  time.Now().UTC().Format(time.RFC3339),
		Rooms: rooms,
	}

	replaced := false
	maxID := 0
	for i, e := range estimates {
		if e.ID > maxID {
			maxID = e.ID
		}
		if e.Name == name {
			estimate.ID = e.ID
			estimates[i] = estimate
			replaced = true
		}
	}
	if !replaced {
		estimate.ID = maxID + 1
		estimates = append(estimates, estimate)
	}

	if cerr := s.writeEstimates(estimates); cerr != nil {
		s.bus.Emit(events.SaveFailed, events.SavePayload{Name: name, Err: cerr})
		return model.Estimate{}, cerr
	}

	s.bus.Emit(events.SaveCompleted, events.SavePayload{Name: name, Data: &estimate})
	return estimate, nil
}

// LoadEstimate returns the saved estimate with the given name.
func (s *Store) LoadEstimate(name string) (model.Estimate, *model.CalculatorError) {
	s.bus.Emit(events.LoadStarted, events.LoadPayload{Name: name})

	estimates, cerr := s.ListEstimates()
	if cerr != nil {
		s.bus.Emit(events.LoadFailed, events.LoadPayload{Name: name, Err: cerr})
		return model.Estimate{}, cerr
	}
	for _, e := range estimates {
		if e.Name == name {
			s.bus.Emit(events.LoadCompleted, events.LoadPayload{Name: name, Data: &e})
			return e, nil
		}
	}

	cerr = model.WrapError(model.ErrLoad, fmt.Sprintf("no saved estimate named %q", name), nil)
	s.bus.Emit(events.LoadFailed, events.LoadPayload{Name: name, Err: cerr})
	return model.Estimate{}, cerr
}

// DeleteEstimate removes the estimate with the given id. Deleting an
// unknown id is an error so a UI can tell the user the list changed
// underneath them.
func (s *Store) DeleteEstimate(id int) *model.CalculatorError {
	estimates, cerr := s.ListEstimates()
	if cerr != nil {
		return cerr
	}
	kept := estimates[:0]
	found := false
	for _, e := range estimates {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return model.WrapError(model.ErrDelete, fmt.Sprintf("no saved estimate with id %d", id), nil)
	}
	return s.writeEstimates(kept)
}

func (s *Store) writeEstimates(estimates []model.Estimate) *model.CalculatorError {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return model.WrapError(model.ErrSave, "failed to create data directory", err)
	}
	data, err := json.MarshalIndent(estimates, "", "  ")
	if err != nil {
		return model.WrapError(model.ErrSave, "failed to marshal estimates", err)
	}
	if err := writeFileAtomic(s.estimatesPath(), data); err != nil {
		return model.WrapError(model.ErrSave, "failed to write estimates file", err)
	}
	return nil
}
