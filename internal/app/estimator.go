// Package app hosts the Estimator, the coordinator a calling
// application talks to. It owns the working set of rooms and
// materials, gates every mutation through validation, drives the
// material calculator registry, and announces every state change on
// the event bus.
//
// The Estimator is deliberately single-threaded: all methods are
// expected to be called from one goroutine, the same way the bus
// dispatches handlers synchronously. Callers needing concurrency put
// their own serialization in front.
package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/renocalc/renocalc/internal/events"
	"github.com/renocalc/renocalc/internal/export"
	"github.com/renocalc/renocalc/internal/materials"
	"github.com/renocalc/renocalc/internal/model"
	"github.com/renocalc/renocalc/internal/project"
	"github.com/renocalc/renocalc/internal/validation"
)

// Export formats accepted by Estimator.Export.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// Estimator coordinates the working estimate: rooms, saved materials,
// and the latest calculation results.
type Estimator struct {
	bus      *events.Bus
	registry *materials.Registry
	store    *project.Store
	log      zerolog.Logger

	name      string
	savedID   int    // 0 until the working estimate has been saved or loaded
	savedDate string // ISO-8601, set alongside savedID
	rooms     []model.RoomData
	materials []model.SavedMaterial
	results   map[string]*model.MaterialResult
	totals    model.TotalCalculations
	theme     string
}

// New builds an Estimator around its collaborators. The store may be
// nil for purely in-memory use; Save/Load/material persistence then
// return errors.
func New(bus *events.Bus, registry *materials.Registry, store *project.Store, log zerolog.Logger) *Estimator {
	return &Estimator{
		bus:      bus,
		registry: registry,
		store:    store,
		log:      log,
		name:     "Untitled estimate",
		results:  map[string]*model.MaterialResult{},
		theme:    "light",
	}
}

// Name returns the current estimate name.
func (e *Estimator) Name() string { return e.name }

// SetName renames the working estimate.
func (e *Estimator) SetName(name string) {
	if strings.TrimSpace(name) != "" {
		e.name = strings.TrimSpace(name)
	}
}

// Rooms returns a copy of the working room list.
func (e *Estimator) Rooms() []model.RoomData {
	out := make([]model.RoomData, len(e.rooms))
	copy(out, e.rooms)
	return out
}

// Materials returns a copy of the working material list.
func (e *Estimator) Materials() []model.SavedMaterial {
	out := make([]model.SavedMaterial, len(e.materials))
	copy(out, e.materials)
	return out
}

// Results returns a copy of the latest per-material results. Nil
// entries mean the material was not computable with its current
// parameters.
func (e *Estimator) Results() map[string]*model.MaterialResult {
	out := make(map[string]*model.MaterialResult, len(e.results))
	for name, res := range e.results {
		out[name] = res
	}
	return out
}

// Totals returns the aggregate metrics from the last recalculation.
func (e *Estimator) Totals() model.TotalCalculations { return e.totals }

// Theme returns the active theme name.
func (e *Estimator) Theme() string { return e.theme }

// SetTheme switches the theme and notifies listeners.
func (e *Estimator) SetTheme(theme string) {
	if theme == e.theme {
		return
	}
	e.theme = theme
	e.bus.Emit(events.ThemeChanged, events.ThemeChangedPayload{Theme: theme})
}

// ─── Rooms ─────────────────────────────────────────────────

// AddRoom validates the room and appends it to the working set. An
// invalid room is rejected without mutating state; the validation
// failure is published on the bus and returned.
func (e *Estimator) AddRoom(room model.RoomData) *model.CalculatorError {
	if err := e.checkRoom(room); err != nil {
		return err
	}
	e.rooms = append(e.rooms, room)
	e.bus.Emit(events.RoomAdded, events.RoomAddedPayload{Room: room})
	e.Recalculate()
	return nil
}

// UpdateRoom replaces the room with the same ID. Unknown IDs and
// validation failures leave the working set untouched.
func (e *Estimator) UpdateRoom(room model.RoomData) *model.CalculatorError {
	idx := e.roomIndex(room.ID)
	if idx < 0 {
		return model.WrapError(model.ErrValidation, fmt.Sprintf("no room with id %q", room.ID), nil)
	}
	if err := e.checkRoom(room); err != nil {
		return err
	}
	previous := e.rooms[idx]
	e.rooms[idx] = room
	e.bus.Emit(events.RoomUpdated, events.RoomUpdatedPayload{Room: room, PreviousRoom: previous})
	e.Recalculate()
	return nil
}

// DeleteRoom removes a room by ID.
func (e *Estimator) DeleteRoom(id string) *model.CalculatorError {
	idx := e.roomIndex(id)
	if idx < 0 {
		return model.WrapError(model.ErrDelete, fmt.Sprintf("no room with id %q", id), nil)
	}
	e.rooms = append(e.rooms[:idx], e.rooms[idx+1:]...)
	e.bus.Emit(events.RoomDeleted, events.RoomDeletedPayload{RoomID: id})
	e.Recalculate()
	return nil
}

func (e *Estimator) roomIndex(id string) int {
	for i, r := range e.rooms {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (e *Estimator) checkRoom(room model.RoomData) *model.CalculatorError {
	res := validation.ValidateRoom(room)
	if res.Valid {
		e.bus.Emit(events.ValidationPassed, events.ValidationPassedPayload{Entity: "room"})
		return nil
	}
	e.bus.Emit(events.ValidationFailed, events.ValidationFailedPayload{Errors: res.Errors})
	return model.WrapError(model.ErrValidation,
		fmt.Sprintf("room %q failed validation: %s", room.Name, strings.Join(res.Fields(), ", ")), nil)
}

// ─── Materials ─────────────────────────────────────────────

// AddMaterial validates and persists a new material, then adds it to
// the working set. The store assigns the ID.
func (e *Estimator) AddMaterial(m model.SavedMaterial) *model.CalculatorError {
	if err := e.checkMaterial(m); err != nil {
		return err
	}
	m.ID = 0
	saved, err := e.saveMaterial(m)
	if err != nil {
		return err
	}
	e.materials = append(e.materials, saved)
	e.bus.Emit(events.MaterialAdded, events.MaterialAddedPayload{Material: saved})
	e.Recalculate()
	return nil
}

// UpdateMaterial validates and persists changes to an existing
// material.
func (e *Estimator) UpdateMaterial(m model.SavedMaterial) *model.CalculatorError {
	idx := e.materialIndex(m.ID)
	if idx < 0 {
		return model.WrapError(model.ErrValidation, fmt.Sprintf("no material with id %d", m.ID), nil)
	}
	if err := e.checkMaterial(m); err != nil {
		return err
	}
	saved, err := e.saveMaterial(m)
	if err != nil {
		return err
	}
	previous := e.materials[idx]
	e.materials[idx] = saved
	e.bus.Emit(events.MaterialUpdated, events.MaterialUpdatedPayload{Material: saved, PreviousMaterial: previous})
	e.Recalculate()
	return nil
}

// DeleteMaterial removes a material from the store and the working
// set.
func (e *Estimator) DeleteMaterial(id int) *model.CalculatorError {
	idx := e.materialIndex(id)
	if idx < 0 {
		return model.WrapError(model.ErrDelete, fmt.Sprintf("no material with id %d", id), nil)
	}
	if e.store != nil {
		if err := e.store.DeleteMaterial(id); err != nil {
			e.emitError(err)
			return err
		}
	}
	e.materials = append(e.materials[:idx], e.materials[idx+1:]...)
	e.bus.Emit(events.MaterialDeleted, events.MaterialDeletedPayload{MaterialID: id})
	e.Recalculate()
	return nil
}

// LoadMaterials pulls the persisted material library into the working
// set, replacing whatever was there.
func (e *Estimator) LoadMaterials() *model.CalculatorError {
	if e.store == nil {
		return model.WrapError(model.ErrLoad, "no store configured", nil)
	}
	mats, err := e.store.ListMaterials()
	if err != nil {
		e.emitError(err)
		return err
	}
	e.materials = mats
	e.Recalculate()
	return nil
}

func (e *Estimator) materialIndex(id int) int {
	for i, m := range e.materials {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (e *Estimator) checkMaterial(m model.SavedMaterial) *model.CalculatorError {
	res := validation.ValidateMaterial(m, e.registry.Categories())
	if res.Valid {
		e.bus.Emit(events.ValidationPassed, events.ValidationPassedPayload{Entity: "material"})
		return nil
	}
	e.bus.Emit(events.ValidationFailed, events.ValidationFailedPayload{Errors: res.Errors})
	return model.WrapError(model.ErrValidation,
		fmt.Sprintf("material %q failed validation: %s", m.Name, strings.Join(res.Fields(), ", ")), nil)
}

// saveMaterial persists through the store when one is configured, or
// assigns an in-memory ID otherwise.
func (e *Estimator) saveMaterial(m model.SavedMaterial) (model.SavedMaterial, *model.CalculatorError) {
	if e.store != nil {
		saved, err := e.store.SaveMaterial(m)
		if err != nil {
			e.emitError(err)
			return model.SavedMaterial{}, err
		}
		return saved, nil
	}
	if m.ID == 0 {
		maxID := 0
		for _, existing := range e.materials {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		m.ID = maxID + 1
	}
	return m, nil
}

// ─── Calculation ───────────────────────────────────────────

// Recalculate recomputes totals and every material result from the
// current working set. Each material gets its own calculation:updated
// event; an unknown category is reported as error:occurred and the
// material is skipped. The pass always finishes with
// calculation:completed carrying the full result map.
func (e *Estimator) Recalculate() {
	e.totals = model.ComputeTotalMetrics(e.rooms)
	metrics := e.totals.Metrics()
	e.results = map[string]*model.MaterialResult{}

	sorted := make([]model.SavedMaterial, len(e.materials))
	copy(sorted, e.materials)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for _, m := range sorted {
		res, err := e.registry.Calculate(m.Category, metrics, m.Params)
		if err != nil {
			e.emitError(model.WrapError(model.ErrCalculation,
				fmt.Sprintf("material %q: %v", m.Name, err), err))
			continue
		}
		e.results[m.Name] = res
		e.bus.Emit(events.CalculationUpdated, events.CalculationUpdatedPayload{Name: m.Name, Result: res})
	}

	e.bus.Emit(events.CalculationCompleted, events.CalculationCompletedPayload{
		Results: e.Results(),
		Totals:  e.totals,
	})
}

// ─── Persistence ───────────────────────────────────────────

// Save persists the working rooms under the given estimate name. The
// store emits the save lifecycle events.
func (e *Estimator) Save(name string) (model.Estimate, *model.CalculatorError) {
	if e.store == nil {
		return model.Estimate{}, model.WrapError(model.ErrSave, "no store configured", nil)
	}
	if strings.TrimSpace(name) == "" {
		name = e.name
	}
	est, err := e.store.SaveEstimate(name, e.rooms)
	if err != nil {
		e.emitError(err)
		return model.Estimate{}, err
	}
	e.name = est.Name
	e.savedID = est.ID
	e.savedDate = est.Date
	return est, nil
}

// Load replaces the working rooms with a persisted estimate.
func (e *Estimator) Load(name string) *model.CalculatorError {
	if e.store == nil {
		return model.WrapError(model.ErrLoad, "no store configured", nil)
	}
	est, err := e.store.LoadEstimate(name)
	if err != nil {
		e.emitError(err)
		return err
	}
	e.name = est.Name
	e.savedID = est.ID
	e.savedDate = est.Date
	e.rooms = est.Rooms
	e.Recalculate()
	return nil
}

// ─── Export ────────────────────────────────────────────────

// Export writes the current estimate to path in the given format
// ("pdf" or "xlsx"), bracketing the write with export lifecycle
// events.
func (e *Estimator) Export(format, path string) *model.CalculatorError {
	e.bus.Emit(events.ExportStarted, events.ExportPayload{Format: format, Path: path})

	// The saved identity makes the document's QR tag traceable back to
	// the estimate on disk; an unsaved estimate exports with ID 0.
	est := model.Estimate{ID: e.savedID, Name: e.name, Date: e.savedDate, Rooms: e.rooms}
	var err error
	switch format {
	case FormatPDF:
		err = export.ExportPDF(path, est, e.results)
	case FormatXLSX:
		err = export.ExportXLSX(path, est, e.results)
	default:
		err = fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		e.bus.Emit(events.ExportFailed, events.ExportPayload{Format: format, Path: path, Err: err})
		cerr := model.WrapError(model.ErrExport,
			fmt.Sprintf("failed to export %s", filepath.Base(path)), err)
		e.emitError(cerr)
		return cerr
	}

	e.bus.Emit(events.ExportCompleted, events.ExportPayload{Format: format, Path: path})
	return nil
}

// emitError publishes a CalculatorError on the bus and logs it.
func (e *Estimator) emitError(err *model.CalculatorError) {
	e.log.Error().Str("kind", string(err.Kind)).Msg(err.Message)
	e.bus.Emit(events.ErrorOccurred, events.ErrorOccurredPayload{Err: err})
}
