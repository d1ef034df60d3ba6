package events

import "github.com/renocalc/renocalc/internal/model"

// Payload shapes for every event channel. Emitters construct these;
// listeners type-assert on the payload matching the channel they
// subscribed to.

type RoomAddedPayload struct {
	Room model.RoomData
}

type RoomUpdatedPayload struct {
	Room         model.RoomData
	PreviousRoom model.RoomData
}

type RoomDeletedPayload struct {
	RoomID string
}

type MaterialAddedPayload struct {
	Material model.SavedMaterial
}

type MaterialUpdatedPayload struct {
	Material         model.SavedMaterial
	PreviousMaterial model.SavedMaterial
}

type MaterialDeletedPayload struct {
	MaterialID int
}

// CalculationUpdatedPayload carries one material's fresh result.
// Result is nil when the material is not yet computable.
type CalculationUpdatedPayload struct {
	Name   string
	Result *model.MaterialResult
}

type CalculationCompletedPayload struct {
	Results map[string]*model.MaterialResult
	Totals  model.TotalCalculations
}

type ExportPayload struct {
	Format string
	Path   string
	Err    error // set on export:failed only
}

type SavePayload struct {
	Name string
	Data *model.Estimate // set on save:completed
	Err  error           // set on save:failed only
}

type LoadPayload struct {
	Name string
	Data *model.Estimate // set on load:completed
	Err  error           // set on load:failed only
}

type ThemeChangedPayload struct {
	Theme string
}

type ErrorOccurredPayload struct {
	Err *model.CalculatorError
}

type ValidationFailedPayload struct {
	Errors map[string][]string
}

type ValidationPassedPayload struct {
	Entity string
}
