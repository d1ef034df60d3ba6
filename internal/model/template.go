package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomTemplate is a reusable room layout: dimensions plus the openings
// and elements a room of that kind typically has. Instantiating a
// template produces an independent room with fresh IDs.
type RoomTemplate struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
	Length      string             `json:"length"`
	Width       string             `json:"width"`
	Height      string             `json:"height"`
	Openings    []Opening          `json:"openings"`
	Elements    []GeometricElement `json:"elements"`
}

// NewRoomTemplate creates a template from a room's current layout.
func NewRoomTemplate(name, description string, room RoomData) RoomTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return RoomTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Length:      room.Length,
		Width:       room.Width,
		Height:      room.Height,
		Openings:    copyOpenings(room.Openings),
		Elements:    copyElements(room.Elements),
	}
}

// ToRoom instantiates the template as a new room. Openings and
// elements get fresh IDs so the room is independent of the template.
func (t RoomTemplate) ToRoom(roomName string) RoomData {
	room := NewRoom(roomName, t.Length, t.Width, t.Height)
	for _, o := range t.Openings {
		room.Openings = append(room.Openings, NewOpening(o.Type, o.Width, o.Height, o.Count))
	}
	for _, e := range t.Elements {
		fresh := e
		fresh.ID = uuid.New().String()[:8]
		room.Elements = append(room.Elements, fresh)
	}
	return room
}

func copyOpenings(openings []Opening) []Opening {
	out := make([]Opening, len(openings))
	copy(out, openings)
	return out
}

func copyElements(elements []GeometricElement) []GeometricElement {
	out := make([]GeometricElement, len(elements))
	copy(out, elements)
	return out
}

// TemplateStore holds the user's saved room templates.
type TemplateStore struct {
	Templates []RoomTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []RoomTemplate{}}
}

// Add appends a template to the store.
func (s *TemplateStore) Add(t RoomTemplate) {
	s.Templates = append(s.Templates, t)
}

// Remove deletes a template by ID. Returns true if one was removed.
func (s *TemplateStore) Remove(id string) bool {
	for i, t := range s.Templates {
		if t.ID == id {
			s.Templates = append(s.Templates[:i], s.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the template with the given ID, or nil.
func (s *TemplateStore) Find(id string) *RoomTemplate {
	for i := range s.Templates {
		if s.Templates[i].ID == id {
			return &s.Templates[i]
		}
	}
	return nil
}

// FindByName returns the first template with the given name, or nil.
func (s *TemplateStore) FindByName(name string) *RoomTemplate {
	for i := range s.Templates {
		if s.Templates[i].Name == name {
			return &s.Templates[i]
		}
	}
	return nil
}

// BuiltinTemplates returns the stock room layouts shipped with the
// application.
func BuiltinTemplates() []RoomTemplate {
	bathroom := NewRoom("", "2.2", "1.8", "2.5")
	bathroom.Openings = append(bathroom.Openings, NewOpening(OpeningDoor, "0.7", "2", "1"))

	bedroom := NewRoom("", "4", "3.5", "2.7")
	bedroom.Openings = append(bedroom.Openings,
		NewOpening(OpeningDoor, "0.8", "2", "1"),
		NewOpening(OpeningWindow, "1.4", "1.5", "1"))

	kitchen := NewRoom("", "3.5", "3", "2.7")
	kitchen.Openings = append(kitchen.Openings,
		NewOpening(OpeningDoor, "0.8", "2", "1"),
		NewOpening(OpeningWindow, "1.2", "1.4", "1"))

	return []RoomTemplate{
		NewRoomTemplate("Bathroom", "Compact bathroom with one door", bathroom),
		NewRoomTemplate("Bedroom", "Standard bedroom with door and window", bedroom),
		NewRoomTemplate("Kitchen", "Standard kitchen with door and window", kitchen),
	}
}
