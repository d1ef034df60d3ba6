package model

import (
	"testing"
)

func TestNewRoomTemplate(t *testing.T) {
	room := NewRoom("Master bedroom", "4", "3.5", "2.7")
	room.Openings = append(room.Openings,
		NewOpening(OpeningDoor, "0.8", "2", "1"),
		NewOpening(OpeningWindow, "1.4", "1.5", "1"))

	tmpl := NewRoomTemplate("Bedroom", "Standard bedroom layout", room)

	if tmpl.Name != "Bedroom" {
		t.Errorf("expected name 'Bedroom', got %q", tmpl.Name)
	}
	if tmpl.Description != "Standard bedroom layout" {
		t.Errorf("expected description 'Standard bedroom layout', got %q", tmpl.Description)
	}
	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if tmpl.Length != "4" || tmpl.Width != "3.5" || tmpl.Height != "2.7" {
		t.Errorf("dimensions not copied: %s x %s x %s", tmpl.Length, tmpl.Width, tmpl.Height)
	}
	if len(tmpl.Openings) != 2 {
		t.Errorf("expected 2 openings, got %d", len(tmpl.Openings))
	}
}

func TestRoomTemplate_ToRoom(t *testing.T) {
	source := NewRoom("", "2.2", "1.8", "2.5")
	source.Openings = append(source.Openings, NewOpening(OpeningDoor, "0.7", "2", "1"))
	source.Elements = append(source.Elements, NewNiche("0.6", "0.3", "1", "1"))

	tmpl := NewRoomTemplate("Bathroom", "", source)
	room := tmpl.ToRoom("Guest bathroom")

	if room.Name != "Guest bathroom" {
		t.Errorf("expected room name 'Guest bathroom', got %q", room.Name)
	}
	if room.Length != "2.2" || room.Width != "1.8" || room.Height != "2.5" {
		t.Errorf("dimensions not instantiated: %s x %s x %s", room.Length, room.Width, room.Height)
	}
	if len(room.Openings) != 1 {
		t.Fatalf("expected 1 opening, got %d", len(room.Openings))
	}
	// Instantiated entities must carry fresh IDs
	if room.Openings[0].ID == tmpl.Openings[0].ID {
		t.Error("room openings should have fresh IDs, not template IDs")
	}
	if len(room.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(room.Elements))
	}
	if room.Elements[0].ID == tmpl.Elements[0].ID {
		t.Error("room elements should have fresh IDs, not template IDs")
	}
	if room.Elements[0].Kind != ElementNiche {
		t.Errorf("expected niche element, got %q", room.Elements[0].Kind)
	}
}

func TestTemplateStore_AddRemoveFind(t *testing.T) {
	store := NewTemplateStore()

	tmpl1 := NewRoomTemplate("T1", "", NewRoom("", "3", "3", "2.5"))
	tmpl2 := NewRoomTemplate("T2", "", NewRoom("", "4", "4", "2.5"))

	store.Add(tmpl1)
	store.Add(tmpl2)

	if len(store.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(store.Templates))
	}

	found := store.Find(tmpl1.ID)
	if found == nil || found.Name != "T1" {
		t.Error("expected to find T1 by ID")
	}
	if store.FindByName("T2") == nil {
		t.Error("expected to find T2 by name")
	}
	if store.Find("missing") != nil {
		t.Error("expected nil for unknown ID")
	}

	if !store.Remove(tmpl1.ID) {
		t.Error("expected Remove to report success")
	}
	if store.Remove(tmpl1.ID) {
		t.Error("expected second Remove to report failure")
	}
	if len(store.Templates) != 1 {
		t.Errorf("expected 1 template after removal, got %d", len(store.Templates))
	}
}

func TestBuiltinTemplates(t *testing.T) {
	builtins := BuiltinTemplates()
	if len(builtins) != 3 {
		t.Fatalf("expected 3 builtin templates, got %d", len(builtins))
	}
	for _, tmpl := range builtins {
		room := tmpl.ToRoom(tmpl.Name)
		m := ComputeMetrics(room)
		if m.FloorArea <= 0 || m.WallArea <= 0 {
			t.Errorf("builtin %q yields degenerate metrics: %+v", tmpl.Name, m)
		}
	}
}
