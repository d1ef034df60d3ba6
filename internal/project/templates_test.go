package project

import (
	"testing"

	"github.com/renocalc/renocalc/internal/model"
)

func TestListTemplates_MissingFile(t *testing.T) {
	s, _ := newTestStore(t)
	store, err := s.ListTemplates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestSaveTemplate_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	tmpl := model.NewRoomTemplate("Bathroom", "Compact bathroom",
		model.NewRoom("", "2.2", "1.8", "2.5"))

	if err := s.SaveTemplate(tmpl); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	store, err := s.ListTemplates()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(store.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(store.Templates))
	}
	got := store.Templates[0]
	if got.Name != "Bathroom" || got.Length != "2.2" {
		t.Errorf("template not round-tripped: %+v", got)
	}
}

func TestSaveTemplate_ReplacesByID(t *testing.T) {
	s, _ := newTestStore(t)
	tmpl := model.NewRoomTemplate("Bathroom", "", model.NewRoom("", "2.2", "1.8", "2.5"))
	if err := s.SaveTemplate(tmpl); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	tmpl.Description = "updated"
	if err := s.SaveTemplate(tmpl); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	store, err := s.ListTemplates()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(store.Templates) != 1 {
		t.Fatalf("expected 1 template after replace, got %d", len(store.Templates))
	}
	if store.Templates[0].Description != "updated" {
		t.Errorf("expected replaced description, got %q", store.Templates[0].Description)
	}
}

func TestDeleteTemplate(t *testing.T) {
	s, _ := newTestStore(t)
	tmpl := model.NewRoomTemplate("T", "", model.NewRoom("", "3", "3", "2.5"))
	if err := s.SaveTemplate(tmpl); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := s.DeleteTemplate(tmpl.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.DeleteTemplate(tmpl.ID); err == nil {
		t.Error("expected error deleting unknown template")
	} else if err.Kind != model.ErrDelete {
		t.Errorf("expected delete kind, got %q", err.Kind)
	}
}
