package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	if cfg.DisplayUnit != UnitMeters {
		t.Errorf("expected default unit m, got %s", cfg.DisplayUnit)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.RecentEstimates == nil {
		t.Error("RecentEstimates should not be nil")
	}
	if cfg.DefaultTileMargin != 10 {
		t.Errorf("expected default tile margin 10, got %f", cfg.DefaultTileMargin)
	}
}

func TestAddRecentEstimateDedupesAndBounds(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentEstimate("flat")
	cfg.AddRecentEstimate("house")
	cfg.AddRecentEstimate("flat")

	if len(cfg.RecentEstimates) != 2 {
		t.Fatalf("expected 2 recent entries, got %d", len(cfg.RecentEstimates))
	}
	if cfg.RecentEstimates[0] != "flat" {
		t.Errorf("expected most recent first, got %v", cfg.RecentEstimates)
	}
	if cfg.LastEstimate != "flat" {
		t.Errorf("expected last estimate flat, got %s", cfg.LastEstimate)
	}

	for i := 0; i < 20; i++ {
		cfg.AddRecentEstimate(string(rune('a' + i)))
	}
	if len(cfg.RecentEstimates) != maxRecentEstimates {
		t.Errorf("expected bounded list of %d, got %d", maxRecentEstimates, len(cfg.RecentEstimates))
	}
}
