package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default calculation parameters applied to new materials
	DefaultTileMargin     float64 `json:"default_tile_margin"`     // percent
	DefaultPaintCoats     int     `json:"default_paint_coats"`     //
	DefaultWallpaperWaste float64 `json:"default_wallpaper_waste"` // percent

	// Application preferences
	DisplayUnit     Unit     `json:"display_unit"` // "m", "cm", "mm"
	Theme           string   `json:"theme"`        // "light", "dark", "system"
	LastEstimate    string   `json:"last_estimate"`
	RecentEstimates []string `json:"recent_estimates"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultTileMargin:     10,
		DefaultPaintCoats:     2,
		DefaultWallpaperWaste: 10,
		DisplayUnit:           UnitMeters,
		Theme:                 "system",
		RecentEstimates:       []string{},
	}
}

// maxRecentEstimates bounds the recent-estimates list.
const maxRecentEstimates = 10

// AddRecentEstimate records name at the front of the recent list,
// removing any prior occurrence and trimming to the bound.
func (c *AppConfig) AddRecentEstimate(name string) {
	recent := []string{name}
	for _, r := range c.RecentEstimates {
		if r != name {
			recent = append(recent, r)
		}
	}
	if len(recent) > maxRecentEstimates {
		recent = recent[:maxRecentEstimates]
	}
	c.RecentEstimates = recent
	c.LastEstimate = name
}
