// RenoCalc — renovation material estimator
//
// A headless host for the estimation engine: load or import rooms,
// attach saved materials, print the computed quantities, and export
// the estimate to PDF or XLSX.
//
// Build:
//   go build -o renocalc ./cmd/renocalc
//
// Examples:
//   renocalc --import rooms.csv --save "Apartment 12"
//   renocalc --estimate "Apartment 12" --export pdf --out estimate.pdf
//   renocalc --import plan.dxf --ceiling-height 2.7

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/renocalc/renocalc/internal/app"
	"github.com/renocalc/renocalc/internal/events"
	"github.com/renocalc/renocalc/internal/importer"
	"github.com/renocalc/renocalc/internal/materials"
	"github.com/renocalc/renocalc/internal/model"
	"github.com/renocalc/renocalc/internal/project"
)

func main() {
	var (
		dataDir       = flag.String("data-dir", project.DefaultConfigDir(), "directory for estimates, materials, and config")
		estimateName  = flag.String("estimate", "", "saved estimate to load")
		importPath    = flag.String("import", "", "import rooms from a CSV, XLSX, or DXF file")
		ceilingHeight = flag.String("ceiling-height", "2.5", "ceiling height in meters for DXF imports")
		templateName  = flag.String("template", "", "add a room from a saved or builtin template")
		roomName      = flag.String("room-name", "", "name for the room created from --template")
		saveName      = flag.String("save", "", "save the working rooms under this estimate name")
		exportFormat  = flag.String("export", "", "export format: pdf or xlsx")
		outPath       = flag.String("out", "", "export destination path")
		verbose       = flag.BoolP("verbose", "v", false, "enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	bus := events.New(log)
	store := project.NewStore(*dataDir, bus)
	estimator := app.New(bus, materials.NewDefaultRegistry(), store, log)

	configPath := filepath.Join(*dataDir, "config.json")
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		log.Warn().Err(err).Msg("config unreadable, using defaults")
		config = model.DefaultAppConfig()
	}
	estimator.SetTheme(config.Theme)

	if err := estimator.LoadMaterials(); err != nil {
		log.Warn().Err(err).Msg("no material library loaded")
	}

	if *estimateName != "" {
		if err := estimator.Load(*estimateName); err != nil {
			log.Fatal().Err(err).Str("estimate", *estimateName).Msg("failed to load estimate")
		}
		log.Info().Str("estimate", *estimateName).Int("rooms", len(estimator.Rooms())).Msg("estimate loaded")
		config.AddRecentEstimate(*estimateName)
	}

	if *importPath != "" {
		importRooms(estimator, log, *importPath, *ceilingHeight)
	}

	if *templateName != "" {
		addFromTemplate(estimator, store, log, *templateName, *roomName)
	}

	printSummary(estimator)

	if *saveName != "" {
		est, err := estimator.Save(*saveName)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save estimate")
		}
		log.Info().Str("estimate", est.Name).Int("id", est.ID).Msg("estimate saved")
		config.AddRecentEstimate(est.Name)
	}

	if *exportFormat != "" {
		path := *outPath
		if path == "" {
			path = "estimate." + *exportFormat
		}
		if err := estimator.Export(*exportFormat, path); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		log.Info().Str("path", path).Msg("export written")
	}

	if err := project.SaveAppConfig(configPath, config); err != nil {
		log.Warn().Err(err).Msg("failed to save config")
	}
}

// importRooms routes the file to the matching importer and feeds valid
// rooms into the estimator.
func importRooms(estimator *app.Estimator, log zerolog.Logger, path, ceilingHeight string) {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportXLSX(path)
	case ".dxf":
		result = importer.ImportDXF(path, ceilingHeight)
	default:
		log.Fatal().Str("path", path).Msg("unsupported import format")
	}

	for _, warning := range result.Warnings {
		log.Warn().Msg(warning)
	}
	for _, msg := range result.Errors {
		log.Error().Msg(msg)
	}
	for _, room := range result.Rooms {
		if err := estimator.AddRoom(room); err != nil {
			log.Error().Err(err).Str("room", room.Name).Msg("room rejected")
		}
	}
	log.Info().Int("rooms", len(result.Rooms)).Str("path", path).Msg("import finished")
}

// addFromTemplate instantiates a room template by name. Saved
// templates take precedence over the builtin ones.
func addFromTemplate(estimator *app.Estimator, store *project.Store, log zerolog.Logger, templateName, roomName string) {
	var tmpl *model.RoomTemplate
	if saved, err := store.ListTemplates(); err == nil {
		tmpl = saved.FindByName(templateName)
	}
	if tmpl == nil {
		for _, builtin := range model.BuiltinTemplates() {
			if builtin.Name == templateName {
				t := builtin
				tmpl = &t
				break
			}
		}
	}
	if tmpl == nil {
		log.Fatal().Str("template", templateName).Msg("no such template")
	}
	if roomName == "" {
		roomName = tmpl.Name
	}
	if err := estimator.AddRoom(tmpl.ToRoom(roomName)); err != nil {
		log.Fatal().Err(err).Msg("template room rejected")
	}
	log.Info().Str("template", templateName).Str("room", roomName).Msg("room added from template")
}

// printSummary writes the room metrics and material quantities to
// stdout.
func printSummary(estimator *app.Estimator) {
	rooms := estimator.Rooms()
	if len(rooms) == 0 {
		fmt.Println("No rooms. Use --import or --estimate to load some.")
		return
	}

	fmt.Printf("%-20s %10s %10s %10s %10s\n", "Room", "Floor", "Walls", "Ceiling", "Perimeter")
	for _, room := range rooms {
		m := model.ComputeMetrics(room)
		fmt.Printf("%-20s %9.2fm² %9.2fm² %9.2fm² %9.2fm\n",
			room.Name, m.FloorArea, m.WallArea, m.CeilingArea, m.Perimeter)
	}
	totals := estimator.Totals()
	fmt.Printf("%-20s %9.2fm² %9.2fm² %9.2fm² %9.2fm\n",
		fmt.Sprintf("Total (%d rooms)", totals.RoomCount),
		totals.FloorArea, totals.WallArea, totals.CeilingArea, totals.Perimeter)

	results := estimator.Results()
	if len(results) == 0 {
		return
	}
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	grandTotal := 0.0
	for _, name := range names {
		res := results[name]
		if res == nil {
			fmt.Printf("%-20s %s\n", name, "not computable with current parameters")
			continue
		}
		fmt.Printf("%-20s %-20s %10.2f\n", name, res.Quantity, res.Cost)
		grandTotal += res.Cost
	}
	fmt.Printf("%-20s %-20s %10.2f\n", "Grand total", "", grandTotal)
}
