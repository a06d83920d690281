package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idan19933/firesystem-analizer-sub000/analysis"
	"github.com/idan19933/firesystem-analizer-sub000/dxf"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.dxf> [more.dxf ...]",
	Short: "Parse drawings and report fire-safety findings",
	Long:  "Parse one or more DXF files, classify fire-safety elements, and print a structured report. Files are processed concurrently; each parse owns its own state.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "Emit reports as JSON to stdout")
	analyzeCmd.Flags().Int("top", 0, "Override how many largest rooms to report")

	rootCmd.AddCommand(analyzeCmd)
}

// fileReport pairs a report with the file it came from.
type fileReport struct {
	File   string           `json:"file"`
	Report *analysis.Report `json:"report,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	topRooms, _ := cmd.Flags().GetInt("top")
	log := newLogger()

	opts := analysis.DefaultOptions()
	if cfg := viper.GetString("config"); cfg != "" {
		loaded, err := analysis.LoadOptions(cfg)
		if err != nil {
			return fmt.Errorf("loading options: %w", err)
		}
		opts = loaded
	}
	if topRooms > 0 {
		opts.TopRooms = topRooms
	}

	parser := &dxf.Parser{CloseTolerance: opts.CloseTolerance, Logger: log}

	// Independent files share nothing; parse them concurrently.
	results := make([]fileReport, len(args))
	var wg sync.WaitGroup
	for i, path := range args {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			start := time.Now()

			doc, err := parser.ParseFile(path)
			if err != nil {
				log.Error("parse failed", "file", path, "error", err)
				results[idx] = fileReport{File: path, Error: err.Error()}
				return
			}

			report := analysis.Analyze(doc, opts)
			log.Info("analyzed",
				"file", path,
				"entities", doc.TotalEntities,
				"layers", len(doc.Layers),
				"duration", time.Since(start).Round(time.Millisecond))
			results[idx] = fileReport{File: path, Report: report}
		}(i, path)
	}
	wg.Wait()

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
	} else {
		for _, r := range results {
			printSummary(r)
		}
	}

	for _, r := range results {
		if r.Error != "" {
			return fmt.Errorf("%s: %s", r.File, r.Error)
		}
	}
	return nil
}

func printSummary(r fileReport) {
	if r.Error != "" {
		fmt.Fprintf(os.Stderr, "%s: FAILED (%s)\n", r.File, r.Error)
		return
	}
	rep := r.Report
	fmt.Fprintf(os.Stderr, "%s: %d entities, %d layers", r.File, rep.TotalEntities, rep.Metadata.LayerCount)
	if rep.Flattened {
		fmt.Fprintf(os.Stderr, " (flattened, %d sections)", len(rep.Sections))
	}
	fmt.Fprintln(os.Stderr)

	for _, cat := range []analysis.Category{
		analysis.CategorySprinkler, analysis.CategorySmokeDetector,
		analysis.CategoryHeatDetector, analysis.CategoryExtinguisher,
		analysis.CategoryHydrant, analysis.CategoryFireDoor,
		analysis.CategoryExit, analysis.CategoryStair,
		analysis.CategoryFireWall, analysis.CategoryElevator,
		analysis.CategoryCorridor,
	} {
		if n := rep.Classified.Count(cat); n > 0 {
			fmt.Fprintf(os.Stderr, "  %-16s %d\n", cat, n)
		}
	}
	if s := rep.Measurements.SprinklerSpacing; s != nil {
		fmt.Fprintf(os.Stderr, "  sprinkler spacing: min %.2f / avg %.2f / max %.2f (%d heads)\n",
			s.Min, s.Average, s.Max, s.Count)
	}
	if s := rep.Measurements.DetectorSpacing; s != nil {
		fmt.Fprintf(os.Stderr, "  detector spacing:  min %.2f / avg %.2f / max %.2f (%d units)\n",
			s.Min, s.Average, s.Max, s.Count)
	}
	if len(rep.Classified.Rooms) > 0 {
		fmt.Fprintf(os.Stderr, "  rooms: %d, total area %.1f\n",
			len(rep.Classified.Rooms), rep.Measurements.TotalRoomArea)
	}
}
