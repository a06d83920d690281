package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options carries the empirical tolerances the pipeline depends on. The
// defaults assume drawing units approximate meters; confirm the file's
// unit convention before trusting absolute thresholds.
type Options struct {
	// CloseTolerance is the endpoint coincidence distance for closed
	// polyline detection.
	CloseTolerance float64 `yaml:"close_tolerance" json:"close_tolerance"`
	// DuplicateDistance excludes coincident duplicate points from
	// nearest-neighbor spacing.
	DuplicateDistance float64 `yaml:"duplicate_distance" json:"duplicate_distance"`
	// MinDoorSweep/MaxDoorSweep bound the angular sweep (degrees) of a
	// door-like arc.
	MinDoorSweep float64 `yaml:"min_door_sweep" json:"min_door_sweep"`
	MaxDoorSweep float64 `yaml:"max_door_sweep" json:"max_door_sweep"`
	// MinDoorRadius/MaxDoorRadius bound a plausible door-leaf radius.
	MinDoorRadius float64 `yaml:"min_door_radius" json:"min_door_radius"`
	MaxDoorRadius float64 `yaml:"max_door_radius" json:"max_door_radius"`
	// MinRoomArea excludes closed-polygon noise from room detection.
	MinRoomArea float64 `yaml:"min_room_area" json:"min_room_area"`
	// TopRooms is how many largest rooms the report retains.
	TopRooms int `yaml:"top_rooms" json:"top_rooms"`
}

// DefaultOptions returns the tolerances observed to work on metric
// drawings.
func DefaultOptions() Options {
	return Options{
		CloseTolerance:    0.1,
		DuplicateDistance: 0.1,
		MinDoorSweep:      80,
		MaxDoorSweep:      100,
		MinDoorRadius:     0.6,
		MaxDoorRadius:     1.5,
		MinRoomArea:       1.0,
		TopRooms:          10,
	}
}

// LoadOptions reads YAML overrides from path on top of the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing options YAML: %w", err)
	}
	return opts, nil
}
