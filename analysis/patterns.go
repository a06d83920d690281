package analysis

import "regexp"

// Category names a fire-safety-relevant element class.
type Category string

const (
	CategorySprinkler     Category = "sprinkler"
	CategorySmokeDetector Category = "smoke-detector"
	CategoryHeatDetector  Category = "heat-detector"
	CategoryExtinguisher  Category = "extinguisher"
	CategoryHydrant       Category = "hydrant"
	CategoryFireDoor      Category = "fire-door"
	CategoryExit          Category = "exit"
	CategoryStair         Category = "stair"
	CategoryFireWall      Category = "fire-wall"
	CategoryElevator      Category = "elevator"
	CategoryCorridor      Category = "corridor"
	CategoryRoom          Category = "room"
	CategoryUnknown       Category = "unknown"
)

type categoryPattern struct {
	category Category
	re       *regexp.Regexp
}

// categoryPatterns is evaluated in order; the first matching pattern
// wins. Hebrew terms come from the drawings this pipeline is deployed
// against (מתז sprinkler, גלאי detector, מטף extinguisher, גלגלון hose
// reel, מילוט escape route). Keep the more specific patterns ahead of
// the generic ones.
var categoryPatterns = []categoryPattern{
	{CategorySprinkler, regexp.MustCompile(`(?i)sprink|מתז|ספרינקלר`)},
	{CategorySmokeDetector, regexp.MustCompile(`(?i)smoke\s*det|smoke|גלאי\s*עשן|עשן`)},
	{CategoryHeatDetector, regexp.MustCompile(`(?i)heat\s*det|גלאי\s*חום`)},
	{CategoryExtinguisher, regexp.MustCompile(`(?i)extinguish|מטף`)},
	{CategoryHydrant, regexp.MustCompile(`(?i)hydrant|הידרנט|ברז\s*כיבוי|גלגלון`)},
	{CategoryFireDoor, regexp.MustCompile(`(?i)fire\s*door|דלת\s*אש`)},
	{CategoryFireWall, regexp.MustCompile(`(?i)fire\s*wall|קיר\s*אש`)},
	{CategoryExit, regexp.MustCompile(`(?i)exit|emergency|יציאה|מילוט|חירום`)},
	{CategoryStair, regexp.MustCompile(`(?i)stair|מדרגות`)},
	{CategoryElevator, regexp.MustCompile(`(?i)elevator|lift|מעלית`)},
	{CategoryCorridor, regexp.MustCompile(`(?i)corridor|מסדרון|פרוזדור`)},
}

// matchCategory tests s against the pattern table. Returns the first
// matching category, or false if nothing matched.
func matchCategory(s string) (Category, bool) {
	for _, p := range categoryPatterns {
		if p.re.MatchString(s) {
			return p.category, true
		}
	}
	return "", false
}
