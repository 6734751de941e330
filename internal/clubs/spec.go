// ABOUTME: Club specification types and the standard club reference table.
// ABOUTME: Carries typical carry distances and optimal launch/spin windows per club.
package clubs

import "math"

// Category classifies a club.
type Category string

const (
	CategoryWood   Category = "wood"
	CategoryHybrid Category = "hybrid"
	CategoryIron   Category = "iron"
	CategoryWedge  Category = "wedge"
)

// AllCategories returns all valid club categories.
var AllCategories = []Category{CategoryWood, CategoryHybrid, CategoryIron, CategoryWedge}

// IsValidCategory checks if a string is a valid club category.
func IsValidCategory(s string) bool {
	for _, c := range AllCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Spec describes a club's expected flight characteristics.
// Ranges are [min, max] pairs; the JSON field names match the
// club_metadata.json sidecar format.
type Spec struct {
	Category     Category   `json:"type"`
	TypicalCarry float64    `json:"typical_carry"`
	LaunchRange  [2]float64 `json:"optimal_launch"` // degrees
	SpinRange    [2]float64 `json:"optimal_spin"`   // rpm
}

// StandardClubs is the built-in reference table. Custom clubs may
// shadow these names but the table itself is never mutated.
var StandardClubs = map[string]Spec{
	"Driver":   {CategoryWood, 250, [2]float64{12, 16}, [2]float64{2200, 2800}},
	"3 Wood":   {CategoryWood, 230, [2]float64{11, 15}, [2]float64{2500, 3500}},
	"5 Wood":   {CategoryWood, 215, [2]float64{12, 16}, [2]float64{3000, 4000}},
	"3 Hybrid": {CategoryHybrid, 200, [2]float64{13, 17}, [2]float64{3500, 4500}},
	"4 Hybrid": {CategoryHybrid, 190, [2]float64{14, 18}, [2]float64{4000, 5000}},
	"3 Iron":   {CategoryIron, 195, [2]float64{12, 16}, [2]float64{4000, 5000}},
	"4 Iron":   {CategoryIron, 185, [2]float64{13, 17}, [2]float64{4500, 5500}},
	"5 Iron":   {CategoryIron, 175, [2]float64{14, 18}, [2]float64{5000, 6000}},
	"6 Iron":   {CategoryIron, 165, [2]float64{15, 19}, [2]float64{5500, 6500}},
	"7 Iron":   {CategoryIron, 155, [2]float64{16, 20}, [2]float64{6000, 7000}},
	"8 Iron":   {CategoryIron, 145, [2]float64{17, 21}, [2]float64{6500, 7500}},
	"9 Iron":   {CategoryIron, 135, [2]float64{18, 22}, [2]float64{7000, 8000}},
	"PW":       {CategoryWedge, 125, [2]float64{20, 24}, [2]float64{7500, 9000}},
	"GW":       {CategoryWedge, 110, [2]float64{22, 26}, [2]float64{8000, 10000}},
	"SW":       {CategoryWedge, 95, [2]float64{24, 28}, [2]float64{8500, 11000}},
	"LW":       {CategoryWedge, 80, [2]float64{26, 30}, [2]float64{9000, 12000}},
}

// IsStandard reports whether name is a built-in club.
func IsStandard(name string) bool {
	_, ok := StandardClubs[name]
	return ok
}

// SuggestClub returns the standard club whose typical carry is
// closest to medianCarry, for suggesting assignments on unlabeled
// sessions. Returns "" when medianCarry is NaN.
func SuggestClub(medianCarry float64) string {
	if math.IsNaN(medianCarry) {
		return ""
	}
	best := ""
	minDiff := math.Inf(1)
	for name, spec := range StandardClubs {
		diff := math.Abs(spec.TypicalCarry - medianCarry)
		if diff < minDiff || (diff == minDiff && name < best) {
			minDiff = diff
			best = name
		}
	}
	return best
}
