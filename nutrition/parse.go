package nutrition

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jurat11/BiteWise-sub000/models"
)

// Plausibility clamp ranges and the conservative defaults substituted for
// out-of-range or unparseable values.
var clampMax = models.Nutrients{
	Calories: 2000,
	ProteinG: 200,
	CarbsG:   200,
	FatG:     200,
	SodiumMG: 5000,
	FiberG:   50,
	SugarG:   100,
}

var defaults = models.Nutrients{
	Calories: 100,
	ProteinG: 5,
	CarbsG:   15,
	FatG:     3,
	SodiumMG: 50,
	FiberG:   2,
	SugarG:   5,
}

// DefaultNutrients returns the conservative fallback record used when
// analysis fails outright.
func DefaultNutrients() models.Nutrients {
	return defaults
}

var numberRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// ParsedAnalysis is the structured result of parsing one model reply.
type ParsedAnalysis struct {
	Nutrients      models.Nutrients
	PositiveEffect string
	HealthNote     string
	Recommendation string
	// Parsed reports whether at least one nutrient line was recognized.
	Parsed bool
}

// ParseResponse extracts the seven nutrients and the three prose sections
// from the model reply, line by line. For each nutrient the first line whose
// label half matches a glossary term wins; the numeric token is taken from
// the value half of the split. Values are clamped to plausible ranges, and a
// reply whose four macros are all zero is replaced with the defaults.
func ParseResponse(lang models.Language, reply string) ParsedAnalysis {
	g := activeGlossary(lang)
	lines := strings.Split(reply, "\n")

	var out ParsedAnalysis
	found := map[string]bool{}

	extract := func(value string) (float64, bool) {
		m := numberRe.FindString(value)
		if m == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
		if err != nil || v < 0 {
			return 0, false
		}
		return v, true
	}

	for _, line := range lines {
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		lower := strings.ToLower(label)

		switch {
		case !found["calories"] && matchAny(lower, g.calories):
			if v, ok := extract(value); ok {
				out.Nutrients.Calories, found["calories"] = v, true
			}
		case !found["protein"] && matchAny(lower, g.protein):
			if v, ok := extract(value); ok {
				out.Nutrients.ProteinG, found["protein"] = v, true
			}
		case !found["carbs"] && matchAny(lower, g.carbs):
			if v, ok := extract(value); ok {
				out.Nutrients.CarbsG, found["carbs"] = v, true
			}
		case !found["fat"] && matchAny(lower, g.fat):
			if v, ok := extract(value); ok {
				out.Nutrients.FatG, found["fat"] = v, true
			}
		case !found["sodium"] && matchAny(lower, g.sodium):
			if v, ok := extract(value); ok {
				out.Nutrients.SodiumMG, found["sodium"] = v, true
			}
		case !found["fiber"] && matchAny(lower, g.fiber):
			if v, ok := extract(value); ok {
				out.Nutrients.FiberG, found["fiber"] = v, true
			}
		case !found["sugar"] && matchAny(lower, g.sugar):
			if v, ok := extract(value); ok {
				out.Nutrients.SugarG, found["sugar"] = v, true
			}
		case strings.Contains(lower, g.positive):
			out.PositiveEffect = strings.TrimSpace(value)
		case strings.Contains(lower, g.note):
			out.HealthNote = strings.TrimSpace(value)
		case strings.Contains(lower, g.recommendation):
			out.Recommendation = strings.TrimSpace(value)
		}
	}

	out.Parsed = len(found) > 0
	out.Nutrients = Clamp(out.Nutrients)
	return out
}

func matchAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// Clamp enforces the per-field plausibility ranges, substituting the
// conservative default for any value outside them. If all four macros end up
// zero the whole record falls back to the defaults, so an empty meal is
// never silently logged.
func Clamp(n models.Nutrients) models.Nutrients {
	n.Calories = clampField(n.Calories, clampMax.Calories, defaults.Calories)
	n.ProteinG = clampField(n.ProteinG, clampMax.ProteinG, defaults.ProteinG)
	n.CarbsG = clampField(n.CarbsG, clampMax.CarbsG, defaults.CarbsG)
	n.FatG = clampField(n.FatG, clampMax.FatG, defaults.FatG)
	n.SodiumMG = clampField(n.SodiumMG, clampMax.SodiumMG, defaults.SodiumMG)
	n.FiberG = clampField(n.FiberG, clampMax.FiberG, defaults.FiberG)
	n.SugarG = clampField(n.SugarG, clampMax.SugarG, defaults.SugarG)

	if n.Calories == 0 && n.ProteinG == 0 && n.CarbsG == 0 && n.FatG == 0 {
		return defaults
	}
	return n
}

func clampField(v, max, def float64) float64 {
	if v < 0 || v > max {
		return def
	}
	return v
}
