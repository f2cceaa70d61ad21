package discovery

import (
	"math/rand"
	"strings"

	"github.com/lastcentaur/engine/game/catalog"
	"github.com/lastcentaur/engine/game/world"
)

// Context bundles the situational inputs the matching predicate needs.
type Context struct {
	Terrain   string
	Weather   string
	TimeOfDay string
	Kind      string
	Text      string
}

const customInteraction = "custom"

// matches reports whether discovery d fires for the given context.
func matches(d catalog.Discovery, ctx Context, found map[string]bool, rng *rand.Rand) bool {
	if !stringInSlice(ctx.Terrain, d.TerrainTypes) {
		return false
	}
	if len(d.WeatherTypes) > 0 && !stringInSlice(ctx.Weather, d.WeatherTypes) {
		return false
	}
	if len(d.TimeOfDay) > 0 && !stringInSlice(ctx.TimeOfDay, d.TimeOfDay) {
		return false
	}
	if d.RequiredInteraction != customInteraction && d.RequiredInteraction != ctx.Kind {
		return false
	}
	if len(d.RequiredKeywords) > 0 && !anyKeywordIn(ctx.Text, d.RequiredKeywords) {
		return false
	}
	if d.Unique && found[d.ID] {
		return false
	}
	return rng.Float64() <= d.ChanceToFind
}

func stringInSlice(v string, set []string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func anyKeywordIn(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Outcome is the result of a successful discovery match.
type Outcome struct {
	Discovery     catalog.Discovery
	Change        world.EnvironmentalChange
	SpecialEffect map[string]float64
}

// Attempt evaluates every catalog discovery, in definition order, against
// ctx and found, returning the first match, if any, plus the canned
// response to show when nothing matches. rng must be instance-scoped. An
// empty text or unrecognized kind always falls through to the canned
// table.
func Attempt(rng *rand.Rand, ctx Context, found map[string]bool) (*Outcome, string) {
	if ctx.Text == "" || !isKnownKind(ctx.Kind) {
		return nil, cannedResponse(ctx)
	}

	for _, d := range catalog.AllDiscoveries() {
		if matches(d, ctx, found, rng) {
			change := world.EnvironmentalChange{
				Description:        "Discovery: " + d.Name + " - " + d.Description,
				IsPermanent:        true,
				AffectsDescription: true,
				HiddenItemRevealed: d.ItemReward,
			}
			return &Outcome{Discovery: d, Change: change, SpecialEffect: d.SpecialEffect}, ""
		}
	}

	return nil, cannedResponse(ctx)
}
