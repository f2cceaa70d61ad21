package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lastcentaur/engine/game/catalog"
	"github.com/lastcentaur/engine/game/command"
	"github.com/lastcentaur/engine/game/leaderboard"
	"github.com/lastcentaur/engine/game/world"
)

// handleRest implements REST: a long sleep that steeply relieves fatigue
// and regenerates health, at the cost of a multi-hour time advance.
func (e *GameEngine) handleRest() Result {
	e.Player.RestCount++
	events := e.advanceTime(RestMinutes, false)
	e.Resources.Rest(RestFatigueRelief)
	e.Player.AdjustHealth(restHealthRegen(e))

	text := "You make camp and rest. You wake feeling steadier."
	for _, ev := range events {
		text += " " + ev
	}
	effects := command.EffectsRecord{command.Effect{Kind: command.FlagSet, Flag: "rested"}}
	return Result{Text: text, Effects: effects}
}

func restHealthRegen(e *GameEngine) int {
	base := 20
	return int(float64(base) * (1 - e.Resources.HealthRegenPenalty()))
}

// handleMeditate implements MEDITATE(minutes): relieves mental strain and
// regenerates mana, advancing time by the requested minutes or a default.
func (e *GameEngine) handleMeditate(minutes int) Result {
	if minutes <= 0 {
		minutes = DefaultMeditateMin
	}
	e.Resources.Meditate(MeditateStrainOff)
	events := e.advanceTime(minutes, false)
	manaBack := int(float64(15) * (1 - e.Resources.ManaRegenPenalty()))
	e.Player.AdjustMana(manaBack)

	text := "You sit in stillness, letting your mind settle."
	for _, ev := range events {
		text += " " + ev
	}
	effects := command.EffectsRecord{command.Effect{Kind: command.StatDelta, Stat: "mana", Delta: manaBack}}
	return Result{Text: text, Effects: effects}
}

// handleStatus implements STATUS: a full readout of stats, resources, and
// path progress.
func (e *GameEngine) handleStatus() Result {
	s := e.Player.Stats
	var b strings.Builder
	fmt.Fprintf(&b, "Health %d/%d, Stamina %d/%d, Mana %d/%d. ", s.Health, s.MaxHealth, s.Stamina, s.MaxStamina, s.Mana, s.MaxMana)
	fmt.Fprintf(&b, "Hunger %.0f%%, Fatigue %.0f%%, Mental strain %.0f%%. ", e.Resources.Hunger*100, e.Resources.Fatigue*100, e.Resources.MentalStrain*100)
	fmt.Fprintf(&b, "Time: %s (%s). Weather: %s.", e.Time.String(), e.Time.TimeOfDay(), e.Weather.Current)
	if e.Paths.Selected != nil {
		p := *e.Paths.Selected
		fmt.Fprintf(&b, " Path: %s, level %d (%d xp).", p, e.Paths.Progress[p].Level, e.Paths.Progress[p].XP)
	} else {
		fmt.Fprintf(&b, " No path chosen yet (affinity favors %s).", e.Paths.SuggestedPath())
	}
	return Result{Text: b.String()}
}

// handleMap implements MAP: an ASCII rendering of every visited tile,
// with the player's position marked.
func (e *GameEngine) handleMap() Result {
	var b strings.Builder
	for y := 0; y < world.GridHeight; y++ {
		for x := 0; x < world.GridWidth; x++ {
			pos := world.Position{X: x, Y: y}
			switch {
			case pos == e.Player.Position:
				b.WriteByte('@')
			case e.Player.HasVisited(pos):
				b.WriteByte('.')
			default:
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return Result{Text: b.String()}
}

// helpTopics is the static table HELP(topic) draws from.
var helpTopics = map[string]string{
	"": "Move with north/south/east/west, look, examine, take/drop, attack/defend/dodge, rest, meditate, status, map, save, titles, leaderboard, and path select <warrior|mystic|stealth>.",
	"combat":   "In combat: attack, defend, dodge, or use an ability you have unlocked.",
	"path":     "Choose warrior, mystic, or stealth with 'path select <name>'. The choice is permanent.",
	"discovery": "Interact with the world — examine, touch, gather, dig, and more — to uncover hidden finds.",
}

// handleHelp implements HELP(topic).
func (e *GameEngine) handleHelp(topic string) Result {
	if text, ok := helpTopics[strings.ToLower(topic)]; ok {
		return Result{Text: text}
	}
	return Result{Text: helpTopics[""]}
}

// handleHint implements HINT: points toward an unexplored exit, or toward
// combat if an enemy currently blocks the way.
func (e *GameEngine) handleHint() Result {
	tile := e.currentTile()
	if len(tile.Enemies) > 0 {
		return Result{Text: fmt.Sprintf("Something stands in your way: %s.", strings.Join(tile.Enemies, ", "))}
	}
	for _, dir := range e.possibleExits() {
		next, err := e.World.Neighbor(e.Player.Position, dir)
		if err == nil && !e.Player.HasVisited(next) {
			return Result{Text: fmt.Sprintf("The way %s is still unexplored.", dir)}
		}
	}
	return Result{Text: "Nothing obvious calls for your attention here."}
}

// handleSave implements SAVE: the handler itself performs no I/O (§6.3);
// it only signals the caller that a snapshot should be taken.
func (e *GameEngine) handleSave() Result {
	effects := command.EffectsRecord{command.Effect{Kind: command.FlagSet, Flag: "save_requested"}}
	return Result{Text: "Your journey is recorded.", Effects: effects}
}

// handleTitles implements TITLES: lists unlocked titles and the active one.
func (e *GameEngine) handleTitles() Result {
	if len(e.Achieve.UnlockedTitles) == 0 {
		return Result{Text: "You have earned no titles yet."}
	}
	ids := make([]string, 0, len(e.Achieve.UnlockedTitles))
	for id := range e.Achieve.UnlockedTitles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if t, ok := catalog.TitleByID(id); ok {
			if id == e.Achieve.ActiveTitle {
				names = append(names, t.Name+" (active)")
			} else {
				names = append(names, t.Name)
			}
		}
	}
	return Result{Text: "Titles earned: " + strings.Join(names, ", ") + "."}
}

// handleLeaderboard implements LEADERBOARD(category).
func (e *GameEngine) handleLeaderboard(category string) Result {
	if e.Leaderboard == nil {
		return Result{Text: "No leaderboard is available."}
	}
	const top = 5

	var entries []leaderboard.Entry
	if strings.Contains(strings.ToLower(category), "achieve") {
		entries = e.Leaderboard.TopByAchievements(top)
	} else {
		entries = e.Leaderboard.TopByFastest(top)
	}

	if len(entries) == 0 {
		return Result{Text: "No one has completed the journey yet."}
	}
	var b strings.Builder
	b.WriteString("Leaderboard: ")
	for i, en := range entries {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%d. %s — %s, %d achievements (%s)", i+1, en.PlayerName, en.CompletionTime, en.Achievements, en.PathType)
	}
	return Result{Text: b.String()}
}

// handleQuit implements QUIT: a narrative farewell; the host, not the
// engine, decides whether to tear down the instance.
func (e *GameEngine) handleQuit() Result {
	effects := command.EffectsRecord{command.Effect{Kind: command.FlagSet, Flag: "quit_requested"}}
	return Result{Text: "You pause your journey. Until next time.", Effects: effects}
}
