package engine

import (
	"fmt"
	"time"

	"github.com/lastcentaur/engine/game/leaderboard"
)

// completeQuest marks questID complete, unlocks the completion
// achievement, closes out the game, and — if a path was selected —
// records a leaderboard entry, implementing "ultimately completing the
// game" from the purpose statement.
func (e *GameEngine) completeQuest(questID string) string {
	if e.CompletedQuests[questID] {
		return ""
	}
	delete(e.ActiveQuests, questID)
	e.CompletedQuests[questID] = true

	e.Achieve.Unlock("game_complete")
	e.Achieve.Unlock("quest_master")
	e.GameOver = true
	e.Victory = true

	if e.Paths.Selected != nil && e.Leaderboard != nil {
		e.Leaderboard.AddEntry(leaderboard.Entry{
			PlayerID:       e.Player.ID,
			PlayerName:     e.Player.Name,
			Days:           e.Time.Days,
			Hours:          e.Time.Hours,
			Minutes:        e.Time.Minutes,
			CompletionTime: e.Time.String(),
			Achievements:   len(e.Achieve.Unlocked),
			PathType:       leaderboard.PathType(*e.Paths.Selected),
			Date:           time.Now(),
		})
	}

	return fmt.Sprintf("Your journey is complete. The Last Centaur's tale ends here, at %s.", e.Time.String())
}
