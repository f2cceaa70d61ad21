package engine

import (
	"strings"

	"github.com/lastcentaur/engine/game/catalog"
)

func itemByID(id string) (catalog.Item, bool) {
	return catalog.ItemByID(id)
}

func enemyByID(id string) (catalog.Enemy, bool) {
	return catalog.EnemyByID(id)
}

// matchID finds the first id in ids whose id or catalog display name
// contains needle (case-insensitive), supporting both
// "take shadow_essence_fragment" and "take shadow essence" phrasing.
func matchID(needle string, ids []string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(needle))
	if n == "" {
		return "", false
	}
	for _, id := range ids {
		if strings.Contains(strings.ToLower(id), n) || strings.Contains(n, strings.ToLower(id)) {
			return id, true
		}
		if it, ok := catalog.ItemByID(id); ok && strings.Contains(strings.ToLower(it.Name), n) {
			return id, true
		}
		if en, ok := catalog.EnemyByID(id); ok && strings.Contains(strings.ToLower(en.Name), n) {
			return id, true
		}
	}
	return "", false
}
