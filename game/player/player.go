package player

import (
	"github.com/lastcentaur/engine/game/catalog"
	"github.com/lastcentaur/engine/game/gerr"
	"github.com/lastcentaur/engine/game/world"
)

// Stats holds a player's bounded resource pools and inventory capacity
//  Invariant: 0 <= current <= max for every paired field.
type Stats struct {
	Health                int `json:"health"`
	MaxHealth             int `json:"max_health"`
	Stamina               int `json:"stamina"`
	MaxStamina            int `json:"max_stamina"`
	Mana                  int `json:"mana"`
	MaxMana               int `json:"max_mana"`
	InventoryCapacity     int `json:"inventory_capacity"`
	CurrentInventoryWeight int `json:"current_inventory_weight"`
}

// DefaultStats returns the starting stat block for a new player.
func DefaultStats() Stats {
	return Stats{
		Health: 100, MaxHealth: 100,
		Stamina: 100, MaxStamina: 100,
		Mana: 50, MaxMana: 50,
		InventoryCapacity: 20,
	}
}

// Player is the per-instance player aggregate  It is mutated
// exclusively by command handlers inside a game engine; nothing outside
// the engine package tree should reach into it directly.
type Player struct {
	ID           string                        `json:"id"`
	Name         string                        `json:"name"`
	Position     world.Position                `json:"position"`
	CurrentArea  world.StoryArea               `json:"current_area"`
	Stats        Stats                         `json:"stats"`
	Inventory    []string                      `json:"inventory"`
	VisitedTiles map[world.Position]bool       `json:"visited_tiles"`
	BlockedPaths map[world.Position]map[world.Direction]bool `json:"blocked_paths"`
	RestCount    int                           `json:"rest_count"`
}

// New creates a player at the given spawn position with default stats.
func New(id, name string, spawn world.Position, area world.StoryArea) *Player {
	return &Player{
		ID:           id,
		Name:         name,
		Position:     spawn,
		CurrentArea:  area,
		Stats:        DefaultStats(),
		Inventory:    []string{},
		VisitedTiles: map[world.Position]bool{spawn: true},
		BlockedPaths: map[world.Position]map[world.Direction]bool{},
	}
}

// MarkVisited records pos as visited. Monotonic: never transitions back to
// unvisited.
func (p *Player) MarkVisited(pos world.Position) {
	p.VisitedTiles[pos] = true
}

// HasVisited reports whether pos has ever been visited.
func (p *Player) HasVisited(pos world.Position) bool {
	return p.VisitedTiles[pos]
}

// BlockDirection records that the exit in dir from pos is presently gated.
func (p *Player) BlockDirection(pos world.Position, dir world.Direction) {
	set, ok := p.BlockedPaths[pos]
	if !ok {
		set = map[world.Direction]bool{}
		p.BlockedPaths[pos] = set
	}
	set[dir] = true
}

// UnblockDirection clears a previously recorded block.
func (p *Player) UnblockDirection(pos world.Position, dir world.Direction) {
	if set, ok := p.BlockedPaths[pos]; ok {
		delete(set, dir)
	}
}

// IsBlocked reports whether the exit in dir from pos is presently gated.
func (p *Player) IsBlocked(pos world.Position, dir world.Direction) bool {
	return p.BlockedPaths[pos][dir]
}

// itemWeight resolves an item's catalog weight, defaulting to 1 for items
// with no registered weight so unknown items still occupy capacity.
func itemWeight(itemID string) int {
	it, ok := catalog.ItemByID(itemID)
	if !ok {
		return 1
	}
	if it.Weight <= 0 {
		return 1
	}
	return it.Weight
}

// AddItem appends itemID to the inventory, failing with InsufficientResource
// if doing so would exceed inventory_capacity.
func (p *Player) AddItem(itemID string) error {
	w := itemWeight(itemID)
	if p.Stats.CurrentInventoryWeight+w > p.Stats.InventoryCapacity {
		return gerr.New(gerr.InsufficientResource, "inventory capacity exceeded")
	}
	p.Inventory = append(p.Inventory, itemID)
	p.Stats.CurrentInventoryWeight += w
	return nil
}

// RemoveItem removes the first occurrence of itemID from the inventory.
func (p *Player) RemoveItem(itemID string) error {
	for i, id := range p.Inventory {
		if id == itemID {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			p.Stats.CurrentInventoryWeight -= itemWeight(itemID)
			if p.Stats.CurrentInventoryWeight < 0 {
				p.Stats.CurrentInventoryWeight = 0
			}
			return nil
		}
	}
	return gerr.New(gerr.NotFound, "item not in inventory: %s", itemID)
}

// HasItem reports whether itemID is presently in the inventory.
func (p *Player) HasItem(itemID string) bool {
	for _, id := range p.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// adjustClamped adds delta to *current, clamping to [0, max].
func adjustClamped(current *int, delta, max int) {
	*current += delta
	if *current < 0 {
		*current = 0
	}
	if *current > max {
		*current = max
	}
}

// AdjustHealth changes health by delta, clamped to [0, MaxHealth].
func (p *Player) AdjustHealth(delta int) {
	adjustClamped(&p.Stats.Health, delta, p.Stats.MaxHealth)
}

// AdjustStamina changes stamina by delta, clamped to [0, MaxStamina].
func (p *Player) AdjustStamina(delta int) {
	adjustClamped(&p.Stats.Stamina, delta, p.Stats.MaxStamina)
}

// AdjustMana changes mana by delta, clamped to [0, MaxMana].
func (p *Player) AdjustMana(delta int) {
	adjustClamped(&p.Stats.Mana, delta, p.Stats.MaxMana)
}

// IsDefeated reports whether the player's health has reached zero.
func (p *Player) IsDefeated() bool {
	return p.Stats.Health <= 0
}
