package catalog

// Items is the immutable, process-wide item catalog.
var Items = map[string]Item{
	"rusty_sword": {
		ID: "rusty_sword", Name: "Rusty Sword",
		Description:   "A worn blade, still sharp enough to bite.",
		Type:          Weapon,
		Properties:    map[string]any{"damage": 5},
		CanBePickedUp: true,
		Weight:        3,
	},
	"traveler_ration": {
		ID: "traveler_ration", Name: "Traveler's Ration",
		Description:   "Dried food enough for one good meal.",
		Type:          Consumable,
		Properties:    map[string]any{"hunger_restore": 0.4},
		CanBePickedUp: true,
		Weight:        1,
	},
	"waterskin": {
		ID: "waterskin", Name: "Waterskin",
		Description:   "Cool water, welcome after a long march.",
		Type:          Consumable,
		Properties:    map[string]any{"fatigue_restore": 0.2},
		CanBePickedUp: true,
		Weight:        1,
	},
	"shadow_essence_fragment": {
		ID: "shadow_essence_fragment", Name: "Shadow Essence Fragment",
		Description: "A shard of condensed dusk, cold to the touch.",
		Type:        QuestItem, IsQuestItem: true, CanBePickedUp: true,
		Weight: 1,
	},
	"ancient_key": {
		ID: "ancient_key", Name: "Ancient Key",
		Description:   "Tarnished bronze, etched with a centaur sigil.",
		Type:          Key,
		CanBePickedUp: true,
		Weight:        1,
	},
	"test_berries": {
		ID: "test_berries", Name: "Forest Berries",
		Description:   "Sweet, sun-warmed berries plucked from the bush.",
		Type:          Consumable,
		Properties:    map[string]any{"hunger_restore": 0.15},
		CanBePickedUp: true,
		Weight:        1,
	},

	// Enemy drops.
	"wolf_fang": {
		ID: "wolf_fang", Name: "Wolf Fang",
		Description: "A yellowed fang, still sharp.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"shadow_touched_pelt": {
		ID: "shadow_touched_pelt", Name: "Shadow-Touched Pelt",
		Description: "A wolf pelt gone unnaturally dark at the edges.", Type: Material, CanBePickedUp: true, Weight: 2,
	},
	"shadow_essence": {
		ID: "shadow_essence", Name: "Shadow Essence",
		Description: "A swirling dark essence captured from the shadows.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"void_fang": {
		ID: "void_fang", Name: "Void Fang",
		Description: "A fang that seems to drink the light around it.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"perfect_crystal": {
		ID: "perfect_crystal", Name: "Perfect Crystal",
		Description: "A flawless crystal shard, still warm with stored power.", Type: Material, CanBePickedUp: true, Weight: 2,
	},
	"golem_core": {
		ID: "golem_core", Name: "Golem Core",
		Description: "The pulsing heart of a crystal construct.", Type: QuestItem, IsQuestItem: true, CanBePickedUp: true, Weight: 3,
	},
	"spectral_essence": {
		ID: "spectral_essence", Name: "Spectral Essence",
		Description: "A wisp of captured spirit-stuff.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"ancient_weapon": {
		ID: "ancient_weapon", Name: "Ancient Weapon",
		Description: "A blade of a make no living smith remembers.", Type: Weapon,
		Properties: map[string]any{"damage": 18}, CanBePickedUp: true, Weight: 4,
	},
	"corrupted_essence": {
		ID: "corrupted_essence", Name: "Corrupted Essence",
		Description: "Essence gone black with the second centaur's taint.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"warrior_memory": {
		ID: "warrior_memory", Name: "Warrior's Memory",
		Description: "A fading recollection of a centaur's last honorable stand.", Type: Trinket, CanBePickedUp: true, Weight: 1,
	},
	"wisp_essence": {
		ID: "wisp_essence", Name: "Wisp Essence",
		Description: "A droplet of captured twilight mischief.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"twilight_shard": {
		ID: "twilight_shard", Name: "Twilight Shard",
		Description: "A shard that glows faintly between dusk and dark.", Type: Trinket, CanBePickedUp: true, Weight: 1,
	},
	"wraith_essence": {
		ID: "wraith_essence", Name: "Wraith Essence",
		Description: "Captured hunger, still faintly cold.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"crystallized_mana": {
		ID: "crystallized_mana", Name: "Crystallized Mana",
		Description: "Raw magic, hardened into a brittle stone.", Type: Material,
		Properties: map[string]any{"mana_restore": 0.3}, CanBePickedUp: true, Weight: 1,
	},
	"shadow_steel": {
		ID: "shadow_steel", Name: "Shadow Steel",
		Description: "Steel forged in darkness, colder than it should be.", Type: Weapon,
		Properties: map[string]any{"damage": 22}, CanBePickedUp: true, Weight: 4,
	},
	"void_essence": {
		ID: "void_essence", Name: "Void Essence",
		Description: "A fragment of absolute nothing, held together by will alone.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"void_crystal": {
		ID: "void_crystal", Name: "Void Crystal",
		Description: "A crystal that swallows light rather than catching it.", Type: Material, CanBePickedUp: true, Weight: 2,
	},
	"null_essence": {
		ID: "null_essence", Name: "Null Essence",
		Description: "Essence with nothing left of what it used to be.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"phantom_dagger": {
		ID: "phantom_dagger", Name: "Phantom Dagger",
		Description: "A dagger that never quite seems to be where you last saw it.", Type: Weapon,
		Properties: map[string]any{"damage": 12}, CanBePickedUp: true, Weight: 1,
	},
	"stealth_cloak": {
		ID: "stealth_cloak", Name: "Stealth Cloak",
		Description: "A cloak that drinks ambient light.", Type: Trinket, CanBePickedUp: true, Weight: 2,
	},

	// Discovery rewards.
	"pretty_flower": {
		ID: "pretty_flower", Name: "Pretty Flower",
		Description: "A beautiful flower with vibrant colors.", Type: Trinket, CanBePickedUp: true, Weight: 1,
	},
	"crystal_fragment": {
		ID: "crystal_fragment", Name: "Crystal Fragment",
		Description: "A small fragment of a magical crystal.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"magical_sand": {
		ID: "magical_sand", Name: "Magical Desert Sand",
		Description: "Fine sand that seems to shimmer with latent energy.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"ancient_coin": {
		ID: "ancient_coin", Name: "Ancient Coin",
		Description: "A coin from a forgotten civilization.", Type: Trinket, CanBePickedUp: true, Weight: 1,
	},
	"charged_branch": {
		ID: "charged_branch", Name: "Storm-Charged Branch",
		Description: "A branch charged with lightning energy.", Type: Material, CanBePickedUp: true, Weight: 1,
	},
	"blood_moon_flower": {
		ID: "blood_moon_flower", Name: "Blood Moon Flower",
		Description: "A rare flower that only blooms under a blood moon.", Type: Trinket, CanBePickedUp: true, Weight: 1,
	},
}

// Shared special abilities, reused across several enemies below, mirroring
// the original game's ABILITIES table.
var (
	abilityShadowStrike = Ability{Name: "Shadow Strike", Description: "Emerges from shadows for a powerful surprise attack.", Damage: 40, CooldownTurns: 3, Requirements: []string{"darkness"}}
	abilityCrystalBurst = Ability{Name: "Crystal Burst", Description: "Explodes into damaging crystal shards.", Damage: 30, CooldownTurns: 4}
	abilitySpiritDrain  = Ability{Name: "Spirit Drain", Description: "Drains energy, healing itself.", Damage: 20, CooldownTurns: 5, Requirements: []string{"damaged"}}
	abilityWarCry       = Ability{Name: "War Cry", Description: "Empowers nearby allies and intimidates foes.", Damage: 0, CooldownTurns: 6, Requirements: []string{"allies_present"}}
)

// Enemies is the immutable, process-wide enemy catalog.
var Enemies = map[string]Enemy{
	"phantom_assassin": {
		ID: "phantom_assassin", Name: "Phantom Assassin",
		Type: Shadow, CombatStyle: Stealth,
		Health: 80, Damage: 50,
		Abilities:    []Ability{abilityShadowStrike},
		Drops:        []string{"shadow_essence", "phantom_dagger"},
		Requirements: []string{"stealth_cloak"},
		Weakness:     []string{"light_magic", "mystic_abilities"},
	},
	"forest_wolf": {
		ID: "forest_wolf", Name: "Forest Wolf",
		Type: Beast, CombatStyle: Aggressive,
		Health: 25, Damage: 6,
		Abilities: []Ability{
			{Name: "Savage Bite", Description: "A vicious lunge.", Damage: 9, CooldownTurns: 2},
		},
		Drops:    []string{"traveler_ration"},
		Weakness: []string{"fire"},
	},
	"stone_golem": {
		ID: "stone_golem", Name: "Stone Golem",
		Type: Boss, CombatStyle: Defensive,
		Health: 60, Damage: 10,
		Abilities: []Ability{
			{Name: "Ground Slam", Description: "Cracks the earth underfoot.", Damage: 14, CooldownTurns: 4},
		},
		Drops:    []string{"ancient_key"},
		Weakness: []string{"lightning"},
	},
	"wolf_pack": {
		ID: "wolf_pack", Name: "Twilight Wolf Pack",
		Type: Beast, CombatStyle: Tactical,
		Health: 60, Damage: 15,
		Abilities:    []Ability{abilityShadowStrike},
		Drops:        []string{"wolf_fang", "shadow_touched_pelt"},
		Requirements: []string{},
		Weakness:     []string{"fire", "light_magic"},
	},
	"shadow_hound": {
		ID: "shadow_hound", Name: "Shadow Hound",
		Type: Shadow, CombatStyle: Stealth,
		Health: 45, Damage: 25,
		Abilities:    []Ability{abilityShadowStrike},
		Drops:        []string{"shadow_essence", "void_fang"},
		Requirements: []string{},
		Weakness:     []string{"light_magic", "crystal_focus"},
	},
	"crystal_golem": {
		ID: "crystal_golem", Name: "Crystal Golem",
		Type: Construct, CombatStyle: Defensive,
		Health: 120, Damage: 30,
		Abilities:    []Ability{abilityCrystalBurst},
		Drops:        []string{"perfect_crystal", "golem_core"},
		Requirements: []string{"crystal_focus"},
		Weakness:     []string{"sonic_attacks", "earth_magic"},
	},
	"spectral_sentinel": {
		ID: "spectral_sentinel", Name: "Spectral Sentinel",
		Type: Spirit, CombatStyle: Tactical,
		Health: 80, Damage: 35,
		Abilities:    []Ability{abilityWarCry},
		Drops:        []string{"spectral_essence", "ancient_weapon"},
		Requirements: []string{"spirit_sight"},
		Weakness:     []string{"holy_magic", "ancient_sword"},
	},
	"corrupted_centaur_spirit": {
		ID: "corrupted_centaur_spirit", Name: "Corrupted Centaur Spirit",
		Type: Corrupted, CombatStyle: Aggressive,
		Health: 90, Damage: 40,
		Abilities:    []Ability{abilitySpiritDrain},
		Drops:        []string{"corrupted_essence", "warrior_memory"},
		Requirements: []string{"spirit_sight"},
		Weakness:     []string{"purifying_magic", "war_horn"},
	},
	"twilight_wisp": {
		ID: "twilight_wisp", Name: "Twilight Wisp",
		Type: Spirit, CombatStyle: Magical,
		Health: 30, Damage: 15,
		Drops:        []string{"wisp_essence", "twilight_shard"},
		Requirements: []string{},
		Weakness:     []string{"crystal_focus", "true_sight"},
	},
	"mana_wraith": {
		ID: "mana_wraith", Name: "Mana Wraith",
		Type: Spirit, CombatStyle: Magical,
		Health: 70, Damage: 25,
		Abilities:    []Ability{abilitySpiritDrain},
		Drops:        []string{"wraith_essence", "crystallized_mana"},
		Requirements: []string{"magic_resistance"},
		Weakness:     []string{"physical_attacks", "ancient_sword"},
	},
	"shadow_knight": {
		ID: "shadow_knight", Name: "Shadow Knight",
		Type: Shadow, CombatStyle: Tactical,
		Health: 150, Damage: 45,
		Abilities:    []Ability{abilityShadowStrike, abilityWarCry},
		Drops:        []string{"shadow_steel", "void_essence"},
		Requirements: []string{"ancient_sword", "stealth_cloak"},
		Weakness:     []string{"light_magic", "crystal_focus"},
	},
	"void_walker": {
		ID: "void_walker", Name: "Void Walker",
		Type: Shadow, CombatStyle: Magical,
		Health: 120, Damage: 50,
		Abilities:    []Ability{abilityShadowStrike, abilitySpiritDrain},
		Drops:        []string{"void_crystal", "null_essence"},
		Requirements: []string{"crystal_focus", "phantom_dagger"},
		Weakness:     []string{"light_magic", "holy_magic"},
	},
	"shadow_stalker": {
		ID: "shadow_stalker", Name: "Shadow Stalker",
		Type: Shadow, CombatStyle: Stealth,
		Health: 80, Damage: 25,
		Abilities:    []Ability{abilityShadowStrike},
		Drops:        []string{"shadow_essence", "stealth_cloak"},
		Requirements: []string{},
		Weakness:     []string{"light_magic", "fire"},
	},
}

// Discoveries is the immutable, process-wide discovery catalog, evaluated
// in this stable definition order by game/discovery.
var Discoveries = []Discovery{
	{
		ID: "test_berries", Name: "Forest Berries",
		Description:         "a bush heavy with ripe berries",
		DiscoveryText:       "You part the leaves and find a bush heavy with ripe berries.",
		TerrainTypes:        []string{"forest"},
		RequiredInteraction: "gather",
		RequiredKeywords:    []string{"berries", "bush"},
		ChanceToFind:        1.0,
		Unique:              true,
		ItemReward:          "test_berries",
	},
	{
		ID: "ruined_altar", Name: "Ruined Altar",
		Description:         "a moss-covered altar etched with centaur runes",
		DiscoveryText:       "Beneath the moss, faded runes still hum with old power.",
		TerrainTypes:        []string{"ruins", "ancient_ruins"},
		RequiredInteraction: "examine",
		RequiredKeywords:    []string{"altar", "rune", "stone"},
		ChanceToFind:        0.6,
		Unique:              true,
		SpecialEffect:       map[string]float64{"mystic_affinity": 0.5},
	},
	{
		ID: "hidden_spring", Name: "Hidden Spring",
		Description:         "a cold spring bubbling up between stones",
		DiscoveryText:       "Clear water pools among the roots, untouched and cold.",
		TerrainTypes:        []string{"forest", "enchanted_valley", "ancient_forest"},
		RequiredInteraction: "gather",
		RequiredKeywords:    []string{"water", "spring", "drink"},
		ChanceToFind:        0.5,
		Unique:              false,
		ItemReward:          "waterskin",
	},
	{
		ID: "pretty_flower", Name: "Pretty Flower",
		Description:         "a beautiful flower with vibrant colors",
		DiscoveryText:       "Among the undergrowth, a single vividly colored flower catches your eye.",
		TerrainTypes:        []string{"forest", "clearing"},
		RequiredInteraction: "examine",
		RequiredKeywords:    []string{"flower", "flowers", "plant"},
		ChanceToFind:        1.0,
		Unique:              true,
		ItemReward:          "pretty_flower",
	},
	{
		ID: "ancient_inscription", Name: "Ancient Inscription",
		Description:         "an inscription carved into ancient stone",
		DiscoveryText:       "Weathered lettering, half-worn by time, still traces a message across the stone.",
		TerrainTypes:        []string{"clearing", "ruins", "forest", "mountain", "cave", "enchanted_valley", "desert"},
		RequiredInteraction: "examine",
		RequiredKeywords:    []string{"inscription", "stone", "carving", "ancient writing"},
		ChanceToFind:        1.0,
	},
	{
		ID: "path_marker", Name: "Path Marker",
		Description:         "a marker indicating different paths",
		DiscoveryText:       "A weathered marker points the way, though toward what it no longer says.",
		TerrainTypes:        []string{"clearing", "ruins", "forest", "mountain", "cave", "desert"},
		RequiredInteraction: "examine",
		RequiredKeywords:    []string{"marker", "signpost", "sign", "directions"},
		ChanceToFind:        1.0,
	},
	{
		ID: "warrior_inscription", Name: "Warrior Inscription",
		Description:         "an inscription detailing the warrior's path",
		DiscoveryText:       "The stone bears the record of a warrior's oath, still legible after centuries.",
		TerrainTypes:        []string{"ruins", "ancient_ruins"},
		RequiredInteraction: "examine",
		RequiredKeywords:    []string{"warrior", "inscription"},
		ChanceToFind:        1.0,
		SpecialEffect:       map[string]float64{"warrior_affinity": 0.2},
	},
	{
		ID: "ancient_rune", Name: "Ancient Rune",
		Description:         "a strange symbol carved into an old tree",
		DiscoveryText:       "Bark has grown almost over it, but a rune still glows faintly beneath your fingers.",
		TerrainTypes:        []string{"forest", "ancient_forest"},
		RequiredInteraction: "examine",
		RequiredKeywords:    []string{"tree", "bark", "trunk", "forest"},
		ChanceToFind:        0.7,
		SpecialEffect:       map[string]float64{"mystic_affinity": 0.1},
	},
	{
		ID: "crystal_fragment", Name: "Crystal Fragment",
		Description:         "a small fragment of a magical crystal",
		DiscoveryText:       "Half-buried in the rock, a fragment of crystal catches the light strangely.",
		TerrainTypes:        []string{"mountain", "cave"},
		RequiredInteraction: "examine",
		RequiredKeywords:    []string{"rock", "stone", "crystal", "ground"},
		ChanceToFind:        0.6,
		ItemReward:          "crystal_fragment",
	},
	{
		ID: "desert_sand", Name: "Magical Desert Sand",
		Description:         "fine sand that seems to shimmer with latent energy",
		DiscoveryText:       "You scoop up a handful of sand that shimmers long after it should have settled.",
		TerrainTypes:        []string{"desert"},
		RequiredInteraction: "gather",
		RequiredKeywords:    []string{"sand", "ground", "desert", "dust"},
		ChanceToFind:        0.9,
		Unique:              false,
		ItemReward:          "magical_sand",
	},
	{
		ID: "ancient_coin", Name: "Ancient Coin",
		Description:         "a coin from a forgotten civilization",
		DiscoveryText:       "A tarnished coin, struck with a sigil no living kingdom claims, turns up in the rubble.",
		TerrainTypes:        []string{"ruins", "ancient_ruins"},
		RequiredInteraction: "examine",
		RequiredKeywords:    []string{"ground", "dust", "rubble", "stone", "ruins"},
		ChanceToFind:        0.5,
		ItemReward:          "ancient_coin",
	},
	{
		ID: "shadow_essence", Name: "Shadow Essence",
		Description:         "a swirling dark essence captured from the shadows",
		DiscoveryText:       "Where night presses thickest, a wisp of pure shadow gathers and holds its shape.",
		TerrainTypes:        []string{"shadow_domain", "forgotten_grove"},
		TimeOfDay:           []string{"night", "evening"},
		RequiredInteraction: "touch",
		RequiredKeywords:    []string{"shadow", "darkness", "black", "void"},
		ChanceToFind:        0.4,
		ItemReward:          "shadow_essence",
		SpecialEffect:       map[string]float64{"stealth_affinity": 0.15},
	},
	{
		ID: "storm_charged_branch", Name: "Storm-Charged Branch",
		Description:         "a branch charged with lightning energy",
		DiscoveryText:       "The branch crackles faintly at your touch, still humming with the last storm.",
		TerrainTypes:        []string{"forest", "clearing", "mountain"},
		RequiredInteraction: "gather",
		RequiredKeywords:    []string{"branch", "stick", "wood", "lightning"},
		ChanceToFind:        0.7,
		ItemReward:          "charged_branch",
	},
	{
		ID: "blood_moon_flower", Name: "Blood Moon Flower",
		Description:         "a rare flower that only blooms under a blood moon",
		DiscoveryText:       "Under the crimson light, a deep red flower pulses with an otherworldly energy.",
		TerrainTypes:        []string{"forest", "clearing", "enchanted_valley"},
		WeatherTypes:        []string{"blood_moon"},
		RequiredInteraction: "gather",
		RequiredKeywords:    []string{"flower", "plant", "bloom", "red"},
		ChanceToFind:        0.8,
		ItemReward:          "blood_moon_flower",
		SpecialEffect:       map[string]float64{"health": 5},
	},
}

// Lore is the static dialogue/NPC lore table fed to interact handlers.
var Lore = []LoreEntry{
	{ID: "centaur_elder_greeting", Speaker: "Centaur Elder", Text: "The woods remember every hoofbeat, traveler.", Topics: []string{"woods", "history"}},
	{ID: "centaur_elder_warning", Speaker: "Centaur Elder", Text: "The shadow domain does not forgive the unprepared.", Topics: []string{"shadow", "warning"}},
}

// Achievements is the immutable, process-wide achievement catalog. The
// warrior_/stealth_/mystic_ prefixed entries form three parallel per-path
// progression trees (path chosen -> mid-tier -> capstone), each feeding a
// novice/adept/master title below.
var Achievements = map[string]Achievement{
	"first_steps":   {ID: "first_steps", Name: "First Steps", Description: "Leave the spawn tile for the first time.", Points: 5},
	"first_blood":   {ID: "first_blood", Name: "First Blood", Description: "Win your first combat encounter.", Points: 10},
	"path_chosen":   {ID: "path_chosen", Name: "A Path Chosen", Description: "Select a path.", Points: 10},
	"discoverer":    {ID: "discoverer", Name: "Discoverer", Description: "Find your first hidden discovery.", Points: 10},
	"game_complete": {ID: "game_complete", Name: "Journey's End", Description: "Complete the game.", Points: 50},

	"warrior_path_chosen": {ID: "warrior_path_chosen", Name: "Path of the Warrior", Description: "Choose the Warrior path.", Points: 10},
	"stealth_path_chosen": {ID: "stealth_path_chosen", Name: "Path of Shadows", Description: "Choose the Stealth path.", Points: 10},
	"mystic_path_chosen":  {ID: "mystic_path_chosen", Name: "Path of Wisdom", Description: "Choose the Mystic path.", Points: 10},

	"warrior_honorable_victory": {ID: "warrior_honorable_victory", Name: "Honorable Victory", Description: "Defeat an enemy in honorable combat as a Warrior.", Points: 15},
	"warrior_champion":          {ID: "warrior_champion", Name: "Champion", Description: "Master the Warrior path's full arsenal.", Points: 30},

	"stealth_unseen":        {ID: "stealth_unseen", Name: "Unseen", Description: "Defeat an enemy from hiding as a Stealth adept.", Points: 20},
	"stealth_shadow_master": {ID: "stealth_shadow_master", Name: "Shadow Master", Description: "Master the Stealth path's full arsenal.", Points: 30},

	"mystic_spell_master": {ID: "mystic_spell_master", Name: "Spell Master", Description: "Learn the Mystic path's early spells.", Points: 25},
	"mystic_enlightened":  {ID: "mystic_enlightened", Name: "Enlightened", Description: "Master the Mystic path's full arsenal.", Points: 30},

	"explorer":    {ID: "explorer", Name: "Explorer", Description: "Set foot on 10 different tiles.", Points: 20},
	"collector":   {ID: "collector", Name: "Collector", Description: "Collect 15 different items over the course of your journey.", Points: 25},
	"quest_master": {ID: "quest_master", Name: "Quest Master", Description: "Complete your trial.", Points: 30},
}

// Titles is the immutable, process-wide title catalog, derivable from the
// achievement set a player holds.
var Titles = map[string]Title{
	"wanderer":       {ID: "wanderer", Name: "The Wanderer", RequiredAchievements: []string{"first_steps"}},
	"bloodied":       {ID: "bloodied", Name: "The Bloodied", RequiredAchievements: []string{"first_blood"}},
	"pathwalker":     {ID: "pathwalker", Name: "The Pathwalker", RequiredAchievements: []string{"path_chosen"}},
	"seeker":         {ID: "seeker", Name: "The Seeker", RequiredAchievements: []string{"discoverer"}},
	"centaur_legend": {ID: "centaur_legend", Name: "Legend of the Last Centaur", RequiredAchievements: []string{"first_blood", "path_chosen", "discoverer", "game_complete"}},

	"warrior_novice": {ID: "warrior_novice", Name: "Warrior Novice", RequiredAchievements: []string{"warrior_path_chosen"}},
	"warrior_adept":  {ID: "warrior_adept", Name: "Warrior Adept", RequiredAchievements: []string{"warrior_path_chosen", "warrior_honorable_victory"}},
	"warrior_master": {ID: "warrior_master", Name: "Warrior Master", RequiredAchievements: []string{"warrior_path_chosen", "warrior_champion"}},

	"stealth_novice": {ID: "stealth_novice", Name: "Shadow Novice", RequiredAchievements: []string{"stealth_path_chosen"}},
	"stealth_adept":  {ID: "stealth_adept", Name: "Shadow Adept", RequiredAchievements: []string{"stealth_path_chosen", "stealth_unseen"}},
	"stealth_master": {ID: "stealth_master", Name: "Shadow Master", RequiredAchievements: []string{"stealth_path_chosen", "stealth_shadow_master"}},

	"mystic_novice": {ID: "mystic_novice", Name: "Mystic Novice", RequiredAchievements: []string{"mystic_path_chosen"}},
	"mystic_adept":  {ID: "mystic_adept", Name: "Mystic Adept", RequiredAchievements: []string{"mystic_path_chosen", "mystic_spell_master"}},
	"mystic_master": {ID: "mystic_master", Name: "Mystic Master", RequiredAchievements: []string{"mystic_path_chosen", "mystic_enlightened"}},

	"adventurer":     {ID: "adventurer", Name: "Adventurer", RequiredAchievements: []string{"explorer"}},
	"treasure_hunter": {ID: "treasure_hunter", Name: "Treasure Hunter", RequiredAchievements: []string{"collector"}},
	"hero":           {ID: "hero", Name: "Hero", RequiredAchievements: []string{"quest_master"}},

	"champion_of_the_realm": {ID: "champion_of_the_realm", Name: "Champion of the Realm", RequiredAchievements: []string{"warrior_champion", "explorer", "quest_master"}},
	"master_of_shadows":     {ID: "master_of_shadows", Name: "Master of Shadows", RequiredAchievements: []string{"stealth_shadow_master", "stealth_unseen", "quest_master"}},
	"archmage":              {ID: "archmage", Name: "Archmage", RequiredAchievements: []string{"mystic_enlightened", "mystic_spell_master", "quest_master"}},

	// Legendary: requires mastery of all three paths, which a single
	// instance's irrevocable path selection (game/pathprogress) makes
	// unreachable in one playthrough — kept as aspirational lore, matching
	// the original's framing of it as a legendary title.
	"the_last_centaur": {ID: "the_last_centaur", Name: "The Last Centaur", RequiredAchievements: []string{"warrior_champion", "stealth_shadow_master", "mystic_enlightened", "explorer", "collector", "quest_master"}},
}
