package command

import (
	"regexp"
	"strconv"
	"strings"
)

// directionShortcuts maps the short and long forms of a direction to the
// canonical direction name the engine expects.
var directionShortcuts = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"north": "north", "south": "south", "east": "east", "west": "west",
}

// interactVerbs maps a leading verb to its INTERACT kind for the verbs
// that have no dedicated top-level intent.
var interactVerbs = map[string]string{
	"touch": "touch", "gather": "gather", "break": "break",
	"climb": "climb", "dig": "dig", "listen": "listen",
	"smell": "smell", "taste": "taste",
	"use": "custom", "push": "custom", "pull": "custom",
	"open": "custom", "search": "custom",
}

// pattern is one regex-table entry: a precompiled pattern tested against
// the cleaned input, and the Kind it yields on a match. Patterns are
// compiled once at package init and never touched again; the parser
// itself is pure.
type pattern struct {
	kind Kind
	re   *regexp.Regexp
}

// table is the fixed regex table of intents, tested in order. Patterns
// anchor at the start of the cleaned input and capture the remaining
// text, if any, as group 1.
var table = []pattern{
	{Look, regexp.MustCompile(`^(look|look around)$`)},
	{Examine, regexp.MustCompile(`^(?:examine|look at|inspect|study|observe)\s*(.*)$`)},
	{Take, regexp.MustCompile(`^(?:take|pick up|grab|get)\s+(.*)$`)},
	{Drop, regexp.MustCompile(`^(?:drop|discard)\s+(.*)$`)},
	{Inventory, regexp.MustCompile(`^(?:inventory|inv|items)$`)},
	{AttackIntent, regexp.MustCompile(`^(?:attack|fight|strike|hit)\s*(.*)$`)},
	{Defend, regexp.MustCompile(`^(?:defend|block)$`)},
	{Dodge, regexp.MustCompile(`^(?:dodge|evade)$`)},
	{Rest, regexp.MustCompile(`^(?:rest|sleep)$`)},
	{Meditate, regexp.MustCompile(`^meditate\s*(\d*)$`)},
	{Status, regexp.MustCompile(`^(?:status|stats)$`)},
	{Map, regexp.MustCompile(`^map$`)},
	{Hint, regexp.MustCompile(`^hint$`)},
	{Help, regexp.MustCompile(`^help\s*(.*)$`)},
	{Save, regexp.MustCompile(`^save$`)},
	{Titles, regexp.MustCompile(`^titles$`)},
	{Leaderboard, regexp.MustCompile(`^(?:leaderboard|scores|rankings)\s*(.*)$`)},
	{PathSelect, regexp.MustCompile(`^(?:select path|choose path|path select|path)\s+(\w+)$`)},
	{AbilityUse, regexp.MustCompile(`^(?:use ability|cast|ability)\s+(\S+)\s*(.*)$`)},
	{Quit, regexp.MustCompile(`^(?:quit|exit)$`)},
}

var articles = map[string]bool{"the": true, "a": true, "an": true}
var fillers = map[string]bool{"please": true, "now": true}

// clean lowercases, trims, and strips articles/fillers.
func clean(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	fields := strings.Fields(lower)

	kept := fields[:0]
	for _, f := range fields {
		if articles[f] || fillers[f] {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// Parse classifies raw input into an Intent.
func Parse(raw string) Intent {
	cleaned := clean(raw)
	base := Intent{RawInput: raw}

	if cleaned == "" {
		base.Kind = Unknown
		return base
	}

	fields := strings.Fields(cleaned)
	first := fields[0]

	if dir, ok := directionShortcuts[first]; ok && len(fields) == 1 {
		base.Kind = Move
		base.Direction = dir
		return base
	}

	for _, p := range table {
		m := p.re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		return applyMatch(base, p.kind, m)
	}

	if kind, ok := interactVerbs[first]; ok {
		base.Kind = Interact
		base.InteractKind = kind
		base.InteractText = strings.TrimSpace(strings.TrimPrefix(cleaned, first))
		return base
	}

	base.Kind = Unknown
	return base
}

// applyMatch fills in the fields specific to kind from a regex match.
func applyMatch(base Intent, kind Kind, m []string) Intent {
	base.Kind = kind
	rest := ""
	if len(m) > 1 {
		rest = strings.TrimSpace(m[1])
	}

	switch kind {
	case Examine, AttackIntent:
		base.Target = rest
	case Take, Drop:
		base.Target = rest
	case Meditate:
		if rest != "" {
			if n, err := strconv.Atoi(rest); err == nil {
				base.Minutes = n
			}
		}
	case Help:
		base.Topic = rest
	case Leaderboard:
		base.Category = rest
	case PathSelect:
		base.Path = rest
	case AbilityUse:
		base.AbilityID = rest
		if len(m) > 2 && m[2] != "" {
			base.AbilityArgs = strings.Fields(m[2])
		}
	}
	return base
}
