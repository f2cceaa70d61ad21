package command

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// maxSuggestions bounds how many alternatives Suggest returns.
const maxSuggestions = 3

// maxEditDistance is the farthest Damerau-Levenshtein distance a
// vocabulary word may be from the input and still be suggested.
const maxEditDistance = 3

// vocabulary is a hand-kept list of the parser's verbs and common aliases,
// plus direction shortcuts, flattened for suggestion lookups. It does not
// list every alias the parser accepts.
var vocabulary = buildVocabulary()

func buildVocabulary() []string {
	words := map[string]bool{
		"look": true, "examine": true, "inspect": true, "study": true, "observe": true,
		"take": true, "pick up": true, "grab": true, "get": true,
		"drop": true, "discard": true,
		"inventory": true, "inv": true, "items": true,
		"attack": true, "fight": true, "strike": true, "hit": true,
		"defend": true, "block": true,
		"dodge": true, "evade": true,
		"rest": true, "sleep": true,
		"meditate": true,
		"status": true, "stats": true,
		"map": true,
		"help": true,
		"hint": true,
		"save": true,
		"titles": true,
		"leaderboard": true, "scores": true, "rankings": true,
		"path": true,
		"ability": true, "cast": true,
		"quit": true, "exit": true,
		"touch": true, "gather": true, "break": true, "climb": true,
		"dig": true, "listen": true, "smell": true, "taste": true,
	}
	for short, long := range directionShortcuts {
		words[short] = true
		words[long] = true
	}

	out := make([]string, 0, len(words))
	for w := range words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

type candidate struct {
	word     string
	distance int
}

// Suggest returns up to three vocabulary entries closest to input by
// Damerau-Levenshtein distance, for the dispatcher to offer when parsing
// yields Unknown.
func Suggest(input string) []string {
	first := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(first) == 0 {
		return nil
	}
	word := first[0]

	candidates := make([]candidate, 0, len(vocabulary))
	for _, v := range vocabulary {
		dist, err := matchr.DamerauLevenshtein(word, v)
		if err != nil || dist > maxEditDistance {
			continue
		}
		candidates = append(candidates, candidate{word: v, distance: dist})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].word < candidates[j].word
	})

	out := make([]string, 0, maxSuggestions)
	for _, c := range candidates {
		out = append(out, c.word)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
