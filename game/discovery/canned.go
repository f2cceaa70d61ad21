package discovery

// knownKinds mirrors the InteractionKind alphabet the command parser
// produces for INTERACT.
var knownKinds = map[string]bool{
	"examine": true, "touch": true, "gather": true, "break": true,
	"move": true, "climb": true, "dig": true, "listen": true,
	"smell": true, "taste": true, "custom": true,
}

func isKnownKind(kind string) bool {
	return knownKinds[kind]
}

// cannedBase holds the fallback narration for each kind when no discovery
// matches.
var cannedBase = map[string]string{
	"examine": "You find nothing unusual.",
	"touch":   "It feels ordinary to the touch.",
	"gather":  "There is nothing here worth gathering.",
	"break":   "Nothing here gives way.",
	"move":    "It will not budge.",
	"climb":   "There is nothing worth climbing here.",
	"dig":     "The ground yields nothing.",
	"listen":  "You hear only the ordinary sounds of the area.",
	"smell":   "Nothing stands out to the nose.",
	"taste":   "It tastes unremarkable.",
	"custom":  "Nothing happens.",
}

// terrainFlavor adds a terrain-specific clause to the canned response.
var terrainFlavor = map[string]string{
	"forest":           "The trees offer no further secrets.",
	"ruins":            "The ruins keep the rest of their history to themselves.",
	"cave":             "The cave stays silent.",
	"mountain":         "The mountainside holds nothing more.",
	"desert":           "The sand shifts and reveals nothing.",
	"enchanted_valley": "The valley's shimmer does not part for you.",
}

var weatherFlavor = map[string]string{
	"fog":        "The fog makes it hard to be sure.",
	"storm":      "The storm drowns out anything subtler.",
	"blood_moon": "The blood moon's light unsettles more than it reveals.",
}

// cannedResponse builds the fallback narration for a failed or
// unrecognized interaction, enriched with terrain and weather flavor when
// available. Empty text or an unknown kind yields an empty string.
func cannedResponse(ctx Context) string {
	if ctx.Text == "" || !isKnownKind(ctx.Kind) {
		return ""
	}

	resp := cannedBase[ctx.Kind]
	if flavor, ok := terrainFlavor[ctx.Terrain]; ok {
		resp += " " + flavor
	}
	if flavor, ok := weatherFlavor[ctx.Weather]; ok {
		resp += " " + flavor
	}
	return resp
}
