package matcher

// exerciseAliases maps a canonical exercise name to known synonyms across
// languages (English and Italian gym vocabulary). Both sides are normalized
// at construction, so the table tolerates casing, accents and stop words.
var exerciseAliases = map[string][]string{
	"bench press":          {"panca piana", "distensioni su panca", "flat bench press", "barbell bench press"},
	"incline bench press":  {"panca inclinata", "distensioni su panca inclinata"},
	"squat":                {"back squat", "barbell back squat", "accosciata"},
	"front squat":          {"squat frontale"},
	"deadlift":             {"stacco da terra", "stacco"},
	"romanian deadlift":    {"stacco rumeno", "rdl"},
	"overhead press":       {"military press", "shoulder press", "lento avanti"},
	"lat pulldown":         {"lat machine", "trazioni al lat machine"},
	"pull up":              {"trazioni", "trazioni alla sbarra"},
	"chin up":              {"trazioni presa supina"},
	"barbell row":          {"rematore", "rematore con bilanciere", "bent over row"},
	"dumbbell row":         {"rematore con manubrio", "one arm row"},
	"biceps curl":          {"curl bicipiti", "curl con bilanciere", "arm curl"},
	"hammer curl":          {"curl a martello"},
	"triceps pushdown":     {"pushdown", "spinte in basso ai cavi"},
	"lateral raise":        {"alzate laterali"},
	"lunge":                {"affondi", "walking lunge"},
	"hip thrust":           {"spinta dell anca", "ponte glutei"},
	"leg press":            {"pressa", "pressa per gambe"},
	"standing calf raise":  {"polpacci in piedi", "calf raise"},
	"push up":              {"piegamenti", "piegamenti sulle braccia", "press up"},
	"dip":                  {"parallele", "dips alle parallele"},
	"leg extension":        {"leg extension alla macchina", "estensioni delle gambe"},
	"leg curl":             {"flessioni delle gambe"},
	"crunch":               {"crunch addominali"},
}

// AliasTable resolves normalized exercise names to a shared canonical key.
// Two names are synonyms when their canonical keys are equal, whatever
// their raw spellings. Built once, read-only afterwards.
type AliasTable struct {
	canonical map[string]string
}

// NewAliasTable builds the flat lookup from the static synonym dictionary.
// Every canonical key and every alias is normalized and inserted, so
// lookups are a single map access after normalization.
func NewAliasTable() *AliasTable {
	t := &AliasTable{canonical: make(map[string]string, len(exerciseAliases)*3)}

	for name, aliases := range exerciseAliases {
		key := Normalize(name)
		t.canonical[key] = key

		for _, alias := range aliases {
			t.canonical[Normalize(alias)] = key
		}
	}

	return t
}

// CanonicalOf returns the canonical key for a name, if the table knows it.
func (t *AliasTable) CanonicalOf(name string) (string, bool) {
	return t.canonicalOfNormalized(Normalize(name))
}

func (t *AliasTable) canonicalOfNormalized(normalized string) (string, bool) {
	key, ok := t.canonical[normalized]
	return key, ok
}
