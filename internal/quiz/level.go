package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a Bloom taxonomy stage. Levels are played strictly in order.
type Level int

const (
	LevelRemember Level = iota
	LevelUnderstand
	LevelApply
	LevelAnalyze
	LevelEvaluate
	LevelCreate
)

// NumLevels is the number of levels in a full playthrough.
const NumLevels = 6

// AllLevels lists every level in play order.
var AllLevels = []Level{
	LevelRemember, LevelUnderstand, LevelApply,
	LevelAnalyze, LevelEvaluate, LevelCreate,
}

var levelLabels = [NumLevels]string{
	"Recordar", "Comprender", "Aplicar", "Analizar", "Evaluar", "Crear",
}

var levelKeys = [NumLevels]string{
	"remember", "understand", "apply", "analyze", "evaluate", "create",
}

var levelDescriptions = [NumLevels]string{
	"Reconoce fechas, hechos y protagonistas.",
	"Explica el sentido de los acontecimientos.",
	"Usa los conceptos en situaciones concretas.",
	"Relaciona causas, actores y consecuencias.",
	"Juzga evidencias y argumentos.",
	"Propone síntesis e interpretaciones propias.",
}

// Description is a one-line summary of what the level asks of the player.
func (l Level) Description() string {
	if !l.Valid() {
		return ""
	}
	return levelDescriptions[l]
}

// String returns the Spanish label shown to players and used in prompts.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelLabels[l]
}

// Key returns the stable identifier used by the CLI, the HTTP API and
// persisted results.
func (l Level) Key() string {
	if !l.Valid() {
		return ""
	}
	return levelKeys[l]
}

func (l Level) Valid() bool {
	return l >= LevelRemember && l <= LevelCreate
}

// ParseLevel accepts a key ("apply"), a Spanish label ("Aplicar") or a
// 1-based ordinal ("3").
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for i := range NumLevels {
		if strings.EqualFold(s, levelKeys[i]) || strings.EqualFold(s, levelLabels[i]) {
			return Level(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= NumLevels {
		return Level(n - 1), nil
	}
	return 0, fmt.Errorf("unknown level %q (want one of %s)", s, strings.Join(levelKeys[:], ", "))
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid level %d", int(l))
	}
	return []byte(l.Key()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	parsed, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
