package questiongen

import (
	"fmt"
	"strings"

	"github.com/memoriaviva/memoria/internal/quiz"
)

const systemPrompt = `Eres un docente de historia de Chile que prepara material educativo.
Responde siempre en español, con rigor histórico y tono objetivo.
Cada pregunta tiene exactamente 4 alternativas y una sola correcta.`

// levelGuidance tells the model what each Bloom stage asks of the player.
var levelGuidance = map[quiz.Level]string{
	quiz.LevelRemember:   "Preguntas de memoria sobre fechas, hechos, personas e instituciones.",
	quiz.LevelUnderstand: "Preguntas que pidan interpretar o explicar el sentido de un hecho o concepto.",
	quiz.LevelApply:      "Preguntas que pidan usar un concepto para clasificar o reconocer una situación concreta.",
	quiz.LevelAnalyze:    "Preguntas que pidan relacionar causas y consecuencias o distinguir actores y motivaciones.",
	quiz.LevelEvaluate:   "Preguntas que pidan juzgar evidencias, argumentos o el impacto de decisiones.",
	quiz.LevelCreate:     "Preguntas que pidan proponer o reconocer la mejor síntesis, hipótesis o propuesta.",
}

// buildUserMessage names the level and the batch size.
func buildUserMessage(level quiz.Level, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Genera %d preguntas de opción múltiple sobre la Dictadura Militar en Chile (1973-1990).\n", count)
	fmt.Fprintf(&b, "Nivel de Taxonomía de Bloom: %s.\n", level)
	if g, ok := levelGuidance[level]; ok {
		b.WriteString(g)
		b.WriteString("\n")
	}
	b.WriteString("Formato JSON estricto.\n")
	b.WriteString("La respuesta debe incluir una explicación educativa.")
	return b.String()
}
