package explain

import "fmt"

const systemPrompt = `Eres un historiador que escribe material educativo sobre Chile.
Responde en español, en prosa breve y sin formato Markdown.`

const (
	eventPrompt   = `Explica detalladamente el hito histórico "%s" ocurrido durante la dictadura en Chile (1973-1990). Enfócate en causas, desarrollo y consecuencias. Máximo 150 palabras. Tono educativo y objetivo.`
	conceptPrompt = `Define y contextualiza el concepto "%s" en el marco de la dictadura militar chilena. Explica su relevancia histórica y social. Máximo 100 palabras.`
)

func buildPrompt(topic string, kind Kind) string {
	if kind == KindConcept {
		return fmt.Sprintf(conceptPrompt, topic)
	}
	return fmt.Sprintf(eventPrompt, topic)
}
