package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
	"github.com/solemate/solemate-backend/internal/platform/gemini"
)

// FallbackReply is returned when the remote model cannot be reached, so
// the conversation is never left without a paired assistant entry.
const FallbackReply = "Lo siento, hubo un problema al contactar con el asistente de IA. Intenta nuevamente más tarde."

// ResponseGenerator turns (user message, catalog, context) into reply
// text. Implementations absorb their own transport failures and return
// the fallback reply instead of an error.
type ResponseGenerator interface {
	GenerateResponse(ctx context.Context, userMessage string, products []*domain.Product, chatContext *domain.ChatContext) (string, error)
}

type geminiGenerator struct {
	client gemini.Client
	log    *logger.Logger
}

func NewGeminiGenerator(client gemini.Client, baseLog *logger.Logger) ResponseGenerator {
	return &geminiGenerator{
		client: client,
		log:    baseLog.With("service", "ResponseGenerator"),
	}
}

// formatProductsInfo renders the catalog block of the prompt, one line
// per product: "- <name> | <brand> | $<price> | Stock: <stock>".
func formatProductsInfo(products []*domain.Product) string {
	if len(products) == 0 {
		return "No hay productos disponibles."
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		price := strconv.FormatFloat(p.Price, 'f', -1, 64)
		lines = append(lines, "- "+p.Name+" | "+p.Brand+" | $"+price+" | Stock: "+strconv.Itoa(p.Stock))
	}
	return strings.Join(lines, "\n")
}

// buildPrompt embeds the catalog and the formatted history into the
// fixed instruction template. The layout is load-bearing: history lines
// come straight from ChatContext.FormatForPrompt and the prompt ends
// with the new user turn and an open assistant turn.
func buildPrompt(userMessage string, products []*domain.Product, chatContext *domain.ChatContext) string {
	history := ""
	if chatContext != nil {
		if formatted := chatContext.FormatForPrompt(); formatted != "" {
			history = formatted + "\n"
		}
	}

	var sb strings.Builder
	sb.WriteString("Eres un asistente virtual experto en ventas de zapatos para un e-commerce.\n")
	sb.WriteString("Tu objetivo es ayudar a los clientes a encontrar los zapatos perfectos.\n")
	sb.WriteString("\n")
	sb.WriteString("PRODUCTOS DISPONIBLES:\n")
	sb.WriteString(formatProductsInfo(products))
	sb.WriteString("\n")
	sb.WriteString("\n")
	sb.WriteString("INSTRUCCIONES:\n")
	sb.WriteString("- Sé amigable y profesional\n")
	sb.WriteString("- Usa el contexto de la conversación anterior\n")
	sb.WriteString("- Recomienda productos específicos cuando sea apropiado\n")
	sb.WriteString("- Menciona precios, tallas y disponibilidad\n")
	sb.WriteString("- Si no tienes información, sé honesto\n")
	sb.WriteString("\n")
	sb.WriteString(history)
	sb.WriteString("Usuario: " + userMessage + "\n")
	sb.WriteString("\n")
	sb.WriteString("Asistente:")
	return sb.String()
}

func (g *geminiGenerator) GenerateResponse(ctx context.Context, userMessage string, products []*domain.Product, chatContext *domain.ChatContext) (string, error) {
	prompt := buildPrompt(userMessage, products, chatContext)

	reply, err := g.client.GenerateText(ctx, prompt)
	if err != nil {
		// One best-effort call; a failed generation becomes the fixed
		// apology so the conversation still gets its paired entry.
		g.log.Warn("Generation failed, substituting fallback reply", "error", err)
		return FallbackReply, nil
	}
	return strings.TrimSpace(reply), nil
}
