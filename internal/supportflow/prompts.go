package supportflow

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	greetingHeader = "Olá! Como posso ajudar hoje?\n\nEscolha uma opção:\n"
	greetingFooter = "\nDigite o número da opção:"
	backHint       = "\nDigite o número da opção (ou 0 para voltar)."

	describePrompt = "Obrigado. Por favor, descreva com detalhes o seu problema.\n" +
		"Se possível, inclua: passos para reproduzir e horário aproximado em que ocorreu."

	firstDescriptionPrompt = "Recebemos sua descrição. Deseja:\n\n" +
		"1️⃣ Finalizar e voltar para a home\n" +
		"2️⃣ Não, quero continuar adicionando informações ao chamado\n\n" +
		"Digite 1 ou 2."

	moreDescriptionPrompt = "Informação adicionada. Você já concluiu a descrição?\n\n" +
		"1️⃣ Sim, finalizar e voltar para a home\n" +
		"2️⃣ Não, quero continuar adicionando informações\n\n" +
		"Digite 1 ou 2 (ou continue enviando seu texto)."

	keepDescribingPrompt = "Perfeito! Pode continuar explicando seu problema. Envie quando quiser concluir (digitando 1 ou 2)."

	// ClosingMessage is sent after the remote session is finalized
	ClosingMessage = "Obrigado. Seu chamado foi finalizado. Você será redirecionado para a home."
	// FinalizeFailedMessage is the blocking notice shown when finalization fails
	FinalizeFailedMessage = "Não foi possível finalizar. Tente novamente."
	// InternalErrorMessage precedes the greeting after a defensive reset
	InternalErrorMessage = "Erro interno: categoria não encontrada. Voltando ao menu inicial."

	categoryChoicePrefix = "Escolha categoria: "
	detailChoicePrefix   = "Detalhe: "
)

// ordinal renders a 1-based position as a keycap emoji when one exists
func ordinal(n int) string {
	if n >= 0 && n <= 9 {
		return strconv.Itoa(n) + "\uFE0F\u20E3"
	}
	return strconv.Itoa(n) + "."
}

func (e *Engine) renderGreeting() string {
	var b strings.Builder
	b.WriteString(greetingHeader)
	for i := 0; i < e.menu.Len(); i++ {
		c, _ := e.menu.CategoryAt(i)
		name := c.Name
		if name == "" {
			name = c.Key
		}
		fmt.Fprintf(&b, "%s %s\n", ordinal(i+1), name)
	}
	b.WriteString(greetingFooter)
	return b.String()
}

func submenuPrompt(c *Category) string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteString("\n\n")
	for i, opt := range c.Options {
		fmt.Fprintf(&b, "%s %s\n", ordinal(i+1), opt.Label)
	}
	b.WriteString(backHint)
	return b.String()
}

func detailPrompt(opt *Option) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Perfeito. Agora selecione uma opção mais específica sobre \"%s\":\n\n", opt.Label)
	for i, label := range opt.Level2 {
		fmt.Fprintf(&b, "%s %s\n", ordinal(i+1), label)
	}
	b.WriteString(backHint)
	return b.String()
}

func alreadyAtRootMessage(n int) string {
	return fmt.Sprintf("Você já está no menu principal. Digite 1-%d para escolher uma categoria.", n)
}

func mainMenuRangeMessage(n int) string {
	return fmt.Sprintf("Selecione uma opção válida (1 a %d).", n)
}

func rangeMessage(limit int) string {
	return fmt.Sprintf("Escolha uma opção válida (1 a %d) ou 0 para voltar.", limit)
}
