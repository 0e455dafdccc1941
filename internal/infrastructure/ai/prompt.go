package ai

import "fmt"

// recoveryInstructions instrucciones fijas del plan de reconstrucción (pt-BR, como la UI).
const recoveryInstructions = `Você é um Engenheiro de Software Sênior.
O usuário perdeu um código que criou recentemente e está descrevendo o que lembra dele.
Sua tarefa é gerar um PLANO TÉCNICO DE RECONSTRUÇÃO em Português (Brasil).

Gere uma resposta estruturada contendo:
1. Resumo Técnico: quais bibliotecas provavelmente foram usadas.
2. Estrutura de Arquivos Sugerida: a lista de componentes necessários.
3. Pseudo-código ou Código Boilerplate: o esqueleto do componente principal.
4. Dicas: como melhorar a ideia agora que ele vai refazê-la.

Mantenha o tom empático, profissional e encorajador. Use formatação Markdown para o código.`

func recoveryUserText(description string) string {
	return fmt.Sprintf("Descrição do usuário: %q", description)
}

// maxResponseBytes límite de lectura del cuerpo de respuesta.
const maxResponseBytes = 256 * 1024
