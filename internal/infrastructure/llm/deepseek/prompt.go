package deepseek

import (
	"fmt"
	"strings"

	"github.com/pvolkov/briefly/internal/core/domain"
)

func buildSummaryMessages(req domain.SummarizeRequest) []message {
	var user strings.Builder
	user.WriteString(req.Template.Instruction)
	fmt.Fprintf(&user, " Keep the summary within roughly %d words.", req.MaxLength)
	user.WriteString("\n\nText:\n")
	user.WriteString(req.Text)

	return []message{
		{Role: "system", Content: systemPrompt(req.Role.System, req.Language)},
		{Role: "user", Content: user.String()},
	}
}

func buildResponseMessages(req domain.RespondRequest) []message {
	var user strings.Builder
	user.WriteString("Write a reply to the following summary.\n\nSummary:\n")
	user.WriteString(req.Summary)
	if req.Direction != "" {
		user.WriteString("\n\nDirection for the reply:\n")
		user.WriteString(req.Direction)
	}

	return []message{
		{Role: "system", Content: systemPrompt(req.Role.System, req.Language)},
		{Role: "user", Content: user.String()},
	}
}

func buildAnalysisMessages(req domain.AnalyzeRequest) []message {
	var user strings.Builder
	user.WriteString("Produce a business analysis of the material below: key figures, risks, opportunities and recommended next steps.\n\nOriginal text:\n")
	user.WriteString(req.Original)
	user.WriteString("\n\nSummary:\n")
	user.WriteString(req.Summary)
	if req.Extra != "" {
		user.WriteString("\n\nAdditional context:\n")
		user.WriteString(req.Extra)
	}

	return []message{
		{Role: "system", Content: systemPrompt("You are a business analyst.", req.Language)},
		{Role: "user", Content: user.String()},
	}
}

func systemPrompt(roleSystem string, lang domain.Language) string {
	roleSystem = strings.TrimSpace(roleSystem)
	if roleSystem == "" {
		roleSystem = "You are a careful assistant."
	}
	return fmt.Sprintf("%s Respond in %s.", roleSystem, lang.Name)
}
