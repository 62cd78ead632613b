// Package gemini answers questions about the coding standards using Google
// Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/pystandards"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured. It is also
// supported by the local tokenizer.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements pystandards.Asker at compile time.
var _ pystandards.Asker = (*Asker)(nil)

// Asker implements pystandards.Asker using Google Gemini.
type Asker struct {
	client    *genai.Client
	standards pystandards.StandardService
	model     string
}

// NewAsker creates a new Asker. An empty model means DefaultModel.
func NewAsker(client *genai.Client, standards pystandards.StandardService, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, standards: standards, model: model}
}

// Ask answers a natural language question about the coding standards.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	prompt, err := a.Prompt(ctx, question)
	if err != nil {
		return "", err
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pystandards.Errorf(pystandards.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// Prompt builds the user prompt Ask would send for question.
func (a *Asker) Prompt(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", pystandards.Errorf(pystandards.EINVALID, "question required")
	}

	infos, err := a.standards.ListCategories(ctx)
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", pystandards.Errorf(pystandards.ENOTFOUND, "no standards available")
	}

	standards := make([]*pystandards.Standard, 0, len(infos))
	for _, info := range infos {
		s, err := a.standards.FindStandard(ctx, info.Category)
		if err != nil {
			return "", err
		}
		standards = append(standards, s)
	}

	return BuildUserPrompt(standards, question), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about Python coding standards. Answer based only on the standards provided and quote their examples where useful. If the standards do not cover the question, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the standards and question.
func BuildUserPrompt(standards []*pystandards.Standard, question string) string {
	var sb strings.Builder
	sb.WriteString("<standards>\n")
	for _, s := range standards {
		sb.WriteString("<standard category=\"" + string(s.Category) + "\">\n")
		sb.WriteString(pystandards.FormatStandard(s))
		sb.WriteString("</standard>\n")
	}
	sb.WriteString("</standards>\n\n")
	sb.WriteString("Question: " + question)
	return sb.String()
}
