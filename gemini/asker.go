// Package gemini answers questions about indexed documentation using
// the Google Gemini API, grounded on search results for the question.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docsearch"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements docsearch.Asker at compile time.
var _ docsearch.Asker = (*Asker)(nil)

// Asker implements docsearch.Asker using Google Gemini. It searches
// the corpus for entries relevant to the question and sends them as
// grounding context.
type Asker struct {
	client   *genai.Client
	searcher docsearch.SearchService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, searcher docsearch.SearchService) *Asker {
	return &Asker{client: client, searcher: searcher}
}

// Ask answers a natural language question about the indexed documentation.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "question required")
	}

	results := a.searcher.Search(question)
	if len(results) == 0 {
		return "", docsearch.Errorf(docsearch.ENOTFOUND, "no documentation found for %q", question)
	}

	prompt := BuildUserPrompt(results, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about software documentation. Answer based only on the documentation provided. If the answer is not in the documentation, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the search results
// and the question.
func BuildUserPrompt(results []docsearch.Result, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, r := range results {
		title := r.Entry.Title
		if title == "" {
			title = r.Entry.URL
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", r.Entry.URL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", r.Entry.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
