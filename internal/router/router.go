package router

import (
	"context"
	"fmt"
)

// Classify asks the model which tool fits the question. Gateway failure
// text is just another unrecognized answer and falls back to general_chat.
func (r *SemanticRouter) Classify(ctx context.Context, question string) Intent {
	raw := r.gateway.Generate(ctx, BuildPrompt(question))
	intent := ParseIntent(raw)

	if string(intent) != normalize(raw) {
		r.l.Debugf(ctx, "%s: unrecognized model output %q, using %s", LogPrefixClassify, raw, intent)
	}
	r.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, intent)
	return intent
}

// BuildPrompt renders the classification prompt for question.
func BuildPrompt(question string) string {
	return fmt.Sprintf(PromptClassify, question)
}
