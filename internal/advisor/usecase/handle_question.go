package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/spu-coder/my-ai-advisor/internal/advisor"
	"github.com/spu-coder/my-ai-advisor/internal/bridge"
	"github.com/spu-coder/my-ai-advisor/internal/router"
)

// HandleQuestion answers from the FAQ table when possible, otherwise
// classifies the question and routes it.
func (uc *implUseCase) HandleQuestion(ctx context.Context, input advisor.QuestionInput, collab advisor.Collaborators) advisor.Response {
	if answer, ok := lookupFAQ(input.Question); ok {
		uc.l.Infof(ctx, "%s: answered from FAQ", LogPrefixHandleQuestion)
		return newResponse(answer, SourceFAQ, router.IntentQueryRAG)
	}

	intent := uc.router.Classify(ctx, input.Question)
	return uc.route(ctx, intent, input, collab)
}

// Ask is the synchronous entry point. Demo callers lose their identity
// before the pipeline starts.
func (uc *implUseCase) Ask(ctx context.Context, input advisor.QuestionInput) advisor.Response {
	if input.IsDemo {
		input.UserID = ""
	}

	resp, err := bridge.Do(ctx, uc.pool, func(ctx context.Context) (advisor.Response, error) {
		return uc.HandleQuestion(ctx, input, uc.collab), nil
	})
	if err != nil {
		var pe *bridge.PanicError
		if errors.As(err, &pe) {
			uc.l.Errorf(ctx, "%s: %v\n%s", LogPrefixAsk, err, pe.Stack)
		} else {
			uc.l.Errorf(ctx, "%s: %v", LogPrefixAsk, err)
		}
		return advisor.Response{
			Answer: fmt.Sprintf(MsgRequestFailed, err),
			Source: SourceError,
			Intent: advisor.IntentError,
		}
	}
	return resp
}

func newResponse(answer, source string, intent router.Intent) advisor.Response {
	return advisor.Response{Answer: answer, Source: source, Intent: intent.String()}
}
