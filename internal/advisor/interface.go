package advisor

import (
	"context"

	"github.com/spu-coder/my-ai-advisor/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleQuestion runs the pipeline with the given collaborators. It never
	// fails; every problem becomes an answer.
	HandleQuestion(ctx context.Context, input QuestionInput, collab Collaborators) Response
	// Ask runs HandleQuestion on the worker pool with the configured
	// collaborators, for synchronous callers.
	Ask(ctx context.Context, input QuestionInput) Response
}

// DocumentRetriever finds official document excerpts for a question.
// An empty context means nothing relevant was found.
type DocumentRetriever interface {
	Retrieve(ctx context.Context, question string) (context string, source string, err error)
}

// ProgressAnalyzer summarises a student's academic record.
type ProgressAnalyzer interface {
	Analyze(ctx context.Context, userID string) (model.ProgressReport, error)
}

// GraphQuerier answers course/skill relationship questions.
type GraphQuerier interface {
	SkillsForCourse(ctx context.Context, courseCode string) ([]string, error)
}
