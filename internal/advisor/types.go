package advisor

// Response is the answer to one question. Intent is the branch that
// produced Answer, which after a cascade differs from the classified one.
type Response struct {
	Answer string
	Source string
	Intent string
}

// QuestionInput is one question and the identity asking it.
// UserID is empty for anonymous and demo callers.
type QuestionInput struct {
	Question string
	UserID   string
	IsDemo   bool
}

// Collaborators are borrowed for the duration of one question.
type Collaborators struct {
	Documents DocumentRetriever
	Progress  ProgressAnalyzer
	Graph     GraphQuerier
}

// IntentError is the wire label of answers produced by the outer error
// handler. It is not a routable Intent.
const IntentError = "error"
