package router

import "strings"

// Intent is the closed set of handlers a question can be routed to.
type Intent string

const (
	IntentQueryRAG        Intent = "query_rag"
	IntentAnalyzeProgress Intent = "analyze_progress"
	IntentSimulateGPA     Intent = "simulate_gpa"
	IntentGraphQuery      Intent = "graph_query"
	IntentGeneralChat     Intent = "general_chat"
)

// validIntents excludes simulate_gpa: the classifier never emits it.
var validIntents = map[Intent]struct{}{
	IntentQueryRAG:        {},
	IntentAnalyzeProgress: {},
	IntentGraphQuery:      {},
	IntentGeneralChat:     {},
}

// ParseIntent normalizes raw model output into an Intent. It never fails:
// anything unrecognized is general_chat.
func ParseIntent(raw string) Intent {
	intent := Intent(normalize(raw))
	if _, ok := validIntents[intent]; ok {
		return intent
	}
	return IntentGeneralChat
}

func normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, " ", "_")
}

func (i Intent) String() string {
	return string(i)
}
