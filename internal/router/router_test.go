package router

import (
	"context"
	"strings"
	"testing"

	"github.com/spu-coder/my-ai-advisor/pkg/log"
)

type fakeGateway struct {
	answer  string
	prompts []string
}

func (f *fakeGateway) Generate(ctx context.Context, prompt string) string {
	f.prompts = append(f.prompts, prompt)
	return f.answer
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		raw  string
		want Intent
	}{
		{"query_rag", IntentQueryRAG},
		{"  Analyze_Progress.\n", IntentAnalyzeProgress},
		{"graph query", IntentGraphQuery},
		{"GENERAL CHAT.", IntentGeneralChat},
		{"simulate_gpa", IntentGeneralChat},
		{"xyz", IntentGeneralChat},
		{"", IntentGeneralChat},
		{"انتهت مهلة الاتصال بالنموذج. يرجى المحاولة مرة أخرى أو تبسيط السؤال.", IntentGeneralChat},
		{"The tool is query_rag", IntentGeneralChat},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseIntent(tt.raw); got != tt.want {
				t.Errorf("ParseIntent(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	gw := &fakeGateway{answer: "analyze_progress"}
	r := New(gw, log.NewNop())

	question := "ما هو معدلي التراكمي؟"
	got := r.Classify(context.Background(), question)
	if got != IntentAnalyzeProgress {
		t.Errorf("Classify() = %s, want analyze_progress", got)
	}
	if len(gw.prompts) != 1 {
		t.Fatalf("expected one gateway call, got %d", len(gw.prompts))
	}

	prompt := gw.prompts[0]
	for _, want := range []string{
		"أنت نظام توجيه ذكي.",
		`السؤال: "` + question + `"`,
		"- simulate_gpa:",
		"- general_chat:",
		"مثال: analyze_progress",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestClassify_NeverEmitsSimulateGPA(t *testing.T) {
	for _, answer := range []string{"simulate_gpa", "Simulate GPA.", "query_rag", "nonsense"} {
		r := New(&fakeGateway{answer: answer}, log.NewNop())
		got := r.Classify(context.Background(), "q")
		if got == IntentSimulateGPA {
			t.Errorf("Classify emitted simulate_gpa for %q", answer)
		}
		if _, ok := validIntents[got]; !ok {
			t.Errorf("Classify returned %q outside the reachable set", got)
		}
	}
}
