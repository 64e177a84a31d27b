package usecase

import (
	"context"
	"sync"

	"github.com/spu-coder/my-ai-advisor/internal/model"
	"github.com/spu-coder/my-ai-advisor/internal/router"
)

// countingGateway records prompts and answers with a fixed text.
type countingGateway struct {
	mu      sync.Mutex
	answer  string
	prompts []string
}

func (g *countingGateway) Generate(ctx context.Context, prompt string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return g.answer
}

func (g *countingGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

type fakeRouter struct {
	mu     sync.Mutex
	intent router.Intent
	calls  int
}

func (r *fakeRouter) Classify(ctx context.Context, question string) router.Intent {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.intent
}

type fakeDocuments struct {
	context string
	source  string
	err     error
	calls   int
}

func (d *fakeDocuments) Retrieve(ctx context.Context, question string) (string, string, error) {
	d.calls++
	return d.context, d.source, d.err
}

type fakeProgress struct {
	report model.ProgressReport
	err    error
	calls  int
	lastID string
}

func (p *fakeProgress) Analyze(ctx context.Context, userID string) (model.ProgressReport, error) {
	p.calls++
	p.lastID = userID
	return p.report, p.err
}

type fakeGraph struct {
	skills   []string
	err      error
	calls    int
	lastCode string
}

func (g *fakeGraph) SkillsForCourse(ctx context.Context, courseCode string) ([]string, error) {
	g.calls++
	g.lastCode = courseCode
	return g.skills, g.err
}

type panicRouter struct{}

func (panicRouter) Classify(ctx context.Context, question string) router.Intent {
	panic("classifier exploded")
}
