package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spu-coder/my-ai-advisor/internal/advisor"
	"github.com/spu-coder/my-ai-advisor/internal/router"
)

// route runs the branch for intent. query_rag and graph_query may fall
// through to general_chat once; general_chat never cascades.
func (uc *implUseCase) route(ctx context.Context, intent router.Intent, input advisor.QuestionInput, collab advisor.Collaborators) advisor.Response {
	switch intent {
	case router.IntentQueryRAG:
		if resp, ok := uc.queryRAG(ctx, input.Question, collab.Documents); ok {
			return resp
		}
	case router.IntentAnalyzeProgress:
		return uc.analyzeProgress(ctx, input, collab.Progress)
	case router.IntentGraphQuery:
		if resp, ok := uc.graphQuery(ctx, input.Question, collab.Graph); ok {
			return resp
		}
	}

	if intent != router.IntentGeneralChat {
		uc.l.Infof(ctx, "%s: %s cascades to %s", LogPrefixRoute, intent, router.IntentGeneralChat)
	}
	return uc.generalChat(ctx, input.Question)
}

func (uc *implUseCase) queryRAG(ctx context.Context, question string, docs advisor.DocumentRetriever) (advisor.Response, bool) {
	if docs == nil {
		return advisor.Response{}, false
	}

	docContext, source, err := docs.Retrieve(ctx, question)
	if err != nil {
		uc.l.Errorf(ctx, "%s: documents.Retrieve: %v", LogPrefixRoute, err)
		return newResponse(fmt.Sprintf(MsgDocumentsError, err), SourceError, router.IntentQueryRAG), true
	}
	if docContext == "" {
		return advisor.Response{}, false
	}

	answer := uc.gateway.Generate(ctx, fmt.Sprintf(PromptRAG, docContext, question))
	return newResponse(answer, source, router.IntentQueryRAG), true
}

func (uc *implUseCase) analyzeProgress(ctx context.Context, input advisor.QuestionInput, progress advisor.ProgressAnalyzer) advisor.Response {
	if input.IsDemo || input.UserID == "" {
		return newResponse(MsgDemoRestricted, SourceDemo, router.IntentAnalyzeProgress)
	}
	if progress == nil {
		return newResponse(fmt.Sprintf(MsgProgressError, advisor.ErrCollaboratorMissing), SourceError, router.IntentAnalyzeProgress)
	}

	report, err := progress.Analyze(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: progress.Analyze: %v", LogPrefixRoute, err)
		return newResponse(fmt.Sprintf(MsgProgressError, err), SourceError, router.IntentAnalyzeProgress)
	}

	codes := make([]string, 0, len(report.RegisterableNextSemester))
	for _, c := range report.RegisterableNextSemester {
		codes = append(codes, c.Code)
	}

	prompt := fmt.Sprintf(PromptProgress,
		strconv.FormatFloat(report.CurrentGPA, 'f', -1, 64),
		report.CompletedHours,
		report.RemainingCoursesCount,
		strings.Join(codes, listSeparator),
		strings.Join(report.CompletedCourses, listSeparator),
		input.Question,
	)
	answer := uc.gateway.Generate(ctx, prompt)
	return newResponse(answer, SourceProgress, router.IntentAnalyzeProgress)
}

func (uc *implUseCase) graphQuery(ctx context.Context, question string, graph advisor.GraphQuerier) (advisor.Response, bool) {
	if graph == nil || !mentionsCourseSkills(question) {
		return advisor.Response{}, false
	}

	skills, err := graph.SkillsForCourse(ctx, graphExampleCourse)
	if err != nil {
		uc.l.Errorf(ctx, "%s: graph.SkillsForCourse: %v", LogPrefixRoute, err)
		return newResponse(fmt.Sprintf(MsgGraphError, err), SourceError, router.IntentGraphQuery), true
	}
	if len(skills) == 0 {
		return advisor.Response{}, false
	}

	answer := fmt.Sprintf(MsgSkillsTemplate, graphExampleCourse, strings.Join(skills, listSeparator))
	return newResponse(answer, SourceGraph, router.IntentGraphQuery), true
}

func (uc *implUseCase) generalChat(ctx context.Context, question string) advisor.Response {
	answer := uc.gateway.Generate(ctx, fmt.Sprintf(PromptGeneral, question))
	return newResponse(answer, SourceGeneral, router.IntentGeneralChat)
}

func mentionsCourseSkills(question string) bool {
	return strings.Contains(question, graphSkillsToken) && strings.Contains(question, graphCourseToken)
}
