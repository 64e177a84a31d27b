package http

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spu-coder/my-ai-advisor/internal/advisor"
	"github.com/spu-coder/my-ai-advisor/internal/model"
)

const (
	maxQuestionRunes = 2000
	maxUserIDLength  = 50

	DemoWarning = "⚠️ أنت في الوضع التجريبي. الإجابات لا تعتمد على بياناتك الشخصية."
)

var (
	userIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

	// NUL and the characters that matter to HTML.
	questionSanitizer = strings.NewReplacer("\x00", "", "<", "", ">", "", `"`, "", "'", "", "&", "")
)

// --- Request DTOs ---

type chatReq struct {
	Question string `json:"question" binding:"required"`
	UserID   string `json:"user_id"  binding:"required"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return advisor.ErrEmptyQuestion
	}
	if utf8.RuneCountInString(r.Question) > maxQuestionRunes {
		return advisor.ErrQuestionTooLong
	}
	if len(r.UserID) > maxUserIDLength || !userIDPattern.MatchString(r.UserID) {
		return advisor.ErrInvalidUserID
	}
	return nil
}

func (r chatReq) toInput(sc model.Scope) advisor.QuestionInput {
	return advisor.QuestionInput{
		Question: r.Question,
		UserID:   sc.EffectiveUserID(),
		IsDemo:   sc.IsDemo,
	}
}

func sanitizeQuestion(q string) string {
	q = strings.TrimSpace(questionSanitizer.Replace(q))
	if utf8.RuneCountInString(q) > maxQuestionRunes {
		q = string([]rune(q)[:maxQuestionRunes])
	}
	return q
}

// --- Response DTOs ---

type chatResp struct {
	Answer      string `json:"answer"`
	Source      string `json:"source"`
	Intent      string `json:"intent"`
	DemoWarning string `json:"demo_warning,omitempty"`
}

func (h *handler) newChatResp(out advisor.Response, isDemo bool) chatResp {
	resp := chatResp{
		Answer: out.Answer,
		Source: out.Source,
		Intent: out.Intent,
	}
	if isDemo {
		resp.DemoWarning = DemoWarning
	}
	return resp
}
