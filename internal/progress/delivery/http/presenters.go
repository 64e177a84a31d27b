package http

import (
	"github.com/spu-coder/my-ai-advisor/internal/model"
	"github.com/spu-coder/my-ai-advisor/internal/progress"
	"github.com/spu-coder/my-ai-advisor/pkg/response"
)

// --- Request DTOs ---

type recordReq struct {
	UserID     string `json:"user_id"     binding:"required"`
	CourseCode string `json:"course_code" binding:"required"`
	CourseName string `json:"course_name"`
	Grade      string `json:"grade"       binding:"required"`
	Hours      int    `json:"hours"       binding:"required,min=1"`
	Semester   string `json:"semester"`
}

func (r recordReq) toInput() progress.RecordInput {
	return progress.RecordInput{
		UserID:     r.UserID,
		CourseCode: r.CourseCode,
		CourseName: r.CourseName,
		Grade:      r.Grade,
		Hours:      r.Hours,
		Semester:   r.Semester,
	}
}

type simulateReq struct {
	CurrentGPA     float64           `json:"current_gpa"`
	CurrentHours   int               `json:"current_hours"`
	NewCourses     map[string]int    `json:"new_courses"     binding:"required"`
	ExpectedGrades map[string]string `json:"expected_grades" binding:"required"`
}

func (r simulateReq) toInput() progress.SimulateInput {
	return progress.SimulateInput{
		CurrentGPA:     r.CurrentGPA,
		CurrentHours:   r.CurrentHours,
		NewCourses:     r.NewCourses,
		ExpectedGrades: r.ExpectedGrades,
	}
}

// --- Response DTOs ---

type courseResp struct {
	Code  string `json:"code"`
	Name  string `json:"name,omitempty"`
	Hours int    `json:"hours"`
}

type analyzeResp struct {
	CurrentGPA               float64      `json:"current_gpa"`
	CompletedHours           int          `json:"completed_hours"`
	RemainingCoursesCount    int          `json:"remaining_courses_count"`
	RegisterableNextSemester []courseResp `json:"registerable_next_semester"`
	CompletedCourses         []string     `json:"completed_courses"`
}

func newAnalyzeResp(r model.ProgressReport) analyzeResp {
	courses := make([]courseResp, len(r.RegisterableNextSemester))
	for i, c := range r.RegisterableNextSemester {
		courses[i] = courseResp{Code: c.Code, Name: c.Name, Hours: c.Hours}
	}
	completed := r.CompletedCourses
	if completed == nil {
		completed = []string{}
	}
	return analyzeResp{
		CurrentGPA:               r.CurrentGPA,
		CompletedHours:           r.CompletedHours,
		RemainingCoursesCount:    r.RemainingCoursesCount,
		RegisterableNextSemester: courses,
		CompletedCourses:         completed,
	}
}

type recordResp struct {
	ID         int64             `json:"id"`
	UserID     string            `json:"user_id"`
	CourseCode string            `json:"course_code"`
	CourseName string            `json:"course_name,omitempty"`
	Grade      string            `json:"grade"`
	Hours      int               `json:"hours"`
	Semester   string            `json:"semester,omitempty"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newRecordResp(r progress.Record) recordResp {
	return recordResp{
		ID:         r.ID,
		UserID:     r.UserID,
		CourseCode: r.CourseCode,
		CourseName: r.CourseName,
		Grade:      r.Grade,
		Hours:      r.Hours,
		Semester:   r.Semester,
		CreatedAt:  response.DateTime(r.CreatedAt),
	}
}

type simulateResp struct {
	CurrentGPA   float64 `json:"current_gpa"`
	ProjectedGPA float64 `json:"projected_gpa"`
	NewHours     int     `json:"new_hours"`
	TotalHours   int     `json:"total_hours"`
}

func newSimulateResp(out progress.SimulateOutput) simulateResp {
	return simulateResp{
		CurrentGPA:   out.CurrentGPA,
		ProjectedGPA: out.ProjectedGPA,
		NewHours:     out.NewHours,
		TotalHours:   out.TotalHours,
	}
}
