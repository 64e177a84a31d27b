package http

type setSkillsReq struct {
	CourseCode string   `json:"-"`
	Skills     []string `json:"skills" binding:"required"`
}

type skillsResp struct {
	CourseCode string   `json:"course_code"`
	Skills     []string `json:"skills"`
}

func newSkillsResp(code string, skills []string) skillsResp {
	if skills == nil {
		skills = []string{}
	}
	return skillsResp{CourseCode: code, Skills: skills}
}
