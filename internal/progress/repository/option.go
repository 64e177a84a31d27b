package repository

// CreateRecordOptions holds parameters for inserting a progress record.
type CreateRecordOptions struct {
	UserID     string
	CourseCode string
	CourseName string
	Grade      string
	Hours      int
	Semester   string
}
