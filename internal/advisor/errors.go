package advisor

import "errors"

var (
	ErrEmptyQuestion   = errors.New("question is empty")
	ErrQuestionTooLong = errors.New("question is too long")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrForeignUser     = errors.New("cannot query for another user's data")

	ErrCollaboratorMissing = errors.New("collaborator is not configured")
)
