package repository

import "errors"

var ErrVectorCountMismatch = errors.New("chunks and vectors differ in length")
