package qdrant

import (
	"sync"

	"github.com/spu-coder/my-ai-advisor/internal/document/repository"
	pkgLog "github.com/spu-coder/my-ai-advisor/pkg/log"
	pkgQdrant "github.com/spu-coder/my-ai-advisor/pkg/qdrant"
)

type implRepository struct {
	client         pkgQdrant.IQdrant
	collectionName string
	vectorSize     int
	l              pkgLog.Logger

	mu    sync.Mutex
	ready bool
}

// New creates a Qdrant-backed document Repository.
func New(client pkgQdrant.IQdrant, collectionName string, vectorSize int, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:         client,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}
