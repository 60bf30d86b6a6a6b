package usecase

import (
	"time"

	"campus-lost-found/internal/item/claim"
	"campus-lost-found/internal/item/recency"
	"campus-lost-found/internal/item/repository"
	"campus-lost-found/pkg/imaging"
	"campus-lost-found/pkg/log"
)

// ImageProcessor prepares an uploaded photo before it is forwarded to the backend.
type ImageProcessor interface {
	Process(filename string, data []byte) (imaging.Image, error)
}

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	snapshots  repository.SnapshotStore
	claims     *claim.Registry
	classifier *recency.Classifier
	images     ImageProcessor
	now        func() time.Time
}

// New creates a new item UseCase implementation.
func New(
	l log.Logger,
	repo repository.Repository,
	snapshots repository.SnapshotStore,
	claims *claim.Registry,
	classifier *recency.Classifier,
	images ImageProcessor,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		snapshots:  snapshots,
		claims:     claims,
		classifier: classifier,
		images:     images,
		now:        time.Now,
	}
}
