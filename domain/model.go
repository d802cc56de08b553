package domain

import (
	"context"

	"github.com/fionaabad/AniMatch/recommender"
)

// ModelPointer is the current-version record naming the live artifact.
type ModelPointer struct {
	ModelVersion string `json:"model_version"`
	ArtifactPath string `json:"artifact_path"`
}

// TrainSummary reports one completed training run.
type TrainSummary struct {
	ModelVersion string                   `json:"model_version"`
	ArtifactPath string                   `json:"artifact_path"`
	MatrixItems  int                      `json:"matrix_items"`
	Filter       recommender.FilterReport `json:"filter"`
	DurationMS   int64                    `json:"duration_ms"`
}

// ArtifactRepository persists correlation matrices and the pointer record.
// Save must write the artifact durably before the pointer advances, so a
// concurrent reader never observes a half-written model.
type ArtifactRepository interface {
	Save(ctx context.Context, m *recommender.Matrix, version string) (ModelPointer, error)
	Load(ctx context.Context, p ModelPointer) (*recommender.Matrix, error)
	Current(ctx context.Context) (ModelPointer, error)
}

// TrainUsecase runs the offline batch pipeline: load, filter, correlate,
// persist, swap the live model.
type TrainUsecase interface {
	Train(ctx context.Context) (*TrainSummary, error)
}
