package usecase

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/recommender"
	"github.com/google/uuid"
)

type trainUsecase struct {
	source     domain.RatingSourceRepository
	artifacts  domain.ArtifactRepository
	cache      *ModelCache
	filterOpts recommender.FilterOptions
	buildOpts  recommender.BuildOptions
	running    atomic.Bool
}

func NewTrainUsecase(
	source domain.RatingSourceRepository,
	artifacts domain.ArtifactRepository,
	cache *ModelCache,
	filterOpts recommender.FilterOptions,
	buildOpts recommender.BuildOptions,
) domain.TrainUsecase {
	return &trainUsecase{
		source:     source,
		artifacts:  artifacts,
		cache:      cache,
		filterOpts: filterOpts,
		buildOpts:  buildOpts,
	}
}

// Train recomputes the full correlation matrix from the rating dump and
// atomically installs it as the current model. Only one run may be active
// system-wide; a second request is rejected, not queued. The run is batch
// work and is not preempted mid-computation, so no timeout applies here;
// the live model stays queryable throughout.
func (uc *trainUsecase) Train(ctx context.Context) (*domain.TrainSummary, error) {
	if !uc.running.CompareAndSwap(false, true) {
		return nil, domain.ErrTrainingInProgress
	}
	defer uc.running.Store(false)

	// Once admitted the run must finish; a caller hanging up must not
	// abort a half-done load or leave the cycle wasted.
	ctx = context.WithoutCancel(ctx)

	start := time.Now()

	log.Printf("train: reading rating dump")
	ratings, err := uc.source.LoadRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	filtered, report := recommender.Filter(ratings, uc.filterOpts)
	log.Printf("train: %d rows in, %d after cleaning, %d/%d animes kept, %d rows out (power-user cap %d)",
		report.RowsIn, report.RowsAfterClean, report.ItemsKept, report.ItemsIn, report.RowsOut, report.PowerUserCap)

	log.Printf("train: computing pairwise correlations (min_periods=%d)", uc.buildOpts.MinPeriods)
	matrix := recommender.Build(filtered, uc.buildOpts)

	version := uuid.NewString()
	pointer, err := uc.artifacts.Save(ctx, matrix, version)
	if err != nil {
		return nil, fmt.Errorf("persist model: %w", err)
	}

	// Swap the live model only after the artifact is durable.
	uc.cache.replace(pointer, matrix)
	log.Printf("train: model %s saved to %s (%d animes, %s)",
		pointer.ModelVersion, pointer.ArtifactPath, matrix.Len(), time.Since(start).Round(time.Millisecond))

	return &domain.TrainSummary{
		ModelVersion: pointer.ModelVersion,
		ArtifactPath: pointer.ArtifactPath,
		MatrixItems:  matrix.Len(),
		Filter:       report,
		DurationMS:   time.Since(start).Milliseconds(),
	}, nil
}
