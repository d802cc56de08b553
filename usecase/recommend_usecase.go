package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/recommender"
)

// catalog is the lazily built name side of the model: the resolver index plus
// the id -> display name map used to decorate results.
type catalog struct {
	index *recommender.NameIndex
	names map[int]string
}

type recommendUsecase struct {
	source         domain.RatingSourceRepository
	artifacts      domain.ArtifactRepository
	cache          *ModelCache
	cat            atomic.Pointer[catalog]
	contextTimeout time.Duration
}

func NewRecommendUsecase(
	source domain.RatingSourceRepository,
	artifacts domain.ArtifactRepository,
	cache *ModelCache,
	timeout time.Duration,
) domain.RecommendUsecase {
	return &recommendUsecase{
		source:         source,
		artifacts:      artifacts,
		cache:          cache,
		contextTimeout: timeout,
	}
}

// matrix returns the current model, loading it into the shared cache on first
// use. Two first-callers may both load; the later store wins, which is fine
// since both loaded the same current artifact.
func (uc *recommendUsecase) matrix(ctx context.Context) (*recommender.Matrix, error) {
	if snap := uc.cache.get(); snap != nil {
		return snap.matrix, nil
	}
	pointer, err := uc.artifacts.Current(ctx)
	if err != nil {
		return nil, err
	}
	m, err := uc.artifacts.Load(ctx, pointer)
	if err != nil {
		return nil, err
	}
	uc.cache.replace(pointer, m)
	return m, nil
}

func (uc *recommendUsecase) catalogData(ctx context.Context) (*catalog, error) {
	if c := uc.cat.Load(); c != nil {
		return c, nil
	}
	items, err := uc.source.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load anime catalog: %w", err)
	}
	c := &catalog{
		index: recommender.NewNameIndex(items),
		names: make(map[int]string, len(items)),
	}
	for _, it := range items {
		if _, dup := c.names[it.AnimeID]; !dup {
			c.names[it.AnimeID] = it.Name
		}
	}
	uc.cat.Store(c)
	return c, nil
}

// resolveProfile turns the id-or-name keyed request profile into id -> rating
// pairs. Ratings outside [1,10] and names matching nothing are hard input
// errors; an ambiguous name comes back as an AmbiguityError for the caller to
// disambiguate and retry.
func (uc *recommendUsecase) resolveProfile(ctx context.Context, profile domain.RatingProfile) (map[int]float64, error) {
	resolved := make(map[int]float64, len(profile))
	for key, rating := range profile {
		if rating < domain.MinProfileRating || rating > domain.MaxProfileRating {
			return nil, &domain.ProfileError{Key: key, Reason: "rating must be between 1 and 10"}
		}
		if id, err := strconv.Atoi(strings.TrimSpace(key)); err == nil {
			resolved[id] = rating
			continue
		}
		cat, err := uc.catalogData(ctx)
		if err != nil {
			return nil, err
		}
		id, candidates, err := cat.index.Resolve(key)
		if err != nil {
			return nil, &domain.ProfileError{Key: key, Reason: "name not found"}
		}
		if len(candidates) > 0 {
			return nil, &domain.AmbiguityError{Key: key, Candidates: candidates}
		}
		resolved[id] = rating
	}
	if len(resolved) == 0 {
		return nil, &domain.ProfileError{Reason: "empty profile"}
	}
	return resolved, nil
}

func (uc *recommendUsecase) Recommend(ctx context.Context, profile domain.RatingProfile, topN int) ([]domain.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	m, err := uc.matrix(ctx)
	if err != nil {
		return nil, err
	}
	resolved, err := uc.resolveProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	cat, err := uc.catalogData(ctx)
	if err != nil {
		return nil, err
	}

	scored := recommender.Score(m, resolved, topN)
	out := make([]domain.Recommendation, 0, len(scored))
	for _, s := range scored {
		out = append(out, domain.Recommendation{
			AnimeID: s.AnimeID,
			Name:    cat.names[s.AnimeID],
			Score:   s.Score,
		})
	}
	return out, nil
}

func (uc *recommendUsecase) ItemExists(ctx context.Context, animeID int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	m, err := uc.matrix(ctx)
	if err != nil {
		return false, err
	}
	return m.Has(animeID), nil
}

func (uc *recommendUsecase) ResolveName(ctx context.Context, query string) (domain.Resolution, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	cat, err := uc.catalogData(ctx)
	if err != nil {
		return domain.Resolution{}, err
	}
	id, candidates, err := cat.index.Resolve(query)
	if err != nil {
		return domain.Resolution{}, err
	}
	if len(candidates) > 0 {
		return domain.Resolution{Candidates: candidates}, nil
	}
	return domain.Resolution{AnimeID: id, Name: cat.names[id]}, nil
}
