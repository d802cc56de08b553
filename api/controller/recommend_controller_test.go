package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/recommender"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecommendUsecase struct {
	recommendations []domain.Recommendation
	err             error
}

func (s *stubRecommendUsecase) Recommend(ctx context.Context, profile domain.RatingProfile, topN int) ([]domain.Recommendation, error) {
	return s.recommendations, s.err
}

func (s *stubRecommendUsecase) ItemExists(ctx context.Context, animeID int) (bool, error) {
	return false, s.err
}

func (s *stubRecommendUsecase) ResolveName(ctx context.Context, query string) (domain.Resolution, error) {
	return domain.Resolution{}, s.err
}

func recommendRequest(t *testing.T, uc domain.RecommendUsecase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/recommendations", NewRecommendController(uc).Recommend)

	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRecommendControllerSuccess(t *testing.T) {
	uc := &stubRecommendUsecase{
		recommendations: []domain.Recommendation{
			{AnimeID: 100, Name: "Naruto Kai", Score: 9.0},
			{AnimeID: 200, Name: "Naruto: Shippuuden", Score: -9.0},
		},
	}
	rec := recommendRequest(t, uc, `{"11061": 10, "2476": 1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Recommendations []domain.Recommendation `json:"recommendations"`
		Count           int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, uc.recommendations, body.Recommendations)
}

func TestRecommendControllerEmptyResultIsOK(t *testing.T) {
	rec := recommendRequest(t, &stubRecommendUsecase{}, `{"999999999": 8}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"recommendations": [], "count": 0}`, rec.Body.String())
}

func TestRecommendControllerNotTrained(t *testing.T) {
	rec := recommendRequest(t, &stubRecommendUsecase{err: domain.ErrNotTrained}, `{"11061": 10}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "MODEL_NOT_TRAINED")
}

func TestRecommendControllerAmbiguousName(t *testing.T) {
	uc := &stubRecommendUsecase{err: &domain.AmbiguityError{
		Key: "Naruto",
		Candidates: []recommender.Candidate{
			{AnimeID: 100, Name: "Naruto Kai"},
			{AnimeID: 200, Name: "Naruto: Shippuuden"},
		},
	}}
	rec := recommendRequest(t, uc, `{"Naruto": 9}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body struct {
		Code       string                  `json:"code"`
		Key        string                  `json:"key"`
		Candidates []recommender.Candidate `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "AMBIGUOUS_NAME", body.Code)
	assert.Equal(t, "Naruto", body.Key)
	require.Len(t, body.Candidates, 2)
	assert.Equal(t, "Naruto Kai", body.Candidates[0].Name)
}

func TestRecommendControllerInvalidProfile(t *testing.T) {
	uc := &stubRecommendUsecase{err: &domain.ProfileError{Key: "11061", Reason: "rating must be between 1 and 10"}}
	rec := recommendRequest(t, uc, `{"11061": 42}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PROFILE")
}

func TestRecommendControllerBadBody(t *testing.T) {
	rec := recommendRequest(t, &stubRecommendUsecase{}, `["not", "an", "object"]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = recommendRequest(t, &stubRecommendUsecase{}, `{"11061": 10}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecommendControllerInvalidTopN(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/recommendations", NewRecommendController(&stubRecommendUsecase{}).Recommend)

	req := httptest.NewRequest(http.MethodPost, "/recommendations?top_n=zero", strings.NewReader(`{"11061": 10}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOP_N")
}
