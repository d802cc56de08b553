package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/gin-gonic/gin"
)

type RecommendController struct {
	RecommendUsecase domain.RecommendUsecase
}

func NewRecommendController(uc domain.RecommendUsecase) *RecommendController {
	return &RecommendController{RecommendUsecase: uc}
}

// Recommend scores a rating profile sent as a flat JSON object, e.g.
// {"11061": 10, "School Days": 1}. Keys are anime ids or free-text names,
// values are scores in [1,10]; top_n comes from the query string.
func (c *RecommendController) Recommend(ctx *gin.Context) {
	var profile domain.RatingProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "send a JSON object mapping anime ids or names to scores")
		return
	}

	topN := 0
	if raw := ctx.Query("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_TOP_N", "top_n must be a positive integer")
			return
		}
		topN = n
	}

	recommendations, err := c.RecommendUsecase.Recommend(ctx.Request.Context(), profile, topN)
	if err != nil {
		var profileErr *domain.ProfileError
		var ambiguityErr *domain.AmbiguityError
		switch {
		case errors.Is(err, domain.ErrNotTrained):
			ErrorResponse(ctx, http.StatusServiceUnavailable, "MODEL_NOT_TRAINED", "the model is not trained yet")
		case errors.As(err, &ambiguityErr):
			ctx.JSON(http.StatusConflict, gin.H{
				"code":       "AMBIGUOUS_NAME",
				"key":        ambiguityErr.Key,
				"candidates": ambiguityErr.Candidates,
			})
		case errors.As(err, &profileErr):
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PROFILE", profileErr.Error())
		default:
			ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		}
		return
	}

	// An empty list is a valid answer, not an error.
	if recommendations == nil {
		recommendations = []domain.Recommendation{}
	}
	SuccessResponse(ctx, "recommendations", recommendations, len(recommendations))
}
