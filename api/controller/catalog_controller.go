package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/recommender"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	RecommendUsecase domain.RecommendUsecase
}

func NewCatalogController(uc domain.RecommendUsecase) *CatalogController {
	return &CatalogController{RecommendUsecase: uc}
}

// Exists reports whether an anime id is a column of the current model.
func (c *CatalogController) Exists(ctx *gin.Context) {
	animeID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "anime id must be an integer")
		return
	}

	exists, err := c.RecommendUsecase.ItemExists(ctx.Request.Context(), animeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotTrained) {
			ErrorResponse(ctx, http.StatusServiceUnavailable, "MODEL_NOT_TRAINED", "the model is not trained yet")
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"anime_id": animeID, "exists": exists})
}

// Resolve maps a free-text name to an anime id, or to a candidate list when
// the query is ambiguous; ambiguity is a structured answer, not an error.
func (c *CatalogController) Resolve(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ErrorResponse(ctx, http.StatusBadRequest, "MISSING_QUERY", "q parameter is required")
		return
	}

	resolution, err := c.RecommendUsecase.ResolveName(ctx.Request.Context(), query)
	if err != nil {
		if errors.Is(err, recommender.ErrNameNotFound) {
			ErrorResponse(ctx, http.StatusNotFound, "NAME_NOT_FOUND", "no anime matches that name")
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, resolution)
}
