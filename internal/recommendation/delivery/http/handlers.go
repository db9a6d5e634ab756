package http

import (
	"github.com/gin-gonic/gin"

	"collab-srv/pkg/response"
)

// GetPersonalized - Personalized resource recommendations
// @Summary Personalized resource recommendations
// @Description Blends content-based and collaborative queries for the given teacher profile
// @Tags Recommendation
// @Produce json
// @Param userId query string true "User id"
// @Param subjects query []string false "Profile subjects"
// @Param gradeLevels query []string false "Profile grade levels"
// @Param limit query int false "Max results"
// @Success 200 {object} personalizedResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/recommendations/personalized [get]
func (h *handler) GetPersonalized(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPersonalizedRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "recommendation.delivery.http.GetPersonalized: processPersonalizedRequest failed: %v", err)
		response.Error(c, errWrongQuery)
		return
	}

	recs, err := h.uc.GetPersonalizedRecommendations(ctx, req.toProfile(), req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "recommendation.delivery.http.GetPersonalized: usecase GetPersonalizedRecommendations failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPersonalizedResp(recs))
}

// GetTrending - Platform-wide trending resources
// @Summary Platform-wide trending resources
// @Tags Recommendation
// @Produce json
// @Param subjects query []string false "Subject filter"
// @Param limit query int false "Max results"
// @Success 200 {object} trendingResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/recommendations/trending [get]
func (h *handler) GetTrending(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTrendingRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "recommendation.delivery.http.GetTrending: processTrendingRequest failed: %v", err)
		response.Error(c, errWrongQuery)
		return
	}

	trending, err := h.uc.GetTrendingContent(ctx, req.Subjects, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "recommendation.delivery.http.GetTrending: usecase GetTrendingContent failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTrendingResp(trending))
}

// GetExplanation - Why a resource was recommended
// @Summary Why a resource was recommended
// @Tags Recommendation
// @Produce json
// @Param resourceId path string true "Resource id"
// @Param userId query string false "User id"
// @Success 200 {object} explanationResp
// @Router /api/v1/recommendations/{resourceId}/explanation [get]
func (h *handler) GetExplanation(c *gin.Context) {
	ctx := c.Request.Context()

	resourceID := c.Param("resourceId")
	userID := c.Query("userId")

	explanation := h.uc.GetRecommendationExplanation(ctx, userID, resourceID)
	response.OK(c, explanationResp{Explanation: explanation})
}

// RecordInteraction - Record a user/resource interaction
// @Summary Record a user/resource interaction
// @Description Fire-and-forget; the interaction log is an analytics side channel
// @Tags Recommendation
// @Accept json
// @Produce json
// @Param body body interactionReq true "Interaction"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/interactions [post]
func (h *handler) RecordInteraction(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInteractionRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "recommendation.delivery.http.RecordInteraction: processInteractionRequest failed: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	h.uc.UpdateUserInteraction(ctx, req.toInput())
	response.OK(c, nil)
}
