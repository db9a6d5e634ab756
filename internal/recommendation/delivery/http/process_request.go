package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processPersonalizedRequest(c *gin.Context) (personalizedReq, error) {
	var req personalizedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processTrendingRequest(c *gin.Context) (trendingReq, error) {
	var req trendingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processInteractionRequest(c *gin.Context) (interactionReq, error) {
	var req interactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
