package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSearchResourcesRequest(c *gin.Context) (searchResourcesReq, error) {
	var req searchResourcesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSearchUsersRequest(c *gin.Context) (searchUsersReq, error) {
	var req searchUsersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSearchCommunitiesRequest(c *gin.Context) (searchCommunitiesReq, error) {
	var req searchCommunitiesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
