package http

import (
	"github.com/gin-gonic/gin"

	"collab-srv/pkg/response"
)

// SearchResources - Search teaching resources
// @Summary Search teaching resources
// @Description Weighted fuzzy text search over resources with filters, facets and pagination
// @Tags Search
// @Accept json
// @Produce json
// @Param body body searchResourcesReq true "Search request"
// @Success 200 {object} searchResourcesResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/search/resources [post]
func (h *handler) SearchResources(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchResourcesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.SearchResources: processSearchResourcesRequest failed: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	output, err := h.uc.SearchResources(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.SearchResources: usecase SearchResources failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResourcesResp(output))
}

// SearchUsers - Search teacher profiles
// @Summary Search teacher profiles
// @Tags Search
// @Accept json
// @Produce json
// @Param body body searchUsersReq true "Search request"
// @Success 200 {object} searchUsersResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/search/users [post]
func (h *handler) SearchUsers(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchUsersRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.SearchUsers: processSearchUsersRequest failed: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	output, err := h.uc.SearchUsers(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.SearchUsers: usecase SearchUsers failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchUsersResp(output))
}

// SearchCommunities - Search communities
// @Summary Search communities
// @Tags Search
// @Accept json
// @Produce json
// @Param body body searchCommunitiesReq true "Search request"
// @Success 200 {object} searchCommunitiesResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/search/communities [post]
func (h *handler) SearchCommunities(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchCommunitiesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.SearchCommunities: processSearchCommunitiesRequest failed: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	output, err := h.uc.SearchCommunities(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.SearchCommunities: usecase SearchCommunities failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchCommunitiesResp(output))
}

// EnsureIndex - Create an index if absent
// @Summary Create an index if absent
// @Tags Search
// @Produce json
// @Param name path string true "Index name"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/search/indexes/{name} [put]
func (h *handler) EnsureIndex(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	if err := h.uc.EnsureIndex(ctx, name); err != nil {
		h.l.Errorf(ctx, "search.delivery.http.EnsureIndex: usecase EnsureIndex failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"index": name})
}

// RemoveIndex - Delete an index if present
// @Summary Delete an index if present
// @Tags Search
// @Produce json
// @Param name path string true "Index name"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/search/indexes/{name} [delete]
func (h *handler) RemoveIndex(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	if err := h.uc.RemoveIndex(ctx, name); err != nil {
		h.l.Errorf(ctx, "search.delivery.http.RemoveIndex: usecase RemoveIndex failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"index": name})
}
