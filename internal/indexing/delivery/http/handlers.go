package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"collab-srv/internal/indexing"
	"collab-srv/pkg/response"
)

// UpsertResource - Index a resource document
// @Summary Index a resource document
// @Description Enriches the resource with derived ranking signals and writes it to the index
// @Tags Indexing
// @Accept json
// @Produce json
// @Param body body resourceReq true "Resource document"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/index/resources [put]
func (h *handler) UpsertResource(c *gin.Context) {
	ctx := c.Request.Context()

	var req resourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "indexing.delivery.http.UpsertResource: bind failed: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	if err := h.uc.UpsertResource(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "indexing.delivery.http.UpsertResource: usecase UpsertResource failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"id": req.ID})
}

// UpsertUser - Index a user document
// @Summary Index a user document
// @Tags Indexing
// @Accept json
// @Produce json
// @Param body body userReq true "User document"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/index/users [put]
func (h *handler) UpsertUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "indexing.delivery.http.UpsertUser: bind failed: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	if err := h.uc.UpsertUser(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "indexing.delivery.http.UpsertUser: usecase UpsertUser failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"id": req.ID})
}

// UpsertCommunity - Index a community document
// @Summary Index a community document
// @Tags Indexing
// @Accept json
// @Produce json
// @Param body body communityReq true "Community document"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/index/communities [put]
func (h *handler) UpsertCommunity(c *gin.Context) {
	ctx := c.Request.Context()

	var req communityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "indexing.delivery.http.UpsertCommunity: bind failed: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	if err := h.uc.UpsertCommunity(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "indexing.delivery.http.UpsertCommunity: usecase UpsertCommunity failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"id": req.ID})
}

// DeleteResource - Remove a resource document
// @Summary Remove a resource document
// @Tags Indexing
// @Produce json
// @Param id path string true "Resource id"
// @Success 200 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/index/resources/{id} [delete]
func (h *handler) DeleteResource(c *gin.Context) {
	h.delete(c, h.uc.DeleteResource)
}

// DeleteUser - Remove a user document
// @Summary Remove a user document
// @Tags Indexing
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/index/users/{id} [delete]
func (h *handler) DeleteUser(c *gin.Context) {
	h.delete(c, h.uc.DeleteUser)
}

// DeleteCommunity - Remove a community document
// @Summary Remove a community document
// @Tags Indexing
// @Produce json
// @Param id path string true "Community id"
// @Success 200 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/index/communities/{id} [delete]
func (h *handler) DeleteCommunity(c *gin.Context) {
	h.delete(c, h.uc.DeleteCommunity)
}

func (h *handler) delete(c *gin.Context, op func(ctx context.Context, input indexing.DeleteInput) error) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := op(ctx, indexing.DeleteInput{ID: id}); err != nil {
		h.l.Errorf(ctx, "indexing.delivery.http.delete(%s): %v", id, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"id": id})
}
