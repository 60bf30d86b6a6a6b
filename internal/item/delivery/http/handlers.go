package http

import (
	"github.com/gin-gonic/gin"

	"campus-lost-found/pkg/response"
)

// List godoc
// @Summary     List items
// @Description Filters and sorts the items of the backend. When the backend is unreachable the list is empty and message explains why.
// @Tags        Items
// @Produce     json
// @Param       category query []string false "Category filter (repeatable, OR)"
// @Param       color    query []string false "Colour filter (repeatable, OR)"
// @Param       type     query string   false "all | found | lost (ACHADO/PERDIDO accepted)"
// @Param       sort     query string   false "createdAt (default) | date"
// @Param       order    query string   false "desc (default) | asc"
// @Param       cached   query bool     false "Answer from the last fetched snapshot"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Recent godoc
// @Summary     Recent found items
// @Description Newest found items, for the home page.
// @Tags        Items
// @Produce     json
// @Param       limit query int false "How many items (default 4)"
// @Success     200 {object} recentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/items/recent [GET]
func (h *handler) Recent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecentReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Recent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Recent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRecentResp(output))
}

// Detail godoc
// @Summary     Item detail
// @Description One item with its claim state and status timeline.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Create godoc
// @Summary     Report an item
// @Description Reports a lost (default) or found item. The photo, if any, is downscaled and sent as JPEG.
// @Tags        Items
// @Accept      multipart/form-data
// @Produce     json
// @Param       name        formData string true  "Item name"
// @Param       category    formData string false "Category (default Outros)"
// @Param       color       formData string false "Colour (default Preto)"
// @Param       location    formData string false "Where it was lost/found"
// @Param       description formData string false "Description"
// @Param       type        formData string false "lost (default) | found"
// @Param       date        formData string false "Event date, ISO-8601 (default now)"
// @Param       image       formData file   false "JPEG or PNG photo"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Claim godoc
// @Summary     Claim an item
// @Description For a found item, claims ownership (status becomes analyzing). For a lost item, reports having it (type becomes found).
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} claimResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already claimed or claim in progress"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Backend unavailable or did not confirm"
// @Router      /api/v1/items/{id}/claim [POST]
func (h *handler) Claim(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Claim(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClaimResp(output))
}

// Delete godoc
// @Summary     Delete an item
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Catalog godoc
// @Summary     Filter vocabularies
// @Description Categories and colour palette offered by the filter UI.
// @Tags        Items
// @Produce     json
// @Success     200 {object} catalogResp
// @Router      /api/v1/catalog [GET]
func (h *handler) Catalog(c *gin.Context) {
	response.OK(c, h.newCatalogResp(h.uc.Catalog(c.Request.Context())))
}
