package http

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"campus-lost-found/internal/item"
)

const maxImageBytes = 10 << 20

// processListReq binds the filter/sort query parameters.
func (h *handler) processListReq(c *gin.Context) (item.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return item.ListInput{}, bindError(err)
	}
	return req.toInput()
}

func (h *handler) processRecentReq(c *gin.Context) (recentReq, error) {
	var req recentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processCreateReq binds the multipart report form and reads the optional photo.
func (h *handler) processCreateReq(c *gin.Context) (item.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
		return item.CreateInput{}, bindError(err)
	}
	if err := req.validate(); err != nil {
		return item.CreateInput{}, err
	}

	var image *item.ImageUpload
	if req.Image != nil {
		f, err := req.Image.Open()
		if err != nil {
			return item.CreateInput{}, &item.ValidationError{Field: "image", Reason: err.Error()}
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
		if err != nil {
			return item.CreateInput{}, &item.ValidationError{Field: "image", Reason: err.Error()}
		}
		image = &item.ImageUpload{Filename: req.Image.Filename, Data: data}
	}
	return req.toInput(image), nil
}

// processIDParam returns the :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", &item.ValidationError{Field: "id", Reason: "missing"}
	}
	return id, nil
}

func bindError(err error) error {
	return &item.ValidationError{Field: "request", Reason: err.Error()}
}
