package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/model"
	"github.com/vitaltrack/wellness-platform/internal/repository"
)

// ContentHandler serves the educational content catalog: a public published
// view and an admin-only management surface.
type ContentHandler struct {
	Contents *repository.ContentRepo
}

func NewContentHandler(contents *repository.ContentRepo) *ContentHandler {
	if contents == nil {
		panic("nil repository passed to NewContentHandler")
	}
	return &ContentHandler{Contents: contents}
}

type contentCreateReq struct {
	Title        string  `json:"title"`
	ContentType  string  `json:"contentType"`
	Description  string  `json:"description"`
	ContentURL   *string `json:"contentUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Published    bool    `json:"published"`
}

type contentUpdateReq struct {
	Title        *string `json:"title"`
	ContentType  *string `json:"contentType"`
	Description  *string `json:"description"`
	ContentURL   *string `json:"contentUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Published    *bool   `json:"published"`
}

// GetPublished is the public catalog view.
func (h *ContentHandler) GetPublished(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	contents, err := h.Contents.ListPublished(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, contents)
}

// GetAll lists every content row, drafts included. Admin only.
func (h *ContentHandler) GetAll(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	contents, err := h.Contents.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, contents)
}

// Create adds a content row. Admin only.
func (h *ContentHandler) Create(c echo.Context) error {
	var req contentCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	if !model.ContentTypes[req.ContentType] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid contentType"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	content := model.EducationalContent{
		Title:        req.Title,
		ContentType:  req.ContentType,
		Description:  req.Description,
		ContentURL:   req.ContentURL,
		ThumbnailURL: req.ThumbnailURL,
		Published:    req.Published,
	}
	if err := h.Contents.Create(ctx, &content); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create content failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "content": content})
}

// Update applies a partial update to a content row. Admin only.
func (h *ContentHandler) Update(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req contentUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ContentType != nil && !model.ContentTypes[*req.ContentType] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid contentType"})
	}
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "title cannot be empty"})
		}
		req.Title = &trimmed
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	err := h.Contents.Update(ctx, id, repository.ContentUpdate{
		Title:        req.Title,
		ContentType:  req.ContentType,
		Description:  req.Description,
		ContentURL:   req.ContentURL,
		ThumbnailURL: req.ThumbnailURL,
		Published:    req.Published,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "content not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update content failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Delete removes a content row. Admin only.
func (h *ContentHandler) Delete(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Contents.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "content not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete content failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
