package handlers

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkuznecov/bookmarkd/api/http/presenter"
	"github.com/mkuznecov/bookmarkd/pkg/bookmark"
	"github.com/mkuznecov/bookmarkd/pkg/security/jwt"
)

type BookmarkHandler struct {
	uc bookmark.UseCase
}

func NewBookmarkHandler(uc bookmark.UseCase) *BookmarkHandler {
	return &BookmarkHandler{uc: uc}
}

type createBookmarkRequest struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

func (r createBookmarkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Link, validation.Required, is.URL),
	)
}

// Create saves a bookmark for the authenticated account.
// @Summary Create bookmark
// @Tags    bookmarks
// @Accept  json
// @Produce json
// @Param   input body createBookmarkRequest true "bookmark payload"
// @Security BearerAuth
// @Success 201 {object} bookmark.Bookmark
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /bookmarks [post]
func (h *BookmarkHandler) Create(c *fiber.Ctx) error {
	acct, ok := jwt.AccountFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var req createBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := req.Validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	b, err := h.uc.Create(c.Context(), acct.ID, bookmark.CreateInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create bookmark")
	}
	return presenter.JSON(c, http.StatusCreated, b)
}

// List returns the authenticated account's bookmarks, newest first.
// @Summary List bookmarks
// @Tags    bookmarks
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} bookmark.Bookmark
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /bookmarks [get]
func (h *BookmarkHandler) List(c *fiber.Ctx) error {
	acct, ok := jwt.AccountFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	limit, offset := parseLimitOffset(c, 50)
	bs, err := h.uc.List(c.Context(), acct.ID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list bookmarks")
	}
	if bs == nil {
		bs = []bookmark.Bookmark{}
	}
	return presenter.JSON(c, http.StatusOK, bs)
}

// GetByID returns one bookmark owned by the authenticated account.
// @Summary Get bookmark
// @Tags    bookmarks
// @Produce json
// @Param   id path string true "bookmark id (UUID)"
// @Security BearerAuth
// @Success 200 {object} bookmark.Bookmark
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /bookmarks/{id} [get]
func (h *BookmarkHandler) GetByID(c *fiber.Ctx) error {
	acct, ok := jwt.AccountFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid bookmark id")
	}
	b, err := h.uc.GetByID(c.Context(), acct.ID, id)
	if err != nil {
		if errors.Is(err, bookmark.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "bookmark not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get bookmark")
	}
	return presenter.JSON(c, http.StatusOK, b)
}

type updateBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

func (r updateBookmarkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 300)),
		validation.Field(&r.Link, is.URL),
	)
}

// Update applies a partial edit to an owned bookmark.
// @Summary Edit bookmark
// @Tags    bookmarks
// @Accept  json
// @Produce json
// @Param   id    path string                true "bookmark id (UUID)"
// @Param   input body updateBookmarkRequest true "fields to change"
// @Security BearerAuth
// @Success 200 {object} bookmark.Bookmark
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /bookmarks/{id} [patch]
func (h *BookmarkHandler) Update(c *fiber.Ctx) error {
	acct, ok := jwt.AccountFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid bookmark id")
	}
	var req updateBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := req.Validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	b, err := h.uc.Update(c.Context(), acct.ID, id, bookmark.Update{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, bookmark.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "bookmark not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update bookmark")
	}
	return presenter.JSON(c, http.StatusOK, b)
}

// Delete removes an owned bookmark.
// @Summary Delete bookmark
// @Tags    bookmarks
// @Produce json
// @Param   id path string true "bookmark id (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c *fiber.Ctx) error {
	acct, ok := jwt.AccountFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid bookmark id")
	}
	if err := h.uc.Delete(c.Context(), acct.ID, id); err != nil {
		if errors.Is(err, bookmark.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "bookmark not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete bookmark")
	}
	return c.SendStatus(http.StatusNoContent)
}
