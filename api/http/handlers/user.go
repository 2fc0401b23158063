package handlers

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"github.com/mkuznecov/bookmarkd/api/http/presenter"
	"github.com/mkuznecov/bookmarkd/pkg/account"
	"github.com/mkuznecov/bookmarkd/pkg/security/jwt"
)

type UserHandler struct {
	uc account.UseCase
}

func NewUserHandler(uc account.UseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me returns the authenticated account's public profile.
// @Summary Current account
// @Tags    users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} account.Profile
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	acct, ok := jwt.AccountFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	return presenter.JSON(c, http.StatusOK, acct.Public())
}

type updateMeRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (r updateMeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.FirstName, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Length(1, 200)),
	)
}

// UpdateMe applies a partial profile edit.
// @Summary Edit current account
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body updateMeRequest true "fields to change"
// @Security BearerAuth
// @Success 200 {object} account.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /users/me [patch]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	acct, ok := jwt.AccountFromCtx(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var req updateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := req.Validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	updated, err := h.uc.UpdateProfile(c.Context(), acct.ID, account.ProfileUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, account.ErrCredentialsTaken) {
			return presenter.Error(c, http.StatusForbidden, "credentials taken")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
	}
	return presenter.JSON(c, http.StatusOK, updated.Public())
}
