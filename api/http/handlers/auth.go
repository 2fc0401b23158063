package handlers

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"github.com/mkuznecov/bookmarkd/api/http/presenter"
	"github.com/mkuznecov/bookmarkd/pkg/account"
)

type AuthHandler struct {
	uc account.UseCase
}

func NewAuthHandler(uc account.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type signUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r signUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 200)),
	)
}

// SignUp handles user registration.
// @Summary Sign up
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signUpRequest true "registration payload"
// @Success 201 {object} presenter.TokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := req.Validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	token, err := h.uc.SignUp(c.Context(), account.SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, account.ErrCredentialsTaken) {
			return presenter.Error(c, http.StatusForbidden, "credentials taken")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to sign up")
	}
	return presenter.JSON(c, http.StatusCreated, presenter.TokenResponse{AccessToken: token})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r signInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// SignIn handles credential authentication.
// @Summary Sign in
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signInRequest true "credentials"
// @Success 200 {object} presenter.TokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := req.Validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	token, err := h.uc.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password produce the same response.
		if errors.Is(err, account.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusForbidden, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to sign in")
	}
	return presenter.JSON(c, http.StatusOK, presenter.TokenResponse{AccessToken: token})
}
