package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/internal/config"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/pkg/response"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Login godoc
// @Summary Log in with username or email
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid login or password"
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	usr, token, err := h.svc.Login(c.Request.Context(), input)
	if err != nil {
		response.Fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UserID:   usr.UserID,
		Username: usr.Username,
		Role:     string(usr.Role),
	})
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", config.IsProduction, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.User
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	usr, err := h.svc.Me(c.Request.Context(), claims(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ListUsers godoc
// @Summary List staff accounts
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.User
// @Failure 403 {object} response.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context(), claims(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create a staff account
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "Account"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input user.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}
	usr, err := h.svc.Create(c.Request.Context(), claims(c), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// UpdateUser godoc
// @Summary Change email, role or password of an account
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateUserInput true "Changes"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input user.UpdateUserInput
	if !bindJSON(c, &input) {
		return
	}
	usr, err := h.svc.Update(c.Request.Context(), claims(c), id, input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUser godoc
// @Summary Delete a staff account
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.DeletedResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), claims(c), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{Deleted: deleted})
}
