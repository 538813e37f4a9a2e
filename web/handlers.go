package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/uservault/uservault/users"
)

type handlers struct {
	svc    *users.Service
	logger *zap.Logger
}

type createRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type updateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) createUser(c echo.Context) error {
	var req createRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, users.Fail("invalid request body"))
	}

	user, err := h.svc.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return h.renderError(c, err, 0)
	}

	return c.JSON(http.StatusCreated, users.OK(user, "User created successfully"))
}

func (h *handlers) readUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.renderError(c, err, 0)
	}

	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.renderError(c, err, id)
	}

	return c.JSON(http.StatusOK, users.OK(user, ""))
}

func (h *handlers) listUsers(c echo.Context) error {
	limit, err := queryInt(c, "limit", users.DefaultLimit, "Limit must be a positive integer")
	if err != nil {
		return h.renderError(c, err, 0)
	}

	offset, err := queryInt(c, "offset", 0, "Offset must not be negative")
	if err != nil {
		return h.renderError(c, err, 0)
	}

	items, page, err := h.svc.List(c.Request().Context(), limit, offset)
	if err != nil {
		return h.renderError(c, err, 0)
	}

	return c.JSON(http.StatusOK, users.OKList(items, page))
}

func (h *handlers) updateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.renderError(c, err, 0)
	}

	var req updateRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, users.Fail("invalid request body"))
	}

	fields := users.UpdateFields{
		Name:  req.Name,
		Email: req.Email,
	}

	user, err := h.svc.Update(c.Request().Context(), id, fields)
	if err != nil {
		return h.renderError(c, err, id)
	}

	return c.JSON(http.StatusOK, users.OK(user, "User updated successfully"))
}

func (h *handlers) deleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.renderError(c, err, 0)
	}

	user, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return h.renderError(c, err, id)
	}

	return c.JSON(http.StatusOK, users.OK(user, fmt.Sprintf("User %d deleted successfully", id)))
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, users.InvalidInput("User ID must be a positive integer")
	}

	return id, nil
}

func queryInt(c echo.Context, name string, fallback int, msg string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, users.InvalidInput(msg)
	}

	return val, nil
}

func (h *handlers) renderError(c echo.Context, err error, id int64) error {
	if h.logger != nil {
		h.logger.Warn("request failed",
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	switch {
	case errors.Is(err, users.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, users.Fail(err.Error()))
	case errors.Is(err, users.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, users.Fail("Email already exists"))
	case errors.Is(err, users.ErrNotFound):
		return c.JSON(http.StatusNotFound, users.Fail(fmt.Sprintf("User with ID %d not found", id)))
	default:
		return c.JSON(http.StatusInternalServerError, users.Fail("database error: "+err.Error()))
	}
}
