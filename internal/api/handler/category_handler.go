package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-api/internal/core/domain"
	"github.com/fintrack/finance-api/internal/core/ports"
)

// CategoryHandler handles category CRUD routes.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Kind string `json:"kind" validate:"required,oneof=income expense"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Kind: string(c.Kind)}
}

func toCategoryResponses(categories []domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out
}

// List handles GET /category.
//
// @Summary      List own categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  categoryResponse
// @Router       /category [get]
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	categories, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponses(categories))
}

// ListByKind handles GET /category/type/:type (1 = income, 0 = expense).
//
// @Summary      List own categories filtered by kind
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        type  path      int  true  "Kind (1 income, 0 expense)"
// @Success      200   {array}   categoryResponse
// @Failure      400   {object}  map[string]string
// @Router       /category/type/{type} [get]
func (h *CategoryHandler) ListByKind(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	wire, err := strconv.Atoi(c.Param("type"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category type")
	}
	kind, ok := domain.KindFromWire(wire)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category type")
	}

	categories, err := h.service.ListByKind(c.Request().Context(), userID, kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponses(categories))
}

// Create handles POST /category. The owner is always the authenticated
// identity; an owner supplied in the body is ignored.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  map[string]string
// @Router       /category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Kind:   domain.CategoryKind(req.Kind),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// Get handles GET /category/:id.
//
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  map[string]string
// @Router       /category/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.service.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Update handles PUT /category/:id.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Category ID"
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  map[string]string
// @Router       /category/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Update(c.Request().Context(), ports.UpdateCategoryInput{
		UserID:     userID,
		CategoryID: id,
		Name:       req.Name,
		Kind:       domain.CategoryKind(req.Kind),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Delete handles DELETE /category/:id. Dependent records cascade.
//
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  int  true  "Category ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /category/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
