package medicine

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medichat/medichat/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/medicines", h.List)
	g.GET("/medicines/stats", h.Stats)
	g.GET("/medicines/expiring", h.ExpiringSoon)
	g.GET("/medicines/:id", h.Get)
	g.POST("/medicines", h.Create)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := h.svc.List(Filters{
		Search: c.QueryParam("search"),
		Type:   c.QueryParam("type"),
		Stock:  c.QueryParam("stock"),
	})
	page := pagination.Page(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	m, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "medicine not found")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) Create(c echo.Context) error {
	var m Medicine
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Add(m)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

func (h *Handler) ExpiringSoon(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ExpiringSoon(time.Now()))
}
