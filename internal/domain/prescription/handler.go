package prescription

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medichat/medichat/internal/platform/speech"
	"github.com/medichat/medichat/pkg/pagination"
)

type Handler struct {
	svc        *Service
	recognizer speech.Recognizer
}

func NewHandler(svc *Service, recognizer speech.Recognizer) *Handler {
	return &Handler{svc: svc, recognizer: recognizer}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/prescriptions", h.List)
	g.GET("/prescriptions/stats", h.Stats)
	g.GET("/prescriptions/:id", h.Get)
	g.POST("/prescriptions", h.Create)
	g.POST("/prescriptions/:id/send", h.Send)
	g.POST("/prescriptions/:id/dictation", h.Dictate)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := h.svc.List(Filters{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	page := pagination.Page(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	p, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c echo.Context) error {
	var p Prescription
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Add(p)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

// Send marks a draft as sent. A miss returns 204 with no body.
func (h *Handler) Send(c echo.Context) error {
	p, ok := h.svc.Send(c.Param("id"))
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, p)
}

// Dictate runs a capture session against the configured recognizer and
// appends the transcript to the prescription's notes. When no speech backend
// exists the endpoint degrades to 503 and the client falls back to manual
// entry.
func (h *Handler) Dictate(c echo.Context) error {
	var phrases []string
	if err := h.recognizer.Start(func(text string) {
		phrases = append(phrases, text)
	}); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	h.recognizer.Stop()

	p, ok := h.svc.AppendNotes(c.Param("id"), strings.Join(phrases, " "))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}
