package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"zbalo/entities"
	"zbalo/pkg/culture/repository"
)

type CultureCtrl struct {
	cultures   repository.CultureRepository
	entretiens repository.EntretienRepository
	rappels    repository.RappelRepository
}

func New(c repository.CultureRepository, e repository.EntretienRepository, r repository.RappelRepository) *CultureCtrl {
	return &CultureCtrl{cultures: c, entretiens: e, rappels: r}
}

type cultureReq struct {
	Plante      string  `json:"plante"`
	Variete     string  `json:"variete"`
	Type        string  `json:"type"`
	ModeSemis   string  `json:"modeSemis"`
	Statut      string  `json:"statut"`
	Date        string  `json:"date"`
	DatePrevue  string  `json:"datePrevue"`
	Emplacement string  `json:"emplacement"`
	Surface     float64 `json:"surface"`
	Notes       string  `json:"notes"`
}

func (h *CultureCtrl) ListCultures(c echo.Context) error {
	out, err := h.cultures.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *CultureCtrl) CreateCulture(c echo.Context) error {
	var req cultureReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if req.Statut == "" { req.Statut = "En cours" }
	cu := &entities.Culture{Plante: req.Plante, Variete: req.Variete, Type: req.Type, ModeSemis: req.ModeSemis,
		Statut: req.Statut, Date: req.Date, DatePrevue: req.DatePrevue, Emplacement: req.Emplacement,
		Surface: req.Surface, Notes: req.Notes}
	if err := h.cultures.Create(cu); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, cu)
}

func (h *CultureCtrl) UpdateCulture(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cu, err := h.cultures.FindByID(uint(id))
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"}) }
	var req cultureReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	cu.Plante, cu.Variete, cu.Type, cu.ModeSemis = req.Plante, req.Variete, req.Type, req.ModeSemis
	cu.Statut, cu.Date, cu.DatePrevue = req.Statut, req.Date, req.DatePrevue
	cu.Emplacement, cu.Surface, cu.Notes = req.Emplacement, req.Surface, req.Notes
	if err := h.cultures.Update(cu); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, cu)
}

func (h *CultureCtrl) DeleteCulture(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.cultures.Delete(uint(id)); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ── Entretiens ──

func (h *CultureCtrl) ListEntretiens(c echo.Context) error {
	out, err := h.entretiens.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *CultureCtrl) CreateEntretien(c echo.Context) error {
	var req struct {
		Date        string  `json:"date"`
		Type        string  `json:"type"`
		Zone        string  `json:"zone"`
		Duree       float64 `json:"duree"`
		Description string  `json:"description"`
	}
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	e := &entities.Entretien{Date: req.Date, Type: req.Type, Zone: req.Zone, Duree: req.Duree, Description: req.Description}
	if err := h.entretiens.Create(e); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, e)
}

func (h *CultureCtrl) DeleteEntretien(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.entretiens.Delete(uint(id)); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ── Rappels ──

func (h *CultureCtrl) ListRappels(c echo.Context) error {
	out, err := h.rappels.ListPending()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *CultureCtrl) CreateRappel(c echo.Context) error {
	var req struct {
		Date  string `json:"date"`
		Label string `json:"label"`
		Icon  string `json:"icon"`
	}
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if req.Icon == "" { req.Icon = "📌" }
	r := &entities.Rappel{Date: req.Date, Label: req.Label, Icon: req.Icon}
	if err := h.rappels.Create(r); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, r)
}

func (h *CultureCtrl) MarkRappelDone(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.rappels.MarkDone(uint(id)); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *CultureCtrl) DeleteRappel(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.rappels.Delete(uint(id)); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
