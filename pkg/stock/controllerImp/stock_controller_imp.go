package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"zbalo/entities"
	"zbalo/pkg/stock/repository"
)

type StockCtrl struct {
	stocks repository.StockRepository
	ventes repository.VenteRepository
}

func New(s repository.StockRepository, v repository.VenteRepository) *StockCtrl {
	return &StockCtrl{stocks: s, ventes: v}
}

type stockReq struct {
	Nom         string   `json:"nom"`
	Qte         float64  `json:"qte"`
	QteMax      *float64 `json:"qteMax"`
	Unite       string   `json:"unite"`
	Prix        float64  `json:"prix"`
	Fournisseur string   `json:"fournisseur"`
}

func (h *StockCtrl) ListStocks(c echo.Context) error {
	out, err := h.stocks.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *StockCtrl) CreateStock(c echo.Context) error {
	var req stockReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	qteMax := 100.0
	if req.QteMax != nil { qteMax = *req.QteMax }
	if req.Unite == "" { req.Unite = "kg" }
	s := &entities.Stock{Nom: req.Nom, Qte: req.Qte, QteMax: qteMax, Unite: req.Unite, Prix: req.Prix, Fournisseur: req.Fournisseur}
	if err := h.stocks.Create(s); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, s)
}

func (h *StockCtrl) UpdateStock(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.stocks.FindByID(uint(id))
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"}) }
	var req stockReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	s.Nom, s.Qte, s.Unite, s.Prix, s.Fournisseur = req.Nom, req.Qte, req.Unite, req.Prix, req.Fournisseur
	if req.QteMax != nil { s.QteMax = *req.QteMax }
	if err := h.stocks.Update(s); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, s)
}

func (h *StockCtrl) DeleteStock(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.stocks.Delete(uint(id)); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ── Ventes ──

func (h *StockCtrl) ListVentes(c echo.Context) error {
	out, err := h.ventes.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *StockCtrl) CreateVente(c echo.Context) error {
	var req struct {
		Date     string  `json:"date"`
		Produit  string  `json:"produit"`
		Qte      float64 `json:"qte"`
		PrixUnit float64 `json:"prixUnit"`
		Unite    string  `json:"unite"`
		Client   string  `json:"client"`
	}
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	v := &entities.Vente{Date: req.Date, Produit: req.Produit, Qte: req.Qte, PrixUnit: req.PrixUnit, Unite: req.Unite, Client: req.Client}
	if err := h.ventes.Create(v); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, v)
}

func (h *StockCtrl) DeleteVente(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.ventes.Delete(uint(id)); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
