package controllerImp

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"zbalo/entities"
	"zbalo/pkg/ai"
	"zbalo/pkg/compta/repository"
	stockrepo "zbalo/pkg/stock/repository"
)

type ComptaCtrl struct {
	depenses repository.DepenseRepository
	ventes   stockrepo.VenteRepository
	llm      ai.Client
}

func New(d repository.DepenseRepository, v stockrepo.VenteRepository, llm ai.Client) *ComptaCtrl {
	return &ComptaCtrl{depenses: d, ventes: v, llm: llm}
}

type depenseReq struct {
	Date        string   `json:"date"`
	Fournisseur string   `json:"fournisseur"`
	Categorie   string   `json:"categorie"`
	Total       float64  `json:"total"`
	Articles    []string `json:"articles"`
	Notes       string   `json:"notes"`
	ScanAI      bool     `json:"scanAI"`
}

func (h *ComptaCtrl) ListDepenses(c echo.Context) error {
	out, err := h.depenses.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *ComptaCtrl) CreateDepense(c echo.Context) error {
	var req depenseReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if req.Articles == nil { req.Articles = []string{} }
	d := &entities.Depense{Date: req.Date, Fournisseur: req.Fournisseur, Categorie: req.Categorie,
		Total: req.Total, Articles: req.Articles, Notes: req.Notes, ScanAI: req.ScanAI}
	if err := h.depenses.Create(d); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, d)
}

func (h *ComptaCtrl) UpdateDepense(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := h.depenses.FindByID(uint(id))
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"}) }
	var req depenseReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if req.Articles == nil { req.Articles = []string{} }
	d.Date, d.Fournisseur, d.Categorie = req.Date, req.Fournisseur, req.Categorie
	d.Total, d.Articles, d.Notes = req.Total, req.Articles, req.Notes
	if err := h.depenses.Update(d); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, d)
}

func (h *ComptaCtrl) DeleteDepense(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.depenses.Delete(uint(id)); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ── Scan ticket ──

const scanPrompt = `Analyse ce ticket de caisse ou cette facture pour un maraîcher bio.
Retourne UNIQUEMENT un JSON valide avec ces champs :
{
  "date": "YYYY-MM-DD",
  "fournisseur": "nom du magasin ou fournisseur",
  "categorie": "une parmi : Graines & semences | Terreau & substrat | Matériel & outillage | Engrais & traitement | Élevage & animaux | Énergie & eau | Autre",
  "total": montant_numerique,
  "articles": ["Article 1 — prix€", "Article 2 — prix€"],
  "notes": "info utile ou null"
}
Si une info est illisible mets null. UNIQUEMENT le JSON, rien d'autre.`

// ScanTicket sends a receipt image to the completion service and returns the
// extracted fields. The reply is normalized once (markdown fences stripped);
// an unparseable reply is a 422 carrying the raw text, not a server error.
func (h *ComptaCtrl) ScanTicket(c echo.Context) error {
	var body struct {
		Image     string `json:"image"` // base64
		MediaType string `json:"mediaType"`
	}
	if err := c.Bind(&body); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if body.Image == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Image manquante"})
	}
	if body.MediaType == "" { body.MediaType = "image/jpeg" }

	text, err := h.llm.ScanImage(body.MediaType, body.Image, scanPrompt)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }

	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var extracted map[string]any
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "Impossible de lire la réponse IA", "raw": text})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "data": extracted})
}
