package controllerImp

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"zbalo/entities"
	adminrepo "zbalo/pkg/admin/repository"
	culturerepo "zbalo/pkg/culture/repository"
	stockrepo "zbalo/pkg/stock/repository"
)

type AdminCtrl struct {
	fiches   adminrepo.FicheRepository
	serres   adminrepo.SerreRepository
	settings adminrepo.SettingRepository
	cultures culturerepo.CultureRepository
	rappels  culturerepo.RappelRepository
	stocks   stockrepo.StockRepository
	ventes   stockrepo.VenteRepository
}

func New(
	fiches adminrepo.FicheRepository,
	serres adminrepo.SerreRepository,
	settings adminrepo.SettingRepository,
	cultures culturerepo.CultureRepository,
	rappels culturerepo.RappelRepository,
	stocks stockrepo.StockRepository,
	ventes stockrepo.VenteRepository,
) *AdminCtrl {
	return &AdminCtrl{fiches: fiches, serres: serres, settings: settings,
		cultures: cultures, rappels: rappels, stocks: stocks, ventes: ventes}
}

type ficheReq struct {
	Nom                   string   `json:"nom"`
	Categorie             string   `json:"categorie"`
	Varietes              []string `json:"varietes"`
	TempMin               float64  `json:"tempMin"`
	TempOpt               float64  `json:"tempOpt"`
	TempMax               float64  `json:"tempMax"`
	DureeGermination      int      `json:"dureeGermination"`
	DureeSemisRepiquage   int      `json:"dureeSemisRepiquage"`
	DureeSemisRecolte     int      `json:"dureeSemisRecolte"`
	DureeRepiquageRecolte int      `json:"dureeRepiquageRecolte"`
	Espacement            float64  `json:"espacement"`
	Profondeur            float64  `json:"profondeur"`
	Unite                 string   `json:"unite"`
	Notes                 string   `json:"notes"`
}

func (req *ficheReq) toEntity(f *entities.Fiche) {
	f.Nom, f.Categorie, f.Varietes = req.Nom, req.Categorie, req.Varietes
	f.TempMin, f.TempOpt, f.TempMax = req.TempMin, req.TempOpt, req.TempMax
	f.DureeGermination, f.DureeSemisRepiquage = req.DureeGermination, req.DureeSemisRepiquage
	f.DureeSemisRecolte, f.DureeRepiquageRecolte = req.DureeSemisRecolte, req.DureeRepiquageRecolte
	f.Espacement, f.Profondeur, f.Unite, f.Notes = req.Espacement, req.Profondeur, req.Unite, req.Notes
}

func (h *AdminCtrl) ListFiches(c echo.Context) error {
	out, err := h.fiches.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *AdminCtrl) CreateFiche(c echo.Context) error {
	var req ficheReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if strings.TrimSpace(req.Nom) == "" { return c.JSON(http.StatusBadRequest, map[string]string{"error": "nom requis"}) }
	var f entities.Fiche
	req.toEntity(&f)
	if err := h.fiches.Upsert(&f); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, f)
}

func (h *AdminCtrl) UpdateFiche(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.fiches.FindByID(uint(id))
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"}) }
	var req ficheReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	req.toEntity(f)
	if err := h.fiches.Update(f); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, f)
}

func (h *AdminCtrl) DeleteFiche(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.fiches.Delete(uint(id)); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ImportFicheURL fetches a page and creates a fiche draft from its text.
func (h *AdminCtrl) ImportFicheURL(c echo.Context) error {
	var body struct{ URL, Nom, Categorie string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	text, title, err := fetchMainText(body.URL, maxImportBytes)
	if err != nil { return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()}) }
	nom := body.Nom
	if nom == "" { nom = title }
	if strings.TrimSpace(nom) == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "page sans titre, préciser nom"})
	}
	f := &entities.Fiche{Nom: strings.TrimSpace(nom), Categorie: body.Categorie, Notes: text, SourceURL: body.URL}
	if err := h.fiches.Upsert(f); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, f)
}

// ── Serres ──

func (h *AdminCtrl) ListSerres(c echo.Context) error {
	out, err := h.serres.Names()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *AdminCtrl) CreateSerre(c echo.Context) error {
	var body struct{ Nom string `json:"nom"` }
	if err := c.Bind(&body); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	nom := strings.TrimSpace(body.Nom)
	if nom == "" { return c.JSON(http.StatusBadRequest, map[string]string{"error": "Nom requis"}) }
	if err := h.serres.Ensure(nom); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, map[string]any{"ok": true, "nom": nom})
}

func (h *AdminCtrl) DeleteSerre(c echo.Context) error {
	if err := h.serres.DeleteByName(c.Param("nom")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ── Settings ──

func (h *AdminCtrl) GetSettings(c echo.Context) error {
	rows, err := h.settings.All()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	out := map[string]any{}
	for _, r := range rows {
		var v any
		if err := json.Unmarshal([]byte(r.Value), &v); err != nil {
			out[r.Key] = r.Value
			continue
		}
		out[r.Key] = v
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminCtrl) PutSetting(c echo.Context) error {
	var body struct{ Value any `json:"value"` }
	if err := c.Bind(&body); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	b, _ := json.Marshal(body.Value)
	if err := h.settings.Put(c.Param("key"), string(b)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ── Dashboard ──

func (h *AdminCtrl) Stats(c echo.Context) error {
	monthStart := time.Now().Format("2006-01") + "-01"
	actives, _ := h.cultures.CountActive()
	pending, _ := h.rappels.CountDueWithin(14)
	fiches, _ := h.fiches.Count()
	ca, _ := h.ventes.RevenueSince(monthStart)
	alertes, _ := h.stocks.CountLow()
	return c.JSON(http.StatusOK, map[string]any{
		"cultures_actives": actives,
		"rappels_pending":  pending,
		"fiches_total":     fiches,
		"ca_mois":          ca,
		"stock_alertes":    alertes,
	})
}
