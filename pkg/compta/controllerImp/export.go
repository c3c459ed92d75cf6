package controllerImp

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

// Export writes ventes and dépenses into one xlsx workbook.
func (h *ComptaCtrl) Export(c echo.Context) error {
	ventes, err := h.ventes.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	depenses, err := h.depenses.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }

	x := excelize.NewFile()
	defer x.Close()

	const ventesSheet = "Ventes"
	x.SetSheetName("Sheet1", ventesSheet)
	headers := []any{"Date", "Produit", "Qté", "Prix unitaire", "Unité", "Client", "Total"}
	_ = x.SetSheetRow(ventesSheet, "A1", &headers)
	for i, v := range ventes {
		row := []any{v.Date, v.Produit, v.Qte, v.PrixUnit, v.Unite, v.Client, v.Qte * v.PrixUnit}
		_ = x.SetSheetRow(ventesSheet, fmt.Sprintf("A%d", i+2), &row)
	}

	const depSheet = "Dépenses"
	if _, err := x.NewSheet(depSheet); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	depHeaders := []any{"Date", "Fournisseur", "Catégorie", "Total", "Articles", "Notes"}
	_ = x.SetSheetRow(depSheet, "A1", &depHeaders)
	for i, d := range depenses {
		row := []any{d.Date, d.Fournisseur, d.Categorie, d.Total, strings.Join(d.Articles, " ; "), d.Notes}
		_ = x.SetSheetRow(depSheet, fmt.Sprintf("A%d", i+2), &row)
	}

	buf, err := x.WriteToBuffer()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }

	name := fmt.Sprintf("compta-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
