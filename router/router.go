package router

import (
	"github.com/labstack/echo/v4"

	adminctrl "zbalo/pkg/admin/controller"
	cultctrl "zbalo/pkg/culture/controller"
	stockctrl "zbalo/pkg/stock/controller"
)

func New(
	e *echo.Echo,
	cultureCtrl cultctrl.CultureController,
	stockCtrl stockctrl.StockController,
	adminCtrl adminctrl.AdminController,
	comptaCtrl interface {
		ListDepenses(echo.Context) error
		CreateDepense(echo.Context) error
		UpdateDepense(echo.Context) error
		DeleteDepense(echo.Context) error
		ScanTicket(echo.Context) error
		Export(echo.Context) error
	},
	chat func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	api := e.Group("/api")

	e.GET("/health", healthCtrl.Health)

	api.POST("/chat", chat)

	api.GET("/cultures", cultureCtrl.ListCultures)
	api.POST("/cultures", cultureCtrl.CreateCulture)
	api.PUT("/cultures/:id", cultureCtrl.UpdateCulture)
	api.DELETE("/cultures/:id", cultureCtrl.DeleteCulture)

	api.GET("/entretiens", cultureCtrl.ListEntretiens)
	api.POST("/entretiens", cultureCtrl.CreateEntretien)
	api.DELETE("/entretiens/:id", cultureCtrl.DeleteEntretien)

	api.GET("/rappels", cultureCtrl.ListRappels)
	api.POST("/rappels", cultureCtrl.CreateRappel)
	api.POST("/rappels/:id/done", cultureCtrl.MarkRappelDone)
	api.DELETE("/rappels/:id", cultureCtrl.DeleteRappel)

	api.GET("/stocks", stockCtrl.ListStocks)
	api.POST("/stocks", stockCtrl.CreateStock)
	api.PUT("/stocks/:id", stockCtrl.UpdateStock)
	api.DELETE("/stocks/:id", stockCtrl.DeleteStock)

	api.GET("/ventes", stockCtrl.ListVentes)
	api.POST("/ventes", stockCtrl.CreateVente)
	api.DELETE("/ventes/:id", stockCtrl.DeleteVente)

	api.GET("/depenses", comptaCtrl.ListDepenses)
	api.POST("/depenses", comptaCtrl.CreateDepense)
	api.PUT("/depenses/:id", comptaCtrl.UpdateDepense)
	api.DELETE("/depenses/:id", comptaCtrl.DeleteDepense)
	api.POST("/scan-ticket", comptaCtrl.ScanTicket)
	api.GET("/compta/export", comptaCtrl.Export)

	api.GET("/fiches", adminCtrl.ListFiches)
	api.POST("/fiches", adminCtrl.CreateFiche)
	api.POST("/fiches/import-url", adminCtrl.ImportFicheURL)
	api.PUT("/fiches/:id", adminCtrl.UpdateFiche)
	api.DELETE("/fiches/:id", adminCtrl.DeleteFiche)

	api.GET("/serres", adminCtrl.ListSerres)
	api.POST("/serres", adminCtrl.CreateSerre)
	api.DELETE("/serres/:nom", adminCtrl.DeleteSerre)

	api.GET("/settings", adminCtrl.GetSettings)
	api.PUT("/settings/:key", adminCtrl.PutSetting)

	api.GET("/stats", adminCtrl.Stats)

	return e
}
