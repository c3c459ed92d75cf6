package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"zbalo/config"
	"zbalo/database"
	"zbalo/router"

	"zbalo/pkg/ai"

	adminCtrlImp "zbalo/pkg/admin/controllerImp"
	adminRepoImp "zbalo/pkg/admin/repositoryImp"

	cultCtrlImp "zbalo/pkg/culture/controllerImp"
	cultRepoImp "zbalo/pkg/culture/repositoryImp"

	stockCtrlImp "zbalo/pkg/stock/controllerImp"
	stockRepoImp "zbalo/pkg/stock/repositoryImp"

	comptaCtrlImp "zbalo/pkg/compta/controllerImp"
	comptaRepoImp "zbalo/pkg/compta/repositoryImp"

	asstCtrlImp "zbalo/pkg/assistant/controllerImp"
	asstSvcImp "zbalo/pkg/assistant/serviceImp"

	healthCtrlImp "zbalo/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + seed
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// Static frontend
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/index.html"); err != nil {
		log.Printf("WARN: static/index.html not found: %v", err)
	}

	// 4) LLM (mock fallback)
	var llm ai.Client
	if cfg.AIAPIKey != "" {
		llm = ai.NewAnthropic(cfg.AIEndpoint, cfg.AIAPIKey, cfg.AIModel)
	} else {
		log.Printf("WARN: no API key, assistant runs in mock mode")
		llm = ai.NewMock()
	}

	// 5) Repos
	cultRepo := cultRepoImp.New(db)
	entrRepo := cultRepoImp.NewEntretien(db)
	rappRepo := cultRepoImp.NewRappel(db)
	stockRepo := stockRepoImp.New(db)
	venteRepo := stockRepoImp.NewVente(db)
	depRepo := comptaRepoImp.New(db)
	ficheRepo := adminRepoImp.New(db)
	serreRepo := adminRepoImp.NewSerre(db)
	settingRepo := adminRepoImp.NewSetting(db)

	// 6) Controllers
	cultCtrl := cultCtrlImp.New(cultRepo, entrRepo, rappRepo)
	stockCtrl := stockCtrlImp.New(stockRepo, venteRepo)
	comptaCtrl := comptaCtrlImp.New(depRepo, venteRepo, llm)
	adminCtrl := adminCtrlImp.New(ficheRepo, serreRepo, settingRepo, cultRepo, rappRepo, stockRepo, venteRepo)

	// Assistant pipeline
	asstSvc := asstSvcImp.New(llm, cultRepo, entrRepo, rappRepo, stockRepo, serreRepo)
	asstCtrl := asstCtrlImp.New(asstSvc)

	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, cultCtrl, stockCtrl, adminCtrl, comptaCtrl, asstCtrl.Chat, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
