package controller

import "github.com/labstack/echo/v4"

type AdminController interface {
	ListFiches(c echo.Context) error
	CreateFiche(c echo.Context) error
	UpdateFiche(c echo.Context) error
	DeleteFiche(c echo.Context) error
	ImportFicheURL(c echo.Context) error

	ListSerres(c echo.Context) error
	CreateSerre(c echo.Context) error
	DeleteSerre(c echo.Context) error

	GetSettings(c echo.Context) error
	PutSetting(c echo.Context) error

	Stats(c echo.Context) error
}
