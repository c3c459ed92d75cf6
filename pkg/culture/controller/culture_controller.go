package controller

import "github.com/labstack/echo/v4"

type CultureController interface {
	ListCultures(c echo.Context) error
	CreateCulture(c echo.Context) error
	UpdateCulture(c echo.Context) error
	DeleteCulture(c echo.Context) error

	ListEntretiens(c echo.Context) error
	CreateEntretien(c echo.Context) error
	DeleteEntretien(c echo.Context) error

	ListRappels(c echo.Context) error
	CreateRappel(c echo.Context) error
	MarkRappelDone(c echo.Context) error
	DeleteRappel(c echo.Context) error
}
