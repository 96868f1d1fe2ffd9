package controller

import (
	"anime-reel-be/internal/pkg/serverutils"
	"anime-reel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	SearchAnime(ctx *fiber.Ctx) error
	SearchGenres(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("anime", c.SearchAnime)
	h.Get("genres", c.SearchGenres)
}

func (c *catalogController) SearchAnime(ctx *fiber.Ctx) error {
	query := ctx.Query("q")

	res, err := c.catalogService.SearchAnime(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search anime", res))
}

func (c *catalogController) SearchGenres(ctx *fiber.Ctx) error {
	query := ctx.Query("q")

	res, err := c.catalogService.SearchGenres(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search genres", res))
}
