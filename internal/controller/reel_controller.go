package controller

import (
	"anime-reel-be/internal/dto"
	"anime-reel-be/internal/pkg/serverutils"
	"anime-reel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReelController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Rescore(ctx *fiber.Ctx) error
	Suggest(ctx *fiber.Ctx) error
}

type reelController struct {
	reelService       service.IReelService
	suggestionService service.ISuggestionService
}

func NewReelController(reelService service.IReelService, suggestionService service.ISuggestionService) IReelController {
	return &reelController{
		reelService:       reelService,
		suggestionService: suggestionService,
	}
}

func (c *reelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reel/v1")
	h.Post("generate", c.Generate)
	h.Post("rescore", c.Rescore)
	h.Post("suggest", c.Suggest)
}

func (c *reelController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateReelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.reelService.GenerateReel(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// The reel client consumes this payload directly, so it is not wrapped
	// in the response envelope.
	return ctx.JSON(res)
}

func (c *reelController) Rescore(ctx *fiber.Ctx) error {
	var req dto.RescoreRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.reelService.Rescore(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// Bare id to score map, patched into the on-screen reel by the client.
	return ctx.JSON(res)
}

func (c *reelController) Suggest(ctx *fiber.Ctx) error {
	var req dto.SuggestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.suggestionService.Suggest(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success suggest anime", res))
}
