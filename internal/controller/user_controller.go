package controller

import (
	"anime-reel-be/internal/pkg/serverutils"
	"anime-reel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Delete(":user_id", c.Delete)
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	userId, err := ctx.ParamsInt("user_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user_id must be an integer")
	}

	if err := c.userService.Delete(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user", nil))
}
