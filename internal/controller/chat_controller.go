package controller

import (
	"errors"
	"strings"

	"ticker-chat-be/internal/dto"
	"ticker-chat-be/internal/pkg/apperrors"
	"ticker-chat-be/internal/pkg/serverutils"
	"ticker-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Post("/chat", serverutils.APIKeyMiddleware, c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	apiKey := ctx.Locals(serverutils.LocalsAPIKey).(string)

	if len(ctx.Body()) == 0 {
		return apperrors.NewInput("Request body is required", errors.New("no request body found"))
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewInput("Invalid JSON", errors.New("could not parse request body"))
	}

	if strings.TrimSpace(req.Question) == "" {
		return apperrors.NewInput("Question is required", errors.New("no question provided in request"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), apiKey, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{Status: "ok"})
}
