package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/payflowhq/payflow/pkg/app"
	"github.com/payflowhq/payflow/webapi/instructions"
)

func registerRoutes(f *fiber.App, a *app.App) {
	instructions.Routes(f, a.TransferService, a.Logger)
}
