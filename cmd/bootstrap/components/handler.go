package components

import (
	"parkops/internal/handler"
	"parkops/internal/handler/api"
	"parkops/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAssignmentHandler,
		api.NewLotHandler,
		api.NewProductHandler,
		api.NewSaleHandler,
		api.NewVehicleHandler,
		api.NewPrizeHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	assignment *api.AssignmentHandler,
	lot *api.LotHandler,
	product *api.ProductHandler,
	sale *api.SaleHandler,
	vehicle *api.VehicleHandler,
	prize *api.PrizeHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Assignment: assignment,
		Lot:        lot,
		Product:    product,
		Sale:       sale,
		Vehicle:    vehicle,
		Prize:      prize,
	}
}
