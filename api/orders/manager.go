package orders

import (
	"lumi_noir_server/services"
	"lumi_noir_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	orderService *services.OrderService
	cartService  *services.CartService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	orderService *services.OrderService,
	cartService *services.CartService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		cfg:          cfg,
		orderService: orderService,
		cartService:  cartService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/orders", orm.CreateOrder)
	r.Get("/orders/{id}", orm.FetchOrderByID)
}
