package orders

import (
	"errors"
	"lumi_noir_server/api/health"
	"lumi_noir_server/handling"
	"lumi_noir_server/lib"
	"lumi_noir_server/services"
	"lumi_noir_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		orm.logger.Warn("Invalid order request body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	// Pricing and availability come from the catalog, never from the client;
	// the service re-reads every product before writing anything.
	order, err := orm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		if errors.Is(err, services.ErrEmptyOrder) || errors.Is(err, services.ErrProductUnavailable) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.order.productUnavailable"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Failed to create order", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.creationFailed"),
			gecho.Send(),
		)
		return
	}

	health.OrdersCreated.Inc()

	// A placed order empties the buyer's cart. Failure here is non-fatal;
	// the order already exists.
	owner := handling.ResolveCartOwner(w, r, orm.cfg.Auth.AccessTokenSecret)
	if err := orm.cartService.Clear(r.Context(), owner); err != nil {
		orm.logger.Warn("Failed to clear cart after checkout",
			gecho.Field("owner", owner),
			gecho.Field("error", err),
		)
	}

	gecho.Success(w,
		gecho.WithMessage("success.order.created"),
		gecho.WithData(map[string]any{
			"orderId": order.OrderID,
		}),
		gecho.Send(),
	)
}
