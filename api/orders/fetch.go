package orders

import (
	"lumi_noir_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchOrderByID handles GET /orders/{id}, the confirmation view shown
// right after checkout. The id is an unguessable UUID, which is the only
// access control an anonymous order needs.
func (orm *OrderRoutesManager) FetchOrderByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidOrderId"),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		handling.HandleError(err, "error.order.failedToFetch", orm.logger, w)
		return
	}

	if order == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.order.notFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"order": order,
		}),
		gecho.Send(),
	)
}
