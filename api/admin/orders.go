package admin

import (
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
)

// ListOrders handles GET /admin/orders, newest first.
func (arm *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	page := 1
	pageSize := 25

	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	result, err := arm.orderService.ListOrders(r.Context(), page, pageSize)
	if err != nil {
		arm.logger.Error("Failed to list orders", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.failedToFetch"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

// GetOrderDetails handles GET /admin/orders/{id} including line items.
func (arm *AdminRoutesManager) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidOrderId"),
			gecho.Send(),
		)
		return
	}

	order, err := arm.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		arm.logger.Error("Failed to fetch order", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.failedToFetch"),
			gecho.Send(),
		)
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
