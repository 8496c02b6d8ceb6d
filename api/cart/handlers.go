package cart

import (
	"net/http"

	cartstore "lumi_noir_server/cart"
	"lumi_noir_server/handling"
	"lumi_noir_server/lib"
	"lumi_noir_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// cartItemView extends a cart line with a resolved public image URL.
type cartItemView struct {
	cartstore.Item
	ImageURL string `json:"imageUrl,omitempty"`
}

func (crm *CartRoutesManager) cartPayload(items []cartstore.Item) map[string]any {
	views := make([]cartItemView, 0, len(items))
	var subtotal int64
	var count int
	for _, item := range items {
		view := cartItemView{Item: item}
		if item.ImagePath != "" {
			view.ImageURL = crm.storageService.PublicURL(item.ImagePath)
		}
		views = append(views, view)
		subtotal += item.PriceCents * int64(item.Quantity)
		count += item.Quantity
	}
	return map[string]any{
		"items":          views,
		"count":          count,
		"subtotal_cents": subtotal,
	}
}

func (crm *CartRoutesManager) owner(w http.ResponseWriter, r *http.Request) string {
	return handling.ResolveCartOwner(w, r, crm.cfg.Auth.AccessTokenSecret)
}

func (crm *CartRoutesManager) FetchCart(w http.ResponseWriter, r *http.Request) {
	owner := crm.owner(w, r)

	items, err := crm.cartService.Items(r.Context(), owner)
	if err != nil {
		crm.logger.Error("Failed to fetch cart", gecho.Field("owner", owner), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToFetch"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(crm.cartPayload(items)),
		gecho.Send(),
	)
}

// AddItem handles POST /cart/items. The title, price and image are
// snapshotted from the catalog here; the client only names a product.
func (crm *CartRoutesManager) AddItem(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AddCartItemRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	productID, err := uuid.Parse(body.ProductID)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	product, err := crm.productService.GetProductByID(r.Context(), productID.String())
	if err != nil {
		crm.logger.Error("Failed to fetch product for cart", gecho.Field("id", productID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToAdd"),
			gecho.Send(),
		)
		return
	}
	if product == nil || !product.IsPublished {
		gecho.NotFound(w,
			gecho.WithMessage("error.products.notFound"),
			gecho.Send(),
		)
		return
	}

	quantity := body.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item := cartstore.Item{
		ProductID:  product.ID,
		Title:      product.Title,
		PriceCents: product.EffectivePriceCents(),
		Currency:   product.Currency,
		Quantity:   quantity,
	}
	if product.CoverImagePath != nil {
		item.ImagePath = *product.CoverImagePath
	}

	owner := crm.owner(w, r)
	items, err := crm.cartService.Add(r.Context(), owner, item)
	if err != nil {
		crm.logger.Error("Failed to add cart item", gecho.Field("owner", owner), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToAdd"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cart.itemAdded"),
		gecho.WithData(crm.cartPayload(items)),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if _, err := uuid.Parse(productID); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateCartItemRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	owner := crm.owner(w, r)
	items, err := crm.cartService.SetQuantity(r.Context(), owner, productID, body.Quantity)
	if err != nil {
		crm.logger.Error("Failed to update cart item", gecho.Field("owner", owner), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToUpdate"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(crm.cartPayload(items)),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if _, err := uuid.Parse(productID); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	owner := crm.owner(w, r)
	items, err := crm.cartService.Remove(r.Context(), owner, productID)
	if err != nil {
		crm.logger.Error("Failed to remove cart item", gecho.Field("owner", owner), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToUpdate"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(crm.cartPayload(items)),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) ClearCart(w http.ResponseWriter, r *http.Request) {
	owner := crm.owner(w, r)

	if err := crm.cartService.Clear(r.Context(), owner); err != nil {
		crm.logger.Error("Failed to clear cart", gecho.Field("owner", owner), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToClear"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cart.cleared"),
		gecho.WithData(crm.cartPayload(nil)),
		gecho.Send(),
	)
}
