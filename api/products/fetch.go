package products

import (
	"lumi_noir_server/lib"
	"lumi_noir_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// productView is the storefront representation of a product: the stored
// object paths are resolved into public URLs so clients never need to know
// the bucket layout.
type productView struct {
	tables.Product
	CoverURL     string   `json:"cover_url,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty"`
	PriceDisplay string   `json:"price_display"`
}

func (prm *ProductRoutesManager) toView(p tables.Product) productView {
	view := productView{
		Product:      p,
		PriceDisplay: lib.FormatPrice(p.EffectivePriceCents(), p.Currency),
	}
	if p.CoverImagePath != nil && *p.CoverImagePath != "" {
		view.CoverURL = prm.storageService.PublicURL(*p.CoverImagePath)
	}
	for _, img := range p.Images {
		view.ImageURLs = append(view.ImageURLs, prm.storageService.PublicURL(img.Path))
	}
	return view
}

func (prm *ProductRoutesManager) toViews(products []tables.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, prm.toView(p))
	}
	return views
}

// FetchPublishedProducts handles GET /products, the storefront catalog.
func (prm *ProductRoutesManager) FetchPublishedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := prm.productService.ListPublished(r.Context())
	if err != nil {
		prm.logger.Error("Failed to fetch published products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetch"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": prm.toViews(products),
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// FetchSaleProducts handles GET /products/sale, the published products that
// currently carry a discounted price.
func (prm *ProductRoutesManager) FetchSaleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := prm.productService.ListSale(r.Context())
	if err != nil {
		prm.logger.Error("Failed to fetch sale products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetch"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": prm.toViews(products),
			"count":    len(products),
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id}. Unpublished products are
// indistinguishable from missing ones on the storefront.
func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		prm.logger.Warn("Invalid product ID format", gecho.Field("id", idStr))
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.productService.GetProductByID(r.Context(), id.String())
	if err != nil {
		prm.logger.Error("Failed to fetch product by ID", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetchOne"),
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

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": prm.toView(*product),
		}),
		gecho.Send(),
	)
}
