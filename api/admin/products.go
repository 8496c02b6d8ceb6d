package admin

import (
	"context"
	"errors"
	"lumi_noir_server/handling"
	"lumi_noir_server/lib"
	"lumi_noir_server/services"
	"lumi_noir_server/structs"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadMemory bounds how much of a multipart form is held in memory;
// larger files spill to temp storage.
const maxUploadMemory = 32 << 20

func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// ListAllProducts handles GET /admin/products. Unlike the storefront list
// this includes unpublished products.
func (arm *AdminRoutesManager) ListAllProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}
	opts.IncludeImages = true

	result, err := arm.productService.ListProducts(r.Context(), opts)
	if err != nil {
		arm.logger.Error("Failed to list products for admin", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetch"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
			"meta": map[string]any{
				"query_time_ms": result.QueryTime.Milliseconds(),
				"count":         len(result.Products),
			},
		}),
		gecho.Send(),
	)
}

// CreateProduct handles POST /admin/products. The form is multipart: product
// fields plus zero or more "images" files, uploaded to storage and recorded
// as image rows. If any upload fails, the product row and the objects
// written so far are rolled back so no half-created product is left behind.
func (arm *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidForm"),
			gecho.Send(),
		)
		return
	}

	req := &structs.CreateProductRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Currency:    r.FormValue("currency"),
		IsPublished: r.FormValue("is_published") == "true",
	}
	if salePrice := r.FormValue("sale_price"); salePrice != "" {
		req.SalePrice = &salePrice
	}

	if err := lib.ValidateStruct(req); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidForm"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := arm.productService.CreateProduct(r.Context(), req)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidPrice) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.products.invalidPrice"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to create product", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToCreate"),
			gecho.Send(),
		)
		return
	}

	var uploaded []string
	files := r.MultipartForm.File["images"]
	for i, header := range files {
		file, err := header.Open()
		if err != nil {
			arm.rollbackCreate(r.Context(), product.ID, uploaded)
			gecho.BadRequest(w,
				gecho.WithMessage("error.products.invalidImage"),
				gecho.Send(),
			)
			return
		}

		objectPath := services.ProductImagePath(product.ID, header.Filename, time.Now())
		err = arm.storageService.Upload(r.Context(), objectPath, header.Header.Get("Content-Type"), file)
		file.Close()
		if err != nil {
			arm.logger.Error("Failed to upload product image",
				gecho.Field("product_id", product.ID),
				gecho.Field("error", err),
			)
			arm.rollbackCreate(r.Context(), product.ID, uploaded)
			gecho.InternalServerError(w,
				gecho.WithMessage("error.products.imageUploadFailed"),
				gecho.Send(),
			)
			return
		}
		uploaded = append(uploaded, objectPath)

		if _, err := arm.productService.AddImage(r.Context(), product.ID, objectPath, i); err != nil {
			arm.logger.Error("Failed to record product image",
				gecho.Field("product_id", product.ID),
				gecho.Field("error", err),
			)
			arm.rollbackCreate(r.Context(), product.ID, uploaded)
			gecho.InternalServerError(w,
				gecho.WithMessage("error.products.imageUploadFailed"),
				gecho.Send(),
			)
			return
		}
	}

	created, err := arm.productService.GetProductByID(r.Context(), product.ID.String())
	if err != nil || created == nil {
		created = product
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.created"),
		gecho.WithData(created),
		gecho.Send(),
	)
}

// rollbackCreate undoes a partially created product: the row, its image rows
// and any objects already uploaded.
func (arm *AdminRoutesManager) rollbackCreate(ctx context.Context, productID uuid.UUID, uploaded []string) {
	if _, err := arm.productService.DeleteProduct(ctx, productID); err != nil {
		arm.logger.Error("Failed to roll back product after upload failure",
			gecho.Field("product_id", productID),
			gecho.Field("error", err),
		)
	}
	for _, objectPath := range uploaded {
		if err := arm.storageService.Remove(ctx, objectPath); err != nil {
			arm.logger.Warn("Failed to remove uploaded object during rollback",
				gecho.Field("path", objectPath),
				gecho.Field("error", err),
			)
		}
	}
}

func (arm *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidForm"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := arm.productService.UpdateProduct(r.Context(), id, body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrInvalidPrice):
			gecho.BadRequest(w,
				gecho.WithMessage("error.products.invalidPrice"),
				gecho.Send(),
			)
		case lib.IsNotFound(err):
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
		default:
			arm.logger.Error("Failed to update product", gecho.Field("product_id", id), gecho.Field("error", err))
			gecho.InternalServerError(w,
				gecho.WithMessage("error.products.failedToUpdate"),
				gecho.Send(),
			)
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

// DeleteProduct removes the product row and its image rows in one
// transaction, then best-effort deletes the stored objects.
func (arm *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	paths, err := arm.productService.DeleteProduct(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to delete product", gecho.Field("product_id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToDelete"),
			gecho.Send(),
		)
		return
	}

	for _, objectPath := range paths {
		if err := arm.storageService.Remove(r.Context(), objectPath); err != nil {
			arm.logger.Warn("Failed to remove product image object",
				gecho.Field("path", objectPath),
				gecho.Field("error", err),
			)
		}
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.deleted"),
		gecho.Send(),
	)
}
