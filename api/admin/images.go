package admin

import (
	"lumi_noir_server/lib"
	"lumi_noir_server/services"
	"lumi_noir_server/structs"
	"net/http"
	"strconv"
	"time"

	"github.com/MonkyMars/gecho"
)

// AddProductImage handles POST /admin/products/{id}/images with a single
// multipart "image" file.
func (arm *AdminRoutesManager) AddProductImage(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	product, err := arm.productService.GetProductByID(r.Context(), productID.String())
	if err != nil {
		arm.logger.Error("Failed to fetch product for image upload", gecho.Field("product_id", productID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.imageUploadFailed"),
			gecho.Send(),
		)
		return
	}
	if product == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.products.notFound"),
			gecho.Send(),
		)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidForm"),
			gecho.Send(),
		)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidImage"),
			gecho.Send(),
		)
		return
	}
	defer file.Close()

	sortOrder := len(product.Images)
	if v := r.FormValue("sort_order"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			sortOrder = parsed
		}
	}

	objectPath := services.ProductImagePath(productID, header.Filename, time.Now())
	if err := arm.storageService.Upload(r.Context(), objectPath, header.Header.Get("Content-Type"), file); err != nil {
		arm.logger.Error("Failed to upload image", gecho.Field("product_id", productID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.imageUploadFailed"),
			gecho.Send(),
		)
		return
	}

	image, err := arm.productService.AddImage(r.Context(), productID, objectPath, sortOrder)
	if err != nil {
		// The object exists but the row does not; remove the object so
		// storage stays consistent with the database.
		if rmErr := arm.storageService.Remove(r.Context(), objectPath); rmErr != nil {
			arm.logger.Warn("Failed to remove orphaned object", gecho.Field("path", objectPath), gecho.Field("error", rmErr))
		}
		arm.logger.Error("Failed to record image", gecho.Field("product_id", productID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.imageUploadFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.imageAdded"),
		gecho.WithData(image),
		gecho.Send(),
	)
}

// RemoveProductImage handles DELETE /admin/products/{id}/images/{imageId}.
func (arm *AdminRoutesManager) RemoveProductImage(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	imageID, err := parseIDParam(r, "imageId")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidImageId"),
			gecho.Send(),
		)
		return
	}

	path, err := arm.productService.RemoveImage(r.Context(), productID, imageID)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.imageNotFound"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to remove image", gecho.Field("image_id", imageID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToRemoveImage"),
			gecho.Send(),
		)
		return
	}

	if err := arm.storageService.Remove(r.Context(), path); err != nil {
		arm.logger.Warn("Failed to remove image object", gecho.Field("path", path), gecho.Field("error", err))
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.imageRemoved"),
		gecho.Send(),
	)
}

// SetProductCover handles PUT /admin/products/{id}/cover. An empty path
// clears the cover.
func (arm *AdminRoutesManager) SetProductCover(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SetCoverRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidForm"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	var path *string
	if body.Path != "" {
		path = &body.Path
	}

	if err := arm.productService.SetCover(r.Context(), productID, path); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.imageNotFound"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Failed to set cover", gecho.Field("product_id", productID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToUpdate"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.coverUpdated"),
		gecho.Send(),
	)
}
