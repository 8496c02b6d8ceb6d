package services

import (
	"context"
	"fmt"
	"lumi_noir_server/database"
	"lumi_noir_server/lib"
	"lumi_noir_server/structs"
	"lumi_noir_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	PublishedOnly bool `json:"published_only"`
	OnSaleOnly    bool `json:"on_sale_only"`

	// Sorting
	SortBy        string `json:"sort_by"`        // created_at, price_cents, title
	SortDirection string `json:"sort_direction"` // ASC or DESC

	// Relations
	IncludeImages bool `json:"include_images"`

	Timeout time.Duration `json:"-"`
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	QueryTime  time.Duration       `json:"query_time"`
}

// imagesBySortOrder keeps the Images relation in display sequence.
func imagesBySortOrder(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("sort_order ASC")
}

var allowedSortFields = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"price_cents": true,
	"title":       true,
}

// ListProducts retrieves products with filtering, pagination, and caching.
// The storefront views ("published", "sale") are cached whole since they are
// read far more often than they change.
func (ps *ProductService) ListProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	if !allowedSortFields[opts.SortBy] {
		return nil, fmt.Errorf("invalid sort field: %s", opts.SortBy)
	}
	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		return nil, fmt.Errorf("invalid sort direction: %s", opts.SortDirection)
	}

	queryCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	query := database.Query[tables.Product](ps.db)

	if opts.PublishedOnly {
		query = query.Where("is_published", true)
	}
	if opts.OnSaleOnly {
		query = query.WhereRaw("sale_price_cents IS NOT NULL AND sale_price_cents < price_cents")
	}

	query = query.OrderBy(opts.SortBy, database.OrderDirection(opts.SortDirection))

	if opts.IncludeImages {
		query = query.Relation("Images", imagesBySortOrder)
	}

	result, err := database.Paginate(query, queryCtx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("pageSize", opts.PageSize),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	ps.logger.Debug("Products fetched successfully",
		gecho.Field("count", len(result.Data)),
		gecho.Field("total", result.Pagination.Total),
		gecho.Field("duration", time.Since(startTime)),
	)

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		QueryTime:  time.Since(startTime),
	}, nil
}

// ListPublished returns the published storefront catalog, newest first.
func (ps *ProductService) ListPublished(ctx context.Context) ([]tables.Product, error) {
	return ps.cachedList(ctx, "published", &ProductListOptions{
		PublishedOnly: true,
		IncludeImages: true,
	})
}

// ListSale returns published products with an active sale price.
func (ps *ProductService) ListSale(ctx context.Context) ([]tables.Product, error) {
	return ps.cachedList(ctx, "sale", &ProductListOptions{
		PublishedOnly: true,
		OnSaleOnly:    true,
		IncludeImages: true,
	})
}

func (ps *ProductService) cachedList(ctx context.Context, view string, opts *ProductListOptions) ([]tables.Product, error) {
	cached, err := ps.cacheService.GetProductList(view)
	if err == nil && cached != nil {
		return cached, nil
	}

	result, err := ps.ListProducts(ctx, opts)
	if err != nil {
		return nil, err
	}

	if cacheErr := ps.cacheService.SetProductList(view, result.Products); cacheErr != nil {
		ps.logger.Warn("Failed to cache product list", gecho.Field("view", view), gecho.Field("error", cacheErr))
	}

	return result.Products, nil
}

// GetProductByID retrieves a single product by ID with its images.
func (ps *ProductService) GetProductByID(ctx context.Context, id string) (*tables.Product, error) {
	startTime := time.Now()

	cachedProduct, err := ps.cacheService.GetProductByID(id)
	if err != nil {
		ps.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("id", id))
	} else if cachedProduct != nil {
		ps.logger.Debug("Product retrieved from cache", gecho.Field("id", id), gecho.Field("duration", time.Since(startTime)))
		return cachedProduct, nil
	}

	product, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Relation("Images", imagesBySortOrder).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch product by ID",
			gecho.Field("id", id),
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, nil
	}

	if cacheErr := ps.cacheService.SetProductByID(product); cacheErr != nil {
		ps.logger.Warn("Failed to cache product", gecho.Field("id", id), gecho.Field("error", cacheErr))
	}

	return product, nil
}

// GetPublishedProducts returns the published products among the given IDs.
// Unpublished and unknown IDs are simply absent from the result.
func (ps *ProductService) GetPublishedProducts(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	if len(ids) == 0 {
		return []tables.Product{}, nil
	}

	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	products, err := database.Query[tables.Product](ps.db).
		WhereIn("id", values).
		Where("is_published", true).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// CreateProduct inserts a new product from an admin request. Prices arrive as
// decimal strings and are stored as integer cents.
func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.CreateProductRequest) (*tables.Product, error) {
	priceCents, err := lib.ParsePriceCents(req.Price)
	if err != nil {
		return nil, err
	}

	var salePriceCents *int64
	if req.SalePrice != nil && *req.SalePrice != "" {
		cents, err := lib.ParsePriceCents(*req.SalePrice)
		if err != nil {
			return nil, err
		}
		salePriceCents = &cents
	}

	product := &tables.Product{
		Title:          req.Title,
		Description:    req.Description,
		PriceCents:     priceCents,
		SalePriceCents: salePriceCents,
		Currency:       req.Currency,
		IsPublished:    req.IsPublished,
	}

	product, err = database.Query[tables.Product](ps.db).Insert(ctx, product)
	if err != nil {
		ps.logger.Error("Failed to create product", gecho.Field("error", err), gecho.Field("title", req.Title))
		return nil, lib.MapPgError(err)
	}

	ps.invalidate(product.ID)
	ps.logger.Info("Product created", gecho.Field("product_id", product.ID), gecho.Field("title", product.Title))
	return product, nil
}

// UpdateProduct applies the non-nil fields of an admin update request.
func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *structs.UpdateProductRequest) (*tables.Product, error) {
	updates := map[string]any{
		"updated_at": time.Now(),
	}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		cents, err := lib.ParsePriceCents(*req.Price)
		if err != nil {
			return nil, err
		}
		updates["price_cents"] = cents
	}
	if req.SalePrice != nil {
		if *req.SalePrice == "" {
			updates["sale_price_cents"] = nil
		} else {
			cents, err := lib.ParsePriceCents(*req.SalePrice)
			if err != nil {
				return nil, err
			}
			updates["sale_price_cents"] = cents
		}
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}

	affected, err := database.Query[tables.Product](ps.db).Where("id", id).Update(ctx, updates)
	if err != nil {
		ps.logger.Error("Failed to update product", gecho.Field("error", err), gecho.Field("product_id", id))
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	ps.invalidate(id)
	return ps.fetchFresh(ctx, id)
}

// DeleteProduct removes a product with its image rows in one transaction and
// returns the removed image paths so the caller can clean up storage.
func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) ([]string, error) {
	var paths []string

	err := database.Transaction(ps.db, ctx, func(ctx context.Context, tx bun.Tx) error {
		var images []tables.ProductImage
		if err := tx.NewSelect().Model(&images).Where("product_id = ?", id).Scan(ctx); err != nil {
			return err
		}
		for _, img := range images {
			paths = append(paths, img.Path)
		}

		if _, err := tx.NewDelete().Model((*tables.ProductImage)(nil)).Where("product_id = ?", id).Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().Model((*tables.Product)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return err
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return lib.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.invalidate(id)
	ps.logger.Info("Product deleted", gecho.Field("product_id", id), gecho.Field("images", len(paths)))
	return paths, nil
}

// AddImage records an uploaded product image. The first image of a product
// becomes its cover when none is set.
func (ps *ProductService) AddImage(ctx context.Context, productID uuid.UUID, path string, sortOrder int) (*tables.ProductImage, error) {
	image := &tables.ProductImage{
		ProductID: productID,
		Path:      path,
		SortOrder: sortOrder,
	}

	image, err := database.Query[tables.ProductImage](ps.db).Insert(ctx, image)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	product, err := ps.fetchFresh(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product != nil && product.CoverImagePath == nil {
		if _, err := database.Query[tables.Product](ps.db).Where("id", productID).Update(ctx, map[string]any{
			"cover_image_path": path,
			"updated_at":       time.Now(),
		}); err != nil {
			ps.logger.Warn("Failed to promote first image to cover", gecho.Field("error", err), gecho.Field("product_id", productID))
		}
	}

	ps.invalidate(productID)
	return image, nil
}

// RemoveImage deletes an image row and returns its path. When the removed
// image was the cover, the cover falls back to the first remaining image.
func (ps *ProductService) RemoveImage(ctx context.Context, productID, imageID uuid.UUID) (string, error) {
	removed, err := database.Query[tables.ProductImage](ps.db).
		Where("id", imageID).
		Where("product_id", productID).
		DeleteReturning(ctx)
	if err != nil {
		return "", lib.MapPgError(err)
	}
	if len(removed) == 0 {
		return "", lib.ErrNotFound
	}
	path := removed[0].Path

	product, err := ps.fetchFresh(ctx, productID)
	if err != nil {
		return "", err
	}
	if product != nil && product.CoverImagePath != nil && *product.CoverImagePath == path {
		var newCover any
		if len(product.Images) > 0 {
			newCover = product.Images[0].Path
		}
		if _, err := database.Query[tables.Product](ps.db).Where("id", productID).Update(ctx, map[string]any{
			"cover_image_path": newCover,
			"updated_at":       time.Now(),
		}); err != nil {
			ps.logger.Warn("Failed to reassign cover after image removal", gecho.Field("error", err), gecho.Field("product_id", productID))
		}
	}

	ps.invalidate(productID)
	return path, nil
}

// SetCover sets the cover image path. The path must belong to one of the
// product's images; nil clears the cover.
func (ps *ProductService) SetCover(ctx context.Context, productID uuid.UUID, path *string) error {
	if path != nil {
		owned, err := database.Query[tables.ProductImage](ps.db).
			Where("product_id", productID).
			Where("path", *path).
			Exists(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		if !owned {
			return lib.ErrNotFound
		}
	}

	var value any
	if path != nil {
		value = *path
	}

	affected, err := database.Query[tables.Product](ps.db).Where("id", productID).Update(ctx, map[string]any{
		"cover_image_path": value,
		"updated_at":       time.Now(),
	})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ps.invalidate(productID)
	return nil
}

func (ps *ProductService) fetchFresh(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Relation("Images", imagesBySortOrder).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return product, nil
}

func (ps *ProductService) invalidate(productID uuid.UUID) {
	if err := ps.cacheService.InvalidateProductCaches(productID); err != nil {
		ps.logger.Warn("Failed to invalidate product caches", gecho.Field("error", err), gecho.Field("product_id", productID))
	}
}

func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 50
	}
	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection == "" {
		opts.SortDirection = "DESC"
	}
}
