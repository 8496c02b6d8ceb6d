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

// Checkout errors surface to the client as a generic rejection; the detail
// stays in the logs.
var (
	ErrEmptyOrder         = fmt.Errorf("order has no items")
	ErrProductUnavailable = fmt.Errorf("product unavailable")
)

type OrderService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	db             *database.DB
	productService *ProductService
	emailService   *EmailService
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, productService *ProductService, emailService *EmailService) *OrderService {
	return &OrderService{
		logger:         logger,
		cfg:            cfg,
		db:             db,
		productService: productService,
		emailService:   emailService,
	}
}

// CreateOrder re-prices the submitted items against the published catalog and
// persists the order with its item snapshots in one transaction. Client-sent
// prices are never trusted.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest) (*structs.OrderResponse, error) {
	startTime := time.Now()

	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, item.ProductID)
		}
		ids = append(ids, id)
	}

	// Only published products are sellable; anything else fails the whole order
	products, err := os.productService.GetPublishedProducts(ctx, ids)
	if err != nil {
		os.logger.Error("Failed to fetch products for checkout", gecho.Field("error", err))
		return nil, err
	}

	items, totalCents, err := buildOrderItems(req.Items, products)
	if err != nil {
		os.logger.Warn("Checkout rejected",
			gecho.Field("error", err),
			gecho.Field("requested_items", len(req.Items)),
			gecho.Field("available_products", len(products)),
		)
		return nil, err
	}

	order := &tables.Order{
		CustomerName: req.Form.CustomerName,
		Email:        req.Form.Email,
		Phone:        req.Form.Phone,
		ShippingAddress: tables.ShippingAddress{
			Line1:   req.Form.AddressLine1,
			City:    req.Form.City,
			Zip:     req.Form.Zip,
			Country: req.Form.Country,
		},
		TotalCents: totalCents,
		Currency:   os.cfg.Store.DefaultCurrency,
	}

	if err := os.encryptOrder(order); err != nil {
		os.logger.Error("Failed to encrypt order details", gecho.Field("error", err))
		return nil, err
	}

	// Order row and item rows commit or roll back together
	err = database.Transaction(os.db, ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Returning("*").Exec(ctx); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}

		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		os.logger.Error("Failed to persist order",
			gecho.Field("error", err),
			gecho.Field("email", req.Form.Email),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, lib.MapPgError(err)
	}

	os.logger.Info("Order created",
		gecho.Field("order_id", order.ID),
		gecho.Field("total_cents", totalCents),
		gecho.Field("items", len(items)),
		gecho.Field("duration", time.Since(startTime)),
	)

	// The stored row holds ciphertext; the confirmation email needs the
	// customer-facing values back.
	if err := os.decryptOrder(order); err != nil {
		os.logger.Error("Failed to decrypt order for confirmation email",
			gecho.Field("order_id", order.ID),
			gecho.Field("error", err),
		)
		return &structs.OrderResponse{OrderID: order.ID.String()}, nil
	}

	// Confirmation email must not delay or fail the checkout response
	go os.emailService.SendOrderConfirmation(order, items)

	return &structs.OrderResponse{OrderID: order.ID.String()}, nil
}

// piiFields lists the order columns that are encrypted at rest. Country stays
// plain so shipping zone reports keep working on the raw table.
func piiFields(order *tables.Order) []*string {
	return []*string{
		&order.CustomerName,
		&order.Email,
		&order.Phone,
		&order.ShippingAddress.Line1,
		&order.ShippingAddress.City,
		&order.ShippingAddress.Zip,
	}
}

// encryptOrder seals customer PII in place before the row is written. A
// missing key leaves the order untouched, for local development.
func (os *OrderService) encryptOrder(order *tables.Order) error {
	key := os.cfg.Auth.EncryptionKey
	if key == "" {
		return nil
	}
	for _, field := range piiFields(order) {
		sealed, err := lib.Encrypt(*field, key)
		if err != nil {
			return err
		}
		*field = sealed
	}
	return nil
}

// decryptOrder restores customer PII on a row read back from the database.
func (os *OrderService) decryptOrder(order *tables.Order) error {
	key := os.cfg.Auth.EncryptionKey
	if key == "" {
		return nil
	}
	for _, field := range piiFields(order) {
		plain, err := lib.Decrypt(*field, key)
		if err != nil {
			return err
		}
		*field = plain
	}
	return nil
}

// buildOrderItems maps requested lines onto freshly fetched products,
// snapshotting title and effective unit price. A requested product that is
// missing from the fetched set fails the whole order.
func buildOrderItems(requested []structs.CheckoutItem, products []tables.Product) ([]tables.OrderItem, int64, error) {
	byID := make(map[string]*tables.Product, len(products))
	for i := range products {
		byID[products[i].ID.String()] = &products[i]
	}

	items := make([]tables.OrderItem, 0, len(requested))
	var totalCents int64

	for _, line := range requested {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrProductUnavailable, line.ProductID)
		}
		if line.Quantity < 1 {
			return nil, 0, fmt.Errorf("invalid quantity for %s", line.ProductID)
		}

		unit := product.EffectivePriceCents()
		items = append(items, tables.OrderItem{
			ProductID:          product.ID,
			TitleSnapshot:      product.Title,
			PriceCentsSnapshot: unit,
			Quantity:           line.Quantity,
		})
		totalCents += unit * int64(line.Quantity)
	}

	return items, totalCents, nil
}

// GetOrderByID returns an order with its item snapshots.
func (os *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("id", id).
		Relation("Items").
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order != nil {
		if err := os.decryptOrder(order); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// ListOrders returns recent orders for the admin panel, newest first.
func (os *OrderService) ListOrders(ctx context.Context, page, pageSize int) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](os.db).
		Relation("Items").
		OrderBy("created_at", database.DESC)

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	for i := range result.Data {
		if err := os.decryptOrder(&result.Data[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}
