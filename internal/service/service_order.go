package service

import (
	"context"
	"fmt"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/models"
)

// orderService is the concrete implementation of OrderService. Association
// maintenance (the products attached to an order) is handled inside the
// repository within a single transaction; this layer only validates.
type orderService struct {
	orderRepository store.OrderRepository
	logger          *logger.Logger
}

// NewOrderService constructs an OrderService wired to the given
// OrderRepository. The returned service is safe for concurrent use.
func NewOrderService(orderRepository store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

// GetAll returns every order together with its attached products.
func (o *orderService) GetAll(ctx context.Context) ([]models.Order, error) {
	orders, err := o.orderRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("orders listing failed")
		return nil, fmt.Errorf("orders listing failed: %w", err)
	}

	return orders, nil
}

// GetByID returns a single order with its attached products.
//
// Returns store.ErrOrderNotFound (wrapped) when no order carries the id.
func (o *orderService) GetByID(ctx context.Context, id int64) (models.Order, error) {
	order, err := o.orderRepository.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("order lookup failed")
		return models.Order{}, fmt.Errorf("order lookup failed: %w", err)
	}

	return order, nil
}

// Add persists a new order and its product associations atomically.
//
// Returns ErrInvalidDataProvided if the owning user id is not positive or
// the order date is unset, or a wrapped storage error.
func (o *orderService) Add(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	if err := validateOrder(order); err != nil {
		log.Error().Any("order", order).Msg("invalid order data provided")
		return models.Order{}, err
	}

	created, err := o.orderRepository.Create(ctx, order)
	if err != nil {
		log.Err(err).Any("order", order).Msg("order creation ended with error")
		return models.Order{}, fmt.Errorf("order creation ended with error: %w", err)
	}

	return created, nil
}

// Update replaces an existing order wholesale, including its product
// associations.
//
// Returns ErrInvalidDataProvided on bad data or store.ErrOrderNotFound
// (wrapped) when the id matches nothing.
func (o *orderService) Update(ctx context.Context, order models.Order) error {
	log := logger.FromContext(ctx)

	if err := validateOrder(order); err != nil {
		log.Error().Any("order", order).Msg("invalid order data provided")
		return err
	}

	if err := o.orderRepository.Update(ctx, order); err != nil {
		log.Err(err).Any("order", order).Msg("order update ended with error")
		return fmt.Errorf("order update ended with error: %w", err)
	}

	return nil
}

// Delete removes an order and its associations by id.
//
// Returns store.ErrOrderNotFound (wrapped) when the id matches nothing.
func (o *orderService) Delete(ctx context.Context, id int64) error {
	if err := o.orderRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("order deletion ended with error")
		return fmt.Errorf("order deletion ended with error: %w", err)
	}

	return nil
}

func validateOrder(order models.Order) error {
	if order.UserID <= 0 || order.OrderDate.IsZero() {
		return ErrInvalidDataProvided
	}
	return nil
}
