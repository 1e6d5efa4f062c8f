package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

func (s *Service) CreateClient(ctx context.Context, client entity.Client) (entity.Client, error) {
	if client.Name == "" {
		return entity.Client{}, fmt.Errorf("%w: empty client name", entity.ErrInvalidArgument)
	}

	now := time.Now()
	client.ID = uuid.Must(uuid.NewV4())
	client.CreatedAt = now
	client.UpdatedAt = now

	client, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

func (s *Service) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	client, err := s.repo.Client(ctx, id)
	if err != nil {
		return entity.Client{}, fmt.Errorf("get client %q: %w", id, err)
	}

	return client, nil
}

func (s *Service) Clients(ctx context.Context) ([]entity.Client, error) {
	return s.repo.Clients(ctx)
}

func (s *Service) UpdateClient(ctx context.Context, client entity.Client) (entity.Client, error) {
	if client.Name == "" {
		return entity.Client{}, fmt.Errorf("%w: empty client name", entity.ErrInvalidArgument)
	}

	client.UpdatedAt = time.Now()

	err := s.repo.UpdateClient(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client %q: %w", client.ID, err)
	}

	return client, nil
}

// DeleteClient removes the client; existing invoices keep their money columns
// and simply lose the client reference.
func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteClient(ctx, id)
	if err != nil {
		return fmt.Errorf("delete client %q: %w", id, err)
	}

	return nil
}

func (s *Service) CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error) {
	if product.Title == "" {
		return entity.Product{}, fmt.Errorf("%w: empty product title", entity.ErrInvalidArgument)
	}

	if product.Price.IsNegative() {
		return entity.Product{}, fmt.Errorf("%w: negative product price %s", entity.ErrInvalidArgument, product.Price)
	}

	if product.Currency == "" {
		product.Currency = entity.CurrencyNGN
	}

	now := time.Now()
	product.ID = uuid.Must(uuid.NewV4())
	product.CreatedAt = now
	product.UpdatedAt = now

	product, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return entity.Product{}, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *Service) Product(ctx context.Context, id uuid.UUID) (entity.Product, error) {
	product, err := s.repo.Product(ctx, id)
	if err != nil {
		return entity.Product{}, fmt.Errorf("get product %q: %w", id, err)
	}

	return product, nil
}

func (s *Service) Products(ctx context.Context) ([]entity.Product, error) {
	return s.repo.Products(ctx)
}

func (s *Service) UpdateProduct(ctx context.Context, product entity.Product) (entity.Product, error) {
	if product.Price.IsNegative() {
		return entity.Product{}, fmt.Errorf("%w: negative product price %s", entity.ErrInvalidArgument, product.Price)
	}

	product.UpdatedAt = time.Now()

	err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return entity.Product{}, fmt.Errorf("update product %q: %w", product.ID, err)
	}

	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %q: %w", id, err)
	}

	return nil
}
