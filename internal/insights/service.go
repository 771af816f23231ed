package insights

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"store-insights/internal/models"
)

// Source supplies freshly fetched records. The gateway implements it.
type Source interface {
	Products(ctx context.Context) ([]models.Product, error)
	Users(ctx context.Context) ([]models.User, error)
}

// Service fetches what each view needs and hands it to the pure functions.
// Every call fetches on its own; nothing is shared between calls.
type Service struct {
	src Source
}

func NewService(src Source) *Service {
	return &Service{src: src}
}

func (s *Service) AboveAveragePrice(ctx context.Context) ([]models.Product, error) {
	products, err := s.src.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("above average price: %w", err)
	}
	return AboveAveragePrice(products), nil
}

func (s *Service) TopRated(ctx context.Context, n int) ([]models.Product, error) {
	products, err := s.src.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("top rated: %w", err)
	}
	return TopRated(products, n), nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.src.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return Categories(products), nil
}

func (s *Service) Averages(ctx context.Context) (models.PriceRatingAverages, error) {
	products, err := s.src.Products(ctx)
	if err != nil {
		return models.PriceRatingAverages{}, fmt.Errorf("averages: %w", err)
	}
	avg, err := Averages(products)
	if err != nil {
		return models.PriceRatingAverages{}, fmt.Errorf("averages: %w", err)
	}
	return avg, nil
}

func (s *Service) TopRatedCheapest(ctx context.Context, n int) ([]models.Product, error) {
	products, err := s.src.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("top rated cheapest: %w", err)
	}
	return TopRatedCheapest(products, n), nil
}

// UserSummaries fetches products and users concurrently and joins them once
// both have arrived. The first failure cancels the other fetch.
func (s *Service) UserSummaries(ctx context.Context) ([]models.UserProductSummary, error) {
	var (
		products []models.Product
		users    []models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.src.Products(gctx)
		if err != nil {
			return err
		}
		products = res
		return nil
	})
	g.Go(func() error {
		res, err := s.src.Users(gctx)
		if err != nil {
			return err
		}
		users = res
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user summaries: %w", err)
	}
	return UserSummaries(products, users), nil
}
