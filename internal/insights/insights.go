// Package insights derives views over store products and users.
//
// The functions in this file are pure: they never perform I/O and never
// modify their inputs. Service wires them to a Source.
package insights

import (
	"errors"
	"slices"

	"store-insights/internal/models"
)

const DefaultTopN = 5

var ErrEmptyInput = errors.New("empty input")

// AboveAveragePrice keeps products priced strictly above the mean price,
// in input order. An empty input yields an empty result.
func AboveAveragePrice(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	if len(products) == 0 {
		return out
	}

	mean := meanOf(products, func(p models.Product) float64 { return p.Price })
	for _, p := range products {
		if p.Price > mean {
			out = append(out, p)
		}
	}
	return out
}

// TopRated returns the n highest rated products. Equal ratings keep input order.
func TopRated(products []models.Product, n int) []models.Product {
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b models.Product) int {
		return compareDesc(a.Rating.Rate, b.Rating.Rate)
	})
	return head(sorted, n)
}

// TopRatedCheapest orders by rating descending, then price ascending.
func TopRatedCheapest(products []models.Product, n int) []models.Product {
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b models.Product) int {
		if c := compareDesc(a.Rating.Rate, b.Rating.Rate); c != 0 {
			return c
		}
		return compareDesc(b.Price, a.Price)
	})
	return head(sorted, n)
}

// Categories lists distinct categories in order of first appearance.
func Categories(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func Averages(products []models.Product) (models.PriceRatingAverages, error) {
	if len(products) == 0 {
		return models.PriceRatingAverages{}, ErrEmptyInput
	}
	return models.PriceRatingAverages{
		AveragePrice:  meanOf(products, func(p models.Product) float64 { return p.Price }),
		AverageRating: meanOf(products, func(p models.Product) float64 { return p.Rating.Rate }),
	}, nil
}

// UserSummaries joins products to users on product.UserID == user.ID.
// Users without products get empty lists and a zero bill.
func UserSummaries(products []models.Product, users []models.User) []models.UserProductSummary {
	byUser := make(map[int][]models.Product)
	for _, p := range products {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	out := make([]models.UserProductSummary, 0, len(users))
	for _, u := range users {
		owned := byUser[u.ID]
		s := models.UserProductSummary{
			Name:     u.Name.String(),
			Email:    u.Email,
			City:     u.Address.City,
			Products: make([]string, 0, len(owned)),
			Prices:   make([]float64, 0, len(owned)),
		}
		for _, p := range owned {
			s.Products = append(s.Products, p.Title)
			s.Prices = append(s.Prices, p.Price)
			s.TotalBill += p.Price
		}
		out = append(out, s)
	}
	return out
}

func meanOf(products []models.Product, value func(models.Product) float64) float64 {
	var total float64
	for _, p := range products {
		total += value(p)
	}
	return total / float64(len(products))
}

func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

func head(products []models.Product, n int) []models.Product {
	if n < 0 {
		n = 0
	}
	if n > len(products) {
		n = len(products)
	}
	if n == 0 {
		return []models.Product{}
	}
	return products[:n:n]
}
