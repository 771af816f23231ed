package insights

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"store-insights/internal/models"
)

type fakeSource struct {
	products    []models.Product
	users       []models.User
	productsErr error
	usersErr    error

	productCalls atomic.Int32
	userCalls    atomic.Int32

	// started, when set, is waited on by both fetches so a test can
	// prove they are in flight at the same time.
	started *sync.WaitGroup
}

func (f *fakeSource) Products(ctx context.Context) ([]models.Product, error) {
	f.productCalls.Add(1)
	if err := f.rendezvous(ctx); err != nil {
		return nil, err
	}
	return f.products, f.productsErr
}

func (f *fakeSource) Users(ctx context.Context) ([]models.User, error) {
	f.userCalls.Add(1)
	if err := f.rendezvous(ctx); err != nil {
		return nil, err
	}
	return f.users, f.usersErr
}

func (f *fakeSource) rendezvous(ctx context.Context) error {
	if f.started == nil {
		return nil
	}
	f.started.Done()
	done := make(chan struct{})
	go func() {
		f.started.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Second):
		return errors.New("fetches were not concurrent")
	}
}

func TestServiceFetchesPerCall(t *testing.T) {
	src := &fakeSource{products: catalog()}
	svc := NewService(src)
	ctx := context.Background()

	above, err := svc.AboveAveragePrice(ctx)
	if err != nil || len(above) != 2 {
		t.Fatalf("AboveAveragePrice: %v %v", titles(above), err)
	}
	top, err := svc.TopRated(ctx, DefaultTopN)
	if err != nil || len(top) != DefaultTopN {
		t.Fatalf("TopRated: %v %v", titles(top), err)
	}
	cats, err := svc.Categories(ctx)
	if err != nil || len(cats) != 4 {
		t.Fatalf("Categories: %v %v", cats, err)
	}
	if _, err := svc.Averages(ctx); err != nil {
		t.Fatalf("Averages: %v", err)
	}
	cheap, err := svc.TopRatedCheapest(ctx, 3)
	if err != nil || len(cheap) != 3 {
		t.Fatalf("TopRatedCheapest: %v %v", titles(cheap), err)
	}

	if got := src.productCalls.Load(); got != 5 {
		t.Fatalf("expected one fetch per call (5), got %d", got)
	}
}

func TestServicePropagatesFetchErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewService(&fakeSource{productsErr: boom})
	ctx := context.Background()

	calls := map[string]func() error{
		"above average": func() error { _, err := svc.AboveAveragePrice(ctx); return err },
		"top rated":     func() error { _, err := svc.TopRated(ctx, 5); return err },
		"categories":    func() error { _, err := svc.Categories(ctx); return err },
		"averages":      func() error { _, err := svc.Averages(ctx); return err },
		"cheapest":      func() error { _, err := svc.TopRatedCheapest(ctx, 5); return err },
		"summaries":     func() error { _, err := svc.UserSummaries(ctx); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, boom) {
				t.Fatalf("expected wrapped fetch error, got %v", err)
			}
		})
	}
}

func TestServiceAveragesEmpty(t *testing.T) {
	svc := NewService(&fakeSource{products: []models.Product{}})
	if _, err := svc.Averages(context.Background()); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestServiceUserSummariesFetchesConcurrently(t *testing.T) {
	var started sync.WaitGroup
	started.Add(2)
	src := &fakeSource{
		products: []models.Product{
			product(1, "A", 5, 0, "x", 1),
			product(2, "B", 7, 0, "x", 1),
		},
		users:   []models.User{{ID: 1, Name: models.Name{First: "john"}}},
		started: &started,
	}

	got, err := NewService(src).UserSummaries(context.Background())
	if err != nil {
		t.Fatalf("UserSummaries: %v", err)
	}
	if len(got) != 1 || got[0].TotalBill != 12 {
		t.Fatalf("unexpected summaries: %+v", got)
	}
	if src.productCalls.Load() != 1 || src.userCalls.Load() != 1 {
		t.Fatalf("expected one fetch each, got %d/%d", src.productCalls.Load(), src.userCalls.Load())
	}
}

func TestServiceUserSummariesUsersError(t *testing.T) {
	boom := errors.New("users down")
	svc := NewService(&fakeSource{products: catalog(), usersErr: boom})

	if _, err := svc.UserSummaries(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected users error, got %v", err)
	}
}
