package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
)

func TestReviewService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := &ReviewService{DB: db}
	ctx := context.Background()
	seller := seedUser(t, db, "s@example.com")
	buyer := seedUser(t, db, "b@example.com")
	ad := seedAd(t, db, seller.ID, "Bike")

	r, err := svc.Create(ctx, domain.Caller{UserID: buyer.ID}, ad.ID, 5, "  great seller  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.TargetUserID != seller.ID || r.Rating != 5 || r.Text != "great seller" {
		t.Fatalf("unexpected review: %+v", r)
	}
}

func TestReviewService_Create_Errors(t *testing.T) {
	db := newTestDB(t)
	svc := &ReviewService{DB: db}
	ctx := context.Background()
	seller := seedUser(t, db, "s@example.com")
	buyer := seedUser(t, db, "b@example.com")
	ad := seedAd(t, db, seller.ID, "Bike")
	caller := domain.Caller{UserID: buyer.ID}

	if _, err := svc.Create(ctx, domain.Anonymous, ad.ID, 5, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous err = %v; want ErrUnauthorized", err)
	}
	for _, rating := range []int{0, -1, 6} {
		if _, err := svc.Create(ctx, caller, ad.ID, rating, ""); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d err = %v; want ErrInvalidRating", rating, err)
		}
	}
	if _, err := svc.Create(ctx, caller, 999, 5, ""); !errors.Is(err, ErrAdNotFound) {
		t.Fatalf("missing ad err = %v; want ErrAdNotFound", err)
	}
	if _, err := svc.Create(ctx, domain.Caller{UserID: seller.ID}, ad.ID, 5, ""); !errors.Is(err, ErrSelfReview) {
		t.Fatalf("own ad err = %v; want ErrSelfReview", err)
	}

	if _, err := svc.Create(ctx, caller, ad.ID, 5, ""); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(ctx, caller, ad.ID, 3, ""); !errors.Is(err, ErrDuplicateReview) {
		t.Fatalf("duplicate err = %v; want ErrDuplicateReview", err)
	}
}

func TestReviewService_TargetFrozenAtCreation(t *testing.T) {
	db := newTestDB(t)
	svc := &ReviewService{DB: db}
	ctx := context.Background()
	seller := seedUser(t, db, "s@example.com")
	buyer := seedUser(t, db, "b@example.com")
	ad := seedAd(t, db, seller.ID, "Bike")

	if _, err := svc.Create(ctx, domain.Caller{UserID: buyer.ID}, ad.ID, 4, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Deleting the ad detaches the review but the target keeps it.
	if _, err := repo.DeleteAdCascade(ctx, db, ad.ID); err != nil {
		t.Fatalf("DeleteAdCascade: %v", err)
	}

	page, err := svc.ListForUser(ctx, seller.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(page.Reviews) != 1 || page.AverageRating != 4 {
		t.Fatalf("page = %+v", page)
	}
	if page.Reviews[0].AdTitle != "deleted" || page.Reviews[0].AdID != nil {
		t.Fatalf("detached entry = %+v", page.Reviews[0])
	}
}

func TestReviewService_ListForUser(t *testing.T) {
	db := newTestDB(t)
	svc := &ReviewService{DB: db}
	ctx := context.Background()
	seller := seedUser(t, db, "s@example.com")
	buyer := seedUser(t, db, "b@example.com")
	ad := seedAd(t, db, seller.ID, "Bike")

	if _, err := svc.Create(ctx, domain.Caller{UserID: buyer.ID}, ad.ID, 5, "solid"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	page, err := svc.ListForUser(ctx, seller.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if page.TargetID != seller.ID || page.TargetName != "User Test" || page.AverageRating != 5 {
		t.Fatalf("page header = %+v", page)
	}
	e := page.Reviews[0]
	if e.AuthorID != buyer.ID || e.AuthorName != "User Test" || e.AdTitle != "Bike" || e.Text != "solid" {
		t.Fatalf("entry = %+v", e)
	}

	if _, err := svc.ListForUser(ctx, 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user err = %v; want ErrUserNotFound", err)
	}
}

func TestReviewService_AverageRating_CleanSlateZero(t *testing.T) {
	db := newTestDB(t)
	svc := &ReviewService{DB: db}
	ctx := context.Background()
	u := seedUser(t, db, "u@example.com")

	avg, err := svc.AverageRating(ctx, u.ID)
	if err != nil || avg != 0 {
		t.Fatalf("AverageRating = (%v, %v); want 0", avg, err)
	}
}
