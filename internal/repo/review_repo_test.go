package repo

import (
	"context"
	"errors"
	"testing"
)

func TestCreateReview_And_HasReview(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author, _ := CreateUser(ctx, db, "A", "", "a@example.com", "h")
	seller, _ := CreateUser(ctx, db, "S", "", "s@example.com", "h")
	ad, _ := CreateAd(ctx, db, newAd(seller.ID, "Bike"), nil)

	r, err := CreateReview(ctx, db, author.ID, seller.ID, &ad.ID, 5, "great")
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if r.ID == 0 || r.TargetUserID != seller.ID {
		t.Fatalf("unexpected review: %+v", r)
	}

	has, err := HasReview(ctx, db, author.ID, ad.ID)
	if err != nil || !has {
		t.Fatalf("HasReview = (%v, %v)", has, err)
	}
	has, _ = HasReview(ctx, db, seller.ID, ad.ID)
	if has {
		t.Fatalf("HasReview true for a different author")
	}
}

func TestCreateReview_DuplicateAuthorAdRejected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author, _ := CreateUser(ctx, db, "A", "", "a@example.com", "h")
	seller, _ := CreateUser(ctx, db, "S", "", "s@example.com", "h")
	ad, _ := CreateAd(ctx, db, newAd(seller.ID, "Bike"), nil)

	if _, err := CreateReview(ctx, db, author.ID, seller.ID, &ad.ID, 5, ""); err != nil {
		t.Fatalf("first CreateReview: %v", err)
	}
	if _, err := CreateReview(ctx, db, author.ID, seller.ID, &ad.ID, 1, ""); err == nil {
		t.Fatalf("duplicate (author, ad) accepted; unique index missing")
	}
}

func TestAverageRating_RoundedOneDecimal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seller, _ := CreateUser(ctx, db, "S", "", "s@example.com", "h")
	r1, _ := CreateUser(ctx, db, "R1", "", "r1@example.com", "h")
	r2, _ := CreateUser(ctx, db, "R2", "", "r2@example.com", "h")
	r3, _ := CreateUser(ctx, db, "R3", "", "r3@example.com", "h")
	a1, _ := CreateAd(ctx, db, newAd(seller.ID, "a1"), nil)
	a2, _ := CreateAd(ctx, db, newAd(seller.ID, "a2"), nil)
	a3, _ := CreateAd(ctx, db, newAd(seller.ID, "a3"), nil)

	CreateReview(ctx, db, r1.ID, seller.ID, &a1.ID, 5, "")
	CreateReview(ctx, db, r2.ID, seller.ID, &a2.ID, 4, "")
	CreateReview(ctx, db, r3.ID, seller.ID, &a3.ID, 4, "")

	// 13/3 = 4.333... -> 4.3
	avg, err := AverageRating(ctx, db, seller.ID)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if avg != 4.3 {
		t.Fatalf("avg = %v; want 4.3", avg)
	}
}

func TestAverageRating_NoReviewsIsZero(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u, _ := CreateUser(ctx, db, "U", "", "u@example.com", "h")

	avg, err := AverageRating(ctx, db, u.ID)
	if err != nil || avg != 0 {
		t.Fatalf("AverageRating = (%v, %v); want 0", avg, err)
	}
}

func TestListReviewsForUser_OnlyTarget(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s1, _ := CreateUser(ctx, db, "S1", "", "s1@example.com", "h")
	s2, _ := CreateUser(ctx, db, "S2", "", "s2@example.com", "h")
	buyer, _ := CreateUser(ctx, db, "B", "", "b@example.com", "h")
	a1, _ := CreateAd(ctx, db, newAd(s1.ID, "a1"), nil)
	a2, _ := CreateAd(ctx, db, newAd(s2.ID, "a2"), nil)

	CreateReview(ctx, db, buyer.ID, s1.ID, &a1.ID, 5, "for s1")
	CreateReview(ctx, db, buyer.ID, s2.ID, &a2.ID, 3, "for s2")

	got, err := ListReviewsForUser(ctx, db, s1.ID)
	if err != nil {
		t.Fatalf("ListReviewsForUser: %v", err)
	}
	if len(got) != 1 || got[0].Text != "for s1" {
		t.Fatalf("reviews = %+v", got)
	}

	all, err := ListAllReviews(ctx, db)
	if err != nil || len(all) != 2 {
		t.Fatalf("ListAllReviews = (%d, %v); want 2", len(all), err)
	}
}

func TestDeleteReview(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seller, _ := CreateUser(ctx, db, "S", "", "s@example.com", "h")
	buyer, _ := CreateUser(ctx, db, "B", "", "b@example.com", "h")
	ad, _ := CreateAd(ctx, db, newAd(seller.ID, "Bike"), nil)
	r, _ := CreateReview(ctx, db, buyer.ID, seller.ID, &ad.ID, 2, "")

	if err := DeleteReview(ctx, db, r.ID); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}
	if _, err := GetReview(ctx, db, r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("review still present")
	}
	if err := DeleteReview(ctx, db, r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete error = %v; want ErrNotFound", err)
	}
}
