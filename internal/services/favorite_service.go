// Package services – FavoriteService
//
// This file implements the favorites relation: toggling a bookmark and
// listing the caller's favorited ads. The relation is a plain unique
// (user, ad) pair; repeated toggles alternate the state deterministically.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
)

// FavoriteService owns the user↔ad bookmark relation.
type FavoriteService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Toggle flips the (caller, ad) favorite pair and returns the new state:
// true when the pair was just added, false when it was just removed.
// ErrAdNotFound when the ad does not exist. A toggle race that double-adds
// is absorbed by the unique index and reported as the added state.
func (s *FavoriteService) Toggle(ctx context.Context, caller domain.Caller, adID uint) (bool, error) {
	if !caller.Authenticated() {
		return false, ErrUnauthorized
	}
	if _, err := repo.GetAd(ctx, s.DB, adID); err != nil {
		return false, ErrAdNotFound
	}

	fav, err := repo.IsFavorite(ctx, s.DB, caller.UserID, adID)
	if err != nil {
		return false, err
	}
	if fav {
		if err := repo.RemoveFavorite(ctx, s.DB, caller.UserID, adID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := repo.AddFavorite(ctx, s.DB, caller.UserID, adID); err != nil {
		if isUniqueViolation(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// IsFavorite reports whether the caller has favorited the ad. Anonymous
// callers have no favorites.
func (s *FavoriteService) IsFavorite(ctx context.Context, caller domain.Caller, adID uint) (bool, error) {
	if !caller.Authenticated() {
		return false, nil
	}
	return repo.IsFavorite(ctx, s.DB, caller.UserID, adID)
}

// List returns the caller's favorited ads as browsing cards. Every entry
// carries is_favorite=true by construction.
func (s *FavoriteService) List(ctx context.Context, caller domain.Caller) ([]AdCard, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthorized
	}
	favAds, err := repo.ListFavoriteAds(ctx, s.DB, caller.UserID)
	if err != nil {
		return nil, err
	}
	cards, err := buildAdCards(ctx, s.DB, caller, favAds)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		cards[i].IsFavorite = true
	}
	return cards, nil
}
