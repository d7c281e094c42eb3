// Package services – AdService
//
// This file implements the listing store: ad creation with the initial
// photo set, filtered browsing, detail fetch with view counting, partial
// updates with photo-set reconciliation, and ownership-gated deletion with
// its ordered cascade. Blob files belonging to removed photos are deleted
// only after the surrounding transaction commits, and a failed file delete
// is logged and ignored rather than failing the primary operation.
package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
)

// BlobDeleter removes a stored photo file by its reference. Implemented by
// the storage package; deletion failures are best-effort for callers here.
type BlobDeleter interface {
	Delete(name string) error
}

// CreateAdInput carries the fields for a new listing. Title, description,
// and district are required; everything else is optional with defaults.
type CreateAdInput struct {
	Title       string
	Description string
	Price       *float64
	PriceUnit   string
	AdType      string
	Condition   string
	District    string
	Address     string
	Category    string
	Photos      []string
}

// AdCard is the browsing DTO: one ad as it appears in a list, with its
// main photo and the caller-relative favorite flag.
type AdCard struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Price      *float64 `json:"price"`
	PriceUnit  string   `json:"price_unit"`
	District   string   `json:"district"`
	CreatedAt  string   `json:"created_date"`
	MainPhoto  string   `json:"main_photo,omitempty"`
	IsFavorite bool     `json:"is_favorite"`
}

// AdDetail is the full listing view returned by Get.
type AdDetail struct {
	AdCard
	Description string   `json:"description"`
	AdType      string   `json:"ad_type"`
	Condition   string   `json:"condition,omitempty"`
	Address     string   `json:"address,omitempty"`
	Views       int      `json:"views"`
	Status      string   `json:"status"`
	Category    string   `json:"category,omitempty"`
	UserID      uint     `json:"user_id"`
	Photos      []string `json:"photos"`
}

// AdService provides the listing lifecycle over the persistent store.
type AdService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Blobs cleans up photo files once their rows are gone. May be nil in
	// tests; cleanup is skipped then.
	Blobs BlobDeleter
}

// Create inserts a new active listing owned by the caller, photos included,
// in one transaction.
func (s *AdService) Create(ctx context.Context, caller domain.Caller, in CreateAdInput) (*domain.Ad, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthorized
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.District = strings.TrimSpace(in.District)
	if in.Title == "" || in.Description == "" || in.District == "" {
		return nil, ErrMissingAdFields
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, ErrNegativePrice
	}
	if in.PriceUnit == "" {
		in.PriceUnit = "rub"
	}
	if in.AdType == "" {
		in.AdType = "item"
	}

	ad := &domain.Ad{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		PriceUnit:   in.PriceUnit,
		AdType:      in.AdType,
		Condition:   in.Condition,
		District:    in.District,
		Address:     in.Address,
		Status:      "active",
		Category:    in.Category,
		UserID:      caller.UserID,
	}
	return repo.CreateAd(ctx, s.DB, ad, in.Photos)
}

// List returns active ads matching the filter as cards, newest first,
// annotated with the caller's favorite flags. Anonymous callers simply get
// is_favorite=false everywhere.
func (s *AdService) List(ctx context.Context, caller domain.Caller, f repo.AdFilter) ([]AdCard, error) {
	ads, err := repo.ListActiveAds(ctx, s.DB, f)
	if err != nil {
		return nil, err
	}
	return buildAdCards(ctx, s.DB, caller, ads)
}

// Get returns the full detail of one ad and increments its view counter.
// The returned view count includes this fetch.
func (s *AdService) Get(ctx context.Context, caller domain.Caller, id uint) (*AdDetail, error) {
	ad, err := repo.GetAd(ctx, s.DB, id)
	if err != nil {
		return nil, ErrAdNotFound
	}
	if err := repo.IncrementViews(ctx, s.DB, id); err != nil {
		return nil, err
	}
	ad.Views++

	photos, err := repo.ListPhotos(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(photos))
	for _, p := range photos {
		names = append(names, p.Filename)
	}

	fav := false
	if caller.Authenticated() {
		fav, err = repo.IsFavorite(ctx, s.DB, caller.UserID, id)
		if err != nil {
			return nil, err
		}
	}

	d := &AdDetail{
		AdCard: AdCard{
			ID:         ad.ID,
			Title:      ad.Title,
			Price:      ad.Price,
			PriceUnit:  ad.PriceUnit,
			District:   ad.District,
			CreatedAt:  ad.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			IsFavorite: fav,
		},
		Description: ad.Description,
		AdType:      ad.AdType,
		Condition:   ad.Condition,
		Address:     ad.Address,
		Views:       ad.Views,
		Status:      ad.Status,
		Category:    ad.Category,
		UserID:      ad.UserID,
		Photos:      names,
	}
	if len(names) > 0 {
		d.MainPhoto = names[0]
	}
	return d, nil
}

// Update applies a partial update to an ad the caller owns. Nil patch
// fields are left unchanged; a non-nil Photos slice is reconciled against
// the stored set. Field and photo writes share one transaction, and files
// for removed photos are deleted best-effort after the commit.
func (s *AdService) Update(ctx context.Context, caller domain.Caller, id uint, patch domain.AdPatch) error {
	if !caller.Authenticated() {
		return ErrUnauthorized
	}
	ad, err := repo.GetAd(ctx, s.DB, id)
	if err != nil {
		return ErrAdNotFound
	}
	if !CanEditAd(caller, ad) {
		return ErrForbidden
	}
	if patch.Price != nil && *patch.Price < 0 {
		return ErrNegativePrice
	}

	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		fields["description"] = strings.TrimSpace(*patch.Description)
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.PriceUnit != nil {
		fields["price_unit"] = *patch.PriceUnit
	}
	if patch.Condition != nil {
		fields["condition"] = *patch.Condition
	}
	if patch.District != nil {
		fields["district"] = strings.TrimSpace(*patch.District)
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	// Field and photo writes commit together or not at all.
	var removed []string
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdateAdFields(ctx, tx, id, fields); err != nil {
			return err
		}
		if patch.Photos != nil {
			removed, err = repo.ReplacePhotos(ctx, tx, id, *patch.Photos)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	cleanupBlobs(s.Blobs, removed)
	return nil
}

// Delete removes an ad the caller owns, with the full ordered cascade, and
// then cleans up the photo blobs.
func (s *AdService) Delete(ctx context.Context, caller domain.Caller, id uint) error {
	if !caller.Authenticated() {
		return ErrUnauthorized
	}
	ad, err := repo.GetAd(ctx, s.DB, id)
	if err != nil {
		return ErrAdNotFound
	}
	if !CanDeleteAd(caller, ad) {
		return ErrForbidden
	}
	files, err := repo.DeleteAdCascade(ctx, s.DB, id)
	if err != nil {
		return err
	}
	cleanupBlobs(s.Blobs, files)
	return nil
}

// buildAdCards builds the browsing DTOs for a slice of ads: batch-loads
// main photos and the caller's favorite set.
func buildAdCards(ctx context.Context, db *gorm.DB, caller domain.Caller, ads []domain.Ad) ([]AdCard, error) {
	ids := make([]uint, 0, len(ads))
	for _, ad := range ads {
		ids = append(ids, ad.ID)
	}
	mains, err := repo.MainPhotos(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	favs, err := repo.FavoriteSet(ctx, db, caller.UserID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]AdCard, 0, len(ads))
	for _, ad := range ads {
		out = append(out, AdCard{
			ID:         ad.ID,
			Title:      ad.Title,
			Price:      ad.Price,
			PriceUnit:  ad.PriceUnit,
			District:   ad.District,
			CreatedAt:  ad.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			MainPhoto:  mains[ad.ID],
			IsFavorite: favs[ad.ID],
		})
	}
	return out, nil
}

// cleanupBlobs deletes photo files after a successful commit. Failures are
// logged and swallowed: the rows are already gone and the operation has
// succeeded from the caller's point of view.
func cleanupBlobs(blobs BlobDeleter, files []string) {
	if blobs == nil {
		return
	}
	for _, name := range files {
		if err := blobs.Delete(name); err != nil {
			log.Warn().Err(err).Str("file", name).Msg("orphaned photo cleanup failed")
		}
	}
}
