package services

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:marketsvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), db, "User", "Test", email, "digest")
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func seedAd(t *testing.T, db *gorm.DB, ownerID uint, title string, photos ...string) *domain.Ad {
	t.Helper()
	ad := &domain.Ad{
		Title:       title,
		Description: "desc",
		District:    "central",
		Status:      "active",
		AdType:      "item",
		PriceUnit:   "rub",
		UserID:      ownerID,
	}
	ad, err := repo.CreateAd(context.Background(), db, ad, photos)
	if err != nil {
		t.Fatalf("seed ad %s: %v", title, err)
	}
	return ad
}

// fakeBlobs records Delete calls so tests can assert blob cleanup happened
// after a commit.
type fakeBlobs struct {
	deleted []string
	fail    bool
}

func (f *fakeBlobs) Delete(name string) error {
	f.deleted = append(f.deleted, name)
	if f.fail {
		return fmt.Errorf("delete %s: boom", name)
	}
	return nil
}
