// Package domain defines the persistence models for users, ads, photos,
// messages, reviews, favorites, and revoked session tokens. These types are
// mapped with GORM and form the core data layer of the marketplace backend.
package domain

import (
	"time"
)

// User represents a registered account. Each user owns zero or more ads,
// authors messages and reviews, and keeps a favorites set of ads.
//
// Fields:
//   - ID: autoincrement primary key.
//   - Name / LastName: display name parts.
//   - Email: unique login identifier.
//   - HashedPassword: bcrypt digest; the raw password is never stored.
//   - IsAdmin: administrator flag, read at token issuance time.
//   - CreatedAt: registration timestamp.
type User struct {
	ID             uint      `json:"id"         gorm:"primaryKey"`
	Name           string    `json:"name"       gorm:"type:varchar(100);not null"`
	LastName       string    `json:"last_name"  gorm:"type:varchar(100);not null"`
	Email          string    `json:"email"      gorm:"type:varchar(100);not null;uniqueIndex:ux_users_email"`
	HashedPassword string    `json:"-"          gorm:"type:varchar(255);not null"`
	IsAdmin        bool      `json:"is_admin"   gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Ad represents a classifieds listing (item or service) owned by exactly
// one user. Deleting an ad removes its photos and favorite markers and
// detaches messages and reviews that referenced it.
//
// Fields:
//   - Price: optional; nil means "price on request". PriceUnit qualifies it.
//   - AdType: "item" or "service".
//   - Views: monotonically incremented on every detail fetch.
//   - Status: lifecycle state; listings start "active".
type Ad struct {
	ID          uint      `json:"id"          gorm:"primaryKey"`
	Title       string    `json:"title"       gorm:"type:varchar(200);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Price       *float64  `json:"price"`
	PriceUnit   string    `json:"price_unit"  gorm:"type:varchar(20);not null;default:'rub'"`
	AdType      string    `json:"ad_type"     gorm:"type:varchar(20);not null;default:'item';check:ad_type IN ('item','service')"`
	Condition   string    `json:"condition"   gorm:"type:varchar(20)"`
	District    string    `json:"district"    gorm:"type:varchar(50);not null"`
	Address     string    `json:"address"     gorm:"type:varchar(100)"`
	Views       int       `json:"views"       gorm:"not null;default:0"`
	Status      string    `json:"status"      gorm:"type:varchar(20);not null;default:'active'"`
	Category    string    `json:"category"    gorm:"type:varchar(100)"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `json:"user_id"     gorm:"not null;index:idx_ads_owner"`

	// Owner is the posting user. Ads cannot outlive their owner.
	Owner User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Ad.
func (Ad) TableName() string { return "ads" }

// AdPhoto is a stored image reference attached to an ad. Insertion order is
// display order; the first photo is the listing's main photo.
type AdPhoto struct {
	ID       uint   `json:"id"       gorm:"primaryKey"`
	Filename string `json:"filename" gorm:"type:varchar(255);not null"`
	AdID     uint   `json:"ad_id"    gorm:"not null;index:idx_photos_ad"`

	// Ad is the owning listing. Photos are removed with it.
	Ad Ad `json:"-" gorm:"foreignKey:AdID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for AdPhoto.
func (AdPhoto) TableName() string { return "ad_photos" }

// Message is a single flat, append-only message between two distinct users,
// optionally in the context of an ad. There is no stored conversation
// entity; threads are derived by grouping on (ad, counterpart). Messages
// are immutable except for hard deletion by their sender.
type Message struct {
	ID          uint      `json:"id"           gorm:"primaryKey"`
	Body        string    `json:"body"         gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"   gorm:"index:idx_messages_created"`
	SenderID    uint      `json:"sender_id"    gorm:"not null;index:idx_messages_sender"`
	RecipientID uint      `json:"recipient_id" gorm:"not null;index:idx_messages_recipient"`
	AdID        *uint     `json:"ad_id"        gorm:"index:idx_messages_ad"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// Review is a rating left by one user on another, attached to the ad the
// exchange happened on. The (author_id, ad_id) pair is unique at the storage
// level, which closes the check-then-insert race on duplicate submissions.
// The target is fixed to the ad's owner at creation time.
type Review struct {
	ID           uint      `json:"id"             gorm:"primaryKey"`
	Rating       int       `json:"rating"         gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Text         string    `json:"text"           gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	AuthorID     uint      `json:"author_id"      gorm:"not null;uniqueIndex:ux_reviews_author_ad"`
	TargetUserID uint      `json:"target_user_id" gorm:"not null;index:idx_reviews_target"`
	AdID         *uint     `json:"ad_id"          gorm:"uniqueIndex:ux_reviews_author_ad"`
}

// TableName returns the database table name for Review.
func (Review) TableName() string { return "reviews" }

// Favorite is one row of the many-to-many user↔ad bookmark relation. The
// pair is unique; there is no payload beyond the timestamp.
type Favorite struct {
	ID        uint      `json:"id"      gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:ux_favorites_user_ad;index:idx_favorites_user"`
	AdID      uint      `json:"ad_id"   gorm:"not null;uniqueIndex:ux_favorites_user_ad;index:idx_favorites_ad"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Favorite.
func (Favorite) TableName() string { return "favorites" }

// RevokedToken is a durable blocklist entry for a session token identifier
// (jti). A token whose jti appears here is rejected even before its natural
// expiry. Rows are written on logout and consulted on every identity
// resolution and refresh.
type RevokedToken struct {
	ID        uint      `json:"id"  gorm:"primaryKey"`
	JTI       string    `json:"jti" gorm:"type:varchar(36);not null;index:idx_revoked_jti"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for RevokedToken.
func (RevokedToken) TableName() string { return "revoked_tokens" }
