// Handler wiring and service contracts.
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results (including the service error taxonomy)
// into HTTP responses. All business rules live below this layer.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/http/middleware"
	"github.com/gorodok/go-market-backend/internal/repo"
	"github.com/gorodok/go-market-backend/internal/services"
	"github.com/gorodok/go-market-backend/internal/storage"
)

//
// Service contracts (context-aware)
//

// AuthService defines the account and session operations consumed by HTTP
// handlers. Implementations should be safe for concurrent use and must
// honor the provided context for cancellation and timeouts.
type AuthService interface {
	Register(ctx context.Context, name, lastName, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (access, refresh string, user *domain.User, err error)
	Refresh(ctx context.Context, refreshRaw string) (string, error)
	Logout(ctx context.Context, accessRaw, refreshRaw string) error
	CurrentUser(ctx context.Context, caller domain.Caller) (*domain.User, float64, error)
}

// AdService defines the listing lifecycle operations.
type AdService interface {
	Create(ctx context.Context, caller domain.Caller, in services.CreateAdInput) (*domain.Ad, error)
	List(ctx context.Context, caller domain.Caller, f repo.AdFilter) ([]services.AdCard, error)
	Get(ctx context.Context, caller domain.Caller, id uint) (*services.AdDetail, error)
	Update(ctx context.Context, caller domain.Caller, id uint, patch domain.AdPatch) error
	Delete(ctx context.Context, caller domain.Caller, id uint) error
}

// FavoriteService defines the bookmark operations.
type FavoriteService interface {
	Toggle(ctx context.Context, caller domain.Caller, adID uint) (bool, error)
	List(ctx context.Context, caller domain.Caller) ([]services.AdCard, error)
}

// MessageService defines messaging and thread derivation.
type MessageService interface {
	Send(ctx context.Context, caller domain.Caller, adID uint, body string, recipientID uint) (*domain.Message, error)
	ListChats(ctx context.Context, caller domain.Caller) ([]services.ChatSummary, error)
	GetConversation(ctx context.Context, caller domain.Caller, adID, partnerID uint) ([]services.ConversationMessage, error)
	Delete(ctx context.Context, caller domain.Caller, messageID uint) error
}

// ReviewService defines review creation and reputation reads.
type ReviewService interface {
	Create(ctx context.Context, caller domain.Caller, adID uint, rating int, text string) (*domain.Review, error)
	ListForUser(ctx context.Context, targetUserID uint) (*services.ReviewPage, error)
}

// AdminService defines the privileged moderation operations.
type AdminService interface {
	ListUsers(ctx context.Context, caller domain.Caller) ([]services.AdminUser, error)
	PromoteUser(ctx context.Context, caller domain.Caller, userID uint) error
	ListAds(ctx context.Context, caller domain.Caller) ([]services.AdminAd, error)
	DeleteAd(ctx context.Context, caller domain.Caller, adID uint) error
	ListReviews(ctx context.Context, caller domain.Caller) ([]services.AdminReview, error)
	DeleteReview(ctx context.Context, caller domain.Caller, reviewID uint) error
	DeleteUser(ctx context.Context, caller domain.Caller, userID uint) error
}

// BlobStore defines photo upload persistence.
type BlobStore interface {
	Store(r io.Reader, origName string) (string, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the public and moderation APIs.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	authSvc   AuthService
	adSvc     AdService
	favSvc    FavoriteService
	msgSvc    MessageService
	reviewSvc ReviewService
	adminSvc  AdminService
	blobs     BlobStore
}

// New constructs and returns a Handlers instance bound to the given services.
func New(authSvc AuthService, adSvc AdService, favSvc FavoriteService, msgSvc MessageService, reviewSvc ReviewService, adminSvc AdminService, blobs BlobStore) *Handlers {
	return &Handlers{
		authSvc:   authSvc,
		adSvc:     adSvc,
		favSvc:    favSvc,
		msgSvc:    msgSvc,
		reviewSvc: reviewSvc,
		adminSvc:  adminSvc,
		blobs:     blobs,
	}
}

// caller returns the identity resolved by the upstream middleware.
func caller(c *gin.Context) domain.Caller {
	return middleware.CallerFrom(c)
}

// failSvc maps a service taxonomy error to the matching HTTP response.
// Unknown errors become opaque 500s so internals never leak to clients.
func failSvc(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidSession),
		errors.Is(err, services.ErrBadCredentials):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		fail(c, http.StatusForbidden, ErrCodeForbidden, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAdNotFound),
		errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrReviewNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrDuplicateReview),
		errors.Is(err, services.ErrSelfReview):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrMissingAdFields),
		errors.Is(err, services.ErrNegativePrice),
		errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrRecipientRequired),
		errors.Is(err, services.ErrSelfMessage),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, storage.ErrUnsupportedType):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}
