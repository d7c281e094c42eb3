package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sqlite "github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gorodok/go-market-backend/internal/auth"
	"github.com/gorodok/go-market-backend/internal/http/middleware"
	"github.com/gorodok/go-market-backend/internal/repo"
	"github.com/gorodok/go-market-backend/internal/services"
	"github.com/gorodok/go-market-backend/internal/storage"
)

// testEnv wires real services over an in-memory database behind the same
// route table the server mounts, minus the observability middleware.
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	blobs  *storage.Local
}

func newHandlersDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:market_handlers_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newHandlersDB(t)
	blobs, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	codec := auth.NewCodec("test-access", "test-refresh", time.Minute, time.Hour)
	authSvc := &services.AuthService{DB: db, Codec: codec, BcryptCost: bcrypt.MinCost}
	h := New(
		authSvc,
		&services.AdService{DB: db, Blobs: blobs},
		&services.FavoriteService{DB: db},
		&services.MessageService{DB: db},
		&services.ReviewService{DB: db},
		&services.AdminService{DB: db, Blobs: blobs},
		blobs,
	)

	r := gin.New()
	r.Use(middleware.Identity(authSvc))

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.RefreshToken)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.Me)

	r.GET("/ads", h.ListAds)
	r.GET("/ads/:id", h.GetAd)
	r.POST("/ads", h.CreateAd)
	r.PUT("/ads/:id", h.UpdateAd)
	r.DELETE("/ads/:id", h.DeleteAd)
	r.POST("/upload", h.UploadPhoto)

	r.POST("/ads/:id/favorite", h.ToggleFavorite)
	r.GET("/favorites", h.ListFavorites)

	r.POST("/messages", h.SendMessage)
	r.GET("/chats", h.ListChats)
	r.GET("/chats/:adID/:partnerID", h.GetConversation)
	r.DELETE("/messages/:id", h.DeleteMessage)

	r.POST("/reviews", h.CreateReview)
	r.GET("/users/:id/reviews", h.ListUserReviews)

	r.GET("/admin/users", h.AdminListUsers)
	r.PUT("/admin/users/:id/promote", h.AdminPromoteUser)
	r.DELETE("/admin/users/:id", h.AdminDeleteUser)
	r.GET("/admin/ads", h.AdminListAds)
	r.DELETE("/admin/ads/:id", h.AdminDeleteAd)
	r.GET("/admin/reviews", h.AdminListReviews)
	r.DELETE("/admin/reviews/:id", h.AdminDeleteReview)

	return &testEnv{db: db, router: r, blobs: blobs}
}

// do performs one request against the test router. A non-nil body is sent as
// JSON; a non-empty token goes out as a bearer header.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerAndLogin creates an account through the API and returns a live
// access token and the user id.
func (e *testEnv) registerAndLogin(t *testing.T, email string) (token string, userID uint) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/auth/register", "", RegisterRequest{
		Name: "User", LastName: "Test", Email: email, Password: "pw",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}
	u := decode[UserResponse](t, w)

	w = e.do(t, http.MethodPost, "/auth/login", "", LoginRequest{Email: email, Password: "pw"})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}
	pair := decode[TokenPairResponse](t, w)
	return pair.AccessToken, u.ID
}

// loginAsAdmin registers an account, flips its admin flag directly, and logs
// in again so the token carries the claim.
func (e *testEnv) loginAsAdmin(t *testing.T, email string) (token string, userID uint) {
	t.Helper()
	_, id := e.registerAndLogin(t, email)
	if err := repo.SetAdmin(context.Background(), e.db, id, true); err != nil {
		t.Fatalf("SetAdmin: %v", err)
	}
	w := e.do(t, http.MethodPost, "/auth/login", "", LoginRequest{Email: email, Password: "pw"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: status %d", w.Code)
	}
	return decode[TokenPairResponse](t, w).AccessToken, id
}

// createAd posts a minimal listing and returns its id.
func (e *testEnv) createAd(t *testing.T, token, title string, photos ...string) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/ads", token, CreateAdRequest{
		Title: title, Description: "desc", District: "central", Photos: photos,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create ad: status %d body %s", w.Code, w.Body.String())
	}
	return decode[struct {
		ID uint `json:"id"`
	}](t, w).ID
}

// multipartUpload builds a multipart body with one "file" part.
func multipartUpload(t *testing.T, filename string, content []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}
