package handlers

import (
	"net/http"
	"testing"

	"github.com/gorodok/go-market-backend/internal/services"
)

func TestToggleFavorite_Alternates(t *testing.T) {
	env := newTestEnv(t)
	ownerToken, _ := env.registerAndLogin(t, "o@example.com")
	buyerToken, _ := env.registerAndLogin(t, "b@example.com")
	env.createAd(t, ownerToken, "Bike")

	for i, want := range []bool{true, false, true} {
		w := env.do(t, http.MethodPost, "/ads/1/favorite", buyerToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("toggle #%d status = %d", i, w.Code)
		}
		if got := decode[ToggleFavoriteResponse](t, w).IsFavorite; got != want {
			t.Fatalf("toggle #%d = %v; want %v", i, got, want)
		}
	}

	w := env.do(t, http.MethodPost, "/ads/1/favorite", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous toggle status = %d", w.Code)
	}
	w = env.do(t, http.MethodPost, "/ads/999/favorite", buyerToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing ad status = %d", w.Code)
	}
}

func TestListFavorites(t *testing.T) {
	env := newTestEnv(t)
	ownerToken, _ := env.registerAndLogin(t, "o@example.com")
	buyerToken, _ := env.registerAndLogin(t, "b@example.com")
	env.createAd(t, ownerToken, "Bike")
	env.createAd(t, ownerToken, "Chair")

	if w := env.do(t, http.MethodPost, "/ads/1/favorite", buyerToken, nil); w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", w.Code)
	}

	w := env.do(t, http.MethodGet, "/favorites", buyerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	cards := decode[[]services.AdCard](t, w)
	if len(cards) != 1 || cards[0].Title != "Bike" || !cards[0].IsFavorite {
		t.Fatalf("cards = %+v", cards)
	}

	w = env.do(t, http.MethodGet, "/favorites", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", w.Code)
	}
}
