// Ad HTTP handlers.
//
// This file exposes REST endpoints for listing resources:
//   - GET    /ads        (browse active ads, filtered)
//   - GET    /ads/{id}   (detail, counts a view)
//   - POST   /ads        (create)
//   - PUT    /ads/{id}   (partial update, owner only)
//   - DELETE /ads/{id}   (delete with cascade, owner only)
//   - POST   /upload     (photo upload, multipart)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gorodok/go-market-backend/internal/domain"
	"github.com/gorodok/go-market-backend/internal/repo"
	"github.com/gorodok/go-market-backend/internal/services"
	"github.com/gorodok/go-market-backend/internal/utils"
)

//
// DTOs
//

// CreateAdRequest is the JSON payload for creating a listing.
type CreateAdRequest struct {
	Title       string   `json:"title" binding:"required" example:"Mountain bike"`
	Description string   `json:"description" binding:"required" example:"Barely used, 21 gears"`
	Price       *float64 `json:"price" example:"12000"`
	PriceUnit   string   `json:"price_unit" example:"rub"`
	AdType      string   `json:"ad_type" example:"item"`
	Condition   string   `json:"condition" example:"used"`
	District    string   `json:"district" binding:"required" example:"Central"`
	Address     string   `json:"address" example:"Lenina 5"`
	Category    string   `json:"category" example:"sport"`
	Photos      []string `json:"photos"`
}

// UpdateAdRequest is the JSON payload for a partial listing update. Absent
// fields are left unchanged; a present photos array replaces the whole set.
type UpdateAdRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	PriceUnit   *string   `json:"price_unit"`
	Condition   *string   `json:"condition"`
	District    *string   `json:"district"`
	Address     *string   `json:"address"`
	Category    *string   `json:"category"`
	Status      *string   `json:"status"`
	Photos      *[]string `json:"photos"`
}

// UploadResponse carries the stored reference of an uploaded photo.
type UploadResponse struct {
	Filename string `json:"filename"`
}

//
// Handlers
//

// ListAds godoc
// @ID          listAds
// @Summary     Browse active ads
// @Description Returns active ads newest first, optionally filtered. Favorite flags reflect the caller when authenticated.
// @Tags        Ads
// @Produce     json
//
// @Param       ad_type   query  string  false  "item|service|all"
// @Param       category  query  string  false  "Category filter"
// @Param       district  query  string  false  "District filter"
//
// @Success     200  {array}   services.AdCard
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ads [get]
func (h *Handlers) ListAds(c *gin.Context) {
	f := repo.AdFilter{
		AdType:   c.Query("ad_type"),
		Category: c.Query("category"),
		District: c.Query("district"),
	}
	cards, err := h.adSvc.List(c.Request.Context(), caller(c), f)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "internal error")
		return
	}
	ok(c, http.StatusOK, cards)
}

// GetAd godoc
// @ID          getAd
// @Summary     Ad detail
// @Description Returns the full listing and increments its view counter.
// @Tags        Ads
// @Produce     json
//
// @Param       id  path  int  true  "Ad ID"
//
// @Success     200  {object}  services.AdDetail
// @Failure     404  {object}  handlers.ErrorResponse  "Ad not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ads/{id} [get]
func (h *Handlers) GetAd(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "ad id must be a positive integer")
		return
	}
	d, err := h.adSvc.Get(c.Request.Context(), caller(c), uint(id))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// CreateAd godoc
// @ID          createAd
// @Summary     Create an ad
// @Description Creates an active listing owned by the caller, photos included, in one transaction.
// @Tags        Ads
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       body           body    handlers.CreateAdRequest  true  "New ad payload"
//
// @Success     201  {object}  domain.Ad
// @Failure     400  {object}  handlers.ErrorResponse  "Missing fields or negative price"
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ads [post]
func (h *Handlers) CreateAd(c *gin.Context) {
	var req CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	ad, err := h.adSvc.Create(c.Request.Context(), caller(c), services.CreateAdInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		PriceUnit:   req.PriceUnit,
		AdType:      req.AdType,
		Condition:   req.Condition,
		District:    req.District,
		Address:     req.Address,
		Category:    req.Category,
		Photos:      req.Photos,
	})
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusCreated, ad)
}

// UpdateAd godoc
// @ID          updateAd
// @Summary     Update an ad
// @Description Applies a partial update to an ad the caller owns. A present photos array replaces the stored set.
// @Tags        Ads
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       id             path    int     true  "Ad ID"
// @Param       body           body    handlers.UpdateAdRequest  true  "Patch payload"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the owner"
// @Failure     404  {object}  handlers.ErrorResponse  "Ad not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ads/{id} [put]
func (h *Handlers) UpdateAd(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "ad id must be a positive integer")
		return
	}
	var req UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	patch := domain.AdPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		PriceUnit:   req.PriceUnit,
		Condition:   req.Condition,
		District:    req.District,
		Address:     req.Address,
		Category:    req.Category,
		Status:      req.Status,
		Photos:      req.Photos,
	}
	if err := h.adSvc.Update(c.Request.Context(), caller(c), uint(id), patch); err != nil {
		failSvc(c, err)
		return
	}
	noContent(c)
}

// DeleteAd godoc
// @ID          deleteAd
// @Summary     Delete an ad
// @Description Removes an ad the caller owns, with its photos and favorite markers; messages and reviews keep their rows but lose the ad reference.
// @Tags        Ads
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       id             path    int     true  "Ad ID"
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the owner"
// @Failure     404  {object}  handlers.ErrorResponse  "Ad not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ads/{id} [delete]
func (h *Handlers) DeleteAd(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "ad id must be a positive integer")
		return
	}
	if err := h.adSvc.Delete(c.Request.Context(), caller(c), uint(id)); err != nil {
		failSvc(c, err)
		return
	}
	noContent(c)
}

// UploadPhoto godoc
// @ID          uploadPhoto
// @Summary     Upload an ad photo
// @Description Stores a photo under a generated name and returns the reference to embed in a subsequent ad create/update.
// @Tags        Ads
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       file           formData  file  true  "Photo file (png, jpg, jpeg)"
//
// @Success     201  {object}  handlers.UploadResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing file or unsupported type"
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /upload [post]
func (h *Handlers) UploadPhoto(c *gin.Context) {
	if !caller(c).Authenticated() {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "file field required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, "internal error")
		return
	}
	defer f.Close()

	name, err := h.blobs.Store(f, fh.Filename)
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusCreated, UploadResponse{Filename: name})
}
