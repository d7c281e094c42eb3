// Message HTTP handlers.
//
// This file exposes REST endpoints for the conversation component:
//   - POST   /messages                    (send)
//   - GET    /chats                       (derived thread summaries)
//   - GET    /chats/{adID}/{partnerID}    (full thread)
//   - DELETE /messages/{id}               (sender-only delete)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gorodok/go-market-backend/internal/utils"
)

// SendMessageRequest is the JSON payload for sending a message. When
// recipient_id is omitted the ad's owner is implied; the owner replying
// must always set it.
type SendMessageRequest struct {
	AdID        uint   `json:"ad_id" binding:"required" example:"17"`
	Body        string `json:"body" binding:"required" example:"Is it still available?"`
	RecipientID uint   `json:"recipient_id" example:"3"`
}

// SendMessage godoc
// @ID          sendMessage
// @Summary     Send a message
// @Description Appends a message about an ad. Omitting recipient_id addresses the ad's owner; the owner must name the counterpart explicitly.
// @Tags        Messages
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       body           body    handlers.SendMessageRequest  true  "Message payload"
//
// @Success     201  {object}  domain.Message
// @Failure     400  {object}  handlers.ErrorResponse  "Empty body, missing recipient, or self-message"
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     404  {object}  handlers.ErrorResponse  "Ad not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages [post]
func (h *Handlers) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	m, err := h.msgSvc.Send(c.Request.Context(), caller(c), req.AdID, req.Body, req.RecipientID)
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusCreated, m)
}

// ListChats godoc
// @ID          listChats
// @Summary     List chat threads
// @Description Returns the caller's derived thread summaries, most recently active first, one per (ad, counterpart) pair.
// @Tags        Messages
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
//
// @Success     200  {array}   services.ChatSummary
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chats [get]
func (h *Handlers) ListChats(c *gin.Context) {
	chats, err := h.msgSvc.ListChats(c.Request.Context(), caller(c))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, chats)
}

// GetConversation godoc
// @ID          getConversation
// @Summary     Get a conversation
// @Description Returns the full thread between the caller and a counterpart about one ad, oldest first.
// @Tags        Messages
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       adID           path    int     true  "Ad ID"
// @Param       partnerID      path    int     true  "Counterpart user ID"
//
// @Success     200  {array}   services.ConversationMessage
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chats/{adID}/{partnerID} [get]
func (h *Handlers) GetConversation(c *gin.Context) {
	adID := utils.AtoiDefault(c.Param("adID"), 0)
	partnerID := utils.AtoiDefault(c.Param("partnerID"), 0)
	if adID <= 0 || partnerID <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "ad and partner ids must be positive integers")
		return
	}
	msgs, err := h.msgSvc.GetConversation(c.Request.Context(), caller(c), uint(adID), uint(partnerID))
	if err != nil {
		failSvc(c, err)
		return
	}
	ok(c, http.StatusOK, msgs)
}

// DeleteMessage godoc
// @ID          deleteMessage
// @Summary     Delete a message
// @Description Removes a message the caller sent. Recipients cannot delete.
// @Tags        Messages
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer access token"
// @Param       id             path    int     true  "Message ID"
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Authentication required"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the sender"
// @Failure     404  {object}  handlers.ErrorResponse  "Message not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages/{id} [delete]
func (h *Handlers) DeleteMessage(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message id must be a positive integer")
		return
	}
	if err := h.msgSvc.Delete(c.Request.Context(), caller(c), uint(id)); err != nil {
		failSvc(c, err)
		return
	}
	noContent(c)
}
