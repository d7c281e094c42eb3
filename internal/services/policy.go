// Package services – authorization policy
//
// Pure decision functions over in-memory values, no side effects and no
// storage access. Handlers and services call these before mutating
// anything; the caller decides whether a negative answer maps to an auth
// error (no session) or a forbidden error (session without rights).
//
// Administrators get no bypass here: ownership rules apply to them like to
// everyone else, and admin powers are exposed only through the separate
// moderation operations gated by CanModerate.
package services

import (
	"github.com/gorodok/go-market-backend/internal/domain"
)

// CanEditAd reports whether the caller may modify the ad: they must be
// authenticated and own it.
func CanEditAd(caller domain.Caller, ad *domain.Ad) bool {
	return caller.Authenticated() && caller.UserID == ad.UserID
}

// CanDeleteAd mirrors CanEditAd; deletion needs the same ownership.
func CanDeleteAd(caller domain.Caller, ad *domain.Ad) bool {
	return CanEditAd(caller, ad)
}

// CanDeleteMessage reports whether the caller may delete the message.
// Only the sender may; the recipient cannot.
func CanDeleteMessage(caller domain.Caller, msg *domain.Message) bool {
	return caller.Authenticated() && caller.UserID == msg.SenderID
}

// CanReviewAd reports whether the caller may leave a review on the ad:
// authenticated, not the ad's owner, and not already on record for it.
func CanReviewAd(caller domain.Caller, ad *domain.Ad, alreadyReviewed bool) bool {
	return caller.Authenticated() && caller.UserID != ad.UserID && !alreadyReviewed
}

// CanModerate gates the privileged operation set (list users, promote,
// delete any ad or review). The flag comes from the token claim, so it is
// as fresh as the caller's session.
func CanModerate(caller domain.Caller) bool {
	return caller.Authenticated() && caller.Admin
}
