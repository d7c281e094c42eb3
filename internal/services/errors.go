// Package services defines the business logic for sessions, ads, favorites,
// conversations, reviews, and moderation. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// The values fall into the taxonomy the handlers translate to HTTP:
// validation (malformed input, never touches storage), auth (no or invalid
// session), forbidden (session present, insufficient rights), not-found
// (referenced entity absent), and conflict (uniqueness or business-rule
// violation). Anything else is treated as a storage failure.
package services

import (
	"errors"
	"strings"
)

// Session and identity errors.
var (
	// ErrUnauthorized is returned when an operation requires an
	// authenticated caller and none is present.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned when an authenticated caller lacks the
	// rights for the operation.
	ErrForbidden = errors.New("insufficient rights")

	// ErrInvalidSession is returned when a presented token is malformed,
	// expired, or revoked.
	ErrInvalidSession = errors.New("invalid or expired session")

	// ErrBadCredentials is returned on login with an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrBadCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrMissingFields is returned when registration input lacks name,
	// email, or password.
	ErrMissingFields = errors.New("name, email and password are required")
)

// Entity lookup errors.
var (
	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAdNotFound indicates the referenced ad does not exist.
	ErrAdNotFound = errors.New("ad not found")

	// ErrMessageNotFound indicates the referenced message does not exist.
	ErrMessageNotFound = errors.New("message not found")

	// ErrReviewNotFound indicates the referenced review does not exist.
	ErrReviewNotFound = errors.New("review not found")
)

// Listing errors.
var (
	// ErrMissingAdFields is returned when an ad lacks title, description,
	// or district.
	ErrMissingAdFields = errors.New("title, description and district are required")

	// ErrNegativePrice is returned when a price below zero is submitted.
	ErrNegativePrice = errors.New("price must not be negative")
)

// Conversation errors.
var (
	// ErrEmptyMessage is returned when a message body is blank.
	ErrEmptyMessage = errors.New("message body is empty")

	// ErrRecipientRequired is returned when the ad owner replies without
	// naming the recipient; the owner cannot know the counterpart
	// implicitly.
	ErrRecipientRequired = errors.New("ad owner must name the recipient when replying")

	// ErrSelfMessage is returned when the named recipient is the sender.
	ErrSelfMessage = errors.New("cannot message yourself")
)

// Reputation errors.
var (
	// ErrInvalidRating is returned when a rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrSelfReview is returned when a user reviews their own ad.
	ErrSelfReview = errors.New("cannot review your own ad")

	// ErrDuplicateReview is returned when the author already reviewed
	// this ad.
	ErrDuplicateReview = errors.New("review for this ad already exists")
)

// isUniqueViolation reports whether a storage error came from a unique
// index. The pure-Go sqlite driver surfaces these as textual constraint
// errors; services use this to translate races that slipped past their
// pre-checks into the proper conflict error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
