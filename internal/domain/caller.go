package domain

// Caller is the authenticated identity resolved from the access token for
// one request. A zero UserID means the request is anonymous. Admin mirrors
// the token's admin claim, which is minted at issuance time: a promotion
// becomes visible only after the user obtains a fresh token.
//
// Caller is passed explicitly into every service operation instead of being
// read from ambient request state.
type Caller struct {
	UserID uint
	Admin  bool
}

// Anonymous is the identity of an unauthenticated request.
var Anonymous = Caller{}

// Authenticated reports whether the caller carries a resolved user identity.
func (c Caller) Authenticated() bool { return c.UserID != 0 }

// AdPatch is a partial update for an ad. A nil field means "leave
// unchanged"; a non-nil field replaces the stored value (including setting
// it to the zero value). Photos, when non-nil, is the complete desired
// photo set and is reconciled against the stored one.
type AdPatch struct {
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
