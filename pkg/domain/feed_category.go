package domain

import dErrors "zoo/pkg/domain-errors"

// FeedCategory classifies a feed item.
// Invariant: the value must be one of the supported categories.
//
// Usage: construct via ParseFeedCategory at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type FeedCategory string

const (
	FeedCategoryMeat      FeedCategory = "meat"
	FeedCategoryPlant     FeedCategory = "plant"
	FeedCategoryProcessed FeedCategory = "processed"
	FeedCategoryOther     FeedCategory = "other"
)

var validFeedCategories = map[FeedCategory]bool{
	FeedCategoryMeat:      true,
	FeedCategoryPlant:     true,
	FeedCategoryProcessed: true,
	FeedCategoryOther:     true,
}

// ParseFeedCategory constructs a FeedCategory from external input.
func ParseFeedCategory(s string) (FeedCategory, error) {
	c := FeedCategory(s)
	if !validFeedCategories[c] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid feed category: "+s)
	}
	return c, nil
}

func (c FeedCategory) String() string {
	return string(c)
}

// Role distinguishes administrators from regular staff.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// IsAdmin reports whether the role carries administrator privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
