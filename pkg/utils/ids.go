package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderID generates a client-side order identifier ("HD" = hóa đơn).
// It is assigned when a cart is created and frozen once the cart locks.
func GenerateOrderID() string {
	return "HD-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateProductCode generates a unique product code for catalog entries
// created without an explicit SKU.
func GenerateProductCode() string {
	return "SP-" + strings.ToUpper(uuid.New().String()[:8])
}

var (
	nonSlugRe     = regexp.MustCompile("[^a-z0-9-]")
	multiHyphenRe = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugRe.ReplaceAllString(s, "")
	s = multiHyphenRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
