package template

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidSlug = errors.New("invalid slug format")
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slug is the public URL key of a template.
type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if !slugRegex.MatchString(s) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

// GenerateSlug derives a slug from a business name plus a short random
// suffix so two businesses with the same name get distinct public URLs.
func GenerateSlug(businessName string) Slug {
	base := strings.ToLower(strings.TrimSpace(businessName))
	base = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "quote"
	}

	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err == nil {
		base = base + "-" + hex.EncodeToString(suffix)
	}
	return Slug{value: base}
}

func (s Slug) Value() string {
	return s.value
}

func (s Slug) IsEmpty() bool {
	return s.value == ""
}

// Branding holds the public form display settings.
type Branding struct {
	PrimaryColor string
}

const DefaultPrimaryColor = "#87A96B"

func NewBranding(primaryColor string) Branding {
	if strings.TrimSpace(primaryColor) == "" {
		primaryColor = DefaultPrimaryColor
	}
	return Branding{PrimaryColor: primaryColor}
}

// DefaultFooterText is forced on for free-tier owners when saving.
const DefaultFooterText = "This quote template was made on LushQuote. Create your own quotes instantly and streamline your business today!"
