package validators

import (
	"strconv"
	"strings"

	slugify "github.com/gosimple/slug"
)

// SlugExistsFunc reports whether a candidate store slug is already taken.
type SlugExistsFunc func(slug string) (bool, error)

// MakeStoreSlug derives a url-safe slug from a store name.
func MakeStoreSlug(storeName string) string {
	return slugify.Make(strings.TrimSpace(storeName))
}

// EnsureUniqueSlug appends numeric suffixes ("-1", "-2", ...) to base until
// exists reports the candidate free. Two sellers registering the same store
// name end up with distinct, deterministic slugs.
func EnsureUniqueSlug(base string, exists SlugExistsFunc) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}
