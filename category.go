package skilledhelpers

import "strings"

// Category is the trade a worker is listed under.
// The wildcard used for unfiltered views is not a Category; see CategoryFilter.
type Category string

// Category constants.
const (
	Plumber     Category = "Plumber"
	Gardener    Category = "Gardener"
	Carpenter   Category = "Carpenter"
	Painter     Category = "Painter"
	Electrician Category = "Electrician"
	ArtsCrafts  Category = "Arts & Crafts"
	Others      Category = "Others"
)

var categories = []Category{
	Plumber,
	Gardener,
	Carpenter,
	Painter,
	Electrician,
	ArtsCrafts,
	Others,
}

// Categories returns every worker category.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

// Label returns the plural form used in listings, e.g. "Plumbers".
func (c Category) Label() string {
	switch c {
	case ArtsCrafts, Others:
		return string(c)
	case "":
		return ""
	}
	return string(c) + "s"
}

// ParseCategory resolves s to a Category, matching either the category
// value or its label case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(AllCategories)) {
		return "", Errorf(EINVALID, "%q is a filter, not a worker category", s)
	}
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return "", Errorf(EINVALID, "unknown category %q", s)
}

// CategoryFilter selects workers by category in listings.
// The zero value behaves like AllCategories.
type CategoryFilter string

// AllCategories is the wildcard filter.
const AllCategories CategoryFilter = "All"

// Only returns a filter matching exactly c.
func Only(c Category) CategoryFilter {
	return CategoryFilter(c)
}

// ParseCategoryFilter resolves s to a filter. Empty input and "all" select
// the wildcard.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(AllCategories)) {
		return AllCategories, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return "", err
	}
	return Only(c), nil
}

// IsAll reports whether f is the wildcard.
func (f CategoryFilter) IsAll() bool {
	return f == AllCategories || f == ""
}

// Category returns the selected category. ok is false for the wildcard.
func (f CategoryFilter) Category() (c Category, ok bool) {
	if f.IsAll() {
		return "", false
	}
	return Category(f), true
}

// Matches reports whether a worker listed under c passes the filter.
func (f CategoryFilter) Matches(c Category) bool {
	if f.IsAll() {
		return true
	}
	return Category(f) == c
}

// Label returns the heading used for the filter in listings.
func (f CategoryFilter) Label() string {
	if c, ok := f.Category(); ok {
		return c.Label()
	}
	return string(AllCategories)
}
