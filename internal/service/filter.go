package service

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/glowmart/catalog-service/internal/domain"
	"github.com/glowmart/catalog-service/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// NormalizeListingQuery turns raw query parameters into a ListingFilter.
// Missing or malformed values fall back to defaults rather than erroring,
// so any listing URL yields a usable filter.
func NormalizeListingQuery(values url.Values) repository.ListingFilter {
	filter := repository.ListingFilter{
		Page:     parsePositiveInt(values.Get("page"), defaultPage),
		Limit:    parsePositiveInt(values.Get("limit"), defaultLimit),
		Search:   strings.TrimSpace(values.Get("search")),
		Gender:   strings.TrimSpace(values.Get("gender")),
		Category: strings.TrimSpace(values.Get("category")),
		Color:    strings.TrimSpace(values.Get("color")),
		Size:     strings.TrimSpace(values.Get("size")),
		Stock:    strings.TrimSpace(values.Get("stock")),
		Sort:     strings.TrimSpace(values.Get("sort")),
	}

	if filter.Sort == "" {
		filter.Sort = domain.SortLatest
	}

	return filter
}

func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// refineByColor keeps the products that carry a color variant matching name,
// compared case-insensitively after trimming. The page shrinks; totals are
// untouched.
func refineByColor(products []domain.ProductDetail, name string) []domain.ProductDetail {
	want := strings.ToLower(strings.TrimSpace(name))

	refined := []domain.ProductDetail{}
	for _, p := range products {
		for _, c := range p.Colors {
			if strings.ToLower(strings.TrimSpace(c.Name)) == want {
				refined = append(refined, p)
				break
			}
		}
	}
	return refined
}

// refineBySize keeps the products that carry at least one of the requested
// sizes. The parameter is a comma-separated list, e.g. "S,M,XL".
func refineBySize(products []domain.ProductDetail, sizes string) []domain.ProductDetail {
	wanted := map[string]struct{}{}
	for _, s := range strings.Split(sizes, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			wanted[s] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return products
	}

	refined := []domain.ProductDetail{}
	for _, p := range products {
		for _, s := range p.Sizes {
			if _, ok := wanted[strings.ToLower(strings.TrimSpace(s.Label))]; ok {
				refined = append(refined, p)
				break
			}
		}
	}
	return refined
}
