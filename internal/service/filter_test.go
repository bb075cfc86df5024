package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glowmart/catalog-service/internal/domain"
	"github.com/glowmart/catalog-service/internal/repository"
)

func TestNormalizeListingQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected repository.ListingFilter
	}{
		{
			name:  "empty query uses defaults",
			query: "",
			expected: repository.ListingFilter{
				Page: 1, Limit: 10, Sort: domain.SortLatest,
			},
		},
		{
			name:  "all parameters",
			query: "page=3&limit=24&search=shirt&gender=men&category=shirts&color=navy&size=M,L&stock=available&sort=price_asc",
			expected: repository.ListingFilter{
				Page: 3, Limit: 24, Search: "shirt", Gender: "men",
				Category: "shirts", Color: "navy", Size: "M,L",
				Stock: domain.StockAvailable, Sort: domain.SortPriceAsc,
			},
		},
		{
			name:  "non-numeric page and limit fall back",
			query: "page=abc&limit=xyz",
			expected: repository.ListingFilter{
				Page: 1, Limit: 10, Sort: domain.SortLatest,
			},
		},
		{
			name:  "zero and negative values fall back",
			query: "page=0&limit=-5",
			expected: repository.ListingFilter{
				Page: 1, Limit: 10, Sort: domain.SortLatest,
			},
		},
		{
			name:  "values are trimmed",
			query: "search=+jacket+&gender=+women+",
			expected: repository.ListingFilter{
				Page: 1, Limit: 10, Search: "jacket", Gender: "women", Sort: domain.SortLatest,
			},
		},
		{
			name:  "unknown sort passes through",
			query: "sort=alphabetical",
			expected: repository.ListingFilter{
				Page: 1, Limit: 10, Sort: "alphabetical",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, NormalizeListingQuery(values))
		})
	}
}

func TestNormalizeListingQuery_OffsetFollowsPage(t *testing.T) {
	values, _ := url.ParseQuery("page=4&limit=25")
	filter := NormalizeListingQuery(values)
	assert.Equal(t, 75, filter.Offset())
}

func detailWithColor(id int64, colorName string) domain.ProductDetail {
	return domain.ProductDetail{
		Product: domain.Product{ID: id},
		Images:  []domain.Image{},
		Colors:  []domain.Color{{ID: id * 10, ProductID: id, Name: colorName}},
		Sizes:   []domain.Size{},
	}
}

func detailWithSizes(id int64, labels ...string) domain.ProductDetail {
	sizes := make([]domain.Size, len(labels))
	for i, l := range labels {
		sizes[i] = domain.Size{ID: id*10 + int64(i), ProductID: id, Label: l}
	}
	return domain.ProductDetail{
		Product: domain.Product{ID: id},
		Images:  []domain.Image{},
		Colors:  []domain.Color{},
		Sizes:   sizes,
	}
}

func TestRefineByColor_CaseAndSpaceInsensitive(t *testing.T) {
	details := []domain.ProductDetail{
		detailWithColor(1, "Navy"),
		detailWithColor(2, " navy "),
		detailWithColor(3, "Olive"),
	}

	refined := refineByColor(details, "NAVY")
	assert.Len(t, refined, 2)
	assert.Equal(t, int64(1), refined[0].ID)
	assert.Equal(t, int64(2), refined[1].ID)
}

func TestRefineByColor_NoMatchesYieldsEmptySlice(t *testing.T) {
	details := []domain.ProductDetail{detailWithColor(1, "Olive")}

	refined := refineByColor(details, "navy")
	assert.NotNil(t, refined)
	assert.Empty(t, refined)
}

func TestRefineBySize_CommaSeparatedSetMembership(t *testing.T) {
	details := []domain.ProductDetail{
		detailWithSizes(1, "S", "M"),
		detailWithSizes(2, "L"),
		detailWithSizes(3, "XL"),
	}

	refined := refineBySize(details, "m, xl")
	assert.Len(t, refined, 2)
	assert.Equal(t, int64(1), refined[0].ID)
	assert.Equal(t, int64(3), refined[1].ID)
}

func TestRefineBySize_BlankEntriesIgnored(t *testing.T) {
	details := []domain.ProductDetail{
		detailWithSizes(1, "S"),
		detailWithSizes(2, "M"),
	}

	// A parameter of only separators refines nothing.
	refined := refineBySize(details, " , ,")
	assert.Len(t, refined, 2)
}
