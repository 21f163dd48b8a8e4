package data

import (
	"strings"
	"time"

	"github.com/pkos/librarium/internal/validator"
)

// SearchFilters holds the optional predicates of a catalog search. Empty
// substring fields match every record; zero year bounds take their defaults
// at query time via YearBounds.
type SearchFilters struct {
	Title    string
	Author   string
	Language string
	FromYear int
	ToYear   int
}

// YearBounds resolves the effective year range of a search. A missing lower
// bound defaults to MinYear and a missing upper bound defaults to the
// current calendar year, evaluated against now at request time.
func (sf SearchFilters) YearBounds(now time.Time) (int, int) {
	from, to := sf.FromYear, sf.ToYear
	if from == 0 {
		from = MinYear
	}
	if to == 0 {
		to = now.Year()
	}
	return from, to
}

func ValidateSearchFilters(v *validator.Validator, sf SearchFilters) {
	v.Check(sf.FromYear >= 0, "from", "must not be negative")
	v.Check(sf.ToYear >= 0, "to", "must not be negative")
	if sf.FromYear > 0 && sf.ToYear > 0 {
		v.Check(sf.FromYear <= sf.ToYear, "from", "must not be greater than to")
	}
}

// Filters holds pagination and sorting parameters for list queries.
type Filters struct {
	Page         int
	PageSize     int
	Sort         string
	SortSafeList []string
}

// SortColumn checks that the client-provided sort field is in the safelist
// and returns the column name with any leading hyphen stripped.
func (f Filters) SortColumn() string {
	for _, safeValue := range f.SortSafeList {
		if f.Sort == safeValue {
			return strings.TrimPrefix(f.Sort, "-")
		}
	}
	panic("unsafe sort parameter: " + f.Sort)
}

// SortDirection returns the sort direction ("ASC" or "DESC") depending on the
// prefix character of the Sort field.
func (f Filters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}
	return "ASC"
}

func (f Filters) Limit() int {
	return f.PageSize
}

func (f Filters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

func ValidateFilters(v *validator.Validator, f Filters) {
	v.Check(f.Page > 0, "page", "must be greater than zero")
	v.Check(f.Page <= 10_000_000, "page", "must be a maximum of 10 million")
	v.Check(f.PageSize > 0, "page_size", "must be greater than zero")
	v.Check(f.PageSize <= 100, "page_size", "must be a maximum of 100")
	v.Check(validator.PermittedValue(f.Sort, f.SortSafeList...), "sort", "invalid sort value")
}

// Metadata holds pagination metadata for list responses.
type Metadata struct {
	CurrentPage  int `json:"current_page,omitempty"`
	PageSize     int `json:"page_size,omitempty"`
	FirstPage    int `json:"first_page,omitempty"`
	LastPage     int `json:"last_page,omitempty"`
	TotalRecords int `json:"total_records,omitempty"`
}

// CalculateMetadata calculates the pagination metadata values given the total
// number of records, current page and page size.
func CalculateMetadata(totalRecords, page, pageSize int) Metadata {
	if totalRecords == 0 {
		return Metadata{}
	}
	return Metadata{
		CurrentPage:  page,
		PageSize:     pageSize,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		TotalRecords: totalRecords,
	}
}
