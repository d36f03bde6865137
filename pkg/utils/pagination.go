package utils

import (
	"net/http"
	"net/url"
	"strconv"
)

const PageQueryParam = "page"

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// ParsePage reads the 1-based page number from the query string. A missing
// value means the first page; anything that is not a positive integer
// fails with ErrInvalidPage.
func ParsePage(r *http.Request) (int, error) {
	value := r.URL.Query().Get(PageQueryParam)
	if value == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 0, ErrInvalidPage
	}

	return page, nil
}

// CheckPage fails with ErrInvalidPage when page lies past the last page. The
// first page always exists, even for an empty listing.
func CheckPage(page, perPage int, total int64) error {
	if page == 1 {
		return nil
	}
	if page > CalculateTotalPages(total, perPage) {
		return ErrInvalidPage
	}
	return nil
}

// PageLinks returns absolute URLs of the pages around page, nil where there
// is none. The link to the first page drops the page parameter.
func PageLinks(r *http.Request, page, perPage int, total int64) (next, previous *string) {
	totalPages := CalculateTotalPages(total, perPage)

	if page < totalPages {
		link := pageURL(r, page+1)
		next = &link
	}
	if page > 1 {
		link := pageURL(r, page-1)
		previous = &link
	}

	return next, previous
}

func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	query := r.URL.Query()
	if page <= 1 {
		query.Del(PageQueryParam)
	} else {
		query.Set(PageQueryParam, strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: query.Encode(),
	}
	return u.String()
}
