package queries

import (
	"fmt"
	"net/url"
	"strconv"
)

// TotalPages is the page count for a result set of the given size.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Links builds first/prev/next/last navigation URLs against the given base,
// carrying the caller's filter criteria and limit while varying skip.
func (q Query) Links(baseURL string, total int64) map[string]string {
	links := map[string]string{}
	if total == 0 {
		return links
	}

	lastSkip := (TotalPages(total, q.Limit) - 1) * q.Limit

	links["first"] = q.pageURL(baseURL, 0)
	links["last"] = q.pageURL(baseURL, lastSkip)
	if q.Skip > 0 {
		prev := q.Skip - q.Limit
		if prev < 0 {
			prev = 0
		}
		links["prev"] = q.pageURL(baseURL, prev)
	}
	if q.Skip+q.Limit < total {
		links["next"] = q.pageURL(baseURL, q.Skip+q.Limit)
	}

	return links
}

func (q Query) pageURL(baseURL string, skip int64) string {
	params := url.Values{}
	for key, vals := range q.criteriaValues {
		params[key] = vals
	}
	params.Set("limit", strconv.FormatInt(q.Limit, 10))
	params.Set("skip", strconv.FormatInt(skip, 10))
	return fmt.Sprintf("%s?%s", baseURL, params.Encode())
}
