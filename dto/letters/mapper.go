package letters

import (
	"strings"
	"time"

	"esuka/dto"
	"esuka/services"
)

// parseDate reads a YYYY-MM-DD value. Invalid input yields the zero time,
// callers validate first.
func parseDate(value string) time.Time {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ListRequest is the query string shared by the active mail lists.
type ListRequest struct {
	Q     string `query:"q"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

func (r *ListRequest) ToQuery() services.ListQuery {
	return services.ListQuery{Query: strings.TrimSpace(r.Q), Page: r.Page, Limit: r.Limit}
}
