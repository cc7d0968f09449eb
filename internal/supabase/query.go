package supabase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Query builds one PostgREST call against a table. Used directly for
// the profiles table and for gallery metadata.
type Query struct {
	c       *Client
	table   string
	filters url.Values
}

// From starts a query on the given table.
func (c *Client) From(table string) *Query {
	return &Query{c: c, table: table, filters: url.Values{}}
}

// Eq adds an equality filter: col=eq.value.
func (q *Query) Eq(column, value string) *Query {
	q.filters.Add(column, "eq."+value)
	return q
}

// Order sorts the result by column; desc flips the direction.
func (q *Query) Order(column string, desc bool) *Query {
	dir := ".asc"
	if desc {
		dir = ".desc"
	}
	q.filters.Set("order", column+dir)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.filters.Set("limit", strconv.Itoa(n))
	return q
}

func (q *Query) endpoint() string {
	u := q.c.baseURL + "/rest/v1/" + url.PathEscape(q.table)
	if len(q.filters) > 0 {
		u += "?" + q.filters.Encode()
	}
	return u
}

// Select fetches matching rows into dest.
func (q *Query) Select(ctx context.Context, dest any) error {
	q.filters.Set("select", "*")
	return q.c.requestJSON(ctx, http.MethodGet, q.endpoint(), nil, nil, dest)
}

// Insert adds rows and decodes the stored representation into dest when
// dest is non-nil.
func (q *Query) Insert(ctx context.Context, rows, dest any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	return q.c.requestJSON(ctx, http.MethodPost, q.endpoint(), headers, rows, dest)
}

// Update patches matching rows with values, decoding the stored
// representation into dest when dest is non-nil.
func (q *Query) Update(ctx context.Context, values, dest any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	return q.c.requestJSON(ctx, http.MethodPatch, q.endpoint(), headers, values, dest)
}

// Delete removes matching rows.
func (q *Query) Delete(ctx context.Context) error {
	return q.c.requestJSON(ctx, http.MethodDelete, q.endpoint(), nil, nil, nil)
}
