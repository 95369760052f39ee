package supabase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
)

// Query builds a PostgREST read against one table.
type Query struct {
	client *Client
	table  string
	params url.Values
}

func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table, params: url.Values{}}
}

func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	return q
}

func (q *Query) Eq(column, value string) *Query {
	q.params.Add(column, "eq."+value)
	return q
}

func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.params.Set("order", column+"."+dir)
	return q
}

func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", strconv.Itoa(n))
	return q
}

// Execute runs the query and returns the JSON array of rows.
func (q *Query) Execute(ctx context.Context) (gjson.Result, error) {
	if !q.params.Has("select") {
		q.params.Set("select", "*")
	}

	body, err := q.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/rest/v1/" + q.table,
		query:  q.params,
		apiKey: q.client.serviceKey,
	})
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(body), nil
}

// Insert writes rows and returns them as stored.
func (c *Client) Insert(ctx context.Context, table string, rows any) (gjson.Result, error) {
	body, err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/rest/v1/" + table,
		apiKey:  c.serviceKey,
		body:    rows,
		headers: map[string]string{"Prefer": "return=representation"},
	})
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(body), nil
}
