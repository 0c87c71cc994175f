package divdex

import (
	"context"
	"fmt"
	"time"

	"github.com/divdex/divdex/internal/domain/query/direction"
	"github.com/divdex/divdex/internal/domain/query/request"
)

// QueryBuilder is a fluent builder for diversity-bounded range queries.
type QueryBuilder struct {
	c *Client

	attribute string
	from, to  string
	dir       Direction
	limit     int

	diverseBy   string
	maxPerGroup int
	maxGroups   int
	strict      bool
}

// Attribute sets the attribute whose dictionary order is traversed.
func (b *QueryBuilder) Attribute(name string) *QueryBuilder {
	b.attribute = name
	return b
}

// From sets the inclusive lower value bound ("" = dictionary start).
func (b *QueryBuilder) From(v string) *QueryBuilder {
	b.from = v
	return b
}

// To sets the inclusive upper value bound ("" = dictionary end).
func (b *QueryBuilder) To(v string) *QueryBuilder {
	b.to = v
	return b
}

// Asc traverses the dictionary in ascending order (default).
func (b *QueryBuilder) Asc() *QueryBuilder {
	b.dir = Asc
	return b
}

// Desc traverses the dictionary in descending order.
func (b *QueryBuilder) Desc() *QueryBuilder {
	b.dir = Desc
	return b
}

// Limit sets the global cap on returned hits.
func (b *QueryBuilder) Limit(n int) *QueryBuilder {
	b.limit = n
	return b
}

// DiverseBy enables diversity on the given grouping attribute.
func (b *QueryBuilder) DiverseBy(attribute string) *QueryBuilder {
	b.diverseBy = attribute
	return b
}

// MaxPerGroup caps how many hits one group may contribute. Default: 1.
func (b *QueryBuilder) MaxPerGroup(n int) *QueryBuilder {
	b.maxPerGroup = n
	return b
}

// MaxGroups bounds the group-tracking table. Default: 1024.
func (b *QueryBuilder) MaxGroups(n int) *QueryBuilder {
	b.maxGroups = n
	return b
}

// Strict keeps per-group caps enforced for tracked groups even after the
// tracking table fills. Without it, overflow degrades to plain top-K.
func (b *QueryBuilder) Strict() *QueryBuilder {
	b.strict = true
	return b
}

// Do executes the query.
func (b *QueryBuilder) Do(ctx context.Context) (QueryResult, error) {
	start := time.Now()
	res, err := b.do(ctx)
	b.c.obs.observe("query", start, err)
	return res, err
}

func (b *QueryBuilder) do(ctx context.Context) (QueryResult, error) {
	var div *request.Diversity
	if b.diverseBy != "" {
		d, err := request.NewDiversity(b.diverseBy, b.maxPerGroup, b.maxGroups, b.strict)
		if err != nil {
			return QueryResult{}, fmt.Errorf("query: %w", err)
		}
		div = &d
	}

	req, err := request.New(
		b.attribute, b.from, b.to,
		direction.Direction(b.dir), b.limit, div,
	)
	if err != nil {
		return QueryResult{}, fmt.Errorf("query: %w", err)
	}

	hits, err := b.c.querySvc.Query(ctx, &req)
	if err != nil {
		return QueryResult{}, fmt.Errorf("query: %w", err)
	}

	out := QueryResult{
		Hits:      make([]SearchHit, 0, len(hits.All())),
		Total:     int(hits.Total()),
		Saturated: hits.Saturated(),
	}
	for _, h := range hits.All() {
		out.Hits = append(out.Hits, SearchHit{ID: h.ID(), Value: h.Value(), Group: h.Group()})
	}
	return out, nil
}
