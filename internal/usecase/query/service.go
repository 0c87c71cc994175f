// Package query executes diversity-bounded range queries over the index
// snapshot.
package query

import (
	"context"
	"fmt"

	"github.com/divdex/divdex/internal/domain"
	"github.com/divdex/divdex/internal/domain/diversity"
	"github.com/divdex/divdex/internal/domain/query/direction"
	"github.com/divdex/divdex/internal/domain/query/request"
	"github.com/divdex/divdex/internal/domain/query/result"
	"github.com/divdex/divdex/internal/index"
	"github.com/divdex/divdex/internal/metrics"
)

// Service runs queries against the current index snapshot. One admission
// filter is built per query; snapshots are immutable, so concurrent queries
// share nothing mutable.
type Service struct {
	index SnapshotProvider
}

// New creates a query service.
func New(index SnapshotProvider) *Service {
	return &Service{index: index}
}

// Query traverses the requested attribute's dictionary order within the
// requested bounds and direction, admitting documents through the diversity
// filter until the stream ends or the global cap is reached.
func (s *Service) Query(ctx context.Context, req *request.Request) (result.Hits, error) {
	idx := s.index.Snapshot()
	if idx == nil {
		return result.Hits{}, domain.ErrIndexNotReady
	}

	attr, ok := idx.Attribute(req.Attribute())
	if !ok {
		return result.Hits{}, fmt.Errorf("%w: %q", domain.ErrUnknownAttribute, req.Attribute())
	}

	cfg := diversity.Config{MaxTotal: req.MaxHits()}
	groupOf := func(uint32) string { return "" }
	var groupAttr *index.Attribute
	diversityLabel := "off"

	if div := req.Diversity(); div != nil {
		groupAttr, ok = idx.Attribute(div.Attribute())
		if !ok {
			return result.Hits{}, fmt.Errorf("%w: %q", domain.ErrUnknownAttribute, div.Attribute())
		}
		cfg.MaxPerGroup = div.MaxPerGroup()
		cfg.MaxTrackedGroups = div.MaxGroups()
		cfg.Strict = div.Strict()
		// Documents without the grouping attribute all land on the ""
		// group; the filter treats it like any other key.
		groupOf = groupAttr.ValueOf
		diversityLabel = "on"
	}

	filter := diversity.NewFilter(cfg, groupOf)

	var accepted []uint32
	var rejected uint64
	yield := func(docID uint32) bool {
		if filter.Accepted(docID) {
			accepted = append(accepted, docID)
		} else {
			rejected++
		}
		return !filter.Saturated()
	}

	dict := attr.Dictionary()
	lo, hi := dict.Bounds(req.From(), req.To())
	switch req.Direction() {
	case direction.Desc:
		dict.EachReverse(diversity.NewReverseRange(lo, hi), yield)
	default:
		dict.EachForward(diversity.NewForwardRange(lo, hi), yield)
	}

	metrics.QueriesTotal.WithLabelValues(string(req.Direction()), diversityLabel).Inc()
	metrics.AdmissionDecisionsTotal.WithLabelValues("accepted").Add(float64(len(accepted)))
	metrics.AdmissionDecisionsTotal.WithLabelValues("rejected").Add(float64(rejected))
	if filter.Saturated() {
		metrics.QuerySaturatedTotal.Inc()
	}

	hits := make([]result.Hit, len(accepted))
	for i, docID := range accepted {
		group := ""
		if groupAttr != nil {
			group = groupAttr.ValueOf(docID)
		}
		hits[i] = result.NewHit(idx.ExternalID(docID), attr.ValueOf(docID), group)
	}
	return result.NewHits(hits, filter.TotalAccepted(), filter.Saturated()), nil
}
