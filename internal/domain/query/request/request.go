package request

import (
	"fmt"

	"github.com/divdex/divdex/internal/domain/query/direction"
)

// Query parameter limits.
const (
	DefaultMaxHits = 10
	MaxHits        = 1000
	// DefaultMaxPerGroup is the per-group cap applied when the caller asks
	// for diversity without specifying one.
	DefaultMaxPerGroup = 1
	// DefaultMaxGroups bounds the group-tracking table when unspecified.
	DefaultMaxGroups = 1024
	MaxGroups        = 65536
)

// Diversity holds validated group-cap parameters. Zero caps are defaulted
// here so the admission filter, which does not validate configuration, never
// sees them.
type Diversity struct {
	attribute   string
	maxPerGroup uint32
	maxGroups   uint32
	strict      bool
}

// NewDiversity validates and normalizes diversity parameters.
// Defaults: maxPerGroup=1, maxGroups=1024. maxGroups is clamped to MaxGroups.
func NewDiversity(attribute string, maxPerGroup, maxGroups int, strict bool) (Diversity, error) {
	if attribute == "" {
		return Diversity{}, fmt.Errorf("diversity attribute is required")
	}
	if maxPerGroup <= 0 {
		maxPerGroup = DefaultMaxPerGroup
	}
	if maxGroups <= 0 {
		maxGroups = DefaultMaxGroups
	}
	if maxGroups > MaxGroups {
		maxGroups = MaxGroups
	}
	return Diversity{
		attribute:   attribute,
		maxPerGroup: uint32(maxPerGroup),
		maxGroups:   uint32(maxGroups),
		strict:      strict,
	}, nil
}

// Attribute returns the grouping attribute name.
func (d Diversity) Attribute() string { return d.attribute }

// MaxPerGroup returns the per-group admission cap.
func (d Diversity) MaxPerGroup() uint32 { return d.maxPerGroup }

// MaxGroups returns the group-tracking table bound.
func (d Diversity) MaxGroups() uint32 { return d.maxGroups }

// Strict reports whether per-group caps stay enforced for tracked groups
// after the tracking table fills.
func (d Diversity) Strict() bool { return d.strict }

// Request is a validated range query over one attribute's dictionary order.
type Request struct {
	attribute string
	from      string
	to        string
	dir       direction.Direction
	maxHits   uint32
	diversity *Diversity
}

// New validates and normalizes query parameters.
// Defaults: direction=asc, maxHits=10. maxHits is clamped to MaxHits.
// Empty from/to bounds mean the start/end of the dictionary.
func New(
	attribute, from, to string,
	dir direction.Direction,
	maxHits int,
	diversity *Diversity,
) (Request, error) {
	if attribute == "" {
		return Request{}, fmt.Errorf("attribute is required")
	}
	if dir == "" {
		dir = direction.Asc
	}
	if !dir.IsValid() {
		return Request{}, fmt.Errorf("invalid direction: %q", dir)
	}
	if from != "" && to != "" && from > to {
		return Request{}, fmt.Errorf("from bound %q exceeds to bound %q", from, to)
	}
	if maxHits <= 0 {
		maxHits = DefaultMaxHits
	}
	if maxHits > MaxHits {
		maxHits = MaxHits
	}

	return Request{
		attribute: attribute,
		from:      from,
		to:        to,
		dir:       dir,
		maxHits:   uint32(maxHits),
		diversity: diversity,
	}, nil
}

// Attribute returns the attribute whose dictionary is traversed.
func (r *Request) Attribute() string { return r.attribute }

// From returns the inclusive lower value bound ("" = dictionary start).
func (r *Request) From() string { return r.from }

// To returns the inclusive upper value bound ("" = dictionary end).
func (r *Request) To() string { return r.to }

// Direction returns the traversal direction.
func (r *Request) Direction() direction.Direction { return r.dir }

// MaxHits returns the global cap on returned documents.
func (r *Request) MaxHits() uint32 { return r.maxHits }

// Diversity returns the group-cap parameters (nil when diversity is off).
func (r *Request) Diversity() *Diversity { return r.diversity }
