// Package diversity implements diversity-bounded admission control for
// ordered candidate streams: a global cap on accepted documents plus a
// per-group cap for up to a bounded number of tracked groups.
package diversity

// Config holds the admission caps for one traversal. All four values are
// immutable for the lifetime of the Filter built from them. The Filter does
// not validate them; the layer that builds a Filter from query parameters
// does (see query/request).
type Config struct {
	// MaxTotal is the global cap on accepted documents.
	MaxTotal uint32
	// MaxPerGroup caps accepted documents sharing a group key, applied only
	// to tracked groups.
	MaxPerGroup uint32
	// MaxTrackedGroups bounds how many distinct group keys the filter will
	// hold counts for, independent of how many groups appear in the stream.
	MaxTrackedGroups uint32
	// Strict keeps per-group caps enforced for already-tracked groups after
	// the tracking table fills up. Non-strict abandons all per-group
	// accounting once the table is full.
	Strict bool
}

// Filter decides, per candidate document, whether it is admitted to the
// result set. Candidates must be presented in priority order; the filter
// only counts, it has no notion of relevance.
//
// A Filter is bound to a single traversal and is not safe for concurrent
// use. Accepted never blocks and never fails; every call is a plain
// boolean decision.
type Filter[K comparable] struct {
	cfg     Config
	groupOf func(docID uint32) K
	total   uint32
	tracked groupTable[K]
}

// NewFilter creates a Filter with the given caps. groupOf maps a document id
// to its group key; it must be deterministic for the traversal's duration.
func NewFilter[K comparable](cfg Config, groupOf func(docID uint32) K) *Filter[K] {
	return &Filter[K]{
		cfg:     cfg,
		groupOf: groupOf,
		tracked: newGroupTable[K](cfg.MaxTrackedGroups),
	}
}

// Accepted reports whether the candidate document is admitted. Admission
// order: global cap, then per-group accounting while the tracking table has
// room, then the overflow policy. A group arriving after the table is full
// is admitted uncapped under the strict policy rather than tracked or
// rejected; the non-strict policy stops consulting groups entirely once the
// table is full.
func (f *Filter[K]) Accepted(docID uint32) bool {
	if f.total >= f.cfg.MaxTotal {
		return false
	}
	room := f.tracked.Len() < int(f.cfg.MaxTrackedGroups)
	if !room && !f.cfg.Strict {
		return f.add()
	}
	group := f.groupOf(docID)
	if room {
		return f.conditionalAdd(f.tracked.Upsert(group))
	}
	count, ok := f.tracked.Lookup(group)
	if !ok {
		return f.add()
	}
	return f.conditionalAdd(count)
}

// TotalAccepted returns the number of admitted documents so far.
func (f *Filter[K]) TotalAccepted() uint32 { return f.total }

// Saturated reports whether the global cap is reached. Once true, every
// subsequent Accepted call returns false; callers use this to stop
// requesting candidates.
func (f *Filter[K]) Saturated() bool { return f.total >= f.cfg.MaxTotal }

// conditionalAdd admits the candidate only if its group is under the
// per-group cap.
func (f *Filter[K]) conditionalAdd(count *uint32) bool {
	if *count >= f.cfg.MaxPerGroup {
		return false
	}
	*count++
	f.total++
	return true
}

// add admits the candidate with no group-level control.
func (f *Filter[K]) add() bool {
	f.total++
	return true
}
