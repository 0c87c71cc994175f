package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status      Status
	Checks      map[string]CheckResult
	IndexedDocs int
	IndexReady  bool
	RebuiltAt   time.Time // zero when the index was never rebuilt
}

// Service coordinates health checks.
type Service struct {
	db    DBPinger
	index SnapshotProvider
}

// New creates a Service.
func New(db DBPinger, index SnapshotProvider) *Service {
	return &Service{db: db, index: index}
}

// Check runs health checks against all components. A missing index snapshot
// is reported but does not degrade the status: the service starts empty.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	report := Report{Checks: checks, Status: Healthy}
	if snapshot := s.index.Snapshot(); snapshot != nil {
		report.IndexReady = true
		report.IndexedDocs = snapshot.NumDocs()
	}
	if t, err := s.index.RebuiltAt(ctx); err == nil {
		report.RebuiltAt = t
	}

	for _, v := range checks {
		if v == CheckError {
			report.Status = Degraded
			break
		}
	}
	return report
}
