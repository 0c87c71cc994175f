package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/divdex/divdex/internal/index"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(context.Context) error { return p.err }

type fakeSnapshots struct {
	idx       *index.Index
	rebuiltAt time.Time
}

func (s *fakeSnapshots) Snapshot() *index.Index { return s.idx }

func (s *fakeSnapshots) RebuiltAt(context.Context) (time.Time, error) {
	return s.rebuiltAt, nil
}

func builtIndex(t *testing.T) *index.Index {
	t.Helper()
	b := index.NewBuilder()
	b.AddDocument("d1", map[string]string{"seller": "acme"})
	return b.Build()
}

func TestCheck_AllHealthy(t *testing.T) {
	rebuilt := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	svc := New(&fakePinger{}, &fakeSnapshots{idx: builtIndex(t), rebuiltAt: rebuilt})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("Status = %q", report.Status)
	}
	if report.Checks["database"] != CheckOK {
		t.Errorf("database check = %q", report.Checks["database"])
	}
	if !report.IndexReady {
		t.Error("IndexReady = false")
	}
	if report.IndexedDocs != 1 {
		t.Errorf("IndexedDocs = %d", report.IndexedDocs)
	}
	if !report.RebuiltAt.Equal(rebuilt) {
		t.Errorf("RebuiltAt = %v", report.RebuiltAt)
	}
}

func TestCheck_DatabaseDown(t *testing.T) {
	svc := New(&fakePinger{err: errors.New("refused")}, &fakeSnapshots{})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("Status = %q, want degraded", report.Status)
	}
	if report.Checks["database"] != CheckError {
		t.Errorf("database check = %q", report.Checks["database"])
	}
}

func TestCheck_EmptyIndexStaysHealthy(t *testing.T) {
	svc := New(&fakePinger{}, &fakeSnapshots{})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("Status = %q", report.Status)
	}
	if report.IndexReady {
		t.Error("IndexReady = true without a snapshot")
	}
}
