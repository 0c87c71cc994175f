package divdex

import (
	"context"

	"github.com/divdex/divdex/internal/domain"
	domdoc "github.com/divdex/divdex/internal/domain/document"
	"github.com/divdex/divdex/internal/domain/query/request"
	"github.com/divdex/divdex/internal/domain/query/result"
	healthuc "github.com/divdex/divdex/internal/usecase/health"
)

// mockDocUC implements documentUseCase with an in-memory map.
type mockDocUC struct {
	docs     map[string]domdoc.Document
	ingested int

	ingestErr error
	getErr    error
	deleteErr error
}

func newMockDocUC() *mockDocUC {
	return &mockDocUC{docs: map[string]domdoc.Document{}}
}

func (m *mockDocUC) Ingest(_ context.Context, docs []domdoc.Document) (int, error) {
	if m.ingestErr != nil {
		return 0, m.ingestErr
	}
	for _, d := range docs {
		m.docs[d.ID()] = d
	}
	m.ingested += len(docs)
	return len(docs), nil
}

func (m *mockDocUC) Get(_ context.Context, id string) (domdoc.Document, error) {
	if m.getErr != nil {
		return domdoc.Document{}, m.getErr
	}
	d, ok := m.docs[id]
	if !ok {
		return domdoc.Document{}, domain.ErrDocumentNotFound
	}
	return d, nil
}

func (m *mockDocUC) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.docs[id]; !ok {
		return domain.ErrDocumentNotFound
	}
	delete(m.docs, id)
	return nil
}

// mockQueryUC implements queryUseCase.
type mockQueryUC struct {
	gotReq *request.Request
	hits   result.Hits
	err    error
}

func (m *mockQueryUC) Query(_ context.Context, req *request.Request) (result.Hits, error) {
	m.gotReq = req
	if m.err != nil {
		return result.Hits{}, m.err
	}
	return m.hits, nil
}

// mockHealthUC implements healthUseCase.
type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }

// newTestClient wires a Client around mocks, bypassing New().
func newTestClient(doc *mockDocUC, query *mockQueryUC, health *mockHealthUC) *Client {
	if doc == nil {
		doc = newMockDocUC()
	}
	if query == nil {
		query = &mockQueryUC{}
	}
	if health == nil {
		health = &mockHealthUC{}
	}
	return &Client{docSvc: doc, querySvc: query, healthSvc: health}
}
