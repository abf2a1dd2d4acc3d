package database

import (
	"context"
	"sync"
	"time"
)

// Memory keeps reports in process memory. Used when no database is configured.
type Memory struct {
	mu      sync.RWMutex
	reports map[string]*Report
}

func NewMemory() *Memory {
	return &Memory{reports: make(map[string]*Report)}
}

func (m *Memory) SaveReport(_ context.Context, r *Report) error {
	cp := *r
	cp.PDFData = append([]byte(nil), r.PDFData...)
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[r.ID] = &cp
	return nil
}

func (m *Memory) GetReport(_ context.Context, id string) (*Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reports[id]
	if !ok {
		return nil, ErrReportNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}
