// Package testutil provides testing utilities for go-batchkit.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// PageSource is a configurable in-memory paginated data source for testing.
// It serves a fixed int dataset through a PageReader-compatible Read method
// and records every call.
type PageSource struct {
	data []int

	mu      sync.Mutex
	calls   int
	offsets []int
	limits  []int

	// Delay is slept before serving each read.
	Delay time.Duration

	// FailAtOffset makes reads starting at this offset fail. Negative
	// disables failure injection.
	FailAtOffset int
}

// NewPageSource creates a source serving the dataset [0, total).
func NewPageSource(total int) *PageSource {
	data := make([]int, total)
	for i := range data {
		data[i] = i
	}
	return &PageSource{
		data:         data,
		FailAtOffset: -1,
	}
}

// Read serves one page. It satisfies pagination.PageReader[int].
func (s *PageSource) Read(ctx context.Context, offset, limit int) ([]int, error) {
	s.mu.Lock()
	s.calls++
	s.offsets = append(s.offsets, offset)
	s.limits = append(s.limits, limit)
	s.mu.Unlock()

	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	if s.FailAtOffset >= 0 && offset == s.FailAtOffset {
		return nil, fmt.Errorf("injected failure at offset %d", offset)
	}

	if offset < 0 || offset > len(s.data) {
		return nil, fmt.Errorf("offset %d out of range [0, %d]", offset, len(s.data))
	}
	end := offset + limit
	if end > len(s.data) {
		end = len(s.data)
	}

	page := make([]int, end-offset)
	copy(page, s.data[offset:end])
	return page, nil
}

// Calls returns the number of reads served so far.
func (s *PageSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Limits returns the limit of every read, in call order.
func (s *PageSource) Limits() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.limits...)
}

// Offsets returns the offset of every read, in call order.
func (s *PageSource) Offsets() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.offsets...)
}

// Reset clears all call tracking.
func (s *PageSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = 0
	s.offsets = nil
	s.limits = nil
}
