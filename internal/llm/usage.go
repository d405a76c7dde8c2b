package llm

import (
	"context"
	"sync"
	"time"
)

// UsageRecord captures one LLM request for in-process diagnostics.
type UsageRecord struct {
	Time         time.Time
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	Latency      time.Duration
	Success      bool
	Err          string
}

// UsageLog accumulates usage records for the lifetime of the process.
// Safe for concurrent use.
type UsageLog struct {
	mu      sync.Mutex
	records []UsageRecord
}

// NewUsageLog returns an empty log.
func NewUsageLog() *UsageLog {
	return &UsageLog{}
}

// Append adds a record.
func (u *UsageLog) Append(r UsageRecord) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.records = append(u.records, r)
}

// Records returns a copy of all records in append order.
func (u *UsageLog) Records() []UsageRecord {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]UsageRecord, len(u.records))
	copy(out, u.records)
	return out
}

// Totals sums token counts across all records and estimates cost
// where pricing is known.
func (u *UsageLog) Totals() (inputTokens, outputTokens int, costUSD float64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, r := range u.records {
		inputTokens += r.InputTokens
		outputTokens += r.OutputTokens
		if c := LookupCost(r.Model); c != nil {
			costUSD += c.Cost(r.InputTokens, r.OutputTokens)
		}
	}
	return inputTokens, outputTokens, costUSD
}

// usageProvider is a decorator that records every request in a UsageLog.
type usageProvider struct {
	inner Provider
	log   *UsageLog
}

// WithUsageRecording wraps a Provider so each Generate call appends a
// UsageRecord. Recording never fails the request.
func WithUsageRecording(p Provider, log *UsageLog) Provider {
	return &usageProvider{inner: p, log: log}
}

func (u *usageProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := u.inner.Generate(ctx, req)

	rec := UsageRecord{
		Time:    start,
		Model:   u.inner.ModelID(),
		Purpose: PurposeFrom(ctx),
		Latency: time.Since(start),
		Success: err == nil,
	}
	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
	}
	if err != nil {
		rec.Err = err.Error()
	}
	u.log.Append(rec)

	return resp, err
}

func (u *usageProvider) ModelID() string {
	return u.inner.ModelID()
}
