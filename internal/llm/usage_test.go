package llm

import (
	"context"
	"encoding/json"
	"testing"
)

func TestUsageRecording(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`"hello"`),
			Usage:   Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	)
	log := NewUsageLog()
	p := WithUsageRecording(mock, log)

	ctx := WithPurpose(context.Background(), "quiz")
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	recs := log.Records()
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	r := recs[0]
	if r.Purpose != "quiz" {
		t.Errorf("purpose = %q, want quiz", r.Purpose)
	}
	if !r.Success {
		t.Error("record not marked successful")
	}
	if r.InputTokens != 100 || r.OutputTokens != 50 {
		t.Errorf("tokens = %d/%d, want 100/50", r.InputTokens, r.OutputTokens)
	}

	in, out, _ := log.Totals()
	if in != 100 || out != 50 {
		t.Errorf("totals = %d/%d, want 100/50", in, out)
	}
}

func TestUsageRecordingFailure(t *testing.T) {
	mock := NewMockProvider() // empty queue fails every call
	log := NewUsageLog()
	p := WithUsageRecording(mock, log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock")
	}

	recs := log.Records()
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if recs[0].Success {
		t.Error("failed request marked successful")
	}
	if recs[0].Err == "" {
		t.Error("failed request has empty error text")
	}
}
