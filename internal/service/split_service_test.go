package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/splitzee/splitzee/pkg/api"
)

func TestCalculateSplit_EqualSplit(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.split.CalculateSplit(context.Background(), connect.NewRequest(&api.CalculateSplitRequest{
		Total:    100,
		Strategy: "equal",
		Participants: []api.Participant{
			{ID: "1", Name: "Alice"}, {ID: "2", Name: "Bob"}, {ID: "3", Name: "Charlie"}, {ID: "4", Name: "Diana"},
		},
	}))
	if err != nil {
		t.Fatalf("CalculateSplit failed: %v", err)
	}

	if len(resp.Msg.Participants) != 4 {
		t.Fatalf("expected 4 participants, got %d", len(resp.Msg.Participants))
	}
	for _, p := range resp.Msg.Participants {
		if p.Amount != 25 {
			t.Errorf("expected %s amount to be 25, got %f", p.Name, p.Amount)
		}
	}
	if resp.Msg.Strategy != "equal" {
		t.Errorf("strategy = %q, want equal", resp.Msg.Strategy)
	}
}

func TestCalculateSplit_DefaultsToEqual(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.split.CalculateSplit(context.Background(), connect.NewRequest(&api.CalculateSplitRequest{
		Total:        10,
		Participants: []api.Participant{{Name: "Alice"}, {Name: "Bob"}},
	}))
	if err != nil {
		t.Fatalf("CalculateSplit failed: %v", err)
	}
	if resp.Msg.Strategy != "equal" || resp.Msg.Participants[0].Amount != 5 {
		t.Errorf("response = %+v", resp.Msg)
	}
}

func TestCalculateSplit_Percentage(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.split.CalculateSplit(context.Background(), connect.NewRequest(&api.CalculateSplitRequest{
		Total:    100,
		Strategy: "percentage",
		Participants: []api.Participant{
			{Name: "Alice", Percentage: 50}, {Name: "Bob", Percentage: 30}, {Name: "Charlie", Percentage: 20},
		},
	}))
	if err != nil {
		t.Fatalf("CalculateSplit failed: %v", err)
	}

	want := []float64{50, 30, 20}
	for i, p := range resp.Msg.Participants {
		if p.Amount != want[i] {
			t.Errorf("%s amount: expected %v, got %v", p.Name, want[i], p.Amount)
		}
		if p.Percentage == 0 {
			t.Errorf("%s percentage was not echoed back", p.Name)
		}
	}
}

func TestCalculateSplit_InvalidArgument(t *testing.T) {
	env := setupTestServer(t)

	tests := []struct {
		name string
		req  *api.CalculateSplitRequest
	}{
		{"custom amounts do not match", &api.CalculateSplitRequest{
			Total:    90,
			Strategy: "custom",
			Participants: []api.Participant{
				{Name: "Alice", Amount: 30}, {Name: "Bob", Amount: 30}, {Name: "Charlie", Amount: 31},
			},
		}},
		{"percentages do not sum to 100", &api.CalculateSplitRequest{
			Total:        100,
			Strategy:     "percentage",
			Participants: []api.Participant{{Name: "Alice", Percentage: 60}, {Name: "Bob", Percentage: 30}},
		}},
		{"zero total", &api.CalculateSplitRequest{Total: 0, Participants: []api.Participant{{Name: "Alice"}}}},
		{"blank name", &api.CalculateSplitRequest{Total: 10, Participants: []api.Participant{{Name: " "}}}},
		{"no participants", &api.CalculateSplitRequest{Total: 10}},
		{"unknown strategy", &api.CalculateSplitRequest{Total: 10, Strategy: "itemized", Participants: []api.Participant{{Name: "Alice"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.split.CalculateSplit(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestExportSplit(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.split.ExportSplit(context.Background(), connect.NewRequest(&api.ExportSplitRequest{
		CalculateSplitRequest: api.CalculateSplitRequest{
			Total:        60,
			Strategy:     "equal",
			Participants: []api.Participant{{Name: "Alice"}, {Name: "Bob"}},
			Notes:        "Pizza night",
		},
	}))
	if err != nil {
		t.Fatalf("ExportSplit failed: %v", err)
	}

	if resp.Msg.Filename != "expense-split.csv" {
		t.Errorf("filename = %q", resp.Msg.Filename)
	}
	if resp.Msg.CSV != "Name,Amount\nAlice,30.00\nBob,30.00\n" {
		t.Errorf("csv = %q", resp.Msg.CSV)
	}
	for _, want := range []string{"Total: $60.00", "Alice: $30.00", "Notes: Pizza night"} {
		if !strings.Contains(resp.Msg.ShareText, want) {
			t.Errorf("share text missing %q:\n%s", want, resp.Msg.ShareText)
		}
	}
}
