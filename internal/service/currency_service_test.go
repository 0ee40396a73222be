package service

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"

	"github.com/splitzee/splitzee/pkg/api"
)

func TestListCurrencies(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.currency.ListCurrencies(context.Background(), connect.NewRequest(&api.ListCurrenciesRequest{}))
	if err != nil {
		t.Fatalf("ListCurrencies failed: %v", err)
	}
	if resp.Msg.Base != "USD" {
		t.Errorf("base = %q, want USD", resp.Msg.Base)
	}
	if len(resp.Msg.Currencies) != 7 || resp.Msg.Currencies[0].Code != "USD" {
		t.Errorf("currencies = %+v", resp.Msg.Currencies)
	}
}

func TestConvert(t *testing.T) {
	env := setupTestServer(t)

	tests := []struct {
		name      string
		req       *api.ConvertRequest
		want      float64
		formatted string
	}{
		{"usd to eur", &api.ConvertRequest{Amount: 100, From: "USD", To: "EUR"}, 85, ""},
		{"codes are normalized", &api.ConvertRequest{Amount: 10, From: " gbp", To: "usd"}, 13.7, "$13.70"},
		{"same currency", &api.ConvertRequest{Amount: 42, From: "INR", To: "INR"}, 42, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.currency.Convert(context.Background(), connect.NewRequest(tt.req))
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if math.Abs(resp.Msg.Amount-tt.want) > 1e-9 {
				t.Errorf("amount = %v, want %v", resp.Msg.Amount, tt.want)
			}
			if tt.formatted != "" && resp.Msg.Formatted != tt.formatted {
				t.Errorf("formatted = %q, want %q", resp.Msg.Formatted, tt.formatted)
			}
		})
	}
}

func TestConvert_InvalidArgument(t *testing.T) {
	env := setupTestServer(t)

	for _, req := range []*api.ConvertRequest{
		{Amount: 1, From: "USD", To: "BTC"},
		{Amount: 1, From: "", To: "USD"},
		{Amount: -5, From: "USD", To: "EUR"},
	} {
		_, err := env.currency.Convert(context.Background(), connect.NewRequest(req))
		assertCode(t, err, connect.CodeInvalidArgument)
	}
}
