package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"connectrpc.com/connect"

	"github.com/splitzee/splitzee/internal/currency"
	"github.com/splitzee/splitzee/internal/models"
	"github.com/splitzee/splitzee/pkg/api"
)

var _ api.CurrencyServiceHandler = (*CurrencyService)(nil)

var ErrInvalidConvertAmount = errors.New("amount must be a non-negative number")

// CurrencyService implements the Connect CurrencyService over the static rate table.
type CurrencyService struct{}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

// ListCurrencies returns the supported currencies in display order.
func (s *CurrencyService) ListCurrencies(ctx context.Context, req *connect.Request[api.ListCurrenciesRequest]) (*connect.Response[api.ListCurrenciesResponse], error) {
	supported := currency.Supported()
	out := make([]api.Currency, len(supported))
	for i, c := range supported {
		out[i] = api.Currency{Code: string(c.Code), Name: c.Name, Symbol: c.Symbol}
	}
	return connect.NewResponse(&api.ListCurrenciesResponse{
		Base:       string(currency.Base),
		Currencies: out,
	}), nil
}

// Convert converts an amount between two supported currencies.
func (s *CurrencyService) Convert(ctx context.Context, req *connect.Request[api.ConvertRequest]) (*connect.Response[api.ConvertResponse], error) {
	from, to := currency.Normalize(req.Msg.From), currency.Normalize(req.Msg.To)
	slog.Info("Convert request received", "amount", req.Msg.Amount, "from", from, "to", to)

	if req.Msg.Amount < 0 || math.IsNaN(req.Msg.Amount) || math.IsInf(req.Msg.Amount, 0) {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrInvalidConvertAmount)
	}
	for _, code := range []currency.Code{from, to} {
		if !currency.IsSupported(code) {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: %q", models.ErrInvalidCurrency, code))
		}
	}

	converted := currency.Convert(req.Msg.Amount, from, to)
	return connect.NewResponse(&api.ConvertResponse{
		Amount:    converted,
		Rate:      currency.Rate(from, to),
		Formatted: currency.Format(converted, to),
	}), nil
}
