package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// Fully-qualified service names.
const (
	SplitServiceName    = "splitzee.v1.SplitService"
	CurrencyServiceName = "splitzee.v1.CurrencyService"
	ExpenseServiceName  = "splitzee.v1.ExpenseService"
	AuthServiceName     = "splitzee.v1.AuthService"
)

// Procedure paths, of the form /<service>/<method>.
const (
	SplitServiceCalculateSplitProcedure = "/" + SplitServiceName + "/CalculateSplit"
	SplitServiceExportSplitProcedure    = "/" + SplitServiceName + "/ExportSplit"

	CurrencyServiceListCurrenciesProcedure = "/" + CurrencyServiceName + "/ListCurrencies"
	CurrencyServiceConvertProcedure        = "/" + CurrencyServiceName + "/Convert"

	ExpenseServiceCreateExpenseProcedure  = "/" + ExpenseServiceName + "/CreateExpense"
	ExpenseServiceUpdateExpenseProcedure  = "/" + ExpenseServiceName + "/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure  = "/" + ExpenseServiceName + "/DeleteExpense"
	ExpenseServiceListExpensesProcedure   = "/" + ExpenseServiceName + "/ListExpenses"
	ExpenseServiceGetDashboardProcedure   = "/" + ExpenseServiceName + "/GetDashboard"
	ExpenseServiceExportExpensesProcedure = "/" + ExpenseServiceName + "/ExportExpenses"
	ExpenseServiceImportExpensesProcedure = "/" + ExpenseServiceName + "/ImportExpenses"

	AuthServiceSignUpProcedure         = "/" + AuthServiceName + "/SignUp"
	AuthServiceSignInProcedure         = "/" + AuthServiceName + "/SignIn"
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"
)

// routes dispatches a service's procedures by exact path.
type routes map[string]http.Handler

func (rs routes) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := rs[r.URL.Path]; ok {
		h.ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}

// SplitServiceHandler is implemented by the split calculator service.
type SplitServiceHandler interface {
	CalculateSplit(context.Context, *connect.Request[CalculateSplitRequest]) (*connect.Response[CalculateSplitResponse], error)
	ExportSplit(context.Context, *connect.Request[ExportSplitRequest]) (*connect.Response[ExportSplitResponse], error)
}

// NewSplitServiceHandler returns the path prefix to mount svc on and its handler.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + SplitServiceName + "/", routes{
		SplitServiceCalculateSplitProcedure: connect.NewUnaryHandler(SplitServiceCalculateSplitProcedure, svc.CalculateSplit, opts...),
		SplitServiceExportSplitProcedure:    connect.NewUnaryHandler(SplitServiceExportSplitProcedure, svc.ExportSplit, opts...),
	}
}

// SplitServiceClient calls SplitService.
type SplitServiceClient struct {
	calculateSplit *connect.Client[CalculateSplitRequest, CalculateSplitResponse]
	exportSplit    *connect.Client[ExportSplitRequest, ExportSplitResponse]
}

func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SplitServiceClient {
	opts = clientOptions(opts)
	return &SplitServiceClient{
		calculateSplit: connect.NewClient[CalculateSplitRequest, CalculateSplitResponse](httpClient, baseURL+SplitServiceCalculateSplitProcedure, opts...),
		exportSplit:    connect.NewClient[ExportSplitRequest, ExportSplitResponse](httpClient, baseURL+SplitServiceExportSplitProcedure, opts...),
	}
}

func (c *SplitServiceClient) CalculateSplit(ctx context.Context, req *connect.Request[CalculateSplitRequest]) (*connect.Response[CalculateSplitResponse], error) {
	return c.calculateSplit.CallUnary(ctx, req)
}

func (c *SplitServiceClient) ExportSplit(ctx context.Context, req *connect.Request[ExportSplitRequest]) (*connect.Response[ExportSplitResponse], error) {
	return c.exportSplit.CallUnary(ctx, req)
}

// CurrencyServiceHandler is implemented by the currency converter service.
type CurrencyServiceHandler interface {
	ListCurrencies(context.Context, *connect.Request[ListCurrenciesRequest]) (*connect.Response[ListCurrenciesResponse], error)
	Convert(context.Context, *connect.Request[ConvertRequest]) (*connect.Response[ConvertResponse], error)
}

func NewCurrencyServiceHandler(svc CurrencyServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + CurrencyServiceName + "/", routes{
		CurrencyServiceListCurrenciesProcedure: connect.NewUnaryHandler(CurrencyServiceListCurrenciesProcedure, svc.ListCurrencies, opts...),
		CurrencyServiceConvertProcedure:        connect.NewUnaryHandler(CurrencyServiceConvertProcedure, svc.Convert, opts...),
	}
}

// CurrencyServiceClient calls CurrencyService.
type CurrencyServiceClient struct {
	listCurrencies *connect.Client[ListCurrenciesRequest, ListCurrenciesResponse]
	convert        *connect.Client[ConvertRequest, ConvertResponse]
}

func NewCurrencyServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *CurrencyServiceClient {
	opts = clientOptions(opts)
	return &CurrencyServiceClient{
		listCurrencies: connect.NewClient[ListCurrenciesRequest, ListCurrenciesResponse](httpClient, baseURL+CurrencyServiceListCurrenciesProcedure, opts...),
		convert:        connect.NewClient[ConvertRequest, ConvertResponse](httpClient, baseURL+CurrencyServiceConvertProcedure, opts...),
	}
}

func (c *CurrencyServiceClient) ListCurrencies(ctx context.Context, req *connect.Request[ListCurrenciesRequest]) (*connect.Response[ListCurrenciesResponse], error) {
	return c.listCurrencies.CallUnary(ctx, req)
}

func (c *CurrencyServiceClient) Convert(ctx context.Context, req *connect.Request[ConvertRequest]) (*connect.Response[ConvertResponse], error) {
	return c.convert.CallUnary(ctx, req)
}

// ExpenseServiceHandler is implemented by the expense tracker service.
// Every procedure requires an authenticated caller.
type ExpenseServiceHandler interface {
	CreateExpense(context.Context, *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error)
	ExportExpenses(context.Context, *connect.Request[ExportExpensesRequest]) (*connect.Response[ExportExpensesResponse], error)
	ImportExpenses(context.Context, *connect.Request[ImportExpensesRequest]) (*connect.Response[ImportExpensesResponse], error)
}

func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ExpenseServiceName + "/", routes{
		ExpenseServiceCreateExpenseProcedure:  connect.NewUnaryHandler(ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts...),
		ExpenseServiceUpdateExpenseProcedure:  connect.NewUnaryHandler(ExpenseServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...),
		ExpenseServiceDeleteExpenseProcedure:  connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...),
		ExpenseServiceListExpensesProcedure:   connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...),
		ExpenseServiceGetDashboardProcedure:   connect.NewUnaryHandler(ExpenseServiceGetDashboardProcedure, svc.GetDashboard, opts...),
		ExpenseServiceExportExpensesProcedure: connect.NewUnaryHandler(ExpenseServiceExportExpensesProcedure, svc.ExportExpenses, opts...),
		ExpenseServiceImportExpensesProcedure: connect.NewUnaryHandler(ExpenseServiceImportExpensesProcedure, svc.ImportExpenses, opts...),
	}
}

// ExpenseServiceClient calls ExpenseService.
type ExpenseServiceClient struct {
	createExpense  *connect.Client[CreateExpenseRequest, CreateExpenseResponse]
	updateExpense  *connect.Client[UpdateExpenseRequest, UpdateExpenseResponse]
	deleteExpense  *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	listExpenses   *connect.Client[ListExpensesRequest, ListExpensesResponse]
	getDashboard   *connect.Client[GetDashboardRequest, GetDashboardResponse]
	exportExpenses *connect.Client[ExportExpensesRequest, ExportExpensesResponse]
	importExpenses *connect.Client[ImportExpensesRequest, ImportExpensesResponse]
}

func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ExpenseServiceClient {
	opts = clientOptions(opts)
	return &ExpenseServiceClient{
		createExpense:  connect.NewClient[CreateExpenseRequest, CreateExpenseResponse](httpClient, baseURL+ExpenseServiceCreateExpenseProcedure, opts...),
		updateExpense:  connect.NewClient[UpdateExpenseRequest, UpdateExpenseResponse](httpClient, baseURL+ExpenseServiceUpdateExpenseProcedure, opts...),
		deleteExpense:  connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
		listExpenses:   connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		getDashboard:   connect.NewClient[GetDashboardRequest, GetDashboardResponse](httpClient, baseURL+ExpenseServiceGetDashboardProcedure, opts...),
		exportExpenses: connect.NewClient[ExportExpensesRequest, ExportExpensesResponse](httpClient, baseURL+ExpenseServiceExportExpensesProcedure, opts...),
		importExpenses: connect.NewClient[ImportExpensesRequest, ImportExpensesResponse](httpClient, baseURL+ExpenseServiceImportExpensesProcedure, opts...),
	}
}

func (c *ExpenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) GetDashboard(ctx context.Context, req *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) ExportExpenses(ctx context.Context, req *connect.Request[ExportExpensesRequest]) (*connect.Response[ExportExpensesResponse], error) {
	return c.exportExpenses.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) ImportExpenses(ctx context.Context, req *connect.Request[ImportExpensesRequest]) (*connect.Response[ImportExpensesResponse], error) {
	return c.importExpenses.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by the account service.
type AuthServiceHandler interface {
	SignUp(context.Context, *connect.Request[SignUpRequest]) (*connect.Response[SignUpResponse], error)
	SignIn(context.Context, *connect.Request[SignInRequest]) (*connect.Response[SignInResponse], error)
	GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error)
}

func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", routes{
		AuthServiceSignUpProcedure:         connect.NewUnaryHandler(AuthServiceSignUpProcedure, svc.SignUp, opts...),
		AuthServiceSignInProcedure:         connect.NewUnaryHandler(AuthServiceSignInProcedure, svc.SignIn, opts...),
		AuthServiceGetCurrentUserProcedure: connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
	}
}

// AuthServiceClient calls AuthService.
type AuthServiceClient struct {
	signUp         *connect.Client[SignUpRequest, SignUpResponse]
	signIn         *connect.Client[SignInRequest, SignInResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = clientOptions(opts)
	return &AuthServiceClient{
		signUp:         connect.NewClient[SignUpRequest, SignUpResponse](httpClient, baseURL+AuthServiceSignUpProcedure, opts...),
		signIn:         connect.NewClient[SignInRequest, SignInResponse](httpClient, baseURL+AuthServiceSignInProcedure, opts...),
		getCurrentUser: connect.NewClient[GetCurrentUserRequest, GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

func (c *AuthServiceClient) SignUp(ctx context.Context, req *connect.Request[SignUpRequest]) (*connect.Response[SignUpResponse], error) {
	return c.signUp.CallUnary(ctx, req)
}

func (c *AuthServiceClient) SignIn(ctx context.Context, req *connect.Request[SignInRequest]) (*connect.Response[SignInResponse], error) {
	return c.signIn.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}
