package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/idrisalani/knlLogistics/internal/api"
	"github.com/idrisalani/knlLogistics/internal/entity"
	"github.com/idrisalani/knlLogistics/internal/mocks"
	"github.com/idrisalani/knlLogistics/internal/service"
)

const (
	testJWTSecret = "test-secret"
	testAPIKey    = "test-api-key"
)

type testAPI struct {
	srv  *httptest.Server
	repo *mocks.MockRepository
	user entity.User
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.New(repo, renderer, notifier, producer, "KNL Logistics Ltd")
	h := api.NewHandler(s)
	mw := api.NewMiddleware(testJWTSecret, true, testAPIKey)

	srv := httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(srv.Close)

	return testAPI{
		srv:  srv,
		repo: repo,
		user: entity.User{
			ID:    uuid.Must(uuid.NewV4()),
			Email: "ops@knl.example",
		},
	}
}

func (a testAPI) token(t *testing.T) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.UserJwtClaims{
		User: a.user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return token
}

func (a testAPI) do(t *testing.T, method, path string, body any, authed bool) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, a.srv.URL+path, &buf)
	require.NoError(t, err)

	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token(t))
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/health", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Invoices_Unauthorized(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/invoices/", nil, false)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.repo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, inv entity.Invoice) (entity.Invoice, error) {
			require.Equal(t, a.user.ID, inv.CreatedBy)
			return inv, nil
		})

	resp := a.do(t, http.MethodPost, "/api/invoices/", api.CreateInvoiceRequest{
		Number:       "INV-2026-009",
		PaymentTerms: entity.PaymentTerms30Days,
	}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.InvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "INV-2026-009", got.Number)
	require.Equal(t, entity.InvoiceStatusDraft, got.Status)
	require.NotNil(t, got.DueDate)
	require.True(t, got.TaxRatePercent.Equal(entity.DefaultTaxRatePercent))
}

func TestHandler_CreateInvoice_DuplicateNumber(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.repo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(entity.Invoice{}, entity.ErrDuplicateNumber)

	resp := a.do(t, http.MethodPost, "/api/invoices/", api.CreateInvoiceRequest{
		Number: "INV-2026-001",
	}, true)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_RecordPayment_NotFound(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	id := uuid.Must(uuid.NewV4())
	a.repo.EXPECT().Invoice(gomock.Any(), id).Return(entity.Invoice{}, entity.ErrNotFound)

	resp := a.do(t, http.MethodPost, "/api/invoices/"+id.String()+"/payments", api.RecordPaymentRequest{
		Amount: decimal.RequireFromString("5000"),
		Method: entity.PaymentMethodCash,
	}, true)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_AddLineItem_InvalidQuantity(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	inv := entity.Invoice{
		ID:        uuid.Must(uuid.NewV4()),
		Number:    "INV-2026-011",
		Status:    entity.InvoiceStatusDraft,
		CreatedBy: a.user.ID,
	}

	a.repo.EXPECT().Invoice(gomock.Any(), inv.ID).Return(inv, nil)

	resp := a.do(t, http.MethodPost, "/api/invoices/"+inv.ID.String()+"/items", api.AddLineItemRequest{
		Description: "Haulage",
		Quantity:    decimal.RequireFromString("-2"),
		UnitPrice:   decimal.RequireFromString("100"),
	}, true)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_InternalJobs_APIKey(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/internal/jobs/overdue", nil, false)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	a.repo.EXPECT().SetOverdue(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	req, err := http.NewRequest(http.MethodPost, a.srv.URL+"/api/internal/jobs/overdue", nil)
	require.NoError(t, err)
	req.Header.Set("X-Api-Key", testAPIKey)

	keyed, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	defer keyed.Body.Close()

	require.Equal(t, http.StatusOK, keyed.StatusCode)
}

func TestHandler_InvoiceDetail(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	inv := entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		Number:         "INV-2026-021",
		Kind:           entity.InvoiceKindStandard,
		Status:         entity.InvoiceStatusPending,
		TaxRatePercent: entity.DefaultTaxRatePercent,
		Subtotal:       decimal.RequireFromString("250"),
		TaxAmount:      decimal.RequireFromString("18.75"),
		Total:          decimal.RequireFromString("268.75"),
		AmountPaid:     decimal.RequireFromString("100"),
		Outstanding:    decimal.RequireFromString("168.75"),
		CreatedBy:      a.user.ID,
	}

	items := []entity.LineItem{{
		ID:          uuid.Must(uuid.NewV4()),
		InvoiceID:   inv.ID,
		Description: "Container haulage",
		Quantity:    decimal.RequireFromString("10"),
		UnitPrice:   decimal.RequireFromString("25"),
	}}
	payments := []entity.Payment{{
		ID:        uuid.Must(uuid.NewV4()),
		InvoiceID: inv.ID,
		Amount:    decimal.RequireFromString("100"),
		Method:    entity.PaymentMethodBankTransfer,
	}}

	a.repo.EXPECT().Invoice(gomock.Any(), inv.ID).Return(inv, nil)
	a.repo.EXPECT().LineItems(gomock.Any(), inv.ID).Return(items, nil)
	a.repo.EXPECT().Payments(gomock.Any(), inv.ID).Return(payments, nil)

	resp := a.do(t, http.MethodGet, "/api/invoices/"+inv.ID.String(), nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.InvoiceDetailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Items, 1)
	require.Len(t, got.Payments, 1)
	require.True(t, got.Items[0].Total.Equal(decimal.RequireFromString("250")))
	require.True(t, got.Outstanding.Equal(inv.Outstanding))
}
