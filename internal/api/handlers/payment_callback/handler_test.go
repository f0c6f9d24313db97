package payment_callback

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uc "github.com/sumonben/hotelmanagement/internal/usecase/reconcile_payment"
)

type mockUseCase struct {
	resp    *uc.Response
	err     error
	request *uc.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *uc.Request) (*uc.Response, error) {
	m.request = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_FormCallback(t *testing.T) {
	mock := &mockUseCase{resp: &uc.Response{
		Outcome:       uc.OutcomeConfirmed,
		BookingID:     1,
		BookingRef:    "BK20260110AABBCC11",
		TransactionID: "TXN123",
		ResolvedBy:    "sessionkey",
	}}
	h := NewHandler(mock, nopLogger{})

	form := url.Values{}
	form.Set("status", "VALID")
	form.Set("sessionkey", "SESSION123")
	form.Set("tran_id", "TXN123")
	form.Set("val_id", "VAL456")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"confirmed"`)

	require.NotNil(t, mock.request)
	key, ok := mock.request.Payload.SessionKey()
	assert.True(t, ok)
	assert.Equal(t, "SESSION123", key)
}

func TestHandle_JSONCallback(t *testing.T) {
	mock := &mockUseCase{resp: &uc.Response{Outcome: uc.OutcomeUnresolved}}
	h := NewHandler(mock, nopLogger{})

	body := `{"status": "FAILED", "tran_id": "TXN123", "amount": 330.00}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, mock.request)
	tran, ok := mock.request.Payload.TransactionID()
	assert.True(t, ok)
	assert.Equal(t, "TXN123", tran)

	// Non-string JSON values are dropped, not coerced
	_, present := mock.request.Payload["amount"]
	assert.False(t, present)
}

func TestHandle_MalformedJSON(t *testing.T) {
	mock := &mockUseCase{}
	h := NewHandler(mock, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, mock.request)
}

func TestHandle_VerificationUnavailable(t *testing.T) {
	mock := &mockUseCase{err: uc.ErrVerificationUnavailable}
	h := NewHandler(mock, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback",
		strings.NewReader("status=VALID&tran_id=TXN123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "retry later")
}

func TestHandle_InternalError(t *testing.T) {
	mock := &mockUseCase{err: uc.ErrInternal}
	h := NewHandler(mock, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback",
		strings.NewReader("status=VALID"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
