package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	handled bool
	err     error
	got     Event
}

func (s *stubService) ProcessAsaasEvent(_ context.Context, event Event) (bool, error) {
	s.got = event
	return s.handled, s.err
}

func postWebhook(handler *Handler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/asaas", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = handler.AsaasWebhookHandler(e.NewContext(req, rec))
	return rec
}

func TestAsaasWebhookHandlerSuccess(t *testing.T) {
	service := &stubService{handled: true}
	handler := NewWebhookHandler(service)

	rec := postWebhook(handler, `{"event":"PAYMENT_RECEIVED","payment":{"id":"pay_001","customer":"cus_001"}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var response WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "PAYMENT_RECEIVED", response.EventType)
	assert.True(t, response.Handled)
	assert.NotEmpty(t, response.Timestamp)
	assert.Equal(t, "pay_001", service.got.Payment.ID)
}

func TestAsaasWebhookHandlerMissingEvent(t *testing.T) {
	handler := NewWebhookHandler(&stubService{})

	rec := postWebhook(handler, `{"payment":{"id":"pay_001"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Payload inválido", response.Error)
}

func TestAsaasWebhookHandlerMalformedBody(t *testing.T) {
	handler := NewWebhookHandler(&stubService{})

	rec := postWebhook(handler, `{"event":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAsaasWebhookHandlerOwnerNotFound(t *testing.T) {
	service := &stubService{err: fmt.Errorf("%w: cus_999", ErrOwnerNotFound)}
	handler := NewWebhookHandler(service)

	rec := postWebhook(handler, `{"event":"PAYMENT_RECEIVED","payment":{"id":"pay_001","customer":"cus_999"}}`)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Usuário não encontrado", response.Error)
}

func TestAsaasWebhookHandlerInternalError(t *testing.T) {
	service := &stubService{err: errors.New("banco indisponível")}
	handler := NewWebhookHandler(service)

	rec := postWebhook(handler, `{"event":"PAYMENT_RECEIVED","payment":{"id":"pay_001"}}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Erro ao processar webhook", response.Error)
	assert.Equal(t, "banco indisponível", response.Message)
}
