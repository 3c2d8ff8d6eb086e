package asaas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerSendsAccessToken(t *testing.T) {
	var gotToken, gotContentType string
	var gotBody CreateCustomerParams
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("access_token")
		gotContentType = r.Header.Get("Content-Type")
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/customers", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(Customer{ID: "cus_001", Name: gotBody.Name})
	}))
	defer server.Close()

	client := NewClient(server.URL, "chave-secreta")

	customer, err := client.CreateCustomer(context.Background(), CreateCustomerParams{
		Name:    "Maria Souza",
		Email:   "maria@example.com",
		CpfCnpj: "52998224725",
	})

	require.NoError(t, err)
	assert.Equal(t, "cus_001", customer.ID)
	assert.Equal(t, "chave-secreta", gotToken)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Maria Souza", gotBody.Name)
}

func TestGetPixQrCodePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/payments/pay_001/pixQrCode", r.URL.Path)
		_ = json.NewEncoder(w).Encode(PixQrCode{EncodedImage: "abc", Payload: "pix://xyz"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "chave")

	pix, err := client.GetPixQrCode(context.Background(), "pay_001")

	require.NoError(t, err)
	assert.Equal(t, "abc", pix.EncodedImage)
	assert.Equal(t, "pix://xyz", pix.Payload)
}

func TestDoParsesAsaasError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"code":"invalid_customer","description":"Cliente inválido"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "chave")

	_, err := client.CreateCustomer(context.Background(), CreateCustomerParams{Name: "X"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cliente inválido")
}

func TestDoReportsUnparsableError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("gateway down"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "chave")

	_, err := client.GetSubscription(context.Background(), "sub_001")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
