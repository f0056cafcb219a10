package router_test

import (
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitcenter-backend/internal/server/handlers"
	"fitcenter-backend/internal/server/router"
	"fitcenter-backend/pkg/token"
)

// newTestServer boots the router over a real listener with every store
// left nil; the routes exercised here never reach a store.
func newTestServer(t *testing.T) (*httptest.Server, *resty.Client) {
	t.Helper()

	logger := zap.NewNop()
	tokens := token.NewManager("router-test-secret")

	engine := router.New(router.Handlers{
		Assets:      handlers.NewAssetHandler(nil, logger),
		CashLog:     handlers.NewCashLogHandler(nil, logger),
		Payments:    handlers.NewPaymentHandler(nil, logger),
		Payrolls:    handlers.NewPayrollHandler(nil, logger),
		Liabilities: handlers.NewLiabilityHandler(nil, logger),
		Staff:       handlers.NewStaffHandler(nil, nil, logger),
		Coaches:     handlers.NewCoachHandler(nil, nil, logger),
		Users:       handlers.NewUserHandler(nil, nil, logger),
		BioData:     handlers.NewBioDataHandler(nil, logger),
		Training:    handlers.NewTrainingHandler(nil, logger),
		Feedback:    handlers.NewFeedbackHandler(nil, nil, logger),
	}, tokens, false, logger)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return srv, resty.New().SetBaseURL(srv.URL)
}

func TestHealthz(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.R().Get("/healthz")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())
	assert.JSONEq(t, `{"status": "ok"}`, resp.String())
}

func TestUnknownRouteIs404(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.R().Get("/no-such-route")
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode())
}

func TestCashLogIsAppendOnly(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.R().Put("/CashLog/64b0c8a19f1d4e3a2b5c6d7e")
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode())

	resp, err = client.R().Delete("/CashLog/64b0c8a19f1d4e3a2b5c6d7e")
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode())
}

func TestPaymentRoutesRejectAnonymous(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.R().Get("/Payment")
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode())

	resp, err = client.R().SetHeader("Authorization", "Bearer not-a-token").Get("/Payment")
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode())
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody("{not json").
		Post("/Assets")
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode())
}
