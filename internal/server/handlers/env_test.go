package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitcenter-backend/internal/server/handlers"
	"fitcenter-backend/internal/server/router"
	authsvc "fitcenter-backend/internal/service/auth"
	billingsvc "fitcenter-backend/internal/service/billing"
	exportingsvc "fitcenter-backend/internal/service/exporting"
	liabilitysvc "fitcenter-backend/internal/service/liabilities"
	"fitcenter-backend/pkg/token"
)

const testJWTSecret = "handler-test-secret"

// testEnv wires the full router over in-memory fakes so tests exercise
// handlers, services and middleware together.
type testEnv struct {
	router   *gin.Engine
	tokens   *token.Manager
	assets   *fakeAssetStore
	cashLog  *fakeCashLogStore
	payments *fakePaymentStore
	payrolls *fakePayrollStore
	staff    *fakeStaffStore
	signIns  *fakeSignInStore
	coaches  *fakeCoachStore
	users    *fakeUserStore
	bioData  *fakeBioDataStore
	training *fakeTrainingStore
	feedback *fakeFeedbackStore
}

func newTestEnv(t *testing.T, paymentBypass bool) *testEnv {
	t.Helper()

	env := &testEnv{
		tokens:   token.NewManager(testJWTSecret),
		assets:   newFakeAssetStore(),
		cashLog:  &fakeCashLogStore{},
		payments: newFakePaymentStore(),
		payrolls: newFakePayrollStore(),
		staff:    newFakeStaffStore(),
		signIns:  &fakeSignInStore{},
		coaches:  newFakeCoachStore(),
		users:    newFakeUserStore(),
		bioData:  newFakeBioDataStore(),
		training: newFakeTrainingStore(),
		feedback: newFakeFeedbackStore(),
	}

	logger := zap.NewNop()
	auth := authsvc.NewService(env.coaches, env.users, env.staff, env.signIns, env.tokens, logger)
	billing := billingsvc.NewService(env.payments, logger)
	liability := liabilitysvc.NewService(env.payrolls)
	exporter := exportingsvc.NewService(env.feedback, nil, logger)

	env.router = router.New(router.Handlers{
		Assets:      handlers.NewAssetHandler(env.assets, logger),
		CashLog:     handlers.NewCashLogHandler(env.cashLog, logger),
		Payments:    handlers.NewPaymentHandler(billing, logger),
		Payrolls:    handlers.NewPayrollHandler(env.payrolls, logger),
		Liabilities: handlers.NewLiabilityHandler(liability, logger),
		Staff:       handlers.NewStaffHandler(env.staff, auth, logger),
		Coaches:     handlers.NewCoachHandler(env.coaches, auth, logger),
		Users:       handlers.NewUserHandler(env.users, auth, logger),
		BioData:     handlers.NewBioDataHandler(env.bioData, logger),
		Training:    handlers.NewTrainingHandler(env.training, logger),
		Feedback:    handlers.NewFeedbackHandler(env.feedback, exporter, logger),
	}, env.tokens, paymentBypass, logger)

	return env
}

// do performs one request against the in-process router. A non-nil body
// is JSON-encoded; headers come in key/value pairs.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func memberToken(t *testing.T, e *testEnv) string {
	t.Helper()

	tok, err := e.tokens.Generate("member-1", "member@example.com", token.AudienceMember)
	require.NoError(t, err)
	return tok
}

func coachToken(t *testing.T, e *testEnv, accountID string) string {
	t.Helper()

	tok, err := e.tokens.Generate(accountID, "coach@example.com", token.AudienceCoach)
	require.NoError(t, err)
	return tok
}

func bearer(tok string) []string {
	return []string{"Authorization", "Bearer " + tok}
}
