package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCashLogBody() map[string]interface{} {
	return map[string]interface{}{
		"amount":          120.0,
		"transactionType": "income",
		"category":        "day-pass",
		"description":     "walk-in sales",
		"recordedBy":      "front-desk",
	}
}

func TestCashLogCreateAndFetch(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodPost, "/CashLog", validCashLogBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	entry := decodeBody(t, rec)["CashLog"].(map[string]interface{})
	assert.NotEmpty(t, entry["id"])
	assert.NotEmpty(t, entry["date"])

	rec = env.do(t, http.MethodGet, "/CashLog/Fetch", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["CashLog"], 1)
}

func TestCashLogRejectsZeroAmount(t *testing.T) {
	env := newTestEnv(t, false)

	body := validCashLogBody()
	body["amount"] = 0

	rec := env.do(t, http.MethodPost, "/CashLog", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// The cash book is append-only: the router wires no update or delete.
func TestCashLogHasNoUpdateOrDeleteRoute(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodPost, "/CashLog", validCashLogBody())
	require.Equal(t, http.StatusOK, rec.Code)
	id := decodeBody(t, rec)["CashLog"].(map[string]interface{})["id"].(string)

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPut, "/CashLog/"+id, validCashLogBody()).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/CashLog/"+id, nil).Code)
}
