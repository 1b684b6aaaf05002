package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payout-gateway/application"
	"payout-gateway/utils/configs"
)

type gatewayStub struct {
	mu     sync.Mutex
	bodies []map[string]interface{}
}

func (g *gatewayStub) server(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/payout", func(w http.ResponseWriter, req *http.Request) {
		g.record(req)
		_, _ = w.Write([]byte(`{"status":1000,"message":"Success","payout_ref":"PR-1","transaction_id":"TX-1","transactionDate_time":"2022-03-02T20:30:04+07:00","qrstring":"QR-1"}`))
	})
	r.Post("/inquery-trans", func(w http.ResponseWriter, req *http.Request) {
		body := g.record(req)
		ref := fmt.Sprint(body["ref1"])
		if ref == "missing" {
			_, _ = w.Write([]byte(`{"status":"9001","message":"down"}`))
			return
		}
		_, _ = fmt.Fprintf(w, `{"status":"1000","message":"Success","accname":"MANOP","bankacc":"6652078409","bankcode":"004","amount":"1,000.50","ref1":%q,"ref2":"","ref3":"","ref4":"","created_date":"2022-05-17 08:41:48.320","transfer_date":"2022-05-17 08:41:50.447","transfer_transactionId":"BT-1"}`, ref)
	})
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func (g *gatewayStub) record(req *http.Request) map[string]interface{} {
	var body map[string]interface{}
	_ = json.NewDecoder(req.Body).Decode(&body)
	g.mu.Lock()
	g.bodies = append(g.bodies, body)
	g.mu.Unlock()
	return body
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"API_KEY", "PARTNER_CODE", "CHANNEL", "PAYOUT_BASE_URL", "PAYOUT_ENV", "TELEGRAM_TOKEN", "TELEGRAM_CHANNEL_ID"} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, build appBuilder, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(build)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", t.TempDir()))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func credentials(baseURL string) []string {
	return []string{"--api-key", "k", "--partner-code", "P1", "--channel", "WEB", "--base-url", baseURL, "--env", "development"}
}

func TestBanksCmd(t *testing.T) {
	out, err := run(t, newApplication, "banks")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 19)
	assert.Contains(t, out, "004  KBANK  KASIKORNBANK PUBLIC COMPANY LIMITED")
	assert.True(t, strings.HasPrefix(lines[0], "002  BBL"))
}

func TestTransferCmd(t *testing.T) {
	clearEnv(t)
	stub := &gatewayStub{}
	server := stub.server(t)

	args := append([]string{"transfer",
		"--bankacc", "0652078409",
		"--bank", "kbank",
		"--amount", "1,000.50",
		"--accname", "Manop Tangngam",
		"--mobileno", "0805933181",
		"--transaction-by", "Jack Developer",
		"--ref1", "R-1",
		"--ref2", "",
	}, credentials(server.URL)...)

	out, err := run(t, newApplication, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Payout ref:     PR-1")
	assert.Contains(t, out, "฿1,000.50 to KBANK 0652078409")

	require.Len(t, stub.bodies, 1)
	body := stub.bodies[0]
	assert.Equal(t, "004", body["bankcode"])
	assert.Equal(t, "", body["ref2"])
	assert.NotContains(t, body, "ref3")
	assert.NotContains(t, body, "email")
}

func TestTransferCmd_RejectsBeforeLoading(t *testing.T) {
	clearEnv(t)
	neverBuild := func(*configs.Config) (*application.PayoutApplication, func(), error) {
		t.Fatal("application must not be built")
		return nil, nil, nil
	}
	base := []string{"transfer", "--bankacc", "1", "--accname", "a", "--mobileno", "0", "--transaction-by", "x", "--ref1", "R"}

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown bank", args: append(append([]string{}, base...), "--bank", "XYZ", "--amount", "1"), wantErr: "bank not found"},
		{name: "bad amount", args: append(append([]string{}, base...), "--bank", "SCB", "--amount", "ten"), wantErr: "--amount"},
		{name: "missing credentials", args: append(append([]string{}, base...), "--bank", "SCB", "--amount", "1"), wantErr: "missing config: api_key, partner_code, channel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, neverBuild, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInqueryCmd(t *testing.T) {
	clearEnv(t)
	stub := &gatewayStub{}
	server := stub.server(t)

	out, err := run(t, newApplication, append([]string{"inquery", "--ref1", "202205170841"}, credentials(server.URL)...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Ref1:           202205170841")
	assert.Contains(t, out, "Amount:         ฿1,000.50")
	assert.Contains(t, out, "Bank txn id:    BT-1")
}

func TestInqueryCmd_Many(t *testing.T) {
	clearEnv(t)
	stub := &gatewayStub{}
	server := stub.server(t)

	args := append([]string{"inquery", "--ref1", "A1", "--ref1", "missing", "--ref1", "A2"}, credentials(server.URL)...)
	out, err := run(t, newApplication, args...)
	require.Error(t, err)
	assert.Equal(t, "1 of 3 inquiries failed", err.Error())

	assert.Less(t, strings.Index(out, "Ref1:           A1"), strings.Index(out, "missing: "))
	assert.Less(t, strings.Index(out, "missing: "), strings.Index(out, "Ref1:           A2"))
	assert.Contains(t, out, "temporarily unavailable")
	assert.Len(t, stub.bodies, 3)
}
