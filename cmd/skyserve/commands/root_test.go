package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/skycoin/skyserve/pkg/fileserver"
	"github.com/skycoin/skyserve/pkg/httputil"
	"github.com/skycoin/skyserve/pkg/metricsutil"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printBanner(&buf, fileserver.DefaultConfig()))

	require.Equal(t,
		"Iniciando servidor frontend en http://localhost:8000\n"+
			"Presiona Ctrl+C para detener.\n",
		buf.String())
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestRootCmd_Flags(t *testing.T) {
	flags := []struct {
		name  string
		short string
		def   string
	}{
		{name: "log", short: "l", def: "true"},
		{name: "cors", def: "false"},
		{name: "open", def: "false"},
		{name: "max-conns", def: "0"},
		{name: "metrics", short: "m", def: ""},
		{name: "syslog", def: ""},
		{name: "syslog-net", def: "udp"},
		{name: "syslog-lvl", def: "info"},
		{name: "log-file", def: ""},
		{name: "tag", def: defaultTag},
	}

	for _, f := range flags {
		fl := rootCmd.Flags().Lookup(f.name)
		require.NotNil(t, fl, f.name)
		require.Equal(t, f.short, fl.Shorthand, f.name)
		require.Equal(t, f.def, fl.DefValue, f.name)
	}

	// port and directory are fixed
	require.Nil(t, rootCmd.Flags().Lookup("port"))
	require.Nil(t, rootCmd.Flags().Lookup("dir"))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	require.Error(t, rootCmd.Args(rootCmd, []string{"8080"}))
	require.NoError(t, rootCmd.Args(rootCmd, nil))
}

func TestHealthRoute(t *testing.T) {
	mux := metricsutil.NewMetricsRouter(healthRoute("/srv/www", ":8000"))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, httputil.HealthPath, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var resp httputil.HealthCheckResponse
	require.NoError(t, jsoniter.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "/srv/www", resp.Dir)
	require.Equal(t, ":8000", resp.Addr)
	require.NotNil(t, resp.BuildInfo)
	require.False(t, resp.StartedAt.IsZero())

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, metricsutil.MetricsPath, nil))
	require.Equal(t, http.StatusOK, rr.Code)
}
