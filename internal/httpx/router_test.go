package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festroi/festroi/internal/report"
	"github.com/festroi/festroi/internal/store"
)

func newTestServer() *httptest.Server {
	st := store.NewMemoryStore()
	svc := report.NewService(st, report.Defaults{Top: 3, ROITarget: 0.2})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return httptest.NewServer(NewRouter(log, st, svc))
}

const uploadCSV = `date,festival,region,channel,spend,revenue,tickets,visitors
2025-05-01,Spring Lights,North,social,1000,1500,10,40
2025-05-02,Harvest Gala,East,search,500,250,5,20
,missing date,East,search,100,100,1,1
`

func TestUploadThenReport(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/dataset", "text/csv", strings.NewReader(uploadCSV))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"records": 2`)

	resp2, err := http.Get(srv.URL + "/report?rank=spend&dir=desc")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	rep, _ := io.ReadAll(resp2.Body)
	assert.Contains(t, string(rep), "Spring Lights")
	assert.Contains(t, string(rep), `"total_spend": 1500`)
}

func TestUploadNoValidRows(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	csv := "date,festival\n,\n2025-13-99,x\n"
	resp, err := http.Post(srv.URL+"/dataset", "text/csv", strings.NewReader(csv))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "no valid rows")
}

func TestSampleDatasetAndExport(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/dataset/sample", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/export?rank=roi&dir=desc")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, "text/csv", resp2.Header.Get("Content-Type"))

	body, _ := io.ReadAll(resp2.Body)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Equal(t, "festival,region,spend,revenue,roi,roas,tickets,visitors,cac", lines[0])
	assert.Len(t, lines, 5) // header + one row per festival
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
