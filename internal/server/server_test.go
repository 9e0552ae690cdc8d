package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiregions/regions/pkg/regionjson"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c, err := regionjson.Parse([]byte(`[
		{"name": "base", "exports": ["org.apache.felix.inventory"]},
		{"name": "extended", "exports": ["org.apache.felix.scr.component"]}
	]`))
	require.NoError(t, err)

	srv := New(c, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func TestListRegions(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/regions")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var wire []regionjson.Region
	require.NoError(t, json.Unmarshal(body, &wire))
	require.Len(t, wire, 2)
	assert.Equal(t, "base", wire[0].Name)
	assert.Equal(t, "extended", wire[1].Name)
}

func TestGetRegion(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/regions/extended")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		Name      string   `json:"name"`
		Parent    string   `json:"parent"`
		Exports   []string `json:"exports"`
		Effective []string `json:"effective"`
	}
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Equal(t, "extended", detail.Name)
	assert.Equal(t, "base", detail.Parent)
	assert.Equal(t, []string{"org.apache.felix.scr.component"}, detail.Exports)
	assert.Len(t, detail.Effective, 2, "effective membership includes inherited entries")
}

func TestGetRegionNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/regions/nope")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "not_found", envelope["error"])
}

func TestContains(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "OwnEntry", url: "/regions/extended/contains?pkg=org.apache.felix.scr.component", want: true},
		{name: "Inherited", url: "/regions/extended/contains?pkg=org.apache.felix.inventory", want: true},
		{name: "Absent", url: "/regions/base/contains?pkg=org.example.missing", want: false},
		{name: "NotVisibleUpward", url: "/regions/base/contains?pkg=org.apache.felix.scr.component", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.url)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var out struct {
				Contained bool `json:"contained"`
			}
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tt.want, out.Contained)
		})
	}
}

func TestContainsMissingParam(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/regions/base/contains")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "bad_request", envelope["error"])
}
