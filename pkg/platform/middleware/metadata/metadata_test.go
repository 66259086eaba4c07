package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"zoo/pkg/requestcontext"
)

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": "10.0.0.7, 10.0.0.1"}, remoteAddr: "127.0.0.1:5000", want: "10.0.0.7"},
		{name: "real ip header", headers: map[string]string{"X-Real-IP": " 10.0.0.9 "}, remoteAddr: "127.0.0.1:5000", want: "10.0.0.9"},
		{name: "remote address host", remoteAddr: "192.168.1.4:41000", want: "192.168.1.4"},
		{name: "remote address without port", remoteAddr: "192.168.1.4", want: "192.168.1.4"},
		{name: "no address", want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/reports/inventory", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIPFromRequest(r))
		})
	}
}

func TestClientAddrMiddleware(t *testing.T) {
	var got string
	h := ClientAddr(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestcontext.ClientAddr(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.RemoteAddr = "10.1.2.3:9000"
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "10.1.2.3", got)
}
