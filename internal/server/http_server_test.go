package server

import (
	"encoding/json"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer() *httptest.Server {
	hs := NewHttpServer("127.0.0.1:0")
	return httptest.NewServer(hs.Router(&net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}))
}

func post(t *testing.T, url, body string) (int, string) {
	res, err := http.Post(url, "text/plain", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := ioutil.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func Test_HttpEncodeDecode(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	status, encoded := post(t, ts.URL+"/encode", "AAA")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "愛楽愛た楽し楽可", encoded)

	status, decoded := post(t, ts.URL+"/decode", "愛楽愛 た楽し\n楽可")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "AAA", decoded)
}

func Test_HttpDecodeErrors(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	for input, kind := range map[string]string{
		"あ":   "invalid-symbol",
		"。":   "unexpected-end",
		"。。。": "invalid-utf8",
	} {
		status, body := post(t, ts.URL+"/decode", input)
		require.Equal(t, http.StatusBadRequest, status)

		res := ErrorResponse{}
		require.NoError(t, json.Unmarshal([]byte(body), &res))
		require.Equal(t, kind, res.Kind, "Invalid kind for %q", input)
		require.NotEmpty(t, res.Message)
	}
}

func Test_HttpBodyTooLarge(t *testing.T) {
	hs := NewHttpServer("127.0.0.1:0")
	hs.MaxBodySize = 4
	ts := httptest.NewServer(hs.Router(nil))
	defer ts.Close()

	status, _ := post(t, ts.URL+"/encode", "too large")
	require.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func Test_HttpHealth(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func Test_HttpServerStartupShutdown(t *testing.T) {
	hs := NewHttpServer("127.0.0.1:0")
	require.NoError(t, hs.Startup())

	status, encoded := post(t, hs.String()+"/encode", "A")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "愛楽愛", encoded)

	require.NoError(t, Servers{hs}.Shutdown())
}
