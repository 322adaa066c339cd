package server

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/morph-tools-mcp/internal/imgio"
)

// newTestServer builds a server with a silent logger and in-memory
// streams.
func newTestServer(in string, out io.Writer) *Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Server{
		cache: imgio.NewCache(),
		log:   log,
		in:    strings.NewReader(in),
		out:   out,
	}
}

func TestNew(t *testing.T) {
	s := New(nil)
	require.NotNil(t, s)
	require.NotNil(t, s.cache)
	require.NotNil(t, s.log)
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			require.NoError(t, json.Unmarshal([]byte(tt.json), &req))
			assert.Equal(t, tt.wantID, req.ID)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, "2.0", req.JSONRPC)
		})
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := newTestServer("", io.Discard)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	info, ok := result["serverInfo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "morph-tools-mcp", info["name"])
}

func TestHandleRequest_Ping(t *testing.T) {
	s := newTestServer("", io.Discard)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: "p", Method: "ping"})
	require.NotNil(t, resp)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "p", resp.ID)
}

func TestHandleRequest_InitializedNotificationIsSilent(t *testing.T) {
	s := newTestServer("", io.Discard)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})
	assert.Nil(t, resp)
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	s := newTestServer("", io.Discard)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 7, Method: "bogus/method"})
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
}

func TestRun_EndToEnd(t *testing.T) {
	in := `{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n" +
		"not json\n" +
		`{"jsonrpc":"2.0","id":3,"method":"ping"}` + "\n"

	var out bytes.Buffer
	s := newTestServer(in, &out)
	require.NoError(t, s.Run())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3, "malformed line must be skipped, not answered")

	var resp MCPResponse
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &resp))
	assert.Equal(t, float64(2), resp.ID)
	assert.Nil(t, resp.Error)
}
