package ethrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vena-network/vena-node/state"
	"github.com/vena-network/vena-node/types"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newRPCServer serves eth_call over HTTP, delegating per-request behavior
// to handle. handle returns the hex result or an error message.
func newRPCServer(t *testing.T, handle func(req *rpcRequest) (string, string)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "eth_call", req.Method)

		result, errMsg := handle(&req)

		w.Header().Set("Content-Type", "application/json")

		if errMsg != "" {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":3,"message":%q}}`, req.ID, errMsg)

			return
		}

		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%q}`, req.ID, result)
	}))

	t.Cleanup(srv.Close)

	return srv
}

func TestEthCallAt(t *testing.T) {
	t.Parallel()

	var seenBlock atomic.Value

	srv := newRPCServer(t, func(req *rpcRequest) (string, string) {
		require.Len(t, req.Params, 2)

		var block string
		require.NoError(t, json.Unmarshal(req.Params[1], &block))
		seenBlock.Store(block)

		return "0x0102", ""
	})

	blockNumber := uint64(10)

	out, err := EthCallAt(context.Background(), srv.URL, types.StringToAddress("0x1"), []byte{0xb7}, &blockNumber)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, out)
	assert.Equal(t, "0xa", seenBlock.Load())
}

func TestEthCall_LatestBlock(t *testing.T) {
	t.Parallel()

	srv := newRPCServer(t, func(req *rpcRequest) (string, string) {
		var block string
		require.NoError(t, json.Unmarshal(req.Params[1], &block))
		assert.Equal(t, "latest", block)

		return "0x", ""
	})

	out, err := EthCall(srv.URL, types.StringToAddress("0x1"), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEthCallAt_NodeErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := newRPCServer(t, func(*rpcRequest) (string, string) {
		calls.Add(1)

		return "", "execution reverted"
	})

	_, err := EthCallCtx(context.Background(), srv.URL, types.StringToAddress("0x1"), nil)
	require.Error(t, err)
	assert.True(t, IsNodeError(err))
	assert.ErrorContains(t, err, "execution reverted")
	assert.Equal(t, int32(1), calls.Load())
}

func TestEthCallAt_RetriesTransportFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":"0x01"}`, req.ID)
	}))
	t.Cleanup(srv.Close)

	out, err := EthCallCtx(context.Background(), srv.URL, types.StringToAddress("0x1"), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, out)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLatestBlockNumber(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "eth_blockNumber", req.Method)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":"0x64"}`, req.ID)
	}))
	t.Cleanup(srv.Close)

	height, err := LatestBlockNumber(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), height)
}

func TestCallSimulatorProcess(t *testing.T) {
	t.Parallel()

	params := &state.CallParameters{
		To:    types.StringToAddress("0x1"),
		Gas:   state.GasUnbounded,
		Input: []byte{0xb7, 0xab, 0x4d, 0xb5},
	}

	t.Run("successful call", func(t *testing.T) {
		t.Parallel()

		srv := newRPCServer(t, func(*rpcRequest) (string, string) {
			return "0x0a", ""
		})

		res := NewCallSimulator(srv.URL, nil).
			Process(params, state.AllowExceedingBalance, state.NoTracing, 1)

		require.True(t, res.IsSuccessful())
		assert.Equal(t, []byte{0x0a}, res.Output)
	})

	t.Run("rejected call", func(t *testing.T) {
		t.Parallel()

		srv := newRPCServer(t, func(*rpcRequest) (string, string) {
			return "", "execution reverted"
		})

		res := NewCallSimulator(srv.URL, nil).
			Process(params, state.AllowExceedingBalance, state.NoTracing, 1)

		require.NotNil(t, res)
		assert.False(t, res.IsSuccessful())
		assert.Error(t, res.Err)
	})

	t.Run("unreachable node", func(t *testing.T) {
		t.Parallel()

		srv := newRPCServer(t, func(*rpcRequest) (string, string) {
			return "0x", ""
		})
		srv.Close()

		res := NewCallSimulator(srv.URL, nil).
			Process(params, state.AllowExceedingBalance, state.NoTracing, 1)

		assert.Nil(t, res)
	})
}
