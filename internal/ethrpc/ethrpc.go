package ethrpc

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sethvargo/go-retry"

	"github.com/vena-network/vena-node/types"
)

const (
	retryAttempts = 3
	retryBase     = 100 * time.Millisecond
)

// EthCall executes an eth_call at the latest block with a background context.
func EthCall(ethRPC string, to types.Address, data []byte) ([]byte, error) {
	return EthCallAt(context.Background(), ethRPC, to, data, nil)
}

// EthCallCtx executes an eth_call at the latest block with a controllable context.
func EthCallCtx(ctx context.Context, ethRPC string, to types.Address, data []byte) ([]byte, error) {
	return EthCallAt(ctx, ethRPC, to, data, nil)
}

// EthCallAt executes an eth_call at the given block number, or at the latest
// block when blockNumber is nil. Transport failures are retried with a
// bounded backoff; errors reported by the node itself are not.
func EthCallAt(
	ctx context.Context,
	ethRPC string,
	to types.Address,
	data []byte,
	blockNumber *uint64,
) ([]byte, error) {
	block := "latest"
	if blockNumber != nil {
		block = hexutil.EncodeUint64(*blockNumber)
	}

	msg := map[string]string{
		"to":   to.String(),
		"data": hexutil.Encode(data),
	}

	var out hexutil.Bytes

	backoff := retry.WithMaxRetries(retryAttempts, retry.NewFibonacci(retryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		cl, err := rpc.DialContext(ctx, ethRPC)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer cl.Close()

		if err := cl.CallContext(ctx, &out, "eth_call", msg, block); err != nil {
			if IsNodeError(err) {
				// the node evaluated the request and rejected it
				return err
			}

			return retry.RetryableError(err)
		}

		return nil
	})
	if err != nil {
		if IsNodeError(err) {
			metricCalls.WithLabelValues(resultRejected).Inc()
		} else {
			metricCalls.WithLabelValues(resultUnreachable).Inc()
		}

		return nil, err
	}

	metricCalls.WithLabelValues(resultOK).Inc()

	return out, nil
}

// LatestBlockNumber fetches the node's current block height.
func LatestBlockNumber(ctx context.Context, ethRPC string) (uint64, error) {
	cl, err := rpc.DialContext(ctx, ethRPC)
	if err != nil {
		return 0, err
	}
	defer cl.Close()

	var out hexutil.Uint64
	if err := cl.CallContext(ctx, &out, "eth_blockNumber"); err != nil {
		return 0, err
	}

	return uint64(out), nil
}

// IsNodeError reports whether the error is a JSON-RPC error response, as
// opposed to a transport failure.
func IsNodeError(err error) bool {
	var rpcErr rpc.Error

	return errors.As(err, &rpcErr)
}
