package polkadot

import (
	"context"
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/tidewallet/core/types"
)

// Substrate nodes have no extrinsic-by-hash lookup, so the status client
// scans finalized blocks after the broadcast block and matches extrinsic
// hashes. The scan window is bounded; a transaction that falls outside
// it stays pending until the chain timeout fires.
const maxScanBlocks = 120

type StatusClient struct {
	client Client
}

func NewStatusClient(client Client) *StatusClient {
	return &StatusClient{client: client}
}

func (s *StatusClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainPolkadot
}

func (s *StatusClient) TransactionStatus(ctx context.Context, req *types.TxStateRequest) (*types.TransactionChanges, error) {
	target, err := decodeHex32(req.Hash)
	if err != nil {
		return nil, types.ErrChainDataMismatch
	}

	head, err := s.client.FinalizedHead(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}
	header, err := s.client.Header(ctx, head)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}
	headNumber, err := header.BlockNumber()
	if err != nil {
		return nil, err
	}

	from, parseErr := strconv.ParseUint(req.Block, 10, 64)
	if parseErr != nil {
		// No usable broadcast block; fall back to the trailing window.
		if headNumber > maxScanBlocks {
			from = headNumber - maxScanBlocks
		}
	}
	if headNumber > from+maxScanBlocks {
		headNumber = from + maxScanBlocks
	}

	for number := from; number <= headNumber; number++ {
		hash, err := s.client.BlockHash(ctx, number)
		if err != nil {
			return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
		}
		block, err := s.client.Block(ctx, hash)
		if err != nil {
			return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
		}

		for _, extrinsic := range block.Block.Extrinsics {
			bz, err := hex.DecodeString(strings.TrimPrefix(extrinsic, "0x"))
			if err != nil {
				continue
			}
			digest := blake2b.Sum256(bz)
			if string(digest[:]) == string(target) {
				return &types.TransactionChanges{State: types.StateConfirmed}, nil
			}
		}
	}

	return &types.TransactionChanges{State: types.StatePending}, nil
}

func (s *StatusClient) NodeStatus(ctx context.Context) (*types.NodeStatus, error) {
	start := time.Now()
	head, err := s.client.FinalizedHead(ctx)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}
	header, err := s.client.Header(ctx, head)
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainPolkadot, Err: err}
	}
	number, err := header.BlockNumber()
	if err != nil {
		return nil, err
	}

	return &types.NodeStatus{
		Chain:         types.ChainPolkadot,
		LatestBlock:   new(big.Int).SetUint64(number),
		LatencyMillis: time.Since(start).Milliseconds(),
		InSync:        true,
	}, nil
}
