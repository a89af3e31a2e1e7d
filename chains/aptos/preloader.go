package aptos

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/types"
)

const (
	tokenTransferMaxGas = 1500

	// Zeroed ed25519 key and signature, accepted by the simulation
	// endpoint in place of a real signature.
	simulationPublicKey = "0x0000000000000000000000000000000000000000000000000000000000000000"
	simulationSignature = "0x00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"
)

type ChainData struct {
	Chain    types.Chain
	Sequence uint64
}

func (d *ChainData) SignDataChain() types.Chain {
	return d.Chain
}

type Preloader struct {
	client Client
	cfg    config.Chain
}

func NewPreloader(client Client, cfg config.Chain) *Preloader {
	return &Preloader{client: client, cfg: cfg}
}

func (p *Preloader) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainAptos
}

func (p *Preloader) PreloadNativeTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	sequence, err := p.sequence(params.From.Address)
	if err != nil {
		return nil, err
	}

	price, err := p.client.EstimateGasPrice()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainAptos, Err: err}
	}

	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		gasPrice := p.tierPrice(price, priority)
		gasLimit, err := p.simulateGasLimit(params, sequence, gasPrice)
		if err != nil {
			return nil, err
		}
		fees = append(fees, types.NewGasFee(types.ChainAptos, priority,
			big.NewInt(gasPrice), big.NewInt(gasLimit)))
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:    types.ChainAptos,
			Sequence: sequence,
		},
		Fees: fees,
	}, nil
}

func (p *Preloader) PreloadTokenTransfer(ctx context.Context, params *types.ConfirmParams) (*types.SignerParams, error) {
	sequence, err := p.sequence(params.From.Address)
	if err != nil {
		return nil, err
	}

	price, err := p.client.EstimateGasPrice()
	if err != nil {
		return nil, &types.ServiceUnavailable{Chain: types.ChainAptos, Err: err}
	}

	fees := make([]*types.Fee, 0, len(types.FeePriorities))
	for _, priority := range types.FeePriorities {
		fees = append(fees, types.NewGasFee(types.ChainAptos, priority,
			big.NewInt(p.tierPrice(price, priority)), big.NewInt(tokenTransferMaxGas)))
	}

	return &types.SignerParams{
		Input: params,
		Owner: params.From.Address,
		ChainData: &ChainData{
			Chain:    types.ChainAptos,
			Sequence: sequence,
		},
		Fees: fees,
	}, nil
}

// sequence resolves the sender's next sequence number. A missing account
// has never submitted anything and starts at 0.
func (p *Preloader) sequence(address string) (uint64, error) {
	account, err := p.client.GetAccount(address)
	if err != nil {
		return 0, &types.ServiceUnavailable{Chain: types.ChainAptos, Err: err}
	}

	if account.NotFound() {
		return 0, nil
	}

	sequence, err := strconv.ParseUint(account.SequenceNumber, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence number %q: %w", account.SequenceNumber, err)
	}
	return sequence, nil
}

func (p *Preloader) tierPrice(price *GasPrice, priority types.FeePriority) int64 {
	switch priority {
	case types.FeePrioritySlow:
		return price.GasEstimate
	case types.FeePriorityFast:
		return price.PrioritizedGasEstimate * 2
	default:
		return price.PrioritizedGasEstimate
	}
}

// simulateGasLimit runs the transfer through the node's simulation
// endpoint. Sending to an account that does not exist yet also pays for
// its creation, which costs roughly NewAccountGasMultiplier times more
// than a plain transfer.
func (p *Preloader) simulateGasLimit(params *types.ConfirmParams, sequence uint64,
	gasPrice int64) (int64, error) {
	simulation := &Simulation{
		Sender:                  params.From.Address,
		SequenceNumber:          strconv.FormatUint(sequence, 10),
		MaxGasAmount:            strconv.FormatInt(tokenTransferMaxGas, 10),
		GasUnitPrice:            strconv.FormatInt(gasPrice, 10),
		ExpirationTimestampSecs: strconv.FormatInt(time.Now().Unix()+600, 10),
		Payload: Payload{
			Type:          "entry_function_payload",
			Function:      "0x1::aptos_account::transfer",
			TypeArguments: []string{},
			Arguments:     []string{params.Destination, params.Value().String()},
		},
		Signature: Signature{
			Type:      "ed25519_signature",
			PublicKey: simulationPublicKey,
			Signature: simulationSignature,
		},
	}

	results, err := p.client.Simulate(simulation)
	if err != nil {
		return 0, &types.ServiceUnavailable{Chain: types.ChainAptos, Err: err}
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("empty simulation result")
	}
	if !results[0].Success {
		return 0, fmt.Errorf("simulation failed: %s", results[0].VmStatus)
	}

	gasUsed, err := strconv.ParseInt(results[0].GasUsed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid gas_used %q: %w", results[0].GasUsed, err)
	}

	destination, err := p.client.GetAccount(params.Destination)
	if err != nil {
		return 0, &types.ServiceUnavailable{Chain: types.ChainAptos, Err: err}
	}
	if destination.NotFound() {
		return gasUsed * p.cfg.NewAccountGasMultiplier, nil
	}
	return gasUsed, nil
}
