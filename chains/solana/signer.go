package solana

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/tidewallet/core/types"
)

const (
	computeBudgetProgram = "ComputeBudget111111111111111111111111111111"

	// Instruction discriminator for SetComputeUnitPrice.
	setComputeUnitPriceOp = 3
)

type SignClient struct{}

func NewSignClient() *SignClient {
	return &SignClient{}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return chain == types.ChainSolana
}

func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != types.ChainSolana {
		return nil, types.ErrChainDataMismatch
	}

	blockhash, err := solana.HashFromBase58(chainData.Blockhash)
	if err != nil {
		return nil, types.ErrChainDataMismatch
	}

	key := solana.PrivateKey(privateKey)
	payer := key.PublicKey()

	instruction, err := s.buildInstruction(params, payer)
	if err != nil {
		return nil, err
	}

	instructions := []solana.Instruction{instruction}
	if unitPrice := selectUnitPrice(chainData, priority); unitPrice > 0 {
		instructions = append([]solana.Instruction{unitPriceInstruction(unitPrice)}, instructions...)
	}

	tx, err := solana.NewTransaction(
		instructions,
		blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return nil, err
	}

	_, err = tx.Sign(func(pub solana.PublicKey) *solana.PrivateKey {
		if pub.Equals(payer) {
			return &key
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	bz, err := tx.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return [][]byte{bz}, nil
}

// selectUnitPrice picks the quoted priority-fee tier, falling back to
// the normal tier the same way SelectFee does.
func selectUnitPrice(chainData *ChainData, priority types.FeePriority) uint64 {
	if price, ok := chainData.UnitPrices[priority]; ok {
		return price
	}
	return chainData.UnitPrices[types.FeePriorityNormal]
}

// unitPriceInstruction sets the per-compute-unit price in micro-lamports
// so validators prioritize the transaction at the quoted tier.
func unitPriceInstruction(microLamports uint64) solana.Instruction {
	data := make([]byte, 9)
	data[0] = setComputeUnitPriceOp
	binary.LittleEndian.PutUint64(data[1:], microLamports)

	return solana.NewInstruction(
		solana.MustPublicKeyFromBase58(computeBudgetProgram),
		solana.AccountMetaSlice{},
		data,
	)
}

func (s *SignClient) buildInstruction(params *types.SignerParams, payer solana.PublicKey) (solana.Instruction, error) {
	if params.Input.Kind.IsStake() {
		return nil, fmt.Errorf("unsupported intent %s", params.Input.Kind)
	}

	destination, err := solana.PublicKeyFromBase58(params.Input.Destination)
	if err != nil {
		return nil, fmt.Errorf("malformed destination: %w", err)
	}
	amount := params.Input.Value().Uint64()

	if params.Input.AssetId.IsNative() {
		return system.NewTransferInstruction(amount, payer, destination).Build(), nil
	}

	mint, err := solana.PublicKeyFromBase58(params.Input.AssetId.TokenId)
	if err != nil {
		return nil, fmt.Errorf("malformed mint: %w", err)
	}
	source, _, err := solana.FindAssociatedTokenAddress(payer, mint)
	if err != nil {
		return nil, err
	}
	destAta, _, err := solana.FindAssociatedTokenAddress(destination, mint)
	if err != nil {
		return nil, err
	}

	return token.NewTransferInstruction(amount, source, destAta, payer, nil).Build(), nil
}
