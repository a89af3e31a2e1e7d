package bitcoin

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/mr-tron/base58"

	"github.com/tidewallet/core/types"
)

// Outputs below the dust threshold are left to the miner instead of
// creating an unspendable change output.
const dustLimit = 546

type SignClient struct {
	chain types.Chain
}

func NewSignClient(chain types.Chain) *SignClient {
	return &SignClient{chain: chain}
}

func (s *SignClient) SupportsChain(chain types.Chain) bool {
	return s.chain == chain
}

func (s *SignClient) SignTransaction(params *types.SignerParams, priority types.FeePriority,
	privateKey []byte) ([][]byte, error) {
	chainData, ok := params.ChainData.(*ChainData)
	if !ok || chainData.Chain != s.chain {
		return nil, types.ErrChainDataMismatch
	}

	fee := params.Fee(priority)
	if fee == nil {
		return nil, fmt.Errorf("no fee quote for priority %q", priority)
	}

	byteFee := chainData.ByteFees[fee.Priority]
	utxos, err := SelectUtxos(chainData.Utxos, params.Input.Value(), byteFee, params.Input.MaxAmount)
	if err != nil {
		return nil, err
	}

	total := new(big.Int)
	for _, utxo := range utxos {
		total.Add(total, utxo.Amount())
	}

	amount := new(big.Int).Set(params.Input.Value())
	if params.Input.MaxAmount {
		amount.Sub(total, fee.Amount)
	}
	change := new(big.Int).Sub(total, amount)
	change.Sub(change, fee.Amount)
	if change.Sign() < 0 {
		return nil, types.ErrInsufficientFeeBalance
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	for _, utxo := range utxos {
		prevHash, err := chainhash.NewHashFromStr(utxo.TxId)
		if err != nil {
			return nil, err
		}
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(prevHash, utxo.Vout), nil, nil))
	}

	destScript, err := payToAddrScript(params.Input.Destination)
	if err != nil {
		return nil, err
	}
	tx.AddTxOut(wire.NewTxOut(amount.Int64(), destScript))

	ownerScript, err := payToAddrScript(params.Owner)
	if err != nil {
		return nil, err
	}
	if change.Cmp(big.NewInt(dustLimit)) > 0 {
		tx.AddTxOut(wire.NewTxOut(change.Int64(), ownerScript))
	}

	key, _ := btcec.PrivKeyFromBytes(privateKey)
	for i := range tx.TxIn {
		sigScript, err := txscript.SignatureScript(tx, i, ownerScript, txscript.SigHashAll, key, true)
		if err != nil {
			return nil, err
		}
		tx.TxIn[i].SignatureScript = sigScript
	}

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, err
	}

	return [][]byte{buf.Bytes()}, nil
}

// payToAddrScript builds the P2PKH locking script for a base58check
// address. Decoding by hand keeps one code path for all three networks'
// version bytes.
func payToAddrScript(address string) ([]byte, error) {
	decoded, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("malformed address %q: %w", address, err)
	}
	if len(decoded) != 25 {
		return nil, fmt.Errorf("malformed address %q", address)
	}
	pubKeyHash := decoded[1:21]

	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(pubKeyHash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}
