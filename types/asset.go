package types

import "strings"

// AssetId identifies the native currency of a chain (empty TokenId) or a
// token/contract on that chain.
type AssetId struct {
	Chain   Chain
	TokenId string
}

func NewAssetId(chain Chain) AssetId {
	return AssetId{Chain: chain}
}

func NewTokenAssetId(chain Chain, tokenId string) AssetId {
	return AssetId{Chain: chain, TokenId: tokenId}
}

func (a AssetId) IsNative() bool {
	return a.TokenId == ""
}

// Identifier renders the asset id in the canonical "chain_tokenId" form
// used as database keys.
func (a AssetId) Identifier() string {
	if a.IsNative() {
		return string(a.Chain)
	}
	return string(a.Chain) + "_" + a.TokenId
}

// AssetIdFromIdentifier parses the canonical form. The bool result is
// false when the string does not name a known chain.
func AssetIdFromIdentifier(s string) (AssetId, bool) {
	parts := strings.SplitN(s, "_", 2)
	chain := Chain(parts[0])
	known := false
	for _, c := range AllChains {
		if c == chain {
			known = true
			break
		}
	}
	if !known {
		return AssetId{}, false
	}
	id := AssetId{Chain: chain}
	if len(parts) == 2 {
		id.TokenId = parts[1]
	}
	return id, true
}
