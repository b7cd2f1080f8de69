package types

import (
	"encoding/json"

	"cosmossdk.io/math"
)

// PoolRecord is the persisted state of one stable-swap pool (spec.md §3).
type PoolRecord struct {
	PoolID      uint64 `json:"pool_id"`
	PoolAsset   string `json:"pool_asset"`
	Assets      []string `json:"assets"`
	Precisions  []math.Uint `json:"precisions"`
	MintFee     math.Uint `json:"mint_fee"`
	SwapFee     math.Uint `json:"swap_fee"`
	RedeemFee   math.Uint `json:"redeem_fee"`
	TotalSupply math.Uint `json:"total_supply"`

	A             math.Uint `json:"a"`
	ABlock        uint64    `json:"a_block"`
	FutureA       math.Uint `json:"future_a"`
	FutureABlock  uint64    `json:"future_a_block"`

	Balances []math.Uint `json:"balances"`

	FeeRecipient   string `json:"fee_recipient"`
	YieldRecipient string `json:"yield_recipient"`
	AccountID      string `json:"account_id"`
	Precision      math.Uint `json:"precision"`
}

// NAssets returns the pool's asset count n.
func (p PoolRecord) NAssets() int {
	return len(p.Assets)
}

// Validate checks the structural invariants in spec.md §3 that can be
// checked without consulting the ledger or the block clock.
func (p PoolRecord) Validate() error {
	n := len(p.Assets)
	if err := ValidateAssetCount(n); err != nil {
		return err
	}
	if len(p.Precisions) != n || len(p.Balances) != n {
		return ErrArgumentsMismatch.Wrapf("pool %d: assets=%d precisions=%d balances=%d", p.PoolID, n, len(p.Precisions), len(p.Balances))
	}
	for i, prec := range p.Precisions {
		if prec.IsNil() || prec.IsZero() {
			return ErrInvalidPoolValue.Wrapf("pool %d: precision[%d] must be >= 1", p.PoolID, i)
		}
	}
	if err := ValidateFee(p.MintFee); err != nil {
		return err
	}
	if err := ValidateFee(p.SwapFee); err != nil {
		return err
	}
	if err := ValidateFee(p.RedeemFee); err != nil {
		return err
	}
	if p.ABlock > p.FutureABlock {
		return ErrArgumentsError.Wrapf("pool %d: a_block %d > future_a_block %d", p.PoolID, p.ABlock, p.FutureABlock)
	}
	return nil
}

// poolRecordWire is the type MarshalRecord and UnmarshalRecord encode
// through: it has PoolRecord's fields and tags and adds no behaviour of its
// own. math.Uint marshals to a JSON string via its own MarshalJSON. A slice
// field absent from the input decodes to nil, not to an empty slice.
type poolRecordWire PoolRecord

// MarshalRecord deterministically encodes a pool record for KVStore
// persistence. JSON is used instead of a generated protobuf codec (see
// DESIGN.md) but the field order of the Go struct makes the encoding
// stable across hosts built from the same struct definition.
func MarshalRecord(p PoolRecord) ([]byte, error) {
	b, err := json.Marshal(poolRecordWire(p))
	if err != nil {
		return nil, ErrInconsistentStorage.Wrapf("encode pool record: %s", err)
	}
	return b, nil
}

// UnmarshalRecord decodes a pool record previously written by MarshalRecord.
func UnmarshalRecord(b []byte) (PoolRecord, error) {
	var w poolRecordWire
	if err := json.Unmarshal(b, &w); err != nil {
		return PoolRecord{}, ErrInconsistentStorage.Wrapf("decode pool record: %s", err)
	}
	return PoolRecord(w), nil
}
