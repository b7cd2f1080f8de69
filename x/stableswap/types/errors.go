package types

import (
	"cosmossdk.io/errors"
)

// Stable-swap engine sentinel errors. One registry, one numeric code per
// variant — the exact taxonomy of spec.md §7.
var (
	ErrInconsistentStorage = errors.Register(ModuleName, 1, "inconsistent storage")
	ErrInvalidPoolAsset    = errors.Register(ModuleName, 2, "invalid pool asset")
	ErrArgumentsMismatch   = errors.Register(ModuleName, 3, "arguments length mismatch")
	ErrArgumentsError      = errors.Register(ModuleName, 4, "invalid arguments")
	ErrPoolNotFound        = errors.Register(ModuleName, 5, "pool not found")
	ErrMathError           = errors.Register(ModuleName, 6, "math error")
	ErrInvalidPoolValue    = errors.Register(ModuleName, 7, "invalid pool value")
	ErrMintUnderMin        = errors.Register(ModuleName, 8, "mint amount under minimum")
	ErrSwapUnderMin        = errors.Register(ModuleName, 9, "swap output under minimum")
	ErrRedeemUnderMin      = errors.Register(ModuleName, 10, "redeem amount under minimum")
	ErrRedeemOverMax       = errors.Register(ModuleName, 11, "redeem burn over maximum")
	ErrUnauthorized        = errors.Register(ModuleName, 12, "unauthorized")
	ErrLedgerFailure       = errors.Register(ModuleName, 13, "ledger operation failed")
)
