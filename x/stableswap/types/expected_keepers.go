package types

import "cosmossdk.io/math"

// Ledger is the external asset ledger the engine consumes (spec.md §6).
// The engine never holds balances itself; every mint/burn/transfer is
// delegated here, and any returned error aborts and rolls back the
// enclosing operation.
type Ledger interface {
	// Balance returns the current on-ledger balance of asset held by account.
	Balance(asset string, account string) math.Int

	// MintInto mints amount of asset into account. May fail.
	MintInto(asset string, account string, amount math.Int) error

	// BurnFrom burns amount of asset from account and returns the balance
	// afterward. May fail (e.g. insufficient balance).
	BurnFrom(asset string, account string, amount math.Int) (math.Int, error)

	// Transfer moves amount of asset from one account to another.
	// keepAlive is always false for this engine's call sites. May fail.
	Transfer(asset string, from string, to string, amount math.Int, keepAlive bool) error

	// MarkDurableHolder marks account as a referenced custodian so the
	// ledger will not reap it for holding a zero or dust balance.
	MarkDurableHolder(account string) error
}

// Authorizer gates privileged operations and resolves the caller account
// for user-triggered ones (spec.md §6).
type Authorizer interface {
	// IsAdmin reports whether the given origin may call create_pool,
	// modify_a, and other admin-only operations.
	IsAdmin(origin string) bool

	// SignedAccount resolves a signed origin into the caller account id
	// used as the counterparty of ledger transfers.
	SignedAccount(origin string) (string, error)
}

// EventSink is the append-only event emission collaborator (spec.md §6).
type EventSink interface {
	EmitEvent(eventType string, attributes map[string]string)
}

// AssetValidator gates the asset/LP-token combination a new pool may be
// created with (SPEC_FULL.md "Supplemented Features" #3, grounded in the
// original pallet's ValidateAssetId trait). The default behaviour — reject
// an LP asset id that is already an existing pool's LP asset id or collides
// with any existing pool's underlying asset id — lives in keeper, since it
// needs the pool store; this interface lets
// a caller supply a stricter policy instead.
type AssetValidator interface {
	ValidatePoolAsset(poolAsset string, underlying []string) error
}
