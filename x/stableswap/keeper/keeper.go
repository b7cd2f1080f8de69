// Package keeper implements the persisted pool registry and the atomic
// transactional pipeline that backs every stable-swap operation: it reads
// a pool record, delegates the numerics to the core package, moves
// balances on the external ledger, and writes the reconciled record back.
package keeper

import (
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	"github.com/stableswap/stableswap/x/stableswap/types"
)

// Keeper owns the pool registry and the collaborators every operation in
// this package needs: the external asset ledger, the origin/authorization
// predicate, the event sink, and (optionally) a stricter asset policy at
// pool creation.
type Keeper struct {
	store          storetypes.KVStore
	ledger         types.Ledger
	authorizer     types.Authorizer
	eventSink      types.EventSink
	assetValidator types.AssetValidator
	logger         log.Logger
	metrics        *Metrics
}

// NewKeeper constructs a Keeper. assetValidator may be nil, in which case
// create_pool falls back to the default policy in asset_validator.go.
func NewKeeper(
	store storetypes.KVStore,
	ledger types.Ledger,
	authorizer types.Authorizer,
	eventSink types.EventSink,
	assetValidator types.AssetValidator,
	logger log.Logger,
) Keeper {
	return Keeper{
		store:          store,
		ledger:         ledger,
		authorizer:     authorizer,
		eventSink:      eventSink,
		assetValidator: assetValidator,
		logger:         logger.With("module", "x/"+types.ModuleName),
		metrics:        newMetrics(),
	}
}

func (k Keeper) emit(eventType string, attrs map[string]string) {
	if k.eventSink != nil {
		k.eventSink.EmitEvent(eventType, attrs)
	}
}
