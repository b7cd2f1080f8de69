package keeper

import (
	"github.com/stableswap/stableswap/x/stableswap/types"
)

// defaultAssetValidator implements the fallback create_pool asset policy
// (SPEC_FULL.md "Supplemented Features" #3, grounded in the original
// pallet's ValidateAssetId trait): reject a pool whose LP asset id
// collides with an existing pool's LP asset id or with any existing
// pool's underlying asset id.
type defaultAssetValidator struct {
	k Keeper
}

func (v defaultAssetValidator) ValidatePoolAsset(poolAsset string, underlying []string) error {
	var offending error
	v.k.IteratePools(func(p types.PoolRecord) bool {
		if p.PoolAsset == poolAsset {
			offending = types.ErrInvalidPoolAsset.Wrapf("pool asset %s already in use as an LP token", poolAsset)
			return false
		}
		for _, asset := range p.Assets {
			if asset == poolAsset {
				offending = types.ErrInvalidPoolAsset.Wrapf("pool asset %s collides with an existing pool's underlying asset", poolAsset)
				return false
			}
		}
		return true
	})
	return offending
}

// validateCreatePoolAsset dispatches to the caller-supplied AssetValidator
// if one was configured, falling back to defaultAssetValidator otherwise.
func (k Keeper) validateCreatePoolAsset(poolAsset string, underlying []string) error {
	if k.assetValidator != nil {
		return k.assetValidator.ValidatePoolAsset(poolAsset, underlying)
	}
	return defaultAssetValidator{k: k}.ValidatePoolAsset(poolAsset, underlying)
}
