package keeper

import (
	"time"

	"github.com/google/uuid"

	"github.com/stableswap/stableswap/x/stableswap/core"
	"github.com/stableswap/stableswap/x/stableswap/types"
)

func (k Keeper) snapshot(pool types.PoolRecord, effectiveA core.WideInt) core.Snapshot {
	return core.Snapshot{
		Balances:    pool.Balances,
		Precisions:  pool.Precisions,
		TotalSupply: pool.TotalSupply,
		MintFee:     pool.MintFee,
		SwapFee:     pool.SwapFee,
		RedeemFee:   pool.RedeemFee,
		A:           effectiveA,
	}
}

// Snapshot exposes the read-only pool snapshot for query callers that need
// to run core quote/balance functions without mutating any state.
func (k Keeper) Snapshot(pool types.PoolRecord, effectiveA core.WideInt) core.Snapshot {
	return k.snapshot(pool, effectiveA)
}

// CreatePool registers a new pool (spec.md §6 "create_pool"). origin must
// satisfy the Authorizer's admin predicate. The custodian account is
// derived deterministically from the allocated pool id and marked as a
// durable holder on the ledger before anything else touches it.
func (k Keeper) CreatePool(
	origin string,
	poolAsset string,
	assets []string,
	precisions []core.WideInt,
	mintFee, swapFee, redeemFee core.WideInt,
	initialA core.WideInt,
	feeRecipient, yieldRecipient string,
	precision core.WideInt,
	now uint64,
) (types.PoolRecord, error) {
	const op = "create_pool"
	defer k.metrics.observeLatency(op, time.Now())

	if !k.authorizer.IsAdmin(origin) {
		k.metrics.observeOperation(op, "unauthorized")
		return types.PoolRecord{}, types.ErrUnauthorized.Wrap("create_pool requires admin origin")
	}

	n := len(assets)
	if err := types.ValidateAssetCount(n); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, err
	}
	if len(precisions) != n {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, types.ErrArgumentsMismatch.Wrapf("precisions length %d != assets length %d", len(precisions), n)
	}
	for _, fee := range []core.WideInt{mintFee, swapFee, redeemFee} {
		if err := types.ValidateFee(fee); err != nil {
			k.metrics.observeOperation(op, "error")
			return types.PoolRecord{}, err
		}
	}
	if err := k.validateCreatePoolAsset(poolAsset, assets); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, err
	}

	poolID, err := k.nextPoolID()
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, err
	}

	accountID := DeriveCustodianAccount(poolID)
	if err := k.ledger.MarkDurableHolder(accountID); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, types.ErrLedgerFailure.Wrapf("mark durable holder: %s", err)
	}

	zero := core.ZeroWideInt()
	balances := make([]core.WideInt, n)
	for i := range balances {
		balances[i] = zero
	}

	pool := types.PoolRecord{
		PoolID:         poolID,
		PoolAsset:      poolAsset,
		Assets:         assets,
		Precisions:     precisions,
		MintFee:        mintFee,
		SwapFee:        swapFee,
		RedeemFee:      redeemFee,
		TotalSupply:    zero,
		A:              initialA,
		ABlock:         now,
		FutureA:        initialA,
		FutureABlock:   now,
		Balances:       balances,
		FeeRecipient:   feeRecipient,
		YieldRecipient: yieldRecipient,
		AccountID:      accountID,
		Precision:      precision,
	}
	if err := pool.Validate(); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, err
	}
	if err := k.SetPool(pool); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, err
	}
	k.logger.Info("pool created",
		"pool_id", poolID, "mint_fee", types.FeeRatio(mintFee).String(),
		"swap_fee", types.FeeRatio(swapFee).String(), "redeem_fee", types.FeeRatio(redeemFee).String())

	k.emit(types.EventTypeCreatePool, map[string]string{
		types.AttributeKeyPoolID:   poolIDString(poolID),
		types.AttributeKeyA:        initialA.String(),
		types.AttributeKeySwapID:   uuid.NewString(),
		types.AttributeKeyPalletID: types.ModuleName,
	})

	k.metrics.observeOperation(op, "success")
	k.metrics.PoolCount.Set(float64(k.poolCount()))
	return pool, nil
}

// Mint executes the atomic mint pipeline of spec.md §4.6. Ledger transfers
// follow the fixed ordering of §4.6 step 5; the Ledger implementation is
// the collaborator responsible for making that sequence atomic (spec.md
// §6 "Atomicity contract"), since the keeper itself has no transaction
// primitive of its own to wrap around an external ledger.
func (k Keeper) Mint(origin string, poolID uint64, now uint64, rawAmounts []core.WideInt, minMintAmount core.WideInt) (types.PoolRecord, core.MintQuote, error) {
	const op = "mint"
	defer k.metrics.observeLatency(op, time.Now())

	caller, err := k.authorizer.SignedAccount(origin)
	if err != nil {
		k.metrics.observeOperation(op, "unauthorized")
		return types.PoolRecord{}, core.MintQuote{}, types.ErrUnauthorized.Wrapf("resolve signed account: %s", err)
	}

	pool, err := k.GetPool(poolID)
	if err != nil {
		k.metrics.observeOperation(op, "not_found")
		return types.PoolRecord{}, core.MintQuote{}, err
	}

	effectiveA, err := k.effectiveA(pool, now)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.MintQuote{}, err
	}
	pool, err = k.collectYield(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.MintQuote{}, err
	}

	quote, err := core.QuoteMint(k.snapshot(pool, effectiveA), rawAmounts)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.MintQuote{}, err
	}
	k.metrics.observeNewtonIterations("D", quote.DIterations)
	if quote.MintAmount.LT(minMintAmount) {
		k.metrics.observeOperation(op, "slippage")
		return types.PoolRecord{}, core.MintQuote{}, types.ErrMintUnderMin.Wrapf("mint amount %s below minimum %s", quote.MintAmount.String(), minMintAmount.String())
	}

	for i, raw := range rawAmounts {
		if raw.IsZero() {
			continue
		}
		rawInt, err := core.WideIntToRaw(raw)
		if err != nil {
			k.metrics.observeOperation(op, "math_error")
			return types.PoolRecord{}, core.MintQuote{}, err
		}
		if err := k.ledger.Transfer(pool.Assets[i], caller, pool.AccountID, rawInt, false); err != nil {
			k.metrics.observeOperation(op, "ledger_error")
			return types.PoolRecord{}, core.MintQuote{}, types.ErrLedgerFailure.Wrapf("transfer asset %s: %s", pool.Assets[i], err)
		}
	}
	if quote.FeeAmount.GT(core.ZeroWideInt()) {
		rawFee, err := core.WideIntToRaw(quote.FeeAmount)
		if err != nil {
			return types.PoolRecord{}, core.MintQuote{}, err
		}
		if err := k.ledger.MintInto(pool.PoolAsset, pool.FeeRecipient, rawFee); err != nil {
			k.metrics.observeOperation(op, "ledger_error")
			return types.PoolRecord{}, core.MintQuote{}, types.ErrLedgerFailure.Wrapf("mint fee: %s", err)
		}
	}
	rawMint, err := core.WideIntToRaw(quote.MintAmount)
	if err != nil {
		return types.PoolRecord{}, core.MintQuote{}, err
	}
	if err := k.ledger.MintInto(pool.PoolAsset, caller, rawMint); err != nil {
		k.metrics.observeOperation(op, "ledger_error")
		return types.PoolRecord{}, core.MintQuote{}, types.ErrLedgerFailure.Wrapf("mint lp token: %s", err)
	}

	pool.Balances = quote.NewBalances
	pool.TotalSupply = quote.NewTotalSupply

	pool, err = k.collectFee(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.MintQuote{}, err
	}
	if err := k.SetPool(pool); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.MintQuote{}, err
	}

	k.emit(types.EventTypeMinted, map[string]string{
		types.AttributeKeyPoolID:      poolIDString(poolID),
		types.AttributeKeySender:      caller,
		types.AttributeKeyMintAmount:  quote.MintAmount.String(),
		types.AttributeKeyFeeAmount:   quote.FeeAmount.String(),
		types.AttributeKeyTotalSupply: pool.TotalSupply.String(),
	})

	k.metrics.observeOperation(op, "success")
	return pool, quote, nil
}

// Swap executes the atomic swap pipeline of spec.md §4.6. assetLength is
// the redundant caller-supplied size check of spec.md §6 and §9's first
// open question: checked but otherwise inert.
func (k Keeper) Swap(origin string, poolID uint64, now uint64, i, j int, dx core.WideInt, minDy core.WideInt, assetLength int) (types.PoolRecord, core.SwapQuote, error) {
	const op = "swap"
	defer k.metrics.observeLatency(op, time.Now())

	caller, err := k.authorizer.SignedAccount(origin)
	if err != nil {
		k.metrics.observeOperation(op, "unauthorized")
		return types.PoolRecord{}, core.SwapQuote{}, types.ErrUnauthorized.Wrapf("resolve signed account: %s", err)
	}

	pool, err := k.GetPool(poolID)
	if err != nil {
		k.metrics.observeOperation(op, "not_found")
		return types.PoolRecord{}, core.SwapQuote{}, err
	}
	if assetLength != pool.NAssets() {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.SwapQuote{}, types.ErrArgumentsError.Wrapf("asset_length %d != pool asset count %d", assetLength, pool.NAssets())
	}

	effectiveA, err := k.effectiveA(pool, now)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.SwapQuote{}, err
	}
	pool, err = k.collectYield(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.SwapQuote{}, err
	}

	quote, err := core.QuoteSwap(k.snapshot(pool, effectiveA), i, j, dx)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.SwapQuote{}, err
	}
	k.metrics.observeNewtonIterations("Y", quote.YIterations)
	if quote.Dy.LT(minDy) {
		k.metrics.observeOperation(op, "slippage")
		return types.PoolRecord{}, core.SwapQuote{}, types.ErrSwapUnderMin.Wrapf("swap output %s below minimum %s", quote.Dy.String(), minDy.String())
	}

	dxRaw, err := core.WideIntToRaw(dx)
	if err != nil {
		return types.PoolRecord{}, core.SwapQuote{}, err
	}
	if err := k.ledger.Transfer(pool.Assets[i], caller, pool.AccountID, dxRaw, false); err != nil {
		k.metrics.observeOperation(op, "ledger_error")
		return types.PoolRecord{}, core.SwapQuote{}, types.ErrLedgerFailure.Wrapf("transfer in: %s", err)
	}
	dyRaw, err := core.WideIntToRaw(quote.Dy)
	if err != nil {
		return types.PoolRecord{}, core.SwapQuote{}, err
	}
	if err := k.ledger.Transfer(pool.Assets[j], pool.AccountID, caller, dyRaw, false); err != nil {
		k.metrics.observeOperation(op, "ledger_error")
		return types.PoolRecord{}, core.SwapQuote{}, types.ErrLedgerFailure.Wrapf("transfer out: %s", err)
	}

	newBalances := append([]core.WideInt(nil), pool.Balances...)
	newBalances[i] = quote.NewBalanceI
	newBalances[j] = quote.NewBalanceJ
	pool.Balances = newBalances

	pool, err = k.collectFee(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.SwapQuote{}, err
	}
	if err := k.SetPool(pool); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.SwapQuote{}, err
	}

	k.emit(types.EventTypeTokenSwapped, map[string]string{
		types.AttributeKeyPoolID:       poolIDString(poolID),
		types.AttributeKeySender:       caller,
		types.AttributeKeyAssetIndexI:  poolIDString(uint64(i)),
		types.AttributeKeyAssetIndexJ:  poolIDString(uint64(j)),
		types.AttributeKeyInputAmount:  dx.String(),
		types.AttributeKeyOutputAmount: quote.Dy.String(),
	})

	k.metrics.observeOperation(op, "success")
	return pool, quote, nil
}

// RedeemProportion executes the atomic redeem-proportion pipeline of
// spec.md §4.6.
func (k Keeper) RedeemProportion(origin string, poolID uint64, now uint64, amount core.WideInt, minRedeemAmounts []core.WideInt) (types.PoolRecord, core.RedeemProportionQuote, error) {
	const op = "redeem_proportion"
	defer k.metrics.observeLatency(op, time.Now())

	caller, err := k.authorizer.SignedAccount(origin)
	if err != nil {
		k.metrics.observeOperation(op, "unauthorized")
		return types.PoolRecord{}, core.RedeemProportionQuote{}, types.ErrUnauthorized.Wrapf("resolve signed account: %s", err)
	}

	pool, err := k.GetPool(poolID)
	if err != nil {
		k.metrics.observeOperation(op, "not_found")
		return types.PoolRecord{}, core.RedeemProportionQuote{}, err
	}
	if len(minRedeemAmounts) != pool.NAssets() {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemProportionQuote{}, types.ErrArgumentsMismatch.Wrapf("min_redeem_amounts length %d != pool asset count %d", len(minRedeemAmounts), pool.NAssets())
	}

	effectiveA, err := k.effectiveA(pool, now)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.RedeemProportionQuote{}, err
	}
	pool, err = k.collectYield(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemProportionQuote{}, err
	}

	quote, err := core.QuoteRedeemProportion(k.snapshot(pool, effectiveA), amount)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.RedeemProportionQuote{}, err
	}
	for idx, out := range quote.OutRaw {
		if out.LT(minRedeemAmounts[idx]) {
			k.metrics.observeOperation(op, "slippage")
			return types.PoolRecord{}, core.RedeemProportionQuote{}, types.ErrRedeemUnderMin.Wrapf("asset %d output %s below minimum %s", idx, out.String(), minRedeemAmounts[idx].String())
		}
	}

	for idx, out := range quote.OutRaw {
		if out.IsZero() {
			continue
		}
		outRaw, err := core.WideIntToRaw(out)
		if err != nil {
			return types.PoolRecord{}, core.RedeemProportionQuote{}, err
		}
		if err := k.ledger.Transfer(pool.Assets[idx], pool.AccountID, caller, outRaw, false); err != nil {
			k.metrics.observeOperation(op, "ledger_error")
			return types.PoolRecord{}, core.RedeemProportionQuote{}, types.ErrLedgerFailure.Wrapf("transfer out asset %d: %s", idx, err)
		}
	}
	if quote.FeeAmount.GT(core.ZeroWideInt()) {
		feeRaw, err := core.WideIntToRaw(quote.FeeAmount)
		if err != nil {
			return types.PoolRecord{}, core.RedeemProportionQuote{}, err
		}
		if err := k.ledger.Transfer(pool.PoolAsset, caller, pool.FeeRecipient, feeRaw, false); err != nil {
			k.metrics.observeOperation(op, "ledger_error")
			return types.PoolRecord{}, core.RedeemProportionQuote{}, types.ErrLedgerFailure.Wrapf("transfer lp fee: %s", err)
		}
	}
	burnRaw, err := core.WideIntToRaw(quote.BurnAmount)
	if err != nil {
		return types.PoolRecord{}, core.RedeemProportionQuote{}, err
	}
	if _, err := k.ledger.BurnFrom(pool.PoolAsset, caller, burnRaw); err != nil {
		k.metrics.observeOperation(op, "ledger_error")
		return types.PoolRecord{}, core.RedeemProportionQuote{}, types.ErrLedgerFailure.Wrapf("burn lp token: %s", err)
	}

	pool.Balances = quote.NewBalances
	pool.TotalSupply = quote.NewTotalSupply

	pool, err = k.collectFee(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemProportionQuote{}, err
	}
	if err := k.SetPool(pool); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemProportionQuote{}, err
	}

	k.emit(types.EventTypeRedeemedProportion, map[string]string{
		types.AttributeKeyPoolID:     poolIDString(poolID),
		types.AttributeKeySender:     caller,
		types.AttributeKeyBurnAmount: quote.BurnAmount.String(),
		types.AttributeKeyFeeAmount:  quote.FeeAmount.String(),
	})

	k.metrics.observeOperation(op, "success")
	return pool, quote, nil
}

// RedeemSingle executes the atomic redeem-single pipeline of spec.md §4.6.
func (k Keeper) RedeemSingle(origin string, poolID uint64, now uint64, amount core.WideInt, i int, minRedeemAmount core.WideInt, assetLength int) (types.PoolRecord, core.RedeemSingleQuote, error) {
	const op = "redeem_single"
	defer k.metrics.observeLatency(op, time.Now())

	caller, err := k.authorizer.SignedAccount(origin)
	if err != nil {
		k.metrics.observeOperation(op, "unauthorized")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, types.ErrUnauthorized.Wrapf("resolve signed account: %s", err)
	}

	pool, err := k.GetPool(poolID)
	if err != nil {
		k.metrics.observeOperation(op, "not_found")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, err
	}
	if assetLength != pool.NAssets() {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, types.ErrArgumentsError.Wrapf("asset_length %d != pool asset count %d", assetLength, pool.NAssets())
	}

	effectiveA, err := k.effectiveA(pool, now)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, err
	}
	pool, err = k.collectYield(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, err
	}

	quote, err := core.QuoteRedeemSingle(k.snapshot(pool, effectiveA), amount, i)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, err
	}
	k.metrics.observeNewtonIterations("Y", quote.YIterations)
	if quote.DyRaw.LT(minRedeemAmount) {
		k.metrics.observeOperation(op, "slippage")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, types.ErrRedeemUnderMin.Wrapf("redeem output %s below minimum %s", quote.DyRaw.String(), minRedeemAmount.String())
	}

	if quote.FeeAmount.GT(core.ZeroWideInt()) {
		feeRaw, err := core.WideIntToRaw(quote.FeeAmount)
		if err != nil {
			return types.PoolRecord{}, core.RedeemSingleQuote{}, err
		}
		if err := k.ledger.Transfer(pool.PoolAsset, caller, pool.FeeRecipient, feeRaw, false); err != nil {
			k.metrics.observeOperation(op, "ledger_error")
			return types.PoolRecord{}, core.RedeemSingleQuote{}, types.ErrLedgerFailure.Wrapf("transfer lp fee: %s", err)
		}
	}
	dyRaw, err := core.WideIntToRaw(quote.DyRaw)
	if err != nil {
		return types.PoolRecord{}, core.RedeemSingleQuote{}, err
	}
	if err := k.ledger.Transfer(pool.Assets[i], pool.AccountID, caller, dyRaw, false); err != nil {
		k.metrics.observeOperation(op, "ledger_error")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, types.ErrLedgerFailure.Wrapf("transfer out: %s", err)
	}
	burnRaw, err := core.WideIntToRaw(quote.BurnAmount)
	if err != nil {
		return types.PoolRecord{}, core.RedeemSingleQuote{}, err
	}
	if _, err := k.ledger.BurnFrom(pool.PoolAsset, caller, burnRaw); err != nil {
		k.metrics.observeOperation(op, "ledger_error")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, types.ErrLedgerFailure.Wrapf("burn lp token: %s", err)
	}

	pool.Balances = quote.NewBalances
	pool.TotalSupply = quote.NewTotalSupply

	pool, err = k.collectFee(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, err
	}
	if err := k.SetPool(pool); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemSingleQuote{}, err
	}

	k.emit(types.EventTypeRedeemedSingle, map[string]string{
		types.AttributeKeyPoolID:      poolIDString(poolID),
		types.AttributeKeySender:      caller,
		types.AttributeKeyOutputAmount: quote.DyRaw.String(),
		types.AttributeKeyBurnAmount:   quote.BurnAmount.String(),
	})

	k.metrics.observeOperation(op, "success")
	return pool, quote, nil
}

// RedeemMulti executes the atomic redeem-multi pipeline of spec.md §4.6.
func (k Keeper) RedeemMulti(origin string, poolID uint64, now uint64, rawAmounts []core.WideInt, maxRedeemAmount core.WideInt) (types.PoolRecord, core.RedeemMultiQuote, error) {
	const op = "redeem_multi"
	defer k.metrics.observeLatency(op, time.Now())

	caller, err := k.authorizer.SignedAccount(origin)
	if err != nil {
		k.metrics.observeOperation(op, "unauthorized")
		return types.PoolRecord{}, core.RedeemMultiQuote{}, types.ErrUnauthorized.Wrapf("resolve signed account: %s", err)
	}

	pool, err := k.GetPool(poolID)
	if err != nil {
		k.metrics.observeOperation(op, "not_found")
		return types.PoolRecord{}, core.RedeemMultiQuote{}, err
	}

	effectiveA, err := k.effectiveA(pool, now)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.RedeemMultiQuote{}, err
	}
	pool, err = k.collectYield(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemMultiQuote{}, err
	}

	quote, err := core.QuoteRedeemMulti(k.snapshot(pool, effectiveA), rawAmounts)
	if err != nil {
		k.metrics.observeOperation(op, "math_error")
		return types.PoolRecord{}, core.RedeemMultiQuote{}, err
	}
	k.metrics.observeNewtonIterations("D", quote.DIterations)
	if quote.GrossBurn.GT(maxRedeemAmount) {
		k.metrics.observeOperation(op, "slippage")
		return types.PoolRecord{}, core.RedeemMultiQuote{}, types.ErrRedeemOverMax.Wrapf("burn %s exceeds maximum %s", quote.GrossBurn.String(), maxRedeemAmount.String())
	}

	if quote.FeeAmount.GT(core.ZeroWideInt()) {
		feeRaw, err := core.WideIntToRaw(quote.FeeAmount)
		if err != nil {
			return types.PoolRecord{}, core.RedeemMultiQuote{}, err
		}
		if err := k.ledger.Transfer(pool.PoolAsset, caller, pool.FeeRecipient, feeRaw, false); err != nil {
			k.metrics.observeOperation(op, "ledger_error")
			return types.PoolRecord{}, core.RedeemMultiQuote{}, types.ErrLedgerFailure.Wrapf("transfer lp fee: %s", err)
		}
	}
	for idx, raw := range rawAmounts {
		if raw.IsZero() {
			continue
		}
		rawInt, err := core.WideIntToRaw(raw)
		if err != nil {
			return types.PoolRecord{}, core.RedeemMultiQuote{}, err
		}
		if err := k.ledger.Transfer(pool.Assets[idx], pool.AccountID, caller, rawInt, false); err != nil {
			k.metrics.observeOperation(op, "ledger_error")
			return types.PoolRecord{}, core.RedeemMultiQuote{}, types.ErrLedgerFailure.Wrapf("transfer out asset %d: %s", idx, err)
		}
	}
	burnRaw, err := core.WideIntToRaw(quote.Burn)
	if err != nil {
		return types.PoolRecord{}, core.RedeemMultiQuote{}, err
	}
	if _, err := k.ledger.BurnFrom(pool.PoolAsset, caller, burnRaw); err != nil {
		k.metrics.observeOperation(op, "ledger_error")
		return types.PoolRecord{}, core.RedeemMultiQuote{}, types.ErrLedgerFailure.Wrapf("burn lp token: %s", err)
	}

	pool.Balances = quote.NewBalances
	pool.TotalSupply = quote.NewTotalSupply

	pool, err = k.collectFee(pool, effectiveA)
	if err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemMultiQuote{}, err
	}
	if err := k.SetPool(pool); err != nil {
		k.metrics.observeOperation(op, "error")
		return types.PoolRecord{}, core.RedeemMultiQuote{}, err
	}

	k.emit(types.EventTypeRedeemedMulti, map[string]string{
		types.AttributeKeyPoolID:     poolIDString(poolID),
		types.AttributeKeySender:     caller,
		types.AttributeKeyBurnAmount: quote.Burn.String(),
		types.AttributeKeyFeeAmount:  quote.FeeAmount.String(),
	})

	k.metrics.observeOperation(op, "success")
	return pool, quote, nil
}
