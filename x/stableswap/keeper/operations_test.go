package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"github.com/stableswap/stableswap/x/stableswap/core"
	"github.com/stableswap/stableswap/x/stableswap/types"
)

func newTestKeeper() (Keeper, *fakeLedger, *fakeEventSink) {
	ledger := newFakeLedger()
	sink := &fakeEventSink{}
	store := newDBKVStore(dbm.NewMemDB())
	k := NewKeeper(store, ledger, fakeAuthorizer{admin: "admin"}, sink, nil, log.NewNopLogger())
	return k, ledger, sink
}

func createTestPool(t *testing.T, k Keeper) types.PoolRecord {
	t.Helper()
	precisions := []core.WideInt{core.NewWideInt(1e10), core.NewWideInt(1e10)}
	pool, err := k.CreatePool(
		"admin", "lp/1", []string{"usdc", "usdt"}, precisions,
		core.NewWideInt(1e7), core.NewWideInt(2e7), core.NewWideInt(5e7),
		core.NewWideInt(10000), "fee-acct", "yield-acct", core.NewWideInt(1), 0,
	)
	require.NoError(t, err)
	return pool
}

func TestCreatePoolRequiresAdmin(t *testing.T) {
	k, _, _ := newTestKeeper()
	_, err := k.CreatePool("not-admin", "lp/1", []string{"usdc", "usdt"},
		[]core.WideInt{core.NewWideInt(1), core.NewWideInt(1)},
		core.ZeroWideInt(), core.ZeroWideInt(), core.ZeroWideInt(),
		core.NewWideInt(100), "fee", "yield", core.NewWideInt(1), 0)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestCreatePoolRejectsTooFewAssets(t *testing.T) {
	k, _, _ := newTestKeeper()
	_, err := k.CreatePool("admin", "lp/1", []string{"usdc"},
		[]core.WideInt{core.NewWideInt(1)},
		core.ZeroWideInt(), core.ZeroWideInt(), core.ZeroWideInt(),
		core.NewWideInt(100), "fee", "yield", core.NewWideInt(1), 0)
	require.Error(t, err)
}

func TestMintAgainstFreshPool(t *testing.T) {
	k, ledger, _ := newTestKeeper()
	pool := createTestPool(t, k)

	require.NoError(t, ledger.MintInto("usdc", "alice", rawAmount(100_000_000)))
	require.NoError(t, ledger.MintInto("usdt", "alice", rawAmount(100_000_000)))

	updated, quote, err := k.Mint("alice", pool.PoolID, 0,
		[]core.WideInt{core.NewWideInt(1e7), core.NewWideInt(1e7)}, core.ZeroWideInt())
	require.NoError(t, err)
	require.True(t, quote.MintAmount.GT(core.ZeroWideInt()))
	require.True(t, updated.TotalSupply.Equal(quote.NewTotalSupply))

	require.True(t, ledger.bal("lp/1", "alice").Equal(mustRaw(t, quote.MintAmount)))
	require.True(t, ledger.bal("lp/1", "fee-acct").GT(math.ZeroInt()))
}

func TestMintUnderMinFails(t *testing.T) {
	k, ledger, _ := newTestKeeper()
	pool := createTestPool(t, k)
	require.NoError(t, ledger.MintInto("usdc", "alice", rawAmount(100_000_000)))
	require.NoError(t, ledger.MintInto("usdt", "alice", rawAmount(100_000_000)))

	_, _, err := k.Mint("alice", pool.PoolID, 0,
		[]core.WideInt{core.NewWideInt(1e7), core.NewWideInt(1e7)}, core.NewWideInt(999_999_999_999_999_999))
	require.ErrorIs(t, err, types.ErrMintUnderMin)
}

func TestSwapAfterMint(t *testing.T) {
	k, ledger, _ := newTestKeeper()
	pool := createTestPool(t, k)
	require.NoError(t, ledger.MintInto("usdc", "alice", rawAmount(100_000_000)))
	require.NoError(t, ledger.MintInto("usdt", "alice", rawAmount(100_000_000)))

	_, _, err := k.Mint("alice", pool.PoolID, 0,
		[]core.WideInt{core.NewWideInt(1e7), core.NewWideInt(2e7)}, core.ZeroWideInt())
	require.NoError(t, err)

	_, swapQuote, err := k.Swap("alice", pool.PoolID, 0, 0, 1, core.NewWideInt(5_000_000), core.ZeroWideInt(), 2)
	require.NoError(t, err)
	require.True(t, swapQuote.Dy.GT(core.ZeroWideInt()))
}

func TestSwapWrongAssetLengthFails(t *testing.T) {
	k, ledger, _ := newTestKeeper()
	pool := createTestPool(t, k)
	require.NoError(t, ledger.MintInto("usdc", "alice", rawAmount(100_000_000)))
	require.NoError(t, ledger.MintInto("usdt", "alice", rawAmount(100_000_000)))
	_, _, _ = k.Mint("alice", pool.PoolID, 0, []core.WideInt{core.NewWideInt(1e7), core.NewWideInt(1e7)}, core.ZeroWideInt())

	_, _, err := k.Swap("alice", pool.PoolID, 0, 0, 1, core.NewWideInt(1000), core.ZeroWideInt(), 3)
	require.ErrorIs(t, err, types.ErrArgumentsError)
}

func TestRedeemProportionRoundTrip(t *testing.T) {
	k, ledger, _ := newTestKeeper()
	pool := createTestPool(t, k)
	require.NoError(t, ledger.MintInto("usdc", "alice", rawAmount(100_000_000)))
	require.NoError(t, ledger.MintInto("usdt", "alice", rawAmount(100_000_000)))

	_, mintQuote, err := k.Mint("alice", pool.PoolID, 0,
		[]core.WideInt{core.NewWideInt(1e7), core.NewWideInt(1e7)}, core.ZeroWideInt())
	require.NoError(t, err)

	_, redeemQuote, err := k.RedeemProportion("alice", pool.PoolID, 0, mintQuote.MintAmount,
		[]core.WideInt{core.ZeroWideInt(), core.ZeroWideInt()})
	require.NoError(t, err)
	require.True(t, redeemQuote.OutRaw[0].GT(core.ZeroWideInt()))
}

func TestModifyARequiresAdmin(t *testing.T) {
	k, _, _ := newTestKeeper()
	pool := createTestPool(t, k)
	_, err := k.ModifyA("alice", pool.PoolID, 0, core.NewWideInt(20000), 1000)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestModifyASucceeds(t *testing.T) {
	k, _, sink := newTestKeeper()
	pool := createTestPool(t, k)
	updated, err := k.ModifyA("admin", pool.PoolID, 0, core.NewWideInt(20000), 1000)
	require.NoError(t, err)
	require.True(t, updated.FutureA.Equal(core.NewWideInt(20000)))
	require.NotEmpty(t, sink.events)
}

func TestGenesisRoundTrip(t *testing.T) {
	k, _, _ := newTestKeeper()
	createTestPool(t, k)

	exported := k.ExportGenesis()
	require.Len(t, exported.Pools, 1)

	k2, _, _ := newTestKeeper()
	require.NoError(t, k2.InitGenesis(exported))
	reimported := k2.ExportGenesis()
	require.Equal(t, exported.PoolCount, reimported.PoolCount)
}

func rawAmount(v uint64) math.Int {
	return math.NewIntFromUint64(v)
}

func mustRaw(t *testing.T, w core.WideInt) math.Int {
	t.Helper()
	r, err := core.WideIntToRaw(w)
	require.NoError(t, err)
	return r
}
