package types

const (
	// ModuleName is the name used for error registration, event attribution,
	// and KVStore key prefixing.
	ModuleName = "stableswap"

	// StoreKey is the store key under which the pool registry is persisted.
	StoreKey = ModuleName
)

var (
	// PoolCountKey holds the monotonic pool counter.
	PoolCountKey = []byte{0x01}

	// PoolRecordPrefix prefixes every persisted PoolRecord, keyed by the
	// big-endian encoding of its pool id.
	PoolRecordPrefix = []byte{0x02}
)

// PoolRecordKey builds the KVStore key for a given pool id.
func PoolRecordKey(poolID uint64) []byte {
	return append(PoolRecordPrefix, poolIDBytes(poolID)...)
}

func poolIDBytes(poolID uint64) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(poolID)
		poolID >>= 8
	}
	return b
}
