package keeper

import "strconv"

func poolIDString(poolID uint64) string {
	return strconv.FormatUint(poolID, 10)
}
