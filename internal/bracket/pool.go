package bracket

// Four pools of up to four teams, conventionally labelled A through D.
const (
	PoolCount = 4
	PoolSize  = 4
)

var PoolLabels = [PoolCount]string{"A", "B", "C", "D"}

// SplitPools slices the creation-ordered team list into contiguous pools.
// Pool i holds teams[4i:4i+4]; trailing pools may be short or empty. Pool
// membership is recomputed on every read and shifts when teams come and go.
func SplitPools(teams []Team) [PoolCount][]Team {
	var pools [PoolCount][]Team
	for i := 0; i < PoolCount; i++ {
		lo := i * PoolSize
		if lo > len(teams) {
			lo = len(teams)
		}
		hi := lo + PoolSize
		if hi > len(teams) {
			hi = len(teams)
		}
		pools[i] = teams[lo:hi]
	}
	return pools
}
