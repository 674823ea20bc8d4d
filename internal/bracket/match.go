package bracket

// Block names one half of the bracket: ALPHA is fed by pools A and B,
// BRAVO by pools C and D.
type Block string

const (
	BlockAlpha Block = "ALPHA"
	BlockBravo Block = "BRAVO"
)

// Fixed match identifiers. Quarterfinals draw their sides directly from pool
// positions; finals draw them from feeder match winners.
const (
	MatchAlphaLeftQF  = "ALPHA-L-QF"
	MatchAlphaRightQF = "ALPHA-R-QF"
	MatchAlphaFinal   = "ALPHA-FINAL"
	MatchBravoLeftQF  = "BRAVO-L-QF"
	MatchBravoRightQF = "BRAVO-R-QF"
	MatchBravoFinal   = "BRAVO-FINAL"
	MatchGrandFinal   = "GRAND-FINAL"
)

// MatchIDs lists every bracket slot in feed order.
var MatchIDs = []string{
	MatchAlphaLeftQF, MatchAlphaRightQF, MatchAlphaFinal,
	MatchBravoLeftQF, MatchBravoRightQF, MatchBravoFinal,
	MatchGrandFinal,
}

// source tells where one side of a match comes from: a pool slot for leaf
// matches, a feeder match winner for derived ones.
type source struct {
	pool     int
	position int
	feeder   string
}

func poolSlot(pool, position int) source {
	return source{pool: pool, position: position}
}

func winnerOf(matchID string) source {
	return source{pool: -1, feeder: matchID}
}

// matchSources is the full bracket graph, a strict forward DAG of depth 3.
// Pool positions 0 and 1 stand in for the pool's 1st and 2nd place, however
// those were ranked; the ranking rule itself lives outside this package.
var matchSources = map[string][2]source{
	MatchAlphaLeftQF:  {poolSlot(0, 0), poolSlot(1, 1)},
	MatchAlphaRightQF: {poolSlot(1, 0), poolSlot(0, 1)},
	MatchAlphaFinal:   {winnerOf(MatchAlphaLeftQF), winnerOf(MatchAlphaRightQF)},
	MatchBravoLeftQF:  {poolSlot(2, 0), poolSlot(3, 1)},
	MatchBravoRightQF: {poolSlot(3, 0), poolSlot(2, 1)},
	MatchBravoFinal:   {winnerOf(MatchBravoLeftQF), winnerOf(MatchBravoRightQF)},
	MatchGrandFinal:   {winnerOf(MatchAlphaFinal), winnerOf(MatchBravoFinal)},
}

// KnownMatch reports whether id names a slot in the bracket.
func KnownMatch(id string) bool {
	_, ok := matchSources[id]
	return ok
}
