package bracket

// Snapshot is everything the bracket is derived from: the creation-ordered
// roster and the sparse map of recorded winners. Resolution is a pure read
// over the snapshot; an empty slot is the normal "not yet determined" state,
// never an error.
type Snapshot struct {
	Teams   []Team
	Winners map[string]int64
}

// Slots holds the resolved occupants of one bracket slot.
type Slots struct {
	Side1  *Team `json:"side1Team"`
	Side2  *Team `json:"side2Team"`
	Winner *Team `json:"winnerTeam"`
}

// ResolveMatch computes which teams occupy both sides of a match, plus its
// winner if one is recorded and still valid. Unknown ids return ok=false.
// Advancement is never inferred: a derived side stays empty until the feeder
// match has a recorded winner, even when both feeder sides are known.
func (s Snapshot) ResolveMatch(id string) (Slots, bool) {
	srcs, ok := matchSources[id]
	if !ok {
		return Slots{}, false
	}
	slots := Slots{
		Side1: s.resolveSide(srcs[0]),
		Side2: s.resolveSide(srcs[1]),
	}
	slots.Winner = s.winner(id, slots.Side1, slots.Side2)
	return slots, true
}

func (s Snapshot) resolveSide(src source) *Team {
	if src.feeder != "" {
		slots, ok := s.ResolveMatch(src.feeder)
		if !ok {
			return nil
		}
		return slots.Winner
	}
	pool := SplitPools(s.Teams)[src.pool]
	if src.position >= len(pool) {
		return nil
	}
	team := pool[src.position]
	return &team
}

// winner guards against stale records: a recorded winner counts only while
// the referenced team still occupies one of the match's resolved sides.
func (s Snapshot) winner(id string, side1, side2 *Team) *Team {
	winnerID, ok := s.Winners[id]
	if !ok {
		return nil
	}
	if side1 != nil && side1.ID == winnerID {
		return side1
	}
	if side2 != nil && side2.ID == winnerID {
		return side2
	}
	return nil
}

// Champion resolves the grand final winner, if decided.
func (s Snapshot) Champion() *Team {
	slots, _ := s.ResolveMatch(MatchGrandFinal)
	return slots.Winner
}
