package bracket

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTeams(n int) []Team {
	teams := make([]Team, 0, n)
	for i := 1; i <= n; i++ {
		teams = append(teams, Team{
			ID:       int64(i),
			TeamName: fmt.Sprintf("Team %d", i),
		})
	}
	return teams
}

func TestSplitPools(t *testing.T) {
	for n := 0; n <= MaxTeams; n++ {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			teams := makeTeams(n)
			pools := SplitPools(teams)

			var flattened []Team
			for _, pool := range pools {
				assert.LessOrEqual(t, len(pool), PoolSize)
				flattened = append(flattened, pool...)
			}

			// Concatenating the pools gives back the registration order.
			require.Len(t, flattened, n)
			for i, team := range flattened {
				assert.Equal(t, teams[i].ID, team.ID)
			}
		})
	}
}

func TestSplitPoolsEmpty(t *testing.T) {
	pools := SplitPools(nil)
	for _, pool := range pools {
		assert.Empty(t, pool)
	}
}

func TestResolveLeafSides(t *testing.T) {
	// 8 teams: pool A = T1..T4, pool B = T5..T8, pools C/D empty.
	snap := Snapshot{Teams: makeTeams(8), Winners: map[string]int64{}}

	slots, ok := snap.ResolveMatch(MatchAlphaLeftQF)
	require.True(t, ok)
	require.NotNil(t, slots.Side1)
	require.NotNil(t, slots.Side2)
	assert.EqualValues(t, 1, slots.Side1.ID) // 1st of pool A
	assert.EqualValues(t, 6, slots.Side2.ID) // 2nd of pool B
	assert.Nil(t, slots.Winner)

	slots, ok = snap.ResolveMatch(MatchAlphaRightQF)
	require.True(t, ok)
	require.NotNil(t, slots.Side1)
	require.NotNil(t, slots.Side2)
	assert.EqualValues(t, 5, slots.Side1.ID) // 1st of pool B
	assert.EqualValues(t, 2, slots.Side2.ID) // 2nd of pool A

	// BRAVO pools are empty, both sides absent.
	slots, ok = snap.ResolveMatch(MatchBravoLeftQF)
	require.True(t, ok)
	assert.Nil(t, slots.Side1)
	assert.Nil(t, slots.Side2)
}

func TestResolvePartialPool(t *testing.T) {
	// 5 teams: pool B holds only T5, so its 2nd-place slot is empty.
	snap := Snapshot{Teams: makeTeams(5)}

	slots, ok := snap.ResolveMatch(MatchAlphaLeftQF)
	require.True(t, ok)
	require.NotNil(t, slots.Side1)
	assert.EqualValues(t, 1, slots.Side1.ID)
	assert.Nil(t, slots.Side2)
}

func TestUnknownMatch(t *testing.T) {
	snap := Snapshot{Teams: makeTeams(8)}
	_, ok := snap.ResolveMatch("ALPHA-R1-M1")
	assert.False(t, ok)
	assert.False(t, KnownMatch("ALPHA-R1-M1"))
	assert.True(t, KnownMatch(MatchGrandFinal))
}

func TestDerivedSidesRequireRecordedWinners(t *testing.T) {
	// Both quarterfinals have known sides, but without recorded winners the
	// block final stays empty. No auto-advancement.
	snap := Snapshot{Teams: makeTeams(8), Winners: map[string]int64{}}

	slots, ok := snap.ResolveMatch(MatchAlphaFinal)
	require.True(t, ok)
	assert.Nil(t, slots.Side1)
	assert.Nil(t, slots.Side2)
	assert.Nil(t, slots.Winner)
}

func TestResolveDerivedMatch(t *testing.T) {
	snap := Snapshot{
		Teams: makeTeams(8),
		Winners: map[string]int64{
			MatchAlphaLeftQF:  1,
			MatchAlphaRightQF: 5,
		},
	}

	slots, ok := snap.ResolveMatch(MatchAlphaFinal)
	require.True(t, ok)
	require.NotNil(t, slots.Side1)
	require.NotNil(t, slots.Side2)
	assert.EqualValues(t, 1, slots.Side1.ID)
	assert.EqualValues(t, 5, slots.Side2.ID)
	assert.Nil(t, slots.Winner)
}

func TestStaleWinnerIgnored(t *testing.T) {
	teams := makeTeams(8)
	winners := map[string]int64{MatchAlphaLeftQF: 1}

	snap := Snapshot{Teams: teams, Winners: winners}
	slots, _ := snap.ResolveMatch(MatchAlphaLeftQF)
	require.NotNil(t, slots.Winner)
	assert.EqualValues(t, 1, slots.Winner.ID)

	// Team 1 is deleted; pool membership shifts and the recorded winner no
	// longer occupies either resolved side of the match.
	snap = Snapshot{Teams: teams[1:], Winners: winners}
	slots, _ = snap.ResolveMatch(MatchAlphaLeftQF)
	require.NotNil(t, slots.Side1)
	assert.EqualValues(t, 2, slots.Side1.ID)
	assert.Nil(t, slots.Winner)

	// And the dependent match treats that side as absent.
	finals, _ := snap.ResolveMatch(MatchAlphaFinal)
	assert.Nil(t, finals.Side1)
}

func TestChampionFullRun(t *testing.T) {
	snap := Snapshot{Teams: makeTeams(16), Winners: map[string]int64{}}
	assert.Nil(t, snap.Champion())

	// Pool 1st/2nd positions: A={1,2}, B={5,6}, C={9,10}, D={13,14}.
	snap.Winners[MatchAlphaLeftQF] = 1   // T1 vs T6
	snap.Winners[MatchAlphaRightQF] = 5  // T5 vs T2
	snap.Winners[MatchBravoLeftQF] = 14  // T9 vs T14
	snap.Winners[MatchBravoRightQF] = 13 // T13 vs T10
	snap.Winners[MatchAlphaFinal] = 5
	snap.Winners[MatchBravoFinal] = 14

	// Grand final sides are the block champions.
	slots, ok := snap.ResolveMatch(MatchGrandFinal)
	require.True(t, ok)
	require.NotNil(t, slots.Side1)
	require.NotNil(t, slots.Side2)
	assert.EqualValues(t, 5, slots.Side1.ID)
	assert.EqualValues(t, 14, slots.Side2.ID)
	assert.Nil(t, snap.Champion())

	snap.Winners[MatchGrandFinal] = 14
	champion := snap.Champion()
	require.NotNil(t, champion)
	assert.EqualValues(t, 14, champion.ID)
}

func TestWinnerNotOnEitherSide(t *testing.T) {
	// A recorded winner that never occupied the match resolves to nothing.
	snap := Snapshot{
		Teams:   makeTeams(8),
		Winners: map[string]int64{MatchAlphaLeftQF: 7},
	}
	slots, _ := snap.ResolveMatch(MatchAlphaLeftQF)
	assert.Nil(t, slots.Winner)
}
