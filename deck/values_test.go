package deck

import (
	"testing"

	utils "github.com/royalmatch/casino/internal"
)

func TestCardValues(t *testing.T) {
	tt := []struct {
		rank         Rank
		count, build int
		capture      int
	}{
		{Ace, 1, 1, 14},
		{Two, 2, 2, 2},
		{Seven, 7, 7, 7},
		{Ten, 10, 10, 10},
		{Jack, 10, 0, 11},
		{Queen, 10, 0, 12},
		{King, 10, 0, 13},
	}

	for _, tc := range tt {
		t.Run(tc.rank.String(), func(t *testing.T) {
			utils.AssertEqual(t, CountValue(tc.rank), tc.count)
			utils.AssertEqual(t, BuildValue(tc.rank), tc.build)
			utils.AssertEqual(t, CaptureValue(tc.rank), tc.capture)
		})
	}
}

func TestRankForValue(t *testing.T) {
	t.Run("one maps to the ace", func(t *testing.T) {
		rank, ok := RankForValue(1)
		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, rank, Ace)
	})

	t.Run("numerals map to themselves", func(t *testing.T) {
		for v := 2; v <= 10; v++ {
			rank, ok := RankForValue(v)
			utils.AssertTrue(t, ok)
			utils.AssertEqual(t, BuildValue(rank), v)
		}
	})

	t.Run("no capturing rank outside 1..10", func(t *testing.T) {
		for _, v := range []int{0, -3, 11, 14} {
			_, ok := RankForValue(v)
			utils.AssertEqual(t, ok, false)
		}
	})
}
