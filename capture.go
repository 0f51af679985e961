package casino

import (
	"sort"
	"strconv"
	"strings"

	"github.com/royalmatch/casino/deck"
)

// combination enumeration is exhaustive over subsets; beyond this many
// eligible items the search is skipped (a real table never gets there)
const maxCombinationItems = 20

// CaptureSet is one legal set of table items a played card may take
// together in a single action
type CaptureSet []TableItem

// ValidCaptures enumerates every capture set the played card could take
// from the table:
//
//   - one combined set of every loose card and pair sharing the played
//     card's rank (rank capture is all-or-nothing)
//   - one set per build whose value the played card's rank captures
//   - one set per group of two or more loose numeric cards whose values
//     sum to the played card's value
//
// The sets are de-duplicated by item id signature. An empty table
// yields no sets.
func (e *Engine) ValidCaptures(played deck.Card, table []TableItem) []CaptureSet {
	sets := []CaptureSet{}
	seen := map[string]bool{}

	add := func(set CaptureSet) {
		sig := setSignature(set)
		if !seen[sig] {
			seen[sig] = true
			sets = append(sets, set)
		}
	}

	if rankSet := rankMatchSet(played, table); len(rankSet) > 0 {
		add(rankSet)
	}

	for _, set := range e.buildMatchSets(played, table) {
		add(set)
	}

	for _, set := range e.combinationSets(played, table) {
		add(set)
	}

	return sets
}

// rankMatchSet gathers every loose card and pair of the played card's
// rank into a single set
func rankMatchSet(played deck.Card, table []TableItem) CaptureSet {
	set := CaptureSet{}
	for _, item := range table {
		switch it := item.(type) {
		case *LooseCard:
			if it.Card.Rank == played.Rank {
				set = append(set, it)
			}
		case *Pair:
			if it.Rank == played.Rank {
				set = append(set, it)
			}
		}
	}
	return set
}

// buildMatchSets emits a singleton set per build the played card's rank
// captures. Builds are captured by rank regardless of who controls
// them.
func (e *Engine) buildMatchSets(played deck.Card, table []TableItem) []CaptureSet {
	sets := []CaptureSet{}
	for _, item := range table {
		b, ok := item.(*Build)
		if !ok {
			continue
		}
		if b.CapturingRank() == played.Rank {
			sets = append(sets, CaptureSet{b})
		} else if b.Value == 10 && e.rules.FaceCardsCaptureTens && played.Rank.IsFace() {
			sets = append(sets, CaptureSet{b})
		}
	}
	return sets
}

// combinationSets enumerates groups of two or more items whose build
// values sum to the played card's target value
func (e *Engine) combinationSets(played deck.Card, table []TableItem) []CaptureSet {
	target := deck.BuildValue(played.Rank)
	if e.rules.AceHighCombinations {
		target = deck.CaptureValue(played.Rank)
	}
	if target < 1 {
		return nil
	}

	items := []TableItem{}
	values := []int{}
	for _, item := range table {
		switch it := item.(type) {
		case *LooseCard:
			if v := deck.BuildValue(it.Card.Rank); v > 0 {
				items = append(items, it)
				values = append(values, v)
			}
		case *Build:
			if e.rules.BuildsInCombinations && !it.Compound {
				items = append(items, it)
				values = append(values, it.Value)
			}
		}
	}
	if len(items) > maxCombinationItems {
		return nil
	}

	sets := []CaptureSet{}
	for mask := 1; mask < 1<<uint(len(items)); mask++ {
		sum := 0
		count := 0
		for i := range items {
			if mask&(1<<uint(i)) != 0 {
				sum += values[i]
				count++
			}
		}
		// single items are rank captures, not combinations
		if count < 2 || sum != target {
			continue
		}
		set := CaptureSet{}
		for i := range items {
			if mask&(1<<uint(i)) != 0 {
				set = append(set, items[i])
			}
		}
		sets = append(sets, set)
	}
	return sets
}

// CoversSelection reports whether the selection is exactly covered by
// the generated capture sets: every selected item must belong to at
// least one set that lies wholly inside the selection, so the union of
// those sets equals the selection with nothing left over.
func CoversSelection(selection []TableItem, sets []CaptureSet) bool {
	want := itemIDSet(selection)
	if len(want) == 0 || len(want) != len(selection) {
		return false
	}

	covered := map[ItemID]bool{}
	for _, set := range sets {
		inside := true
		for _, item := range set {
			if !want[item.ID()] {
				inside = false
				break
			}
		}
		if !inside {
			continue
		}
		for _, item := range set {
			covered[item.ID()] = true
		}
	}

	for id := range want {
		if !covered[id] {
			return false
		}
	}
	return true
}

func setSignature(set CaptureSet) string {
	ids := make([]int, len(set))
	for i, item := range set {
		ids[i] = int(item.ID())
	}
	sort.Ints(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "-")
}
