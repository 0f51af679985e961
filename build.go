package casino

import (
	"errors"

	"github.com/royalmatch/casino/deck"
)

var (
	ErrFaceCardInBuild    = errors.New("court cards cannot be part of a build")
	ErrPairInBuild        = errors.New("a pair cannot be part of a build")
	ErrCompoundUntouchable = errors.New("a compound build cannot be added to")
	ErrMultipleBuilds     = errors.New("only one build can be added to at a time")
	ErrNotYourBuild       = errors.New("you cannot add to an opponent's build")
	ErrNoBuildCombination = errors.New("the selected cards do not combine to a single build value")
	ErrBuildTooHigh       = errors.New("a build cannot exceed ten")
	ErrNoHoldingCard      = errors.New("you must hold a card able to capture the build")
	ErrDuplicateBuild     = errors.New("you already control a build of that value")
)

// BuildPlan is the successful outcome of build validation. SummingItems
// are consumed into the running sum that reaches Value; MatchingItems
// already group to Value on their own and sit alongside.
type BuildPlan struct {
	Value          int
	CapturingRank  deck.Rank
	IsModification bool
	Target         *Build // the build being added to; nil when creating
	SummingItems   []TableItem
	MatchingItems  []TableItem
	Compound       bool
}

// buildCandidate is one reading of the selection: a final value plus
// the split of the selection into summing and matching groups.
type buildCandidate struct {
	value    int
	compound bool
	summing  []TableItem
	matching []TableItem
}

// ValidateBuild decides whether playing a card onto a selection of
// table items is a legal build or build extension. The checks run in a
// fixed order and each failure carries its own error.
func (e *Engine) ValidateBuild(played deck.Card, selection []TableItem, hand []deck.Card, table []TableItem, player PlayerID) (BuildPlan, error) {
	if err := checkSelection(selection, table); err != nil {
		return BuildPlan{}, err
	}
	if played.Rank.IsFace() {
		return BuildPlan{}, ErrFaceCardInBuild
	}

	var target *Build
	loose := []*LooseCard{}
	for _, item := range selection {
		switch it := item.(type) {
		case *LooseCard:
			if it.Card.Rank.IsFace() {
				return BuildPlan{}, ErrFaceCardInBuild
			}
			loose = append(loose, it)
		case *Build:
			if it.Compound {
				return BuildPlan{}, ErrCompoundUntouchable
			}
			if target != nil {
				return BuildPlan{}, ErrMultipleBuilds
			}
			if it.Controller != player {
				return BuildPlan{}, ErrNotYourBuild
			}
			target = it
		case *Pair:
			return BuildPlan{}, ErrPairInBuild
		default:
			return BuildPlan{}, ErrUnknownItem
		}
	}

	candidates, err := buildCandidates(played, target, loose)
	if err != nil {
		return BuildPlan{}, err
	}

	// A selection can sometimes be read as more than one value (played
	// Three on a loose Three is a build of six or a build of threes).
	// Candidates are ordered running-sum first; the first one the
	// player can actually hold and is not already building wins.
	var firstErr error
	for _, cand := range candidates {
		rank, ok := deck.RankForValue(cand.value)
		if !ok {
			continue
		}
		if err := e.checkHoldingCard(hand, played, rank, cand.value); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := checkDuplicateBuild(table, player, rank, target); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		return BuildPlan{
			Value:          cand.value,
			CapturingRank:  rank,
			IsModification: target != nil,
			Target:         target,
			SummingItems:   cand.summing,
			MatchingItems:  cand.matching,
			Compound:       cand.compound,
		}, nil
	}

	return BuildPlan{}, firstErr
}

// buildCandidates enumerates every value the played card and selection
// can legally declare, running-sum readings before grouped readings.
func buildCandidates(played deck.Card, target *Build, loose []*LooseCard) ([]buildCandidate, error) {
	playedValue := deck.BuildValue(played.Rank)

	looseItems := make([]TableItem, len(loose))
	looseValues := make([]int, len(loose))
	looseSum := 0
	for i, lc := range loose {
		looseItems[i] = lc
		looseValues[i] = deck.BuildValue(lc.Card.Rank)
		looseSum += looseValues[i]
	}

	candidates := []buildCandidate{}
	sawTooHigh := false

	if target != nil {
		// Adding to an existing simple build: either raise its value by
		// the played card and every selected card, or reinforce it with
		// groups that each sum to the value it already has.
		raised := playedValue + looseSum + target.Value
		if raised > 10 {
			sawTooHigh = true
		} else {
			candidates = append(candidates, buildCandidate{
				value:   raised,
				summing: looseItems,
			})
		}

		if canPartitionToValue(append(append([]int{}, looseValues...), playedValue), target.Value) {
			candidates = append(candidates, buildCandidate{
				value:    target.Value,
				compound: true,
				matching: looseItems,
			})
		}
	} else {
		// New build: choose the summing group (the played card plus a
		// subset of the selection); every card left over must fall into
		// groups that independently sum to the same value.
		seen := map[int]bool{}
		full := (1 << uint(len(loose))) - 1
		for mask := full; mask >= 0; mask-- {
			value := playedValue
			rest := []int{}
			summing := []TableItem{}
			matching := []TableItem{}
			for i := range loose {
				if mask&(1<<uint(i)) != 0 {
					value += looseValues[i]
					summing = append(summing, looseItems[i])
				} else {
					rest = append(rest, looseValues[i])
					matching = append(matching, looseItems[i])
				}
			}

			if value > 10 {
				sawTooHigh = true
				continue
			}
			if value < 1 || seen[value] {
				continue
			}
			if !canPartitionToValue(rest, value) {
				continue
			}

			seen[value] = true
			candidates = append(candidates, buildCandidate{
				value:    value,
				compound: len(matching) > 0,
				summing:  summing,
				matching: matching,
			})
		}
	}

	if len(candidates) == 0 {
		if sawTooHigh {
			return nil, ErrBuildTooHigh
		}
		return nil, ErrNoBuildCombination
	}
	return candidates, nil
}

// checkHoldingCard verifies the player holds, besides the played card,
// a card able to capture a build of the given value
func (e *Engine) checkHoldingCard(hand []deck.Card, played deck.Card, rank deck.Rank, value int) error {
	playedSeen := false
	for _, c := range hand {
		if !playedSeen && c == played {
			playedSeen = true
			continue
		}
		if c.Rank == rank {
			return nil
		}
		if value == 10 && e.rules.FaceCardsCaptureTens && c.Rank.IsFace() {
			return nil
		}
	}
	return ErrNoHoldingCard
}

// checkDuplicateBuild rejects a second build with the same capturing
// rank for one player. The build being added to, if any, is exempt.
func checkDuplicateBuild(table []TableItem, player PlayerID, rank deck.Rank, target *Build) error {
	for _, item := range table {
		b, ok := item.(*Build)
		if !ok || b.Controller != player {
			continue
		}
		if target != nil && b.ID() == target.ID() {
			continue
		}
		if b.CapturingRank() == rank {
			return ErrDuplicateBuild
		}
	}
	return nil
}

// canPartitionToValue reports whether the values can be split into
// groups that each sum exactly to target. An empty list partitions
// trivially.
func canPartitionToValue(values []int, target int) bool {
	if len(values) == 0 {
		return true
	}

	// every group must contain the first value; try each subset of the
	// rest alongside it
	n := len(values) - 1
	for mask := 0; mask < 1<<uint(n); mask++ {
		sum := values[0]
		rest := []int{}
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				sum += values[i+1]
			} else {
				rest = append(rest, values[i+1])
			}
		}
		if sum == target && canPartitionToValue(rest, target) {
			return true
		}
	}
	return false
}
