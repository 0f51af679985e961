package casino

import (
	"errors"

	"github.com/royalmatch/casino/deck"
)

var (
	ErrPairRankMismatch = errors.New("every card in a pair must share the played card's rank")
	ErrMultiplePairs    = errors.New("only one pair can be added to at a time")
	ErrBuildInPair      = errors.New("a build cannot be part of a pair")
)

// PairPlan is the successful outcome of pair validation
type PairPlan struct {
	Rank           deck.Rank
	IsModification bool
	Target         *Pair // the pair being added to; nil when creating
	Items          []TableItem
}

// ValidatePair decides whether playing a card onto a selection of table
// items is a legal pair or pair extension. Pairing is rank equality
// only: court cards pair freely and no holding card is required.
func (e *Engine) ValidatePair(played deck.Card, selection []TableItem, table []TableItem) (PairPlan, error) {
	if err := checkSelection(selection, table); err != nil {
		return PairPlan{}, err
	}

	var target *Pair
	items := []TableItem{}
	for _, item := range selection {
		switch it := item.(type) {
		case *LooseCard:
			if it.Card.Rank != played.Rank {
				return PairPlan{}, ErrPairRankMismatch
			}
			items = append(items, it)
		case *Pair:
			if it.Rank != played.Rank {
				return PairPlan{}, ErrPairRankMismatch
			}
			if target != nil {
				return PairPlan{}, ErrMultiplePairs
			}
			target = it
		case *Build:
			return PairPlan{}, ErrBuildInPair
		default:
			return PairPlan{}, ErrUnknownItem
		}
	}

	return PairPlan{
		Rank:           played.Rank,
		IsModification: target != nil,
		Target:         target,
		Items:          items,
	}, nil
}
