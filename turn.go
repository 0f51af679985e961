package casino

import (
	"errors"
	"fmt"
	"log"

	"github.com/royalmatch/casino/deck"
)

var (
	ErrEmptySelection    = errors.New("no table items were selected")
	ErrDuplicateItem     = errors.New("a table item was selected more than once")
	ErrItemNotOnTable    = errors.New("a selected item is not on the table")
	ErrUnknownItem       = errors.New("a selected item is missing its id or type")
	ErrInvalidCapture    = errors.New("the played card cannot capture that selection")
	ErrTrailingSelection = errors.New("cannot trail a card while table items are selected")
	ErrTrailingBuilder   = errors.New("cannot trail a card while controlling a build")
)

// Engine validates actions and computes table transitions for one game
// session. It owns the item id sequence, so a single Engine must not be
// shared between games; within a game the calling protocol is strictly
// one action at a time.
type Engine struct {
	rules Rules
	ids   itemIDs
}

// NewEngine constructs an engine for one game session
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// PlaceCard wraps a card in a fresh table item. The game uses it to lay
// out the opening table and to trail.
func (e *Engine) PlaceCard(card deck.Card) *LooseCard {
	return NewLooseCard(e.ids.nextID(), card)
}

// Turn is the input to a single action: the played card, the selected
// table items and the surrounding game state the engine needs to rule
// on it
type Turn struct {
	Player       PlayerID
	Played       deck.Card
	Selection    []TableItem
	Hand         []deck.Card
	Table        []TableItem
	P1Score      int
	P2Score      int
	LastCapturer PlayerID
}

// TurnResult is the outcome of one action. On failure the table and
// scores are returned untouched; on success Table is a fresh snapshot
// and the input table is never modified.
type TurnResult struct {
	Success       bool
	Message       string
	Table         []TableItem
	CapturedCards []deck.Card
	Sweep         bool
	P1Score       int
	P2Score       int
	LastCapturer  PlayerID
}

// HandleBuild validates and applies a build action
func (e *Engine) HandleBuild(turn Turn) TurnResult {
	plan, err := e.ValidateBuild(turn.Played, turn.Selection, turn.Hand, turn.Table, turn.Player)
	if err != nil {
		return e.failure(turn, err)
	}

	cards := []deck.Card{}
	var id ItemID
	if plan.Target != nil {
		id = plan.Target.ID()
		cards = append(cards, plan.Target.Cards()...)
	} else {
		id = e.ids.nextID()
	}
	cards = append(cards, itemCards(plan.SummingItems)...)
	cards = append(cards, turn.Played)
	cards = append(cards, itemCards(plan.MatchingItems)...)

	consumed := itemIDSet(plan.SummingItems)
	for matchedID := range itemIDSet(plan.MatchingItems) {
		consumed[matchedID] = true
	}
	if plan.Target != nil {
		consumed[plan.Target.ID()] = true
	}

	newTable := removeItems(turn.Table, consumed)
	newTable = append(newTable, NewBuild(id, plan.Value, turn.Player, plan.Compound, cards))

	verb := "builds"
	if plan.IsModification {
		verb = "raises the build to"
		if plan.Compound {
			verb = "reinforces the build of"
		}
	}

	result := e.success(turn, fmt.Sprintf("%s %s %d", turn.Player, verb, plan.Value))
	result.Table = newTable
	return result
}

// HandlePair validates and applies a pair action
func (e *Engine) HandlePair(turn Turn) TurnResult {
	plan, err := e.ValidatePair(turn.Played, turn.Selection, turn.Table)
	if err != nil {
		return e.failure(turn, err)
	}

	cards := []deck.Card{}
	var id ItemID
	if plan.Target != nil {
		id = plan.Target.ID()
		cards = append(cards, plan.Target.Cards()...)
	} else {
		id = e.ids.nextID()
	}
	cards = append(cards, itemCards(plan.Items)...)
	cards = append(cards, turn.Played)

	consumed := itemIDSet(plan.Items)
	if plan.Target != nil {
		consumed[plan.Target.ID()] = true
	}

	newTable := removeItems(turn.Table, consumed)
	newTable = append(newTable, NewPair(id, plan.Rank, turn.Player, cards))

	result := e.success(turn, fmt.Sprintf("%s pairs %ss", turn.Player, plan.Rank))
	result.Table = newTable
	return result
}

// HandleCapture validates and applies a capture, then keeps capturing
// with the same played card while the reduced table still offers a
// capture set. The table changes all at once or not at all.
func (e *Engine) HandleCapture(turn Turn) TurnResult {
	if err := checkSelection(turn.Selection, turn.Table); err != nil {
		return e.failure(turn, err)
	}

	sets := e.ValidCaptures(turn.Played, turn.Table)
	if !CoversSelection(turn.Selection, sets) {
		return e.failure(turn, ErrInvalidCapture)
	}

	captured := []deck.Card{turn.Played}
	captured = append(captured, itemCards(turn.Selection)...)
	newTable := removeItems(turn.Table, itemIDSet(turn.Selection))

	// cascade: the same card sweeps up whatever it can still capture
	for {
		further := e.ValidCaptures(turn.Played, newTable)
		if len(further) == 0 {
			break
		}
		captured = append(captured, itemCards(further[0])...)
		newTable = removeItems(newTable, itemIDSet(further[0]))
	}

	message := fmt.Sprintf("%s captures with the %s", turn.Player, turn.Played)
	sweep := len(turn.Table) > 0 && len(newTable) == 0
	if sweep {
		message += " and sweeps the table!"
	}

	result := e.success(turn, message)
	result.Table = newTable
	result.CapturedCards = captured
	result.Sweep = sweep
	result.LastCapturer = turn.Player
	if sweep {
		switch turn.Player {
		case Player1:
			result.P1Score++
		case Player2:
			result.P2Score++
		}
	}
	return result
}

// HandleTrail lays the played card loose on the table. A player
// controlling a build must work towards it rather than trail.
func (e *Engine) HandleTrail(turn Turn) TurnResult {
	if len(turn.Selection) > 0 {
		return e.failure(turn, ErrTrailingSelection)
	}
	for _, item := range turn.Table {
		if b, ok := item.(*Build); ok && b.Controller == turn.Player {
			return e.failure(turn, ErrTrailingBuilder)
		}
	}

	newTable := make([]TableItem, len(turn.Table))
	copy(newTable, turn.Table)
	newTable = append(newTable, e.PlaceCard(turn.Played))

	result := e.success(turn, fmt.Sprintf("%s trails the %s", turn.Player, turn.Played))
	result.Table = newTable
	return result
}

func (e *Engine) success(turn Turn, message string) TurnResult {
	return TurnResult{
		Success:      true,
		Message:      message,
		P1Score:      turn.P1Score,
		P2Score:      turn.P2Score,
		LastCapturer: turn.LastCapturer,
	}
}

func (e *Engine) failure(turn Turn, err error) TurnResult {
	if err == ErrUnknownItem {
		// malformed items are a caller bug, not a rule violation
		log.Printf("rejecting action for %s: %s", turn.Player, err)
	}
	return TurnResult{
		Success:      false,
		Message:      err.Error(),
		Table:        turn.Table,
		P1Score:      turn.P1Score,
		P2Score:      turn.P2Score,
		LastCapturer: turn.LastCapturer,
	}
}

// checkSelection rejects empty selections, repeated items and items
// that are not on the table
func checkSelection(selection []TableItem, table []TableItem) error {
	if len(selection) == 0 {
		return ErrEmptySelection
	}
	seen := map[ItemID]bool{}
	for _, item := range selection {
		if item == nil {
			return ErrUnknownItem
		}
		if seen[item.ID()] {
			return ErrDuplicateItem
		}
		seen[item.ID()] = true
		if findItem(table, item.ID()) == nil {
			return ErrItemNotOnTable
		}
	}
	return nil
}
