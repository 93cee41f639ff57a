package fantasy

import (
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type MutationKind string

const (
	MutationBuy        MutationKind = "buy"
	MutationSell       MutationKind = "sell"
	MutationSetCaptain MutationKind = "set_captain"
	MutationSubstitute MutationKind = "substitute"
)

// Mutation is a proposed roster change. Candidate and AsSubstitute apply to buys;
// PlayerID to sell and captaincy; PlayerID and SubstituteID to swaps.
type Mutation struct {
	Kind         MutationKind
	Candidate    player.Player
	AsSubstitute bool
	PlayerID     string
	SubstituteID string
}

// Policy decides whether a mutation is legal for a roster. It has no side effects
// and knows nothing about lockout; callers gate that first.
type Policy struct {
	rules Rules
}

func NewPolicy(rules Rules) Policy {
	return Policy{rules: rules}
}

func (p Policy) Rules() Rules {
	return p.rules
}

func (p Policy) CanApply(roster Roster, budget int64, m Mutation) error {
	switch m.Kind {
	case MutationBuy:
		return p.CanBuy(roster, budget, m.Candidate, m.AsSubstitute)
	case MutationSell:
		return p.CanSell(roster, m.PlayerID)
	case MutationSetCaptain:
		return p.CanSetCaptain(roster, m.PlayerID)
	case MutationSubstitute:
		return p.CanSubstitute(roster, m.PlayerID, m.SubstituteID)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMutation, m.Kind)
	}
}

func (p Policy) CanBuy(roster Roster, budget int64, candidate player.Player, asSubstitute bool) error {
	if _, owned := roster.Find(candidate.ID); owned {
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, candidate.Name)
	}
	if len(roster) >= p.rules.RosterSize {
		return fmt.Errorf("%w: maximum %d players", ErrRosterFull, p.rules.RosterSize)
	}
	if !candidate.Position.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownPosition, candidate.Position)
	}

	if asSubstitute {
		if limit := p.rules.SubstituteCaps[candidate.Position]; limit > 0 && roster.SubstituteCount(candidate.Position) >= limit {
			return fmt.Errorf("%w: maximum %d %s substitute(s)", ErrSubstituteCapReached, limit, candidate.Position)
		}
	} else {
		limit := p.rules.MainCaps[candidate.Position]
		if roster.MainCount(candidate.Position) >= limit {
			return fmt.Errorf("%w: maximum %d %s in main roster", ErrPositionCapReached, limit, candidate.Position)
		}
	}

	if budget < candidate.CurrentPrice {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientBudget, candidate.CurrentPrice, budget)
	}

	return nil
}

func (p Policy) CanSell(roster Roster, playerID string) error {
	if _, owned := roster.Find(playerID); !owned {
		return fmt.Errorf("%w: %s", ErrNotOwned, playerID)
	}
	return nil
}

func (p Policy) CanSetCaptain(roster Roster, playerID string) error {
	holding, owned := roster.Find(playerID)
	if !owned {
		return fmt.Errorf("%w: %s", ErrNotOwned, playerID)
	}
	if holding.IsSubstitute {
		return fmt.Errorf("%w: %s", ErrSubstituteCaptain, playerID)
	}
	return nil
}

func (p Policy) CanSubstitute(roster Roster, mainPlayerID, substitutePlayerID string) error {
	main, owned := roster.Find(mainPlayerID)
	if !owned {
		return fmt.Errorf("%w: %s", ErrNotOwned, mainPlayerID)
	}
	sub, owned := roster.Find(substitutePlayerID)
	if !owned {
		return fmt.Errorf("%w: %s", ErrNotOwned, substitutePlayerID)
	}
	if main.IsSubstitute {
		return fmt.Errorf("%w: %s", ErrNotMainRoster, mainPlayerID)
	}
	if !sub.IsSubstitute {
		return fmt.Errorf("%w: %s", ErrNotSubstitute, substitutePlayerID)
	}
	if main.Position != sub.Position {
		return fmt.Errorf("%w: %s vs %s", ErrPositionMismatch, main.Position, sub.Position)
	}
	return nil
}

// Swap returns the two holdings after a legal substitution: the outgoing player
// goes to the bench and loses captaincy, the incoming player joins the main XI.
func Swap(main, sub Holding) (Holding, Holding) {
	main.IsSubstitute = true
	main.IsCaptain = false
	sub.IsSubstitute = false
	return main, sub
}
