package services

import (
	"errors"
	"sort"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
)

// ErrNoAvailablePositions is returned when no coordinate in the search scope
// passes validation for the requested container. This covers both a fully
// occupied yard and a yard that has vacancies none of which satisfy the
// stacking constraints.
var ErrNoAvailablePositions = errors.New("no available positions")

// maxAlternatives bounds how many fallback coordinates a suggestion carries
// besides the primary one.
const maxAlternatives = 3

// GridView is the read surface the suggester needs: point occupancy lookups
// plus vacancy enumeration. *yard.Grid satisfies it.
type GridView interface {
	yard.OccupancyView

	ListVacant(filter yard.VacancyFilter) []kernel.Coordinate
}

// Suggestion is the advisory result of a placement search. Every coordinate
// in it passed the stacking rules at the time of the search, but nothing is
// reserved; the caller re-validates when it actually binds.
type Suggestion struct {
	Primary      kernel.Coordinate
	Alternatives []kernel.Coordinate
	Reason       string
}

// PlacementSuggester is a domain service that picks the best vacant
// coordinates for a container.
//
// Candidates are ordered tier-ascending so ground-level slots that need no
// pre-existing support win first, and within a tier candidates adjacent to
// containers of the same owner score higher, rewarding consolidation.
// Candidates that fail the stacking rules are discarded without scoring.
//
// The suggester reads current occupancy but never reserves anything, so two
// concurrent searches may converge on the same coordinate; that race is
// resolved at bind time, not here.
type PlacementSuggester struct {
	validator StackingValidator
}

// NewPlacementSuggester creates a PlacementSuggester with the standard
// stacking rule set.
func NewPlacementSuggester() PlacementSuggester {
	return PlacementSuggester{validator: NewStackingValidator()}
}

// Suggest searches the vacant coordinates of the yard, optionally restricted
// to zonePreference, and returns the best valid candidate plus up to three
// alternatives. It fails with ErrNoAvailablePositions when nothing in scope
// passes the stacking rules.
func (s PlacementSuggester) Suggest(
	view GridView,
	cont *container.Container,
	zonePreference *kernel.Zone,
) (Suggestion, error) {
	if err := cont.Validate(); err != nil {
		return Suggestion{}, err
	}

	type scoredCandidate struct {
		coordinate kernel.Coordinate
		score      int
	}

	var candidates []scoredCandidate
	for _, coordinate := range view.ListVacant(yard.VacancyFilter{Zone: zonePreference}) {
		// A full-length container spans both halves of a bay, so only the
		// first half is worth offering; the second would duplicate it.
		if cont.IsFullSize() && coordinate.SubSlot() == kernel.SubSlotB {
			continue
		}

		if err := s.validator.Validate(view, coordinate, cont); err != nil {
			continue
		}

		candidates = append(candidates, scoredCandidate{
			coordinate: coordinate,
			score:      adjacencyScore(view, coordinate, cont),
		})
	}

	if len(candidates) == 0 {
		return Suggestion{}, ErrNoAvailablePositions
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].coordinate.Tier() != candidates[j].coordinate.Tier() {
			return candidates[i].coordinate.Tier() < candidates[j].coordinate.Tier()
		}

		return candidates[i].score > candidates[j].score
	})

	suggestion := Suggestion{
		Primary: candidates[0].coordinate,
		Reason:  suggestionReason(candidates[0].coordinate, candidates[0].score),
	}

	for _, candidate := range candidates[1:] {
		if len(suggestion.Alternatives) == maxAlternatives {
			break
		}
		suggestion.Alternatives = append(suggestion.Alternatives, candidate.coordinate)
	}

	return suggestion, nil
}

// adjacencyScore counts containers of the same owner in the same row within
// one bay of the candidate, across all tiers.
func adjacencyScore(view yard.OccupancyView, candidate kernel.Coordinate, cont *container.Container) int {
	score := 0

	for bay := candidate.Bay() - 1; bay <= candidate.Bay()+1; bay++ {
		for tier := kernel.TierMin; tier <= kernel.TierMax; tier++ {
			for _, subSlot := range kernel.SubSlots() {
				neighbor, err := kernel.NewCoordinate(candidate.Zone(), candidate.Row(), bay, tier, subSlot)
				if err != nil {
					continue
				}

				occupant := view.OccupantAt(neighbor)
				if occupant != nil && occupant.OwnerID().IsEqual(cont.OwnerID()) {
					score++
				}
			}
		}
	}

	return score
}

func suggestionReason(primary kernel.Coordinate, score int) string {
	if score > 0 {
		return "grouped with same-company containers"
	}

	if primary.IsGround() {
		return "nearest vacant ground slot"
	}

	return "nearest vacant supported slot"
}
