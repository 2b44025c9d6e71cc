package models

import "time"

// Player represents a seated player in a room
type Player struct {
	ID       string
	Name     string
	IsHost   bool
	JoinedAt time.Time

	Score int     // drawing game
	Hand  []*Card // card game
}

// CardIndex returns the index of a card in the hand, or -1
func (p *Player) CardIndex(cardID string) int {
	for i, c := range p.Hand {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// FirstOfRank returns the index of the first held card of the rank, or -1
func (p *Player) FirstOfRank(rank Rank) int {
	for i, c := range p.Hand {
		if c.Rank == rank {
			return i
		}
	}
	return -1
}

// TakeCard removes and returns the card at index i
func (p *Player) TakeCard(i int) *Card {
	c := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return c
}
