// Package playbyplay holds the chronological event log shapes for one game.
package playbyplay

// Event types that change the score.
const (
	EventMadeShot  = 1
	EventFreeThrow = 3
	EventMadeThree = 5
)

// Event is one play-by-play entry, ordered by occurrence within the game.
// Score is the running score string and is empty when the event did not
// change the score.
type Event struct {
	Period             int
	Clock              string // countdown within the period, "M:SS"
	EventType          int
	HomeDescription    string
	VisitorDescription string
	Score              string
}

// KeyMoment is a scoring event selected for narrative inclusion.
type KeyMoment struct {
	Period      int    `json:"period"`
	Clock       string `json:"clock"`
	Description string `json:"description"`
}
