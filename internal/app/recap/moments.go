package recap

import (
	"iter"

	"nba-recap-service/internal/domain/playbyplay"
)

// scoringEvents are the event-type codes that can change the score. An
// event outside this set is never a key moment, even when it carries a
// score string.
var scoringEvents = map[int]bool{
	playbyplay.EventMadeShot:  true,
	playbyplay.EventFreeThrow: true,
	playbyplay.EventMadeThree: true,
}

// Moments yields the key moments of a game lazily, in source order. The
// returned sequence is restartable: each range walks the events again.
func Moments(events []playbyplay.Event) iter.Seq[playbyplay.KeyMoment] {
	return func(yield func(playbyplay.KeyMoment) bool) {
		for _, event := range events {
			if !scoringEvents[event.EventType] || event.Score == "" {
				continue
			}
			description := event.HomeDescription
			if description == "" {
				description = event.VisitorDescription
			}
			moment := playbyplay.KeyMoment{
				Period:      event.Period,
				Clock:       event.Clock,
				Description: description,
			}
			if !yield(moment) {
				return
			}
		}
	}
}

// KeyMoments collects the key moments of a game into a slice.
func KeyMoments(events []playbyplay.Event) []playbyplay.KeyMoment {
	var moments []playbyplay.KeyMoment
	for moment := range Moments(events) {
		moments = append(moments, moment)
	}
	return moments
}
