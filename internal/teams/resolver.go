// Package teams resolves team identifiers to display identities.
package teams

import (
	"context"

	"nba-recap-service/internal/domain"
)

// Details is the upstream team-details shape.
type Details struct {
	ID           int
	Abbreviation string
	Nickname     string
}

// DetailsFetcher fetches team details for one team id.
type DetailsFetcher interface {
	FetchTeamDetails(ctx context.Context, teamID int) (Details, error)
}

// Resolver maps team ids to display identities via a DetailsFetcher.
// It holds no cross-request state; callers open a Session per request.
type Resolver struct {
	fetcher      DetailsFetcher
	includeLogos bool
}

// NewResolver constructs a Resolver.
func NewResolver(fetcher DetailsFetcher, includeLogos bool) *Resolver {
	return &Resolver{fetcher: fetcher, includeLogos: includeLogos}
}

// Session memoizes resolved teams for the duration of one request.
// Not safe for concurrent use; each request owns its own Session.
type Session struct {
	resolver *Resolver
	seen     map[int]domain.TeamRef
}

// NewSession opens a request-scoped resolution session.
func (r *Resolver) NewSession() *Session {
	return &Session{
		resolver: r,
		seen:     make(map[int]domain.TeamRef),
	}
}

// Resolve returns the display identity for a team id, fetching it at most
// once per session.
func (s *Session) Resolve(ctx context.Context, teamID int) (domain.TeamRef, error) {
	if ref, ok := s.seen[teamID]; ok {
		return ref, nil
	}

	details, err := s.resolver.fetcher.FetchTeamDetails(ctx, teamID)
	if err != nil {
		return domain.TeamRef{}, err
	}

	ref := domain.TeamRef{
		ID:           details.ID,
		Name:         details.Nickname,
		Abbreviation: details.Abbreviation,
	}
	if s.resolver.includeLogos {
		if url, ok := LogoURL(details.Nickname); ok {
			ref.LogoURL = url
		}
	}

	s.seen[teamID] = ref
	return ref, nil
}
