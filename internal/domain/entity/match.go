package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

// MatchStatus represents where a real-world match is in its lifecycle
type MatchStatus string

// Match statuses
const (
	MatchUpcoming  MatchStatus = "upcoming"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
	MatchCancelled MatchStatus = "cancelled"
)

// Match formats
const (
	FormatT20  = "T20"
	FormatODI  = "ODI"
	FormatTest = "Test"
)

// Match is a fixture that players, teams and contests hang off
type Match struct {
	ID        string
	Title     string
	Slug      string
	Team1     string
	Team2     string
	StartTime time.Time
	Venue     string
	MatchType string
	Status    MatchStatus
	CreatedAt time.Time
}

// NewMatch validates the fixture and derives its slug from the title and start date
func NewMatch(id, title, team1, team2, venue, matchType string, startTime, now time.Time) (*Match, error) {
	title = strings.TrimSpace(title)
	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)

	switch {
	case title == "":
		return nil, fmt.Errorf("%w: match title is required", errs.ErrInvalidRequest)
	case team1 == "" || team2 == "":
		return nil, fmt.Errorf("%w: both teams are required", errs.ErrInvalidRequest)
	case strings.EqualFold(team1, team2):
		return nil, fmt.Errorf("%w: a team cannot play itself", errs.ErrInvalidRequest)
	case startTime.IsZero():
		return nil, fmt.Errorf("%w: start time is required", errs.ErrInvalidRequest)
	case !IsValidMatchType(matchType):
		return nil, fmt.Errorf("%w: match type must be one of %s, %s, %s",
			errs.ErrInvalidRequest, FormatT20, FormatODI, FormatTest)
	}

	return &Match{
		ID:        id,
		Title:     title,
		Slug:      MatchSlug(title, startTime),
		Team1:     team1,
		Team2:     team2,
		StartTime: startTime.UTC(),
		Venue:     strings.TrimSpace(venue),
		MatchType: matchType,
		Status:    MatchUpcoming,
		CreatedAt: now,
	}, nil
}

// MatchSlug builds a URL-friendly identifier such as "ind-vs-aus-2024-03-01"
func MatchSlug(title string, startTime time.Time) string {
	return slug.Make(title + " " + startTime.UTC().Format("2006-01-02"))
}

// HasStarted reports whether the scheduled start has passed
func (m *Match) HasStarted(now time.Time) bool {
	return !now.Before(m.StartTime)
}

// IsValidMatchType checks the format against the supported list
func IsValidMatchType(matchType string) bool {
	return matchType == FormatT20 || matchType == FormatODI || matchType == FormatTest
}

// IsValidMatchStatus checks that status is a known match status
func IsValidMatchStatus(status string) bool {
	switch MatchStatus(status) {
	case MatchUpcoming, MatchLive, MatchCompleted, MatchCancelled:
		return true
	}
	return false
}
