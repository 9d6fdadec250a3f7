package eventcfg

import (
	"github.com/codegolf-live/backend/scoring"
)

// Config is the static configuration of one event: the scoring regulations,
// the leaderboard language columns, the team rosters and, for territory
// events, the capture graph. It is fixed once the event starts.
type Config struct {
	Name      string
	Rulesets  []scoring.Ruleset
	Languages []Language
	Teams     []Team
	Territory []TerritoryCell
}

// Language is one leaderboard column: display name plus the judge's
// language id.
type Language struct {
	Name string
	ID   string
}

type Team struct {
	Name    string
	Players []string
}

// TerritoryCell is the static part of one capture graph node.
type TerritoryCell struct {
	Language   string
	LanguageID string
	Adjacent   []string
	HomeOf     string // team name for a home cell, empty otherwise
}

// TeamIndexOf resolves an author handle to the team's index in Teams.
// Returns -1 when the author is on no roster.
func (cfg *Config) TeamIndexOf(user string) int {
	for i, team := range cfg.Teams {
		for _, player := range team.Players {
			if player == user {
				return i
			}
		}
	}
	return -1
}

// TeamOf resolves an author handle to a team name.
func (cfg *Config) TeamOf(user string) (string, bool) {
	i := cfg.TeamIndexOf(user)
	if i < 0 {
		return "", false
	}
	return cfg.Teams[i].Name, true
}
