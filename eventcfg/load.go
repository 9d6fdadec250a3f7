package eventcfg

import (
	"fmt"
	"os"
	"strings"

	"github.com/codegolf-live/backend/scoring"
	"github.com/pelletier/go-toml/v2"
)

type fileConfig struct {
	Name      string         `toml:"name"`
	Rulesets  []fileRuleset  `toml:"rulesets"`
	Languages []fileLanguage `toml:"languages"`
	Teams     []fileTeam     `toml:"teams"`
	Territory []fileCell     `toml:"territory"`
}

type fileRuleset struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
	Par  *int   `toml:"par"`
}

type fileLanguage struct {
	Name string `toml:"name"`
	ID   string `toml:"id"`
}

type fileTeam struct {
	Name    string   `toml:"name"`
	Players []string `toml:"players"`
}

type fileCell struct {
	Language   string   `toml:"language"`
	LanguageID string   `toml:"language_id"`
	Adjacent   []string `toml:"adjacent"`
	HomeOf     string   `toml:"home_of"`
}

// Load reads an event configuration from a TOML file.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event config: %w", err)
	}

	var file fileConfig
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse event config: %w", err)
	}

	cfg := &Config{Name: file.Name}
	for _, rs := range file.Rulesets {
		kind, err := parseKind(rs.Kind)
		if err != nil {
			return nil, err
		}
		cfg.Rulesets = append(cfg.Rulesets, scoring.Ruleset{
			Kind: kind,
			Name: rs.Name,
			Par:  rs.Par,
		})
	}
	for _, lang := range file.Languages {
		cfg.Languages = append(cfg.Languages, Language(lang))
	}
	for _, team := range file.Teams {
		cfg.Teams = append(cfg.Teams, Team(team))
	}
	for _, cell := range file.Territory {
		cfg.Territory = append(cfg.Territory, TerritoryCell(cell))
	}
	return cfg, nil
}

func parseKind(name string) (scoring.Kind, error) {
	switch strings.ToLower(name) {
	case "symbolless":
		return scoring.SymbolLess, nil
	case "short":
		return scoring.Short, nil
	case "free":
		return scoring.Free, nil
	case "simple":
		return scoring.Simple, nil
	case "vertical":
		return scoring.Vertical, nil
	case "bytecount", "byte-count":
		return scoring.ByteCount, nil
	}
	return 0, fmt.Errorf("unknown ruleset kind %q", name)
}
