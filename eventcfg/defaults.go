package eventcfg

import (
	"github.com/codegolf-live/backend/scoring"
)

// DefaultBingoEvent returns the 5x5 codegolf bingo configuration:
// five regulations against five languages, two players head to head.
func DefaultBingoEvent() *Config {
	return &Config{
		Name: "Codegolf Bingo",
		Rulesets: []scoring.Ruleset{
			{Kind: scoring.SymbolLess, Name: "SymbolLess", Par: intPtr(10)},
			{Kind: scoring.Short, Name: "Short", Par: intPtr(500)},
			{Kind: scoring.Free, Name: "Free"},
			{Kind: scoring.Simple, Name: "Simple", Par: intPtr(100)},
			{Kind: scoring.Vertical, Name: "Vertical", Par: intPtr(100)},
		},
		Languages: []Language{
			{Name: "Sed", ID: "SED"},
			{Name: "Java", ID: "JAVA"},
			{Name: "C", ID: "C11"},
			{Name: "Python", ID: "PYPY3"},
			{Name: "Ruby", ID: "RUBY"},
		},
		Teams: []Team{
			{Name: "Red", Players: []string{"alcea"}},
			{Name: "Blue", Players: []string{"tRue"}},
		},
	}
}

// DefaultTerritoryEvent returns the territory capture configuration:
// a single byte-count regulation over a 15-cell graph with two home cells.
func DefaultTerritoryEvent() *Config {
	return &Config{
		Name: "Codegolf Territory",
		Rulesets: []scoring.Ruleset{
			{Kind: scoring.ByteCount, Name: "ByteCount"},
		},
		Teams: []Team{
			{Name: "Red", Players: []string{"alcea"}},
			{Name: "Blue", Players: []string{"tRue"}},
		},
		Territory: []TerritoryCell{
			{
				Language:   "Red",
				LanguageID: "RED",
				HomeOf:     "Red",
				Adjacent: []string{
					"Rust", "Starry", "C", "OCaml",
					"Brainfuck", "Aheui", "ferNANDo",
				},
			},
			{
				Language:   "Blue",
				LanguageID: "BLUE",
				HomeOf:     "Blue",
				Adjacent: []string{
					"プロデル", "Starry", "><>", "Brainfuck",
					"Ruby", "ferNANDo", "Python",
				},
			},
			{
				Language:   "Rust",
				LanguageID: "RUST",
				Adjacent:   []string{"Starry", "プロデル", "Red"},
			},
			{
				Language:   "プロデル",
				LanguageID: "PRDR",
				Adjacent:   []string{"Rust", "Mines", "Blue"},
			},
			{
				Language:   "Mines",
				LanguageID: "MINES",
				Adjacent:   []string{"プロデル", "OCaml", "Brainfuck"},
			},
			{
				Language:   "OCaml",
				LanguageID: "OCAML",
				Adjacent:   []string{"Mines", "Ruby", "Red"},
			},
			{
				Language:   "Ruby",
				LanguageID: "RUBY",
				Adjacent:   []string{"OCaml", "ferNANDo", "Blue"},
			},
			{
				Language:   "Starry",
				LanguageID: "STARRY",
				Adjacent:   []string{"Rust", "C", "Red", "Blue"},
			},
			{
				Language:   "Brainfuck",
				LanguageID: "BFPY",
				Adjacent:   []string{"Mines", "05AB1E", "Red", "Blue"},
			},
			{
				Language:   "ferNANDo",
				LanguageID: "FNAND",
				Adjacent:   []string{"Ruby", "Python", "Red", "Blue"},
			},
			{
				Language:   "C",
				LanguageID: "C11",
				Adjacent:   []string{"Starry", "><>", "Red"},
			},
			{
				Language:   "><>",
				LanguageID: "FISH",
				Adjacent:   []string{"C", "05AB1E", "Blue"},
			},
			{
				Language:   "05AB1E",
				LanguageID: "OSABIE",
				Adjacent:   []string{"><>", "Brainfuck", "Aheui"},
			},
			{
				Language:   "Aheui",
				LanguageID: "AHEUI",
				Adjacent:   []string{"05AB1E", "Python", "Red"},
			},
			{
				Language:   "Python",
				LanguageID: "PYPY3",
				Adjacent:   []string{"ferNANDo", "Aheui", "Blue"},
			},
		},
	}
}

// intPtr is a helper function to create a pointer to an int literal.
func intPtr(n int) *int {
	return &n
}
