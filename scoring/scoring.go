package scoring

import "strings"

// Kind identifies one of the event's scoring regulations.
type Kind int

const (
	SymbolLess Kind = iota
	Short
	Free
	Simple
	Vertical
	ByteCount
)

// Ruleset is a named scoring regulation with an optional par threshold.
// A nil Par means "no limit".
type Ruleset struct {
	Kind Kind
	Name string
	Par  *int
}

// symbols counted by the SymbolLess regulation
const symbolSet = "+-*/%&|^[]:"

// Score computes a submission's score under the given ruleset. A nil code
// means the source has not been fetched yet. A nil result means the
// submission does not qualify under this ruleset (no score, or over par);
// it is not a zero.
func Score(code *string, rs Ruleset) *int {
	raw := rawScore(code, rs.Kind)
	if raw == nil {
		return nil
	}
	if rs.Par != nil && *raw > *rs.Par {
		return nil
	}
	return raw
}

func rawScore(code *string, kind Kind) *int {
	src := ""
	if code != nil {
		src = *code
	}

	switch kind {
	case SymbolLess:
		count := 0
		for _, r := range src {
			if strings.ContainsRune(symbolSet, r) {
				count++
			}
		}
		return &count
	case Short:
		if src == "" {
			return nil
		}
		n := len([]rune(src))
		return &n
	case Free:
		one := 1
		return &one
	case Simple:
		seen := map[rune]struct{}{}
		for _, r := range src {
			seen[r] = struct{}{}
		}
		n := len(seen)
		return &n
	case Vertical:
		longest := 0
		for _, line := range splitLines(src) {
			if n := len([]rune(line)); n > longest {
				longest = n
			}
		}
		return &longest
	case ByteCount:
		if src == "" {
			return nil
		}
		n := len(src)
		return &n
	}
	return nil
}

// splitLines splits on both CRLF and bare LF line endings.
func splitLines(src string) []string {
	normalized := strings.ReplaceAll(src, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}
