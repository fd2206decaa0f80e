package match

import "sort"

// Confidence thresholds for suggestions.
const (
	// DefaultMinScore is the minimum similarity of a suggestion.
	DefaultMinScore = 0.6
	// DefaultMinGap is the minimum score gap between the two best candidates.
	DefaultMinGap = 0.1
)

// Candidate is a known name scored against a wanted one.
type Candidate struct {
	Name  string
	Score float64 // NameSimilarity, 0-1
}

// CandidateList is a list of candidates, best first once ranked.
type CandidateList []Candidate

// Rank scores every known name against want and sorts them by descending
// score, ties broken by name. Duplicate names are scored once.
func Rank(want string, names []string) CandidateList {
	seen := make(map[string]bool, len(names))
	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}

		seen[name] = true
		candidates = append(candidates, Candidate{Name: name, Score: NameSimilarity(want, name)})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the best candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// HighConfidence returns the best candidate if it scores at least minScore
// and beats the runner-up by at least minGap. Returns nil otherwise.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if len(c) > 1 && c[0].Score-c[1].Score < minGap {
		return nil
	}

	return best
}

// Suggest returns the known name want was most likely meant to be, using the
// default thresholds.
func Suggest(want string, names []string) (string, bool) {
	best := Rank(want, names).HighConfidence(DefaultMinScore, DefaultMinGap)
	if best == nil {
		return "", false
	}

	return best.Name, true
}
