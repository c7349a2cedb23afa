package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Pair is one example sentence with its translation. The dataset
// stores pairs as 2-element [japanese, english] arrays.
type Pair struct {
	Japanese string
	English  string
}

func (p *Pair) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	if len(arr) != 2 {
		return fmt.Errorf("sentence pair must have 2 elements, got %d", len(arr))
	}
	p.Japanese = arr[0]
	p.English = arr[1]
	return nil
}

func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{p.Japanese, p.English})
}

// Corpus is the ordered sentence dataset. The source order is
// preserved and is the tie-break order for search results.
type Corpus struct {
	pairs []Pair
}

// Load reads the bundled sentence dataset, a JSON array of pairs.
func Load(path string) (*Corpus, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open sentences file: %w", err)
	}
	return Parse(b)
}

// Parse builds a Corpus from raw JSON.
func Parse(b []byte) (*Corpus, error) {
	var pairs []Pair
	if err := json.Unmarshal(b, &pairs); err != nil {
		return nil, fmt.Errorf("could not unmarshal sentences: %w", err)
	}
	return &Corpus{pairs: pairs}, nil
}

// New builds a Corpus from pairs already in memory.
func New(pairs []Pair) *Corpus {
	return &Corpus{pairs: pairs}
}

// FindContaining scans the corpus in order and returns every pair
// whose Japanese text contains any of the given forms as a literal
// substring. A pair matching several forms is emitted once, at the
// position of its first occurrence. No tokenization, no ranking.
func (c *Corpus) FindContaining(forms []string) []Pair {
	var found []Pair
	for _, pair := range c.pairs {
		for _, form := range forms {
			if form == "" {
				continue
			}
			if strings.Contains(pair.Japanese, form) {
				found = append(found, pair)
				break
			}
		}
	}
	return found
}

// Len reports the number of loaded pairs.
func (c *Corpus) Len() int {
	return len(c.pairs)
}
