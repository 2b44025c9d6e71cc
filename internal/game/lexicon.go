package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// Lexicon holds the drawable words grouped by category
type Lexicon struct {
	categories []string
	words      map[string][]string
}

var defaultWords = map[string][]string{
	"Food":    {"apple", "banana", "watermelon", "hamburger", "pizza"},
	"Animals": {"cat", "dog", "rabbit", "elephant", "tiger"},
}

// NewLexicon builds a lexicon, dropping empty categories
func NewLexicon(words map[string][]string) (*Lexicon, error) {
	l := &Lexicon{words: make(map[string][]string, len(words))}
	for category, list := range words {
		if len(list) == 0 {
			continue
		}
		l.categories = append(l.categories, category)
		l.words[category] = append([]string(nil), list...)
	}
	if len(l.categories) == 0 {
		return nil, errors.New("lexicon has no words")
	}
	sort.Strings(l.categories)
	return l, nil
}

// DefaultLexicon is used when no word file is available
func DefaultLexicon() *Lexicon {
	l, _ := NewLexicon(defaultWords)
	return l
}

// LoadLexicon reads a JSON object of category -> words
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var words map[string][]string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	l, err := NewLexicon(words)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return l, nil
}

// Categories returns the number of categories
func (l *Lexicon) Categories() int {
	return len(l.categories)
}

// Pick returns a random category and a random word from it
func (l *Lexicon) Pick(rng Random) (category, word string) {
	category = l.categories[rng.Intn(len(l.categories))]
	list := l.words[category]
	return category, list[rng.Intn(len(list))]
}
