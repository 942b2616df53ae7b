// Package deck loads the cards shown by the carousels.
package deck

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/llehouerou/carousel/internal/ui/card"
)

//go:embed demo.yaml
var demoYAML []byte

// entry is the on-disk form of a card.
type entry struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Action      string    `yaml:"action"`
	Updated     time.Time `yaml:"updated"`
}

type file struct {
	Cards []entry `yaml:"cards"`
}

// Demo returns the built-in demo deck.
func Demo() []card.Card {
	cards, err := Parse(demoYAML)
	if err != nil {
		panic("deck: invalid demo deck: " + err.Error())
	}
	return cards
}

// Load reads a deck from a YAML file.
func Load(path string) ([]card.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	cards, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", path, err)
	}
	return cards, nil
}

// Parse decodes a YAML deck. Cards without a title are rejected.
func Parse(data []byte) ([]card.Card, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	cards := make([]card.Card, 0, len(f.Cards))
	for i, e := range f.Cards {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			return nil, fmt.Errorf("card %d: missing title", i+1)
		}
		cards = append(cards, card.Card{
			Title:       title,
			Description: strings.TrimSpace(e.Description),
			Action:      strings.TrimSpace(e.Action),
			Updated:     e.Updated,
		})
	}
	return cards, nil
}

// LoadOrDemo loads the deck at path, or returns the demo deck when path is empty.
func LoadOrDemo(path string) ([]card.Card, error) {
	if path == "" {
		return Demo(), nil
	}
	return Load(path)
}
