package game

import (
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed cards.yaml
var baseCards []byte

type cardDef struct {
	Name     string   `yaml:"name"`
	Cost     int      `yaml:"cost"`
	Treasure int      `yaml:"treasure"`
	VP       int      `yaml:"vp"`
	Actions  int      `yaml:"actions"`
	Cards    int      `yaml:"cards"`
	Buys     int      `yaml:"buys"`
	Coins    int      `yaml:"coins"`
	Attack   bool     `yaml:"attack"`
	Defense  bool     `yaml:"defense"`
	Effects  []string `yaml:"effects"`
	Requires []string `yaml:"requires"`
}

type catalogFile struct {
	Cards []cardDef `yaml:"cards"`
}

// Catalog holds the one Card instance for each card name.
type Catalog struct {
	cards map[string]*Card
}

// Base is the catalog of the base set. Its cards are process-wide singletons.
var Base *Catalog

var (
	Curse, Estate, Duchy, Province *Card
	Copper, Silver, Gold           *Card

	Cellar, Chapel, Moat, Village, Woodcutter *Card
	Militia, Moneylender, Smithy, CouncilRoom *Card
	Bureaucrat                                *Card
	Festival, Laboratory, Market, Witch       *Card
)

func init() {
	catalog, err := parseCatalog(&Catalog{cards: map[string]*Card{}}, baseCards)
	if err != nil {
		panic(fmt.Sprintf("invalid base catalog: %v", err))
	}
	Base = catalog

	Curse, Estate, Duchy, Province = Base.MustGet("Curse"), Base.MustGet("Estate"), Base.MustGet("Duchy"), Base.MustGet("Province")
	Copper, Silver, Gold = Base.MustGet("Copper"), Base.MustGet("Silver"), Base.MustGet("Gold")

	Cellar, Chapel, Moat = Base.MustGet("Cellar"), Base.MustGet("Chapel"), Base.MustGet("Moat")
	Village, Woodcutter = Base.MustGet("Village"), Base.MustGet("Woodcutter")
	Militia, Moneylender, Smithy = Base.MustGet("Militia"), Base.MustGet("Moneylender"), Base.MustGet("Smithy")
	Bureaucrat = Base.MustGet("Bureaucrat")
	CouncilRoom, Festival = Base.MustGet("Council Room"), Base.MustGet("Festival")
	Laboratory, Market, Witch = Base.MustGet("Laboratory"), Base.MustGet("Market"), Base.MustGet("Witch")
}

// LoadCatalog reads card definitions and adds them to a copy of the base
// catalog. Redefining a base card is an error.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return parseCatalog(Base, data)
}

func parseCatalog(base *Catalog, data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	catalog := &Catalog{cards: make(map[string]*Card, len(base.cards)+len(file.Cards))}
	for name, card := range base.cards {
		catalog.cards[name] = card
	}

	for _, def := range file.Cards {
		if def.Name == "" {
			return nil, fmt.Errorf("card without a name")
		}
		if _, ok := catalog.cards[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, def.Name)
		}
		if def.Cost < 0 || def.Cards < 0 {
			return nil, fmt.Errorf("card %s: cost and cards must not be negative", def.Name)
		}
		card := &Card{
			Name:     def.Name,
			Cost:     def.Cost,
			Treasure: def.Treasure,
			VP:       def.VP,
			Actions:  def.Actions,
			Cards:    def.Cards,
			Buys:     def.Buys,
			Coins:    def.Coins,
			Attack:   def.Attack,
			Defense:  def.Defense,
		}
		for _, name := range def.Effects {
			effect, ok := effects[name]
			if !ok {
				return nil, fmt.Errorf("card %s: %w: %s", def.Name, ErrUnknownEffect, name)
			}
			card.Effects = append(card.Effects, effect)
		}
		catalog.cards[def.Name] = card
	}

	// Requirements may name cards defined later in the file
	for _, def := range file.Cards {
		card := catalog.cards[def.Name]
		for _, name := range def.Requires {
			required, ok := catalog.cards[name]
			if !ok {
				return nil, fmt.Errorf("card %s requires %w: %s", def.Name, ErrUnknownCard, name)
			}
			card.Requires = append(card.Requires, required)
		}
	}
	return catalog, nil
}

func (c *Catalog) Get(name string) (*Card, error) {
	card, ok := c.cards[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, name)
	}
	return card, nil
}

func (c *Catalog) MustGet(name string) *Card {
	card, err := c.Get(name)
	if err != nil {
		panic(err)
	}
	return card
}

// Lookup resolves a list of card names.
func (c *Catalog) Lookup(names []string) ([]*Card, error) {
	cards := make([]*Card, 0, len(names))
	for _, name := range names {
		card, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Cards lists every card, cheapest first.
func (c *Catalog) Cards() []*Card {
	cards := make([]*Card, 0, len(c.cards))
	for _, card := range c.cards {
		cards = append(cards, card)
	}
	SortCards(cards)
	return cards
}

// Kingdom lists the action cards, which make up the variable supply piles.
func (c *Catalog) Kingdom() []*Card {
	var kingdom []*Card
	for _, card := range c.Cards() {
		if card.IsAction() {
			kingdom = append(kingdom, card)
		}
	}
	return kingdom
}

func (c *Catalog) Len() int { return len(c.cards) }
