package deck

import (
	"regexp"
	"strings"

	"github.com/mfield/memorymatch/internal/dependencies/random"
	"github.com/mfield/memorymatch/internal/model"
)

// Service builds randomized card decks from theme packs
type Service struct {
	random random.Random
}

// New creates a new deck Service
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// ItemsFor selects the N theme items for a difficulty. For the custom
// theme the items come from customImages; for built-in themes from the
// static packs. A pack with fewer than N items is a precondition failure,
// never a silently truncated deck.
func (s *Service) ItemsFor(theme model.ThemeName, cfg model.DifficultyConfig, customImages []string) ([]model.ThemeItem, error) {
	if theme == model.ThemeCustom {
		if len(customImages) < cfg.PairCount {
			return nil, model.ErrInsufficientThemeItems
		}
		items := make([]model.ThemeItem, cfg.PairCount)
		for i, url := range customImages[:cfg.PairCount] {
			items[i] = model.ThemeItem{Token: url, Kind: model.CardKindImage}
		}
		return items, nil
	}

	tokens, ok := model.ThemePacks[theme]
	if !ok {
		return nil, model.ErrUnknownTheme
	}
	if len(tokens) < cfg.PairCount {
		return nil, model.ErrInsufficientThemeItems
	}

	items := make([]model.ThemeItem, cfg.PairCount)
	for i, token := range tokens[:cfg.PairCount] {
		items[i] = model.ThemeItem{Token: token, Kind: model.CardKindText}
	}
	return items, nil
}

// Build duplicates the items into pairs and shuffles them into a deck of
// 2N cards with sequential ids 0..2N-1. The shuffle is an unbiased
// Fisher-Yates, so every permutation of the slots is equally likely.
func (s *Service) Build(items []model.ThemeItem) (model.Deck, error) {
	if len(items) == 0 {
		return nil, model.ErrInsufficientThemeItems
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item.Token] {
			return nil, model.ErrDuplicateThemeItem
		}
		seen[item.Token] = true
	}

	pairs := make([]model.ThemeItem, 0, len(items)*2)
	pairs = append(pairs, items...)
	pairs = append(pairs, items...)

	for i := len(pairs) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}

	cards := make(model.Deck, len(pairs))
	for i, item := range pairs {
		cards[i] = model.Card{
			ID:    i,
			Token: item.Token,
			Kind:  item.Kind,
		}
	}
	return cards, nil
}

var httpURLPattern = regexp.MustCompile(`(?i)^https?://`)

// ParseCustomImageURLs extracts http(s) URLs from a comma-separated list,
// trimming whitespace and dropping duplicates while preserving order.
func ParseCustomImageURLs(raw string) []string {
	seen := make(map[string]bool)
	var urls []string

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || !httpURLPattern.MatchString(part) {
			continue
		}
		if seen[part] {
			continue
		}
		seen[part] = true
		urls = append(urls, part)
	}

	return urls
}

// Interface for dependency injection
type ServiceInterface interface {
	ItemsFor(theme model.ThemeName, cfg model.DifficultyConfig, customImages []string) ([]model.ThemeItem, error)
	Build(items []model.ThemeItem) (model.Deck, error)
}

var _ ServiceInterface = (*Service)(nil)
