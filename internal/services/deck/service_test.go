package deck

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mfield/memorymatch/internal/dependencies/mocks"
	"github.com/mfield/memorymatch/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

// ItemsFor tests

func (s *ServiceSuite) TestItemsForBuiltInTheme() {
	cfg := model.DifficultyConfigs[model.DifficultyEasy]

	items, err := s.service.ItemsFor(model.ThemeProgramming, cfg, nil)
	s.Require().NoError(err)

	s.Len(items, 4)
	s.Equal("</>", items[0].Token)
	s.Equal(model.CardKindText, items[0].Kind)
}

func (s *ServiceSuite) TestItemsForEveryThemeCoversHardDifficulty() {
	cfg := model.DifficultyConfigs[model.DifficultyHard]

	for theme := range model.ThemePacks {
		items, err := s.service.ItemsFor(theme, cfg, nil)
		s.Require().NoError(err)
		s.Len(items, 12)
	}
}

func (s *ServiceSuite) TestItemsForUnknownTheme() {
	cfg := model.DifficultyConfigs[model.DifficultyEasy]

	_, err := s.service.ItemsFor("galaxies", cfg, nil)
	s.ErrorIs(err, model.ErrUnknownTheme)
}

func (s *ServiceSuite) TestItemsForCustomTheme() {
	cfg := model.DifficultyConfigs[model.DifficultyEasy]
	urls := []string{
		"https://example.com/a.png",
		"https://example.com/b.png",
		"https://example.com/c.png",
		"https://example.com/d.png",
		"https://example.com/e.png",
	}

	items, err := s.service.ItemsFor(model.ThemeCustom, cfg, urls)
	s.Require().NoError(err)

	s.Len(items, 4)
	s.Equal("https://example.com/a.png", items[0].Token)
	s.Equal(model.CardKindImage, items[0].Kind)
}

func (s *ServiceSuite) TestItemsForCustomThemeTooFewImages() {
	cfg := model.DifficultyConfigs[model.DifficultyMedium]
	urls := []string{"https://example.com/a.png"}

	_, err := s.service.ItemsFor(model.ThemeCustom, cfg, urls)
	s.ErrorIs(err, model.ErrInsufficientThemeItems)
}

// Build tests

func (s *ServiceSuite) TestBuildProducesPairedDeck() {
	items := []model.ThemeItem{
		{Token: "A", Kind: model.CardKindText},
		{Token: "B", Kind: model.CardKindText},
		{Token: "C", Kind: model.CardKindText},
	}

	deck, err := s.service.Build(items)
	s.Require().NoError(err)

	s.Len(deck, 6)
	s.Equal(3, deck.PairCount())

	counts := map[string]int{}
	for i, card := range deck {
		s.Equal(i, card.ID)
		s.False(card.Matched)
		counts[card.Token]++
	}
	s.Equal(map[string]int{"A": 2, "B": 2, "C": 2}, counts)
}

func (s *ServiceSuite) TestBuildShuffleIsDrivenByRandom() {
	items := []model.ThemeItem{
		{Token: "A", Kind: model.CardKindText},
		{Token: "B", Kind: model.CardKindText},
	}

	// Swap targets for i=3,2,1; all zeros rotates the tail to the front
	s.random.QueueIntn(0, 0, 0)

	deck, err := s.service.Build(items)
	s.Require().NoError(err)

	tokens := make([]string, len(deck))
	for i, card := range deck {
		tokens[i] = card.Token
	}
	s.Equal([]string{"B", "A", "B", "A"}, tokens)
}

func (s *ServiceSuite) TestBuildRejectsEmptyItems() {
	_, err := s.service.Build(nil)
	s.ErrorIs(err, model.ErrInsufficientThemeItems)
}

func (s *ServiceSuite) TestBuildRejectsDuplicateTokens() {
	items := []model.ThemeItem{
		{Token: "A", Kind: model.CardKindText},
		{Token: "A", Kind: model.CardKindText},
	}

	_, err := s.service.Build(items)
	s.ErrorIs(err, model.ErrDuplicateThemeItem)
}

// ParseCustomImageURLs tests

func (s *ServiceSuite) TestParseCustomImageURLs() {
	raw := " https://a.com/1.png , http://b.com/2.png,ftp://c.com/3.png, https://a.com/1.png ,not-a-url,"

	urls := ParseCustomImageURLs(raw)
	s.Equal([]string{"https://a.com/1.png", "http://b.com/2.png"}, urls)
}

func (s *ServiceSuite) TestParseCustomImageURLsEmpty() {
	s.Empty(ParseCustomImageURLs(""))
	s.Empty(ParseCustomImageURLs(" , , "))
}
