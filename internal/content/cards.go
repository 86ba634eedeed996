package content

import "fmt"

// Carousel section names, used on the command line and as settings keys.
const (
	SectionHero   = "hero"
	SectionEvents = "events"
	SectionNews   = "news"
)

// Sections lists the carousel sections in page order.
func Sections() []string {
	return []string{SectionHero, SectionEvents, SectionNews}
}

// Action is a call-to-action link on a card.
type Action struct {
	Text string
	Href string
}

// Card is the renderer's view of any carousel item.
type Card struct {
	ID       string
	Tag      string
	Date     string
	PreTitle string
	Title    string
	Body     string // may contain markdown
	Labels   []string
	Actions  []Action
}

// Carousel returns the heading and cards for a section.
func (s *Site) Carousel(section string) (Heading, []Card, error) {
	switch section {
	case SectionHero:
		return Heading{}, s.heroCards(), nil
	case SectionEvents:
		return s.Events.Heading, s.eventCards(), nil
	case SectionNews:
		return s.News.Heading, s.newsCards(), nil
	default:
		return Heading{}, nil, fmt.Errorf("unknown carousel %q (want one of %v)", section, Sections())
	}
}

func (s *Site) heroCards() []Card {
	cards := make([]Card, 0, len(s.Hero.Slides))
	for _, sl := range s.Hero.Slides {
		c := Card{ID: sl.ID, PreTitle: sl.PreTitle, Title: sl.Title, Body: sl.Subtitle}
		if sl.ButtonText != "" {
			c.Actions = append(c.Actions, Action{Text: sl.ButtonText, Href: sl.ButtonHref})
		}
		if sl.SecondaryButtonText != "" {
			c.Actions = append(c.Actions, Action{Text: sl.SecondaryButtonText, Href: sl.SecondaryButtonHref})
		}
		cards = append(cards, c)
	}
	return cards
}

func (s *Site) eventCards() []Card {
	cards := make([]Card, 0, len(s.Events.Items))
	for _, ev := range s.Events.Items {
		cards = append(cards, Card{
			ID:      ev.ID,
			Tag:     ev.Tag,
			Date:    ev.Date,
			Title:   ev.Title,
			Body:    ev.Description,
			Actions: []Action{{Text: "Детальніше", Href: ev.Href}},
		})
	}
	return cards
}

func (s *Site) newsCards() []Card {
	cards := make([]Card, 0, len(s.News.Items))
	for _, n := range s.News.Items {
		cards = append(cards, Card{
			ID:      n.ID,
			Tag:     n.MainCategory,
			Date:    n.Date,
			Title:   n.Title,
			Body:    n.Text,
			Labels:  n.Categories,
			Actions: []Action{{Text: "Читати далі", Href: n.Href}},
		})
	}
	return cards
}
