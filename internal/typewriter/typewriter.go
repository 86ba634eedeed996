// Package typewriter drives the rotating-word hero: a fixed lead-in followed
// by words that are typed one rune at a time, held, erased, and replaced by
// the next word.
package typewriter

import "time"

// Default timings of the site's typist hero.
const (
	DefaultTypingSpeed   = 100 * time.Millisecond
	DefaultDeletingSpeed = 50 * time.Millisecond
	DefaultPauseTime     = 2 * time.Second
)

// Config controls the typist's pacing. Zero fields take the defaults.
type Config struct {
	TypingSpeed   time.Duration `mapstructure:"typing_speed" yaml:"typing_speed"`
	DeletingSpeed time.Duration `mapstructure:"deleting_speed" yaml:"deleting_speed"`
	PauseTime     time.Duration `mapstructure:"pause_time" yaml:"pause_time"`
}

// WithDefaults fills zero and negative fields with the default pacing.
func (c Config) WithDefaults() Config {
	if c.TypingSpeed <= 0 {
		c.TypingSpeed = DefaultTypingSpeed
	}
	if c.DeletingSpeed <= 0 {
		c.DeletingSpeed = DefaultDeletingSpeed
	}
	if c.PauseTime <= 0 {
		c.PauseTime = DefaultPauseTime
	}
	return c
}

// Phase is what the next Step will do.
type Phase int

const (
	Typing Phase = iota
	Holding
	Deleting
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Holding:
		return "holding"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Typist is the typewriter state. Words are handled as runes so multi-byte
// text is never cut mid-character.
type Typist struct {
	static string
	words  [][]rune
	cfg    Config
	word   int
	shown  int
	phase  Phase
}

// New creates a typist positioned before the first rune of the first word.
func New(static string, words []string, cfg Config) Typist {
	t := Typist{static: static, cfg: cfg.WithDefaults()}
	for _, w := range words {
		t.words = append(t.words, []rune(w))
	}
	return t
}

// Active reports whether there is anything to animate.
func (t Typist) Active() bool { return len(t.words) > 0 }

// Step advances one rune (or one phase change) and returns how long to wait
// before the next Step. An inactive typist returns zero and never changes.
func (t *Typist) Step() time.Duration {
	if !t.Active() {
		return 0
	}
	current := t.words[t.word]
	switch t.phase {
	case Typing:
		if t.shown < len(current) {
			t.shown++
		}
		if t.shown >= len(current) {
			t.phase = Holding
			return t.cfg.PauseTime
		}
		return t.cfg.TypingSpeed
	case Holding:
		t.phase = Deleting
		fallthrough
	default:
		if t.shown > 0 {
			t.shown--
		}
		if t.shown == 0 {
			t.word = (t.word + 1) % len(t.words)
			t.phase = Typing
			return t.cfg.TypingSpeed
		}
		return t.cfg.DeletingSpeed
	}
}

// InitialDelay is the wait before the first Step.
func (t Typist) InitialDelay() time.Duration {
	if !t.Active() {
		return 0
	}
	return t.cfg.TypingSpeed
}

// Static returns the fixed lead-in text.
func (t Typist) Static() string { return t.static }

// Text returns the partially typed rotating word.
func (t Typist) Text() string {
	if !t.Active() {
		return ""
	}
	return string(t.words[t.word][:t.shown])
}

// WordIndex returns the index of the word being typed or erased.
func (t Typist) WordIndex() int { return t.word }

// Phase returns what the next Step will do.
func (t Typist) Phase() Phase { return t.phase }

// Config returns the effective pacing.
func (t Typist) Config() Config { return t.cfg }
