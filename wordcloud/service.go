package wordcloud

import (
	"image"
	"log"
	"math/rand"
	"sync"
	"time"
)

// Service owns the derived word-cloud state for one survey question:
// the raw responses, the ranked frequency table and the set of words
// the user has toggled off. All state is rebuilt on demand; nothing is
// persisted. Extraction runs debounced in the background and results
// from superseded passes are discarded, so rapid input changes never
// apply stale frequency tables.
type Service struct {
	handle *TaggerHandle
	logger *log.Logger

	mu         sync.Mutex
	cfg        Config
	rng        *rand.Rand
	responses  []string
	label      string
	words      []WordFrequency
	removed    map[string]struct{}
	generation uint64
	timer      *time.Timer
	closed     bool

	onUpdate func()
}

// NewService constructs a service around the given tagging capability
// handle. Extraction triggers automatically once the capability
// finishes loading. The logger may be nil.
func NewService(cfg Config, handle *TaggerHandle, logger *log.Logger) *Service {
	cfg.ApplyDefaults()
	s := &Service{
		handle:  handle,
		logger:  logger,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		removed: make(map[string]struct{}),
	}
	if handle != nil {
		go s.watchTagger()
	}
	return s
}

func (s *Service) watchTagger() {
	<-s.handle.Done()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || len(s.responses) == 0 {
		return
	}
	s.scheduleExtractLocked()
}

// Close cancels any pending extraction timer. Further state changes
// are ignored. Required when the owning view is torn down before the
// debounce fires.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Config returns a copy of the current configuration.
func (s *Service) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// UpdateConfig replaces the configuration and recomputes the table.
func (s *Service) UpdateConfig(cfg Config) {
	cfg.ApplyDefaults()
	s.mu.Lock()
	s.cfg = cfg
	if !s.closed && len(s.responses) > 0 {
		s.scheduleExtractLocked()
	}
	s.mu.Unlock()
}

// Seed reseeds the internal random source. Sampling and color
// assignment become reproducible, which the CLI exposes as --seed.
func (s *Service) Seed(seed int64) {
	s.mu.Lock()
	s.rng = rand.New(rand.NewSource(seed))
	s.mu.Unlock()
}

// SetOnUpdate registers a hook invoked whenever the ranked words or
// the removed set change. It may be called from a background
// goroutine; UI callers are expected to marshal onto their own thread.
func (s *Service) SetOnUpdate(fn func()) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// SetResponses replaces the raw response set for the current question.
// The removed-word set resets because it is only meaningful against
// the response set it was built from. Extraction is debounced so the
// caller's thread is never blocked on large inputs.
func (s *Service) SetResponses(raw []string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.responses = append([]string(nil), raw...)
	s.removed = make(map[string]struct{})
	s.words = nil
	s.scheduleExtractLocked()
	s.mu.Unlock()
	s.notify()
}

// SetQuestionLabel stores the label used for palette selection.
func (s *Service) SetQuestionLabel(label string) {
	s.mu.Lock()
	changed := s.label != label
	s.label = label
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// QuestionLabel returns the current question label.
func (s *Service) QuestionLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

func (s *Service) scheduleExtractLocked() {
	s.generation++
	gen := s.generation
	if s.timer != nil {
		s.timer.Stop()
	}
	delay := time.Duration(s.cfg.ExtractDelayMS) * time.Millisecond
	s.timer = time.AfterFunc(delay, func() { s.runExtract(gen) })
}

// runExtract recomputes the frequency table for one generation. The
// generation is checked again before results are applied: a pass
// superseded by a newer state change silently discards its output.
func (s *Service) runExtract(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.generation {
		s.mu.Unlock()
		return
	}
	cfg := s.cfg
	counts, distinct := CountResponses(s.responses)
	sampled, ratio := SampleResponses(distinct, cfg.MaxUniqueResponses, s.rng)
	s.mu.Unlock()

	var ranked []WordFrequency
	tagger, ok := s.handleTagger()
	if ok {
		scores := ExtractFrequencies(counts, sampled, ratio, tagger)
		ranked = RankWords(scores, cfg.MaxWords)
	}

	s.mu.Lock()
	if s.closed || gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.words = ranked
	s.mu.Unlock()

	if ok {
		s.logf("extracted %d words from %d distinct responses (ratio %.2f)", len(ranked), len(distinct), ratio)
	} else {
		s.logf("tagging capability unavailable, produced no words")
	}
	s.notify()
}

func (s *Service) handleTagger() (Tagger, bool) {
	if s.handle == nil {
		return nil, false
	}
	return s.handle.Tagger()
}

// Words splits the ranked table into the available and removed
// buckets, preserving rank order in both.
func (s *Service) Words() (available, removed []WordFrequency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.words {
		if _, gone := s.removed[w.Word]; gone {
			removed = append(removed, w)
		} else {
			available = append(available, w)
		}
	}
	return available, removed
}

// ToggleWord flips a word between the available and removed buckets.
// Unknown words are ignored. The caller re-renders afterwards;
// placement is a full pass, never incremental.
func (s *Service) ToggleWord(word string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if _, gone := s.removed[word]; gone {
		delete(s.removed, word)
	} else if s.hasWordLocked(word) {
		s.removed[word] = struct{}{}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Service) hasWordLocked(word string) bool {
	for _, w := range s.words {
		if w.Word == word {
			return true
		}
	}
	return false
}

// RenderCloud runs the full scale, color, placement and raster
// pipeline for the available words. A degenerate canvas or an empty
// table yields a nil image and an empty layout, never an error.
func (s *Service) RenderCloud(width, height int) (*image.RGBA, LayoutResult) {
	s.mu.Lock()
	available := make([]WordFrequency, 0, len(s.words))
	for _, w := range s.words {
		if _, gone := s.removed[w.Word]; !gone {
			available = append(available, w)
		}
	}
	cfg := s.cfg
	palette := ChoosePalette(s.label, cfg)
	colors := AssignColors(palette, len(available), s.rng)
	s.mu.Unlock()

	if width <= 0 || height <= 0 || len(available) == 0 {
		return nil, LayoutResult{}
	}
	sizes := FontSizes(available, height)
	layout := Layout(available, sizes, colors, width, height, cfg, nil)
	return Render(layout, width, height), layout
}

func (s *Service) notify() {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
