package wordcloud

import (
	"strings"
	"sync"

	prose "github.com/jdkato/prose/v2"
)

// Tagger exposes the two part-of-speech operations the extractor
// needs. The engine treats the capability as optionally unavailable
// and yields an empty word set, never an error, until it loads.
type Tagger interface {
	Nouns(sentence string) []string
	Adjectives(sentence string) []string
}

// ProseTagger tags sentences with the prose NLP pipeline using
// Penn-Treebank tags (NN* for nouns, JJ* for adjectives).
type ProseTagger struct{}

// NewProseTagger initializes the pipeline. Tagging a throwaway
// document up front forces model loading so later calls are fast and
// load failures surface here instead of mid-extraction.
func NewProseTagger() (*ProseTagger, error) {
	if _, err := taggedDocument("warmup sentence"); err != nil {
		return nil, err
	}
	return &ProseTagger{}, nil
}

// Nouns returns the lower-cased noun tokens of the sentence.
func (ProseTagger) Nouns(sentence string) []string {
	return tokensWithTagPrefix(sentence, "NN")
}

// Adjectives returns the lower-cased adjective tokens of the sentence.
func (ProseTagger) Adjectives(sentence string) []string {
	return tokensWithTagPrefix(sentence, "JJ")
}

func taggedDocument(sentence string) (*prose.Document, error) {
	return prose.NewDocument(sentence,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
}

func tokensWithTagPrefix(sentence, prefix string) []string {
	doc, err := taggedDocument(sentence)
	if err != nil {
		return nil
	}
	var out []string
	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, prefix) {
			out = append(out, strings.ToLower(tok.Text))
		}
	}
	return out
}

// TaggerHandle loads a tagging capability asynchronously and hands it
// to the engine once ready. Callers inject the constructor, so tests
// can supply a fake tagger without touching the prose pipeline.
type TaggerHandle struct {
	mu     sync.RWMutex
	tagger Tagger
	done   chan struct{}
}

// NewTaggerHandle starts loading through the given constructor in a
// goroutine. A nil tagger or a load error leaves the handle
// permanently unavailable, which the engine degrades on silently.
func NewTaggerHandle(load func() (Tagger, error)) *TaggerHandle {
	h := &TaggerHandle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		t, err := load()
		if err != nil || t == nil {
			return
		}
		h.mu.Lock()
		h.tagger = t
		h.mu.Unlock()
	}()
	return h
}

// ReadyTaggerHandle wraps an already constructed tagger. Mainly for
// tests and for callers that load synchronously.
func ReadyTaggerHandle(t Tagger) *TaggerHandle {
	h := &TaggerHandle{tagger: t, done: make(chan struct{})}
	close(h.done)
	return h
}

// Tagger returns the loaded capability, or false while unavailable.
func (h *TaggerHandle) Tagger() (Tagger, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tagger, h.tagger != nil
}

// Done is closed once loading finished, successfully or not.
func (h *TaggerHandle) Done() <-chan struct{} {
	return h.done
}
