package cache

import (
	"sync"

	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/morpheme"
)

var acceptState = &morpheme.State{Name: "TEST_TERMINAL", Accepting: true}

// parsed returns a one-element result list for word.
func parsed(word string) []*morpheme.Container {
	root := lexicon.NewSyntheticRoot(word, lexicon.Noun, lexicon.SecondaryNone, 0)
	return []*morpheme.Container{morpheme.NewContainer(root, word, word, acceptState)}
}

type parserMock struct {
	ParseFunc    func(input string) []*morpheme.Container
	ParseAllFunc func(inputs []string) [][]*morpheme.Container

	mu      sync.Mutex
	inputs  []string
	batches [][]string
}

func newParserMock() *parserMock {
	return &parserMock{}
}

func (m *parserMock) Parse(input string) []*morpheme.Container {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.ParseFunc != nil {
		return m.ParseFunc(input)
	}
	return parsed(input)
}

func (m *parserMock) ParseAll(inputs []string) [][]*morpheme.Container {
	m.mu.Lock()
	m.batches = append(m.batches, append([]string(nil), inputs...))
	m.mu.Unlock()

	if m.ParseAllFunc != nil {
		return m.ParseAllFunc(inputs)
	}
	out := make([][]*morpheme.Container, len(inputs))
	for i, in := range inputs {
		out[i] = parsed(in)
	}
	return out
}

func (m *parserMock) parseCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.inputs...)
}

func (m *parserMock) parseAllCalls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.batches...)
}

// cacheMock is an unbounded map tier that records bulk writes.
type cacheMock struct {
	mu      sync.Mutex
	items   map[string][]*morpheme.Container
	putAlls []int
	builds  int
	built   bool
}

func newCacheMock() *cacheMock {
	return &cacheMock{items: make(map[string][]*morpheme.Container)}
}

func (m *cacheMock) Get(input string) ([]*morpheme.Container, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[input]
	return r, ok
}

func (m *cacheMock) Put(input string, results []*morpheme.Container) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[input] = results
}

func (m *cacheMock) PutAll(entries map[string][]*morpheme.Container) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putAlls = append(m.putAlls, len(entries))
	for k, v := range entries {
		m.items[k] = v
	}
}

func (m *cacheMock) Build(Parser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.builds++
	m.built = true
	return nil
}

func (m *cacheMock) Built() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.built
}

func (m *cacheMock) putAllSizes() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.putAlls...)
}
