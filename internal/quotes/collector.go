package quotes

// Collector accumulates quote texts gathered across scroll cycles,
// dropping duplicates. The scroll feed re-renders earlier entries, so
// scripts add everything currently visible and rely on the collector
// to keep each text at most once, in first-seen order.
type Collector struct {
	seen  map[string]bool
	texts []string
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]bool)}
}

// Add records a quote text. It returns true if the text had not been
// seen before.
func (c *Collector) Add(text string) bool {
	if c.seen[text] {
		return false
	}
	c.seen[text] = true
	c.texts = append(c.texts, text)
	return true
}

// AddAll records every text in the slice and returns how many of them
// were new.
func (c *Collector) AddAll(texts []string) int {
	added := 0
	for _, t := range texts {
		if c.Add(t) {
			added++
		}
	}
	return added
}

// Len returns the number of distinct texts collected so far.
func (c *Collector) Len() int {
	return len(c.texts)
}

// Texts returns the collected texts in the order they were first seen.
func (c *Collector) Texts() []string {
	out := make([]string, len(c.texts))
	copy(out, c.texts)
	return out
}
