package calc

// DefaultHistoryCapacity is the number of records kept before the oldest is evicted
const DefaultHistoryCapacity = 25

// Entry is a completed operation recorded in the history
type Entry struct {
	ID         string  `json:"id"`
	Expression string  `json:"expression"`
	Result     string  `json:"result"`
	Value      float64 `json:"value"`
	Timestamp  string  `json:"timestamp"`
}

// History is a fixed-capacity ring of entries. Pushing onto a full ring
// overwrites the oldest entry.
type History struct {
	entries []Entry
	next    int
	size    int
}

// NewHistory creates an empty history holding at most capacity entries
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		entries: make([]Entry, capacity),
	}
}

// Push records entry as the most recent one
func (h *History) Push(entry Entry) {
	h.entries[h.next] = entry
	h.next = (h.next + 1) % len(h.entries)
	if h.size < len(h.entries) {
		h.size++
	}
}

// Len returns the number of entries held
func (h *History) Len() int {
	return h.size
}

// Cap returns the maximum number of entries held
func (h *History) Cap() int {
	return len(h.entries)
}

// At returns the i-th most recent entry, 0 being the newest
func (h *History) At(i int) (Entry, bool) {
	if i < 0 || i >= h.size {
		return Entry{}, false
	}
	idx := (h.next - 1 - i + len(h.entries)) % len(h.entries)
	return h.entries[idx], true
}

// Entries returns a copy of the entries, newest first
func (h *History) Entries() []Entry {
	out := make([]Entry, 0, h.size)
	for i := 0; i < h.size; i++ {
		entry, _ := h.At(i)
		out = append(out, entry)
	}
	return out
}

// Find returns the entry with the given ID
func (h *History) Find(id string) (Entry, bool) {
	for i := 0; i < h.size; i++ {
		if entry, _ := h.At(i); entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}

// Clear removes every entry
func (h *History) Clear() {
	clear(h.entries)
	h.next = 0
	h.size = 0
}
