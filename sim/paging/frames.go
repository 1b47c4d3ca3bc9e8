package paging

// frameQueue holds resident pages in arrival order. The front is the next
// eviction victim. Occupancy only grows until capacity is reached.
type frameQueue struct {
	capacity int
	pages    []int
	resident map[int]bool
}

func newFrameQueue(capacity int) *frameQueue {
	return &frameQueue{
		capacity: capacity,
		pages:    make([]int, 0, capacity),
		resident: make(map[int]bool, capacity),
	}
}

func (q *frameQueue) contains(page int) bool {
	return q.resident[page]
}

func (q *frameQueue) full() bool {
	return len(q.pages) >= q.capacity
}

// load appends page, evicting the front first when the queue is full.
// It returns the evicted page and whether an eviction happened.
func (q *frameQueue) load(page int) (evicted int, replaced bool) {
	if q.full() {
		evicted = q.pages[0]
		q.pages = append(q.pages[:0], q.pages[1:]...)
		delete(q.resident, evicted)
		replaced = true
	}
	q.pages = append(q.pages, page)
	q.resident[page] = true
	return evicted, replaced
}

func (q *frameQueue) snapshot() []int {
	out := make([]int, len(q.pages))
	copy(out, q.pages)
	return out
}
