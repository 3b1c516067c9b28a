package bake

// jobQueue is an owning FIFO of Jobs backed by a slice. It is an internal
// primitive: callers must hold the pool's mutex around every operation.
type jobQueue struct {
	items []Job
	head  int
}

func newJobQueue(capacity int) jobQueue {
	return jobQueue{items: make([]Job, 0, capacity)}
}

func (q *jobQueue) empty() bool { return q.head == len(q.items) }

func (q *jobQueue) len() int { return len(q.items) - q.head }

// push appends a job at the tail.
func (q *jobQueue) push(j Job) {
	q.items = append(q.items, j)
}

// pop removes and returns the job at the head. Calling pop on an empty queue
// panics; the pool's worker loop never does.
func (q *jobQueue) pop() Job {
	j := q.items[q.head]
	q.items[q.head] = Job{} // release closure references
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 64 && q.head > len(q.items)/2 {
		// Slide the live region down so the consumed prefix can be reclaimed.
		n := copy(q.items, q.items[q.head:])
		for i := n; i < len(q.items); i++ {
			q.items[i] = Job{}
		}
		q.items = q.items[:n]
		q.head = 0
	}
	return j
}

// takeAll removes and returns every queued job in FIFO order, leaving the
// queue empty.
func (q *jobQueue) takeAll() []Job {
	if q.empty() {
		return nil
	}
	remaining := make([]Job, q.len())
	copy(remaining, q.items[q.head:])
	for i := range q.items {
		q.items[i] = Job{}
	}
	q.items = q.items[:0]
	q.head = 0
	return remaining
}
