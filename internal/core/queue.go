package core

// ReadyQueue is an array-backed FIFO of process ids. It grows by doubling
// and never shrinks.
type ReadyQueue struct {
	items []int
	head  int
	size  int
}

func NewReadyQueue(capacity int) *ReadyQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &ReadyQueue{items: make([]int, capacity)}
}

func (q *ReadyQueue) Push(id int) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)%len(q.items)] = id
	q.size++
}

// Pop removes and returns the head of the queue. It panics on an empty queue.
func (q *ReadyQueue) Pop() int {
	if q.size == 0 {
		panic("core: pop from empty ready queue")
	}
	id := q.items[q.head]
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return id
}

func (q *ReadyQueue) Empty() bool {
	return q.size == 0
}

func (q *ReadyQueue) grow() {
	items := make([]int, 2*len(q.items))
	for i := 0; i < q.size; i++ {
		items[i] = q.items[(q.head+i)%len(q.items)]
	}
	q.items = items
	q.head = 0
}
