package engine

import "math/rand"

// Bag is the 7-bag randomizer: every run of seven consecutive draws
// aligned to a refill contains each kind exactly once.
type Bag struct {
	rng     *rand.Rand
	pending []Kind
}

// NewBag creates a bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next removes and returns the front kind, refilling with a fresh
// permutation when empty.
func (b *Bag) Next() Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	return k
}

// Remaining returns how many kinds are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.pending)
}

func (b *Bag) refill() {
	b.pending = append(b.pending[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.pending), func(i, j int) {
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	})
}

// Queue is the preview queue, kept at a fixed length by pulling from a Bag.
type Queue struct {
	bag   *Bag
	kinds []Kind
	size  int
}

// NewQueue creates a queue of the given length, filled from bag.
func NewQueue(bag *Bag, size int) *Queue {
	q := &Queue{bag: bag, size: size}
	q.fill()
	return q
}

// Pop removes the head kind and refills the tail.
func (q *Queue) Pop() Kind {
	k := q.kinds[0]
	q.kinds = q.kinds[1:]
	q.fill()
	return k
}

// Peek returns a copy of the upcoming kinds, head first.
func (q *Queue) Peek() []Kind {
	out := make([]Kind, len(q.kinds))
	copy(out, q.kinds)
	return out
}

// Len returns the queue length.
func (q *Queue) Len() int {
	return len(q.kinds)
}

func (q *Queue) fill() {
	for len(q.kinds) < q.size {
		q.kinds = append(q.kinds, q.bag.Next())
	}
}
