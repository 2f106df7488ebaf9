package tree

import "container/list"

// Queue is the double-ended leaf work queue. The tree pushes freshly added
// nodes; an external consumer pops from either end. The tree itself never
// dequeues, so the queue may reference nodes that later gain children or
// get soft-deleted.
type Queue struct {
	l *list.List
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{l: list.New()}
}

// PushFront adds a node at the front.
func (q *Queue) PushFront(n *Node) { q.l.PushFront(n) }

// PushBack adds a node at the back.
func (q *Queue) PushBack(n *Node) { q.l.PushBack(n) }

// PushFrontAll adds nodes at the front, preserving their order among
// themselves: the first node of the batch becomes the queue's new front.
func (q *Queue) PushFrontAll(nodes []*Node) {
	for i := len(nodes) - 1; i >= 0; i-- {
		q.l.PushFront(nodes[i])
	}
}

// PushBackAll adds nodes at the back, preserving their order.
func (q *Queue) PushBackAll(nodes []*Node) {
	for _, n := range nodes {
		q.l.PushBack(n)
	}
}

// PopFront removes and returns the front node. ok is false when empty.
func (q *Queue) PopFront() (*Node, bool) {
	e := q.l.Front()
	if e == nil {
		return nil, false
	}
	q.l.Remove(e)
	return e.Value.(*Node), true
}

// PopBack removes and returns the back node. ok is false when empty.
func (q *Queue) PopBack() (*Node, bool) {
	e := q.l.Back()
	if e == nil {
		return nil, false
	}
	q.l.Remove(e)
	return e.Value.(*Node), true
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int { return q.l.Len() }

// Nodes returns a front-to-back snapshot of the queue.
func (q *Queue) Nodes() []*Node {
	nodes := make([]*Node, 0, q.l.Len())
	for e := q.l.Front(); e != nil; e = e.Next() {
		nodes = append(nodes, e.Value.(*Node))
	}
	return nodes
}
