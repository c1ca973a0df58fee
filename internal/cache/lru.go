package cache

// lruNode links one key into the recency list.
type lruNode[K comparable] struct {
	key  K
	prev *lruNode[K]
	next *lruNode[K]
}

// lruList orders keys by recency: head is newest, tail is oldest.
// Not safe for concurrent use.
type lruList[K comparable] struct {
	head *lruNode[K]
	tail *lruNode[K]
	len  int
}

func newLRUList[K comparable]() *lruList[K] {
	return &lruList[K]{}
}

// Len returns the number of linked keys.
func (l *lruList[K]) Len() int {
	return l.len
}

// PushFront links key as the newest entry.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	n := &lruNode[K]{key: key}
	l.linkFront(n)
	return n
}

// MoveToFront marks n as the newest entry.
func (l *lruList[K]) MoveToFront(n *lruNode[K]) {
	if n == nil || n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// Remove unlinks n.
func (l *lruList[K]) Remove(n *lruNode[K]) {
	if n != nil {
		l.unlink(n)
	}
}

// RemoveOldest unlinks the tail and returns its key.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	n := l.tail
	l.unlink(n)
	return n.key, true
}

// Oldest returns the tail key without unlinking it.
func (l *lruList[K]) Oldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	return l.tail.key, true
}

// Clear drops every node.
func (l *lruList[K]) Clear() {
	l.head, l.tail, l.len = nil, nil, 0
}

func (l *lruList[K]) linkFront(n *lruNode[K]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *lruList[K]) unlink(n *lruNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
