package aurora

// CallbackHandle removes a registered callback. The zero value is valid and
// does nothing. Remove may be called any number of times, including from
// inside the callback it removes.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

// joinHandles returns a handle that removes every handle in hs.
func joinHandles(hs ...CallbackHandle) CallbackHandle {
	return CallbackHandle{remove: func() {
		for _, h := range hs {
			h.Remove()
		}
	}}
}

type handler[T any] struct {
	id uint32
	fn func(T)
}

// handlerList is an ordered callback registry. Removal replaces the backing
// slice instead of shifting it in place, so a dispatch already in progress
// keeps iterating a consistent snapshot.
type handlerList[T any] struct {
	items    []handler[T]
	nextID   uint32
	removals uint32
}

func (l *handlerList[T]) add(fn func(T)) CallbackHandle {
	if fn == nil {
		return CallbackHandle{}
	}
	l.nextID++
	id := l.nextID
	l.items = append(l.items, handler[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { l.remove(id) }}
}

func (l *handlerList[T]) remove(id uint32) {
	for i := range l.items {
		if l.items[i].id != id {
			continue
		}
		next := make([]handler[T], 0, len(l.items)-1)
		next = append(next, l.items[:i]...)
		l.items = append(next, l.items[i+1:]...)
		l.removals++
		return
	}
}

func (l *handlerList[T]) has(id uint32) bool {
	for i := range l.items {
		if l.items[i].id == id {
			return true
		}
	}
	return false
}

func (l *handlerList[T]) emit(v T) {
	items := l.items
	removals := l.removals
	for i := range items {
		// Skip handlers removed earlier in this same dispatch.
		if l.removals != removals && !l.has(items[i].id) {
			continue
		}
		items[i].fn(v)
	}
}

func (l *handlerList[T]) len() int {
	return len(l.items)
}
