package board

// AddListener registers fn to receive every effect produced by Move,
// in production order. Listeners run synchronously in registration order
// and must not call Move on the grid they observe.
func (g *Grid[T]) AddListener(fn Listener[T]) {
	if fn == nil {
		return
	}
	g.listeners = append(g.listeners, fn)
}

// notify delivers e to every listener.
func (g *Grid[T]) notify(e Effect[T]) {
	for _, fn := range g.listeners {
		fn(e)
	}
}
