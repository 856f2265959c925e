package hotkeys

// listenKeydown calls fn for every event on keydown until done is closed or
// keydown is closed. An event racing with done is dropped.
func listenKeydown[T any](keydown <-chan T, done <-chan struct{}, fn func()) {
	for {
		select {
		case <-done:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			fn()
		}
	}
}
