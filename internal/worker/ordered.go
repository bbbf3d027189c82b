package worker

// InOrder reads results until the channel closes and hands them to emit
// in Index order, starting at 0. Results arriving early are held back until
// every lower index has been emitted. If emit returns false, InOrder keeps
// draining the channel but emits nothing more.
//
// Indices must be unique and contiguous; results past a gap are never
// emitted.
func InOrder(results <-chan ProcessResult, emit func(ProcessResult) bool) {
	pending := make(map[int]ProcessResult)
	next := 0
	open := true

	for result := range results {
		if !open {
			continue
		}
		pending[result.Index] = result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if !emit(r) {
				open = false
				break
			}
		}
	}
}
