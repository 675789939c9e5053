package glimpse

// eventQueue collects the events produced by platform callbacks
// until the loop hands them to the EventHandler.
type eventQueue struct {
	events []Event

	// a redraw was requested and not yet delivered
	redraw bool
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) requestRedraw() {
	q.redraw = true
}

// redrawPending reports whether the loop should poll instead of
// blocking for the next platform event.
func (q *eventQueue) redrawPending() bool {
	return q.redraw
}

// drain delivers all queued events in order, followed by a single
// RedrawRequested if one was requested. Events queued by the handler
// itself are delivered within the same drain. Delivery stops as soon
// as the handler exits the loop.
func (q *eventQueue) drain(ctl *Control, handler EventHandler) {
	for len(q.events) > 0 && !ctl.Exiting() {
		ev := q.events[0]
		q.events = q.events[1:]
		handler(ctl, ev)
	}

	if ctl.Exiting() {
		q.events = nil
		return
	}

	if q.redraw {
		// clear before delivery, the handler may request the next frame
		q.redraw = false
		handler(ctl, RedrawRequested{})
	}
}
