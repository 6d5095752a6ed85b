// Implements the PassengerQueue, which holds everyone waiting at the stop.
// Passengers are enqueued on arrival and leave only by boarding.

package sim

import (
	"fmt"
	"strings"
)

// PassengerQueue is the FIFO line of passengers waiting for a bus.
// Order is arrival order; within one minute, ascending passenger ID.
type PassengerQueue struct {
	queue []Passenger
}

// Enqueue adds a passenger to the back of the line.
func (pq *PassengerQueue) Enqueue(p Passenger) {
	pq.queue = append(pq.queue, p)
}

func (pq *PassengerQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range pq.queue {
		sb.WriteString(fmt.Sprintf("%d@%d", p.ID, p.ArrivalMinute))
		if i < len(pq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of waiting passengers.
func (pq *PassengerQueue) Len() int {
	return len(pq.queue)
}

// Peek returns the passenger at the front without removing it.
// The boolean is false when the queue is empty.
func (pq *PassengerQueue) Peek() (Passenger, bool) {
	if len(pq.queue) == 0 {
		return Passenger{}, false
	}
	return pq.queue[0], true
}

// Items returns the queue contents front to back.
// The returned slice is the queue's internal storage: callers MUST NOT
// append to or reslice it.
func (pq *PassengerQueue) Items() []Passenger {
	return pq.queue
}

// Dequeue removes and returns the passenger at the front.
// The boolean is false when the queue is empty.
func (pq *PassengerQueue) Dequeue() (Passenger, bool) {
	if len(pq.queue) == 0 {
		return Passenger{}, false
	}
	p := pq.queue[0]
	pq.queue = pq.queue[1:]
	return p, true
}
