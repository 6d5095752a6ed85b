package sim

// Passenger is created on arrival and leaves the simulation on boarding.
type Passenger struct {
	ID            int // sequential from 1 within a run
	ArrivalMinute int // minute the passenger joined the queue
}

// BoardingEvent records one passenger boarding one bus.
type BoardingEvent struct {
	Run            int    `json:"run"`
	PassengerID    int    `json:"passenger_id"`
	ArrivalMinute  int    `json:"arrival_minute"`
	BoardingMinute int    `json:"boarding_minute"`
	WaitMinutes    int    `json:"wait_minutes"`
	BusID          int    `json:"bus_id"`
	ArrivalTime    string `json:"arrival_time"`  // HH:MM wall-clock of ArrivalMinute
	BoardingTime   string `json:"boarding_time"` // HH:MM wall-clock of BoardingMinute
}

// RunSummary holds the scalar statistics of one completed run.
type RunSummary struct {
	Run              int     `json:"run"`
	AvgWaitTime      float64 `json:"avg_wait_time"`
	AvgQueueLength   float64 `json:"avg_queue_length"`
	TotalArrivals    int     `json:"total_arrivals"`
	ServedPassengers int     `json:"served_passengers"`
	Utilization      float64 `json:"utilization"`
	ProbBusFull      float64 `json:"prob_bus_full"`

	Unserved     int `json:"unserved"`       // still queued when the run ended
	BusCount     int `json:"bus_count"`      // buses that arrived
	FullBusCount int `json:"full_bus_count"` // buses that left at capacity
}
