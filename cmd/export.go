package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/busstop-sim/busstop-sim/sim"
	"github.com/busstop-sim/busstop-sim/sim/assess"
	"github.com/busstop-sim/busstop-sim/sim/stats"
)

// Report is the JSON document written to report.json.
type Report struct {
	DurationMinutes    int               `json:"duration_minutes"`
	NumRuns            int               `json:"num_runs"`
	ArrivalRate        float64           `json:"arrival_rate"`
	BusIntervalMinutes int               `json:"bus_interval_minutes"`
	BusCapacity        int               `json:"bus_capacity"`
	StartTime          string            `json:"start_time"`
	Seed               int64             `json:"seed"`
	Aggregate          *stats.Aggregate  `json:"aggregate"`
	Assessment         assess.Assessment `json:"assessment"`
}

// WriteOutputs exports the run-set tables into dir:
// summary.csv, events.csv, queue_matrix.csv, queue_band.csv and report.json.
func WriteOutputs(dir string, res *sim.Results, band *stats.Band, agg *stats.Aggregate, a assess.Assessment) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	writers := []struct {
		name  string
		write func(*csv.Writer) error
	}{
		{"summary.csv", func(w *csv.Writer) error { return writeSummaries(w, res.Summaries) }},
		{"events.csv", func(w *csv.Writer) error { return writeEvents(w, res.Events) }},
		{"queue_matrix.csv", func(w *csv.Writer) error { return writeMatrix(w, res.QueueLengths) }},
		{"queue_band.csv", func(w *csv.Writer) error { return writeBand(w, res.Config.StartTimeOfDay, band) }},
	}
	for _, wr := range writers {
		if err := writeCSVFile(filepath.Join(dir, wr.name), wr.write); err != nil {
			return err
		}
	}

	cfg := res.Config
	report := Report{
		DurationMinutes:    cfg.DurationMinutes,
		NumRuns:            cfg.NumRuns,
		ArrivalRate:        cfg.ArrivalRate,
		BusIntervalMinutes: cfg.BusIntervalMinutes,
		BusCapacity:        cfg.BusCapacity,
		StartTime:          cfg.StartTimeOfDay.String(),
		Seed:               cfg.Seed,
		Aggregate:          agg,
		Assessment:         a,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "report.json"), data, 0o644); err != nil {
		return fmt.Errorf("writing report.json: %w", err)
	}
	return nil
}

func writeCSVFile(path string, write func(*csv.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Errorf("Error closing file %s: %v", path, closeErr)
		}
	}()

	w := csv.NewWriter(file)
	if err := write(w); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote to '%s'", path)
	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeSummaries(w *csv.Writer, rows []sim.RunSummary) error {
	if err := w.Write([]string{"run", "avg_wait_time", "avg_queue_length", "total_arrivals",
		"served_passengers", "utilization", "prob_bus_full", "unserved", "bus_count", "full_bus_count"}); err != nil {
		return err
	}
	for _, s := range rows {
		rec := []string{
			strconv.Itoa(s.Run), ftoa(s.AvgWaitTime), ftoa(s.AvgQueueLength),
			strconv.Itoa(s.TotalArrivals), strconv.Itoa(s.ServedPassengers),
			ftoa(s.Utilization), ftoa(s.ProbBusFull),
			strconv.Itoa(s.Unserved), strconv.Itoa(s.BusCount), strconv.Itoa(s.FullBusCount),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeEvents(w *csv.Writer, events []sim.BoardingEvent) error {
	if err := w.Write([]string{"run", "passenger_id", "arrival_minute", "arrival_time",
		"boarding_minute", "boarding_time", "wait_minutes", "bus_id"}); err != nil {
		return err
	}
	for _, e := range events {
		rec := []string{
			strconv.Itoa(e.Run), strconv.Itoa(e.PassengerID),
			strconv.Itoa(e.ArrivalMinute), e.ArrivalTime,
			strconv.Itoa(e.BoardingMinute), e.BoardingTime,
			strconv.Itoa(e.WaitMinutes), strconv.Itoa(e.BusID),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeMatrix writes one row per run; column headers are minutes 1..N.
func writeMatrix(w *csv.Writer, m *sim.QueueLengthMatrix) error {
	runs, minutes := m.Dims()
	header := make([]string, minutes+1)
	header[0] = "run"
	for c := 0; c < minutes; c++ {
		header[c+1] = strconv.Itoa(c + 1)
	}
	if err := w.Write(header); err != nil {
		return err
	}
	rec := make([]string, minutes+1)
	for r := 0; r < runs; r++ {
		rec[0] = strconv.Itoa(r + 1)
		for c, v := range m.Row(r) {
			rec[c+1] = ftoa(v)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeBand(w *csv.Writer, start sim.TimeOfDay, b *stats.Band) error {
	if err := w.Write([]string{"minute", "time", "mean", "std_dev", "ci_lower", "ci_upper"}); err != nil {
		return err
	}
	for i := range b.Mean {
		rec := []string{
			strconv.Itoa(i + 1), sim.MinuteToWallclock(start, i+1),
			ftoa(b.Mean[i]), ftoa(b.StdDev[i]), ftoa(b.Lower[i]), ftoa(b.Upper[i]),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
