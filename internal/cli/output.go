package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/services/scoring"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []Entry:
		o.printEntries(v)
	case Entry:
		o.printEntry(v)
	case StandingResult:
		o.printStanding(v)
	case StatsResult:
		o.printStats(v)
	case HealthResult:
		o.printHealthResult(v)
	case DBStatusResult:
		o.printDBStatus(v)
	case []model.LeaderboardRow:
		o.printRows(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Entry response type (matches API)
type Entry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Score        int       `json:"score"`
	FinishedTime int       `json:"finishedTime"`
	Time         int       `json:"time"`
	Rank         int       `json:"rank"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubmitRequest is the submit body
type SubmitRequest struct {
	Name         string `json:"name"`
	Score        int    `json:"score"`
	FinishedTime int    `json:"finishedTime"`
}

// StandingResult response type
type StandingResult struct {
	Name         string `json:"name"`
	Rank         int    `json:"rank"`
	Score        int    `json:"score"`
	FinishedTime int    `json:"finishedTime"`
	TotalPlayers int    `json:"totalPlayers"`
}

// StatsResult response type
type StatsResult struct {
	TotalEntries int `json:"totalEntries"`
	TotalPlayers int `json:"totalPlayers"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// DBStatusResult response type
type DBStatusResult struct {
	ReadyState int `json:"readyState"`
}

func (o *Output) printEntries(entries []Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries.")
		return
	}

	fmt.Printf("%-5s %-40s %8s %8s\n", "Rank", "Name", "Score", "Time")
	for _, e := range entries {
		fmt.Printf("%-5d %-40s %8d %8s\n", e.Rank, e.Name, e.Score, scoring.FormatTime(e.FinishedTime))
	}
}

func (o *Output) printEntry(e Entry) {
	fmt.Printf("Entry: %s\n", e.ID)
	fmt.Printf("Name: %s\n", e.Name)
	fmt.Printf("Score: %d\n", e.Score)
	fmt.Printf("Time: %s\n", scoring.FormatTime(e.FinishedTime))
	fmt.Printf("Rank: %d\n", e.Rank)
}

func (o *Output) printStanding(s StandingResult) {
	fmt.Printf("Player: %s\n", s.Name)
	fmt.Printf("Rank: %d of %d players\n", s.Rank, s.TotalPlayers)
	fmt.Printf("Best Score: %d\n", s.Score)
	fmt.Printf("Time: %s\n", scoring.FormatTime(s.FinishedTime))
}

func (o *Output) printStats(s StatsResult) {
	fmt.Printf("Entries: %d\n", s.TotalEntries)
	fmt.Printf("Players: %d\n", s.TotalPlayers)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func (o *Output) printDBStatus(d DBStatusResult) {
	stateStr := "disconnected"
	if d.ReadyState == 1 {
		stateStr = "connected"
	}
	fmt.Printf("Ready State: %d (%s)\n", d.ReadyState, stateStr)
}

func (o *Output) printRows(rows []model.LeaderboardRow) {
	if len(rows) == 0 {
		fmt.Println("No scores yet.")
		return
	}

	fmt.Printf("%-3s %-40s %8s %8s\n", "#", "Name", "Best", "Time")
	for i, r := range rows {
		fmt.Printf("%-3d %-40s %8d %8s\n", i+1, r.Name, r.BestScore, scoring.FormatTime(r.BestTime))
	}
}
