// internal/manifest/manifest.go

// Package manifest records one pipeline run as a small JSON document so
// downstream notebooks can trace where a candidate table came from.
package manifest

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"tpsrank/internal/jsonutil"
	"tpsrank/internal/version"
)

// Manifest is the stable on-disk run record.
type Manifest struct {
	RunID       string    `json:"run_id"`
	Tool        string    `json:"tool"`
	Version     string    `json:"version"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	DurationSec float64   `json:"duration_sec"`

	Inputs Inputs `json:"inputs"`
	Counts Counts `json:"counts"`

	Distances *DistanceStats `json:"distance_stats,omitempty"`
	Top       *TopCandidate  `json:"top_candidate,omitempty"`
}

// Inputs names the files a run consumed. Empty fields are omitted.
type Inputs struct {
	Tree           string `json:"tree,omitempty"`
	Characterized  string `json:"characterized,omitempty"`
	Classification string `json:"classification,omitempty"`
	Architecture   string `json:"architecture,omitempty"`
	Proteins       string `json:"proteins,omitempty"`
	Candidates     string `json:"candidates,omitempty"`
}

type Counts struct {
	Terminals       int `json:"terminals"`
	Characterized   int `json:"characterized"`
	Uncharacterized int `json:"uncharacterized"`
	Partitions      int `json:"partitions"`
	Candidates      int `json:"candidates"`
}

type DistanceStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

type TopCandidate struct {
	ID         string  `json:"id"`
	TotalScore float64 `json:"total_score"`
}

// New starts a manifest for one tool run.
func New(tool string) *Manifest {
	return &Manifest{
		RunID:     uuid.NewString(),
		Tool:      tool,
		Version:   version.Version,
		StartedAt: time.Now().UTC(),
	}
}

// SetDistances fills the distance summary. No distances leaves it absent.
func (m *Manifest) SetDistances(ds []float64) {
	if len(ds) == 0 {
		m.Distances = nil
		return
	}
	sd := 0.0
	if len(ds) > 1 {
		sd = stat.StdDev(ds, nil)
	}
	m.Distances = &DistanceStats{
		Min:    floats.Min(ds),
		Max:    floats.Max(ds),
		Mean:   stat.Mean(ds, nil),
		StdDev: sd,
	}
}

// Finish stamps the end time and duration.
func (m *Manifest) Finish() {
	m.FinishedAt = time.Now().UTC()
	m.DurationSec = m.FinishedAt.Sub(m.StartedAt).Seconds()
}

// Encode writes the manifest as indented JSON.
func (m *Manifest) Encode(w io.Writer) error {
	return jsonutil.EncodePretty(w, m)
}

// WriteFile finishes the manifest and writes it to path.
func (m *Manifest) WriteFile(path string) error {
	m.Finish()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
