// Package report folds one evaluation batch into the fixed-field NDJSON
// record emitted per model-bearing artifact group. It performs no scoring
// logic of its own.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"modelscore/internal/metric"
)

// Record is one output line. Field order is part of the output contract.
type Record struct {
	Name                     string  `json:"name"`
	Category                 string  `json:"category"`
	NetScore                 float64 `json:"net_score"`
	NetScoreLatency          int64   `json:"net_score_latency"`
	RampUpTime               float64 `json:"ramp_up_time"`
	RampUpTimeLatency        int64   `json:"ramp_up_time_latency"`
	BusFactor                float64 `json:"bus_factor"`
	BusFactorLatency         int64   `json:"bus_factor_latency"`
	PerformanceClaims        float64 `json:"performance_claims"`
	PerformanceClaimsLatency int64   `json:"performance_claims_latency"`
	License                  float64 `json:"license"`
	LicenseLatency           int64   `json:"license_latency"`
	SizeScore                float64 `json:"size_score"`
	SizeScoreLatency         int64   `json:"size_score_latency"`
	DatasetAndCodeScore      float64 `json:"dataset_and_code_score"`
	DatasetAndCodeLatency    int64   `json:"dataset_and_code_score_latency"`
	DatasetQuality           float64 `json:"dataset_quality"`
	DatasetQualityLatency    int64   `json:"dataset_quality_latency"`
	CodeQuality              float64 `json:"code_quality"`
	CodeQualityLatency       int64   `json:"code_quality_latency"`
}

// Build assembles a Record from one batch. Metrics absent from the report
// (unselected by the task list) stay at their zero values; the net score
// carries the batch wall-clock latency, matching the parallel execution
// model.
func Build(name, category string, rep metric.Report, netScore float64, aggregate time.Duration) Record {
	rec := Record{
		Name:            name,
		Category:        strings.ToUpper(category),
		NetScore:        netScore,
		NetScoreLatency: millis(aggregate),
	}
	if r, ok := rep["ramp_up_time"]; ok {
		rec.RampUpTime, rec.RampUpTimeLatency = r.Score, millis(r.Latency)
	}
	if r, ok := rep["bus_factor"]; ok {
		rec.BusFactor, rec.BusFactorLatency = r.Score, millis(r.Latency)
	}
	if r, ok := rep["performance_claims"]; ok {
		rec.PerformanceClaims, rec.PerformanceClaimsLatency = r.Score, millis(r.Latency)
	}
	if r, ok := rep["license"]; ok {
		rec.License, rec.LicenseLatency = r.Score, millis(r.Latency)
	}
	if r, ok := rep["size_score"]; ok {
		rec.SizeScore, rec.SizeScoreLatency = r.Score, millis(r.Latency)
	}
	if r, ok := rep["dataset_and_code"]; ok {
		rec.DatasetAndCodeScore, rec.DatasetAndCodeLatency = r.Score, millis(r.Latency)
	}
	if r, ok := rep["dataset_quality"]; ok {
		rec.DatasetQuality, rec.DatasetQualityLatency = r.Score, millis(r.Latency)
	}
	if r, ok := rep["code_quality"]; ok {
		rec.CodeQuality, rec.CodeQualityLatency = r.Score, millis(r.Latency)
	}
	return rec
}

// millis converts a latency to whole milliseconds for output.
func millis(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return d.Milliseconds()
}

// Writer emits one JSON line per record. Writes are serialized so records
// from interleaved callers stay whole lines.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Writer emitting to w (typically stdout).
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write serializes one record followed by a newline.
func (wr *Writer) Write(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("report: marshal record for %s: %w", rec.Name, err)
	}
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if _, err := wr.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("report: write record for %s: %w", rec.Name, err)
	}
	return nil
}
