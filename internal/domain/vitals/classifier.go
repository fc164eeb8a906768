package vitals

import (
	"fmt"
	"strings"
)

// Severity of a single metric reading
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityNormal Severity = "normal"
	SeverityHigh   Severity = "high"
)

// Summary is the overall label for a set of readings
type Summary string

const (
	SummaryNormal        Summary = "normal"
	SummaryMinorAbnormal Summary = "minor_abnormal"
	SummaryMajorAbnormal Summary = "major_abnormal"
)

// Reading holds one set of vital-sign measurements
type Reading struct {
	Pulse       int
	Systolic    int
	Diastolic   int
	Temperature float64
	SpO2        int
}

// MetricLabel is the classification of a single metric
type MetricLabel struct {
	Metric   string
	Severity Severity
	Text     string
}

// Result is the full classification of a reading
type Result struct {
	Labels        []MetricLabel
	AbnormalCount int
	Summary       Summary
}

// Details joins the per-metric lines for persistence alongside the reading.
func (r Result) Details() string {
	lines := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		lines[i] = l.Text
	}
	return strings.Join(lines, "\n")
}

// Classify applies the threshold rules to a reading. Each metric contributes
// at most one abnormal unit; blood pressure is evaluated jointly so both
// sub-conditions firing still count once. Pure computation: the caller
// persists the result at insert time, and stored history is never
// reclassified when thresholds change.
func Classify(r Reading) Result {
	var labels []MetricLabel
	abnormal := 0

	pulse := MetricLabel{Metric: "pulse", Severity: SeverityNormal}
	switch {
	case r.Pulse < 60:
		pulse.Severity = SeverityLow
		pulse.Text = fmt.Sprintf("pulse %d bpm: low (slow heart rate)", r.Pulse)
	case r.Pulse > 100:
		pulse.Severity = SeverityHigh
		pulse.Text = fmt.Sprintf("pulse %d bpm: high (fast heart rate)", r.Pulse)
	default:
		pulse.Text = fmt.Sprintf("pulse %d bpm: normal (60-100 bpm)", r.Pulse)
	}
	if pulse.Severity != SeverityNormal {
		abnormal++
	}
	labels = append(labels, pulse)

	bp := MetricLabel{Metric: "blood_pressure", Severity: SeverityNormal}
	switch {
	case r.Systolic > 140 || r.Diastolic > 90:
		bp.Severity = SeverityHigh
		bp.Text = fmt.Sprintf("blood pressure %d/%d: high", r.Systolic, r.Diastolic)
	case r.Systolic < 90 || r.Diastolic < 60:
		bp.Severity = SeverityLow
		bp.Text = fmt.Sprintf("blood pressure %d/%d: low", r.Systolic, r.Diastolic)
	default:
		bp.Text = fmt.Sprintf("blood pressure %d/%d: normal", r.Systolic, r.Diastolic)
	}
	if bp.Severity != SeverityNormal {
		abnormal++
	}
	labels = append(labels, bp)

	temp := MetricLabel{Metric: "temperature", Severity: SeverityNormal}
	switch {
	case r.Temperature > 37.5:
		temp.Severity = SeverityHigh
		temp.Text = fmt.Sprintf("temperature %.1f C: high (possible fever)", r.Temperature)
	case r.Temperature < 36.0:
		temp.Severity = SeverityLow
		temp.Text = fmt.Sprintf("temperature %.1f C: low", r.Temperature)
	default:
		temp.Text = fmt.Sprintf("temperature %.1f C: normal (36.0-37.5 C)", r.Temperature)
	}
	if temp.Severity != SeverityNormal {
		abnormal++
	}
	labels = append(labels, temp)

	// SpO2 has no high category
	spo2 := MetricLabel{Metric: "spo2", Severity: SeverityNormal}
	if r.SpO2 < 95 {
		spo2.Severity = SeverityLow
		spo2.Text = fmt.Sprintf("SpO2 %d%%: low (possible oxygen deficiency)", r.SpO2)
		abnormal++
	} else {
		spo2.Text = fmt.Sprintf("SpO2 %d%%: normal (>=95%%)", r.SpO2)
	}
	labels = append(labels, spo2)

	summary := SummaryNormal
	switch {
	case abnormal >= 3:
		summary = SummaryMajorAbnormal
	case abnormal >= 1:
		summary = SummaryMinorAbnormal
	}

	return Result{
		Labels:        labels,
		AbnormalCount: abnormal,
		Summary:       summary,
	}
}
