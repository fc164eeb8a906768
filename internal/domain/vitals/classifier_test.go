package vitals

import "testing"

func normalReading() Reading {
	return Reading{Pulse: 80, Systolic: 120, Diastolic: 80, Temperature: 37.0, SpO2: 98}
}

func labelFor(t *testing.T, res Result, metric string) MetricLabel {
	t.Helper()
	for _, l := range res.Labels {
		if l.Metric == metric {
			return l
		}
	}
	t.Fatalf("no label for metric %q", metric)
	return MetricLabel{}
}

func TestClassifyPulseBoundaries(t *testing.T) {
	tests := []struct {
		pulse int
		want  Severity
	}{
		{59, SeverityLow},
		{60, SeverityNormal},
		{100, SeverityNormal},
		{101, SeverityHigh},
	}

	for _, tt := range tests {
		r := normalReading()
		r.Pulse = tt.pulse
		got := labelFor(t, Classify(r), "pulse")
		if got.Severity != tt.want {
			t.Errorf("pulse=%d: severity = %q, want %q", tt.pulse, got.Severity, tt.want)
		}
	}
}

func TestClassifyBloodPressureJoint(t *testing.T) {
	tests := []struct {
		systolic, diastolic int
		want                Severity
	}{
		{141, 80, SeverityHigh},
		{120, 91, SeverityHigh},
		{89, 70, SeverityLow},
		{120, 59, SeverityLow},
		{120, 80, SeverityNormal},
	}

	for _, tt := range tests {
		r := normalReading()
		r.Systolic = tt.systolic
		r.Diastolic = tt.diastolic
		res := Classify(r)
		got := labelFor(t, res, "blood_pressure")
		if got.Severity != tt.want {
			t.Errorf("bp=%d/%d: severity = %q, want %q", tt.systolic, tt.diastolic, got.Severity, tt.want)
		}
	}
}

func TestClassifyBloodPressureCountsOnce(t *testing.T) {
	// Both sub-conditions fire (high systolic, high diastolic): one unit.
	r := normalReading()
	r.Systolic = 150
	r.Diastolic = 95
	res := Classify(r)
	if res.AbnormalCount != 1 {
		t.Errorf("abnormalCount = %d, want 1", res.AbnormalCount)
	}
}

func TestClassifyAllNormal(t *testing.T) {
	r := Reading{Pulse: 100, Systolic: 120, Diastolic: 80, Temperature: 37.0, SpO2: 98}
	res := Classify(r)
	if res.AbnormalCount != 0 {
		t.Errorf("abnormalCount = %d, want 0", res.AbnormalCount)
	}
	if res.Summary != SummaryNormal {
		t.Errorf("summary = %q, want %q", res.Summary, SummaryNormal)
	}
}

func TestClassifyAllAbnormal(t *testing.T) {
	r := Reading{Pulse: 110, Systolic: 150, Diastolic: 95, Temperature: 38.0, SpO2: 90}
	res := Classify(r)
	if res.AbnormalCount != 4 {
		t.Errorf("abnormalCount = %d, want 4", res.AbnormalCount)
	}
	if res.Summary != SummaryMajorAbnormal {
		t.Errorf("summary = %q, want %q", res.Summary, SummaryMajorAbnormal)
	}
}

func TestClassifySummaryThresholds(t *testing.T) {
	tests := []struct {
		name    string
		reading Reading
		want    Summary
	}{
		{"zero abnormal", normalReading(), SummaryNormal},
		{"one abnormal", Reading{Pulse: 55, Systolic: 120, Diastolic: 80, Temperature: 37.0, SpO2: 98}, SummaryMinorAbnormal},
		{"two abnormal", Reading{Pulse: 55, Systolic: 150, Diastolic: 80, Temperature: 37.0, SpO2: 98}, SummaryMinorAbnormal},
		{"three abnormal", Reading{Pulse: 55, Systolic: 150, Diastolic: 80, Temperature: 38.2, SpO2: 98}, SummaryMajorAbnormal},
	}

	for _, tt := range tests {
		res := Classify(tt.reading)
		if res.Summary != tt.want {
			t.Errorf("%s: summary = %q, want %q", tt.name, res.Summary, tt.want)
		}
	}
}

func TestClassifySpO2HasNoHighCategory(t *testing.T) {
	r := normalReading()
	r.SpO2 = 100
	got := labelFor(t, Classify(r), "spo2")
	if got.Severity != SeverityNormal {
		t.Errorf("spo2=100: severity = %q, want %q", got.Severity, SeverityNormal)
	}
}

func TestDetailsLineOrder(t *testing.T) {
	res := Classify(normalReading())
	if len(res.Labels) != 4 {
		t.Fatalf("labels = %d, want 4", len(res.Labels))
	}
	order := []string{"pulse", "blood_pressure", "temperature", "spo2"}
	for i, metric := range order {
		if res.Labels[i].Metric != metric {
			t.Errorf("labels[%d].Metric = %q, want %q", i, res.Labels[i].Metric, metric)
		}
	}
	if res.Details() == "" {
		t.Error("Details() returned empty string")
	}
}
