package types_test

import (
	"testing"

	"github.com/secmon-lab/pulse/pkg/domain/types"
)

func TestQualityLabelIsValid(t *testing.T) {
	tests := []struct {
		label    types.QualityLabel
		expected bool
	}{
		{types.QualityStrong, true},
		{types.QualityMedium, true},
		{types.QualityWeak, true},
		{types.QualityLabel(""), false},
		{types.QualityLabel("strong"), false},
		{types.QualityLabel("Excellent"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			if got := tt.label.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestQualityLabelWeight(t *testing.T) {
	tests := []struct {
		label    types.QualityLabel
		expected float64
	}{
		{types.QualityStrong, 3},
		{types.QualityMedium, 2},
		{types.QualityWeak, 1},
		{types.QualityLabel(""), 1},
	}

	for _, tt := range tests {
		if got := tt.label.Weight(); got != tt.expected {
			t.Errorf("Weight(%q) = %v, want %v", tt.label, got, tt.expected)
		}
	}
}

func TestParseQualityLabel(t *testing.T) {
	label, err := types.ParseQualityLabel("Strong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != types.QualityStrong {
		t.Errorf("label = %v, want %v", label, types.QualityStrong)
	}

	if _, err := types.ParseQualityLabel("weak"); err == nil {
		t.Error("expected error for lowercase label")
	}
}

func TestParseTimeframeType(t *testing.T) {
	for _, tf := range types.AllTimeframeTypes() {
		parsed, err := types.ParseTimeframeType(tf.String())
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tf, err)
		}
		if parsed != tf {
			t.Errorf("parsed = %v, want %v", parsed, tf)
		}
	}

	if _, err := types.ParseTimeframeType("yearly"); err == nil {
		t.Error("expected error for unsupported timeframe")
	}
}
