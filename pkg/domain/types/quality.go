package types

import "fmt"

// QualityLabel represents the 3-way classification of a check-in
type QualityLabel string

const (
	QualityStrong QualityLabel = "Strong"
	QualityMedium QualityLabel = "Medium"
	QualityWeak   QualityLabel = "Weak"
)

// AllQualityLabels returns all valid quality labels
func AllQualityLabels() []QualityLabel {
	return []QualityLabel{
		QualityStrong,
		QualityMedium,
		QualityWeak,
	}
}

// IsValid checks if the quality label is valid
func (q QualityLabel) IsValid() bool {
	switch q {
	case QualityStrong,
		QualityMedium,
		QualityWeak:
		return true
	default:
		return false
	}
}

// Weight returns the numeric weight used for window-level aggregation.
// Strong=3, Medium=2, Weak=1.
func (q QualityLabel) Weight() float64 {
	switch q {
	case QualityStrong:
		return 3
	case QualityMedium:
		return 2
	default:
		return 1
	}
}

// String returns the string representation of the quality label
func (q QualityLabel) String() string {
	return string(q)
}

// ParseQualityLabel parses a string into a QualityLabel
func ParseQualityLabel(s string) (QualityLabel, error) {
	label := QualityLabel(s)
	if !label.IsValid() {
		return "", fmt.Errorf("invalid quality label: %s", s)
	}
	return label, nil
}
