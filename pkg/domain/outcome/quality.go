// Package outcome defines the persisted learning-signal record: one entry
// per completed task describing the quality of feedback it received.
package outcome

// Quality classifies the feedback received on a completed task.
type Quality string

const (
	QualityCorrection Quality = "correction"
	QualityEdit       Quality = "edit"
	QualityPraise     Quality = "praise"
	QualitySilence    Quality = "silence"
	QualityUnknown    Quality = "unknown"
)

// Qualities is the closed set of accepted quality values.
var Qualities = []Quality{
	QualityCorrection,
	QualityEdit,
	QualityPraise,
	QualitySilence,
	QualityUnknown,
}

// ParseQuality checks a raw string against the closed set.
func ParseQuality(s string) (Quality, error) {
	for _, q := range Qualities {
		if Quality(s) == q {
			return q, nil
		}
	}
	return "", &QualityError{Value: s}
}
