package scoring

import "childscreen-service/internal/domain"

// Classify maps a score to its severity tier. For the behavioral instrument
// the score is a factor mean on the 0-3 scale and higher means worse; for
// the sensory instrument it is a T-score and higher means better. The
// dimension argument is accepted for interface symmetry but no dimension
// currently carries its own thresholds.
func Classify(instrument domain.Instrument, score float64, _ string) domain.SeverityLevel {
	if instrument == domain.InstrumentBehavioral {
		switch {
		case score < 1.5:
			return domain.SeverityNormal
		case score < 2.0:
			return domain.SeverityMild
		case score < 2.5:
			return domain.SeverityModerate
		default:
			return domain.SeveritySevere
		}
	}
	switch {
	case score >= 50:
		return domain.SeverityNormal
	case score >= 40:
		return domain.SeverityMild
	case score >= 30:
		return domain.SeverityModerate
	default:
		return domain.SeveritySevere
	}
}
