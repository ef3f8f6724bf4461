package app

import (
	"childscreen-service/internal/catalog"
	"childscreen-service/internal/domain"
	"childscreen-service/internal/scoring"
)

// AssessmentService exposes the instrument catalogs and the scoring
// pipeline to the transports. It holds no state: the catalogs are
// process-wide constants and scoring is pure.
type AssessmentService struct{}

func NewAssessmentService() *AssessmentService {
	return &AssessmentService{}
}

// Definition returns the full static catalog for an instrument.
func (s *AssessmentService) Definition(instrument domain.Instrument) (catalog.Definition, error) {
	return catalog.Get(instrument)
}

// ActiveItems returns the item list for one run, with the sensory
// under-6 age rule applied.
func (s *AssessmentService) ActiveItems(instrument domain.Instrument, declaredAge string) ([]domain.Item, error) {
	return catalog.ActiveItems(instrument, declaredAge)
}

// Score runs the scoring pipeline over a completed answer set. The
// declared age reconstructs the same active item list the quiz ran with,
// so filtered-out items can never leak into a raw sum.
func (s *AssessmentService) Score(instrument domain.Instrument, declaredAge string, answers domain.AnswerSet) (domain.ScoreResult, error) {
	items, err := catalog.ActiveItems(instrument, declaredAge)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	return scoring.Score(instrument, items, answers), nil
}

// Describe returns the interpretation prose for a dimension, or the
// overall summary for catalog.OverallSummary.
func (s *AssessmentService) Describe(instrument domain.Instrument, dimension string) string {
	return catalog.SymptomDescription(instrument, dimension)
}
