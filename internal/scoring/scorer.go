package scoring

import (
	"log"
	"math"

	"childscreen-service/internal/catalog"
	"childscreen-service/internal/domain"
)

// Score turns a completed answer set into the final result. The item list
// must already be age-filtered (catalog.ActiveItems); the scorer never
// re-applies the age rule.
func Score(instrument domain.Instrument, items []domain.Item, answers domain.AnswerSet) domain.ScoreResult {
	if instrument == domain.InstrumentBehavioral {
		return scoreBehavioral(answers)
	}
	return scoreSensory(items, answers)
}

// scoreBehavioral computes factor means over answered items only. The
// headline score is the hyperactivity index mean, not an all-factor average.
func scoreBehavioral(answers domain.AnswerSet) domain.ScoreResult {
	result := domain.ScoreResult{
		DimensionScores: make(map[string]float64, len(catalog.FactorNames)),
		DimensionLevels: make(map[string]domain.SeverityLevel, len(catalog.FactorNames)),
	}

	for _, factor := range catalog.FactorNames {
		mean := factorMean(catalog.BehavioralFactors[factor], answers)
		result.DimensionScores[factor] = mean
		result.DimensionLevels[factor] = Classify(domain.InstrumentBehavioral, mean, factor)
	}

	result.TotalScore = result.DimensionScores[catalog.FactorHyperactivityIndex]
	result.TotalLevel = Classify(domain.InstrumentBehavioral, result.TotalScore, catalog.FactorHyperactivityIndex)
	return result
}

// factorMean averages the answered items of a factor, rounded to two
// decimals. Unanswered items are excluded from both sum and count; a factor
// with nothing answered scores 0.
func factorMean(itemIDs []int, answers domain.AnswerSet) float64 {
	sum, count := 0, 0
	for _, id := range itemIDs {
		if score, ok := answers[id]; ok {
			sum += score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*100) / 100
}

// scoreSensory sums raw scores per dimension (unanswered items count as 0),
// converts each sum to a T-score, and averages the T-scores for the total
// so the aggregate stays on the same scale as the per-dimension values.
func scoreSensory(items []domain.Item, answers domain.AnswerSet) domain.ScoreResult {
	result := domain.ScoreResult{
		DimensionScores:    make(map[string]float64),
		DimensionRawScores: make(map[string]int),
		DimensionLevels:    make(map[string]domain.SeverityLevel),
	}

	for _, item := range items {
		result.DimensionRawScores[item.Dimension] += answers[item.ID]
	}

	tScoreSum := 0
	for dimension, raw := range result.DimensionRawScores {
		if !HasTable(dimension) {
			log.Printf("no standardization table for dimension %q, using neutral score", dimension)
		}
		tScore := Standardize(dimension, raw)
		result.DimensionScores[dimension] = float64(tScore)
		result.DimensionLevels[dimension] = Classify(domain.InstrumentSensory, float64(tScore), dimension)
		tScoreSum += tScore
	}

	if n := len(result.DimensionScores); n > 0 {
		result.TotalScore = math.Round(float64(tScoreSum) / float64(n))
	}
	result.TotalLevel = Classify(domain.InstrumentSensory, result.TotalScore, "")
	return result
}
