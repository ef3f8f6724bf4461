package domain

// Instrument identifies one of the two fixed questionnaires.
type Instrument string

const (
	// InstrumentBehavioral is the 48-item Conners parent symptom questionnaire.
	InstrumentBehavioral Instrument = "BEHAVIORAL"
	// InstrumentSensory is the 64-item sensory integration inventory.
	InstrumentSensory Instrument = "SENSORY"
)

// Valid reports whether the instrument is one of the two known questionnaires.
func (i Instrument) Valid() bool {
	return i == InstrumentBehavioral || i == InstrumentSensory
}

// SeverityLevel is the ordered outcome tier of a score.
type SeverityLevel string

const (
	SeverityNormal   SeverityLevel = "NORMAL"
	SeverityMild     SeverityLevel = "MILD"
	SeverityModerate SeverityLevel = "MODERATE"
	SeveritySevere   SeverityLevel = "SEVERE"
)

// Rank orders tiers from least to most severe.
func (l SeverityLevel) Rank() int {
	switch l {
	case SeverityNormal:
		return 0
	case SeverityMild:
		return 1
	case SeverityModerate:
		return 2
	default:
		return 3
	}
}

// AnswerOption is one selectable answer shared by every item of an instrument.
type AnswerOption struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Item is a single questionnaire item. Dimension groups items for
// aggregation; Section is a display-only sub-heading (sensory only).
type Item struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Dimension string `json:"dimension"`
	Section   string `json:"section,omitempty"`
}

// AnswerSet maps item ID to the selected option's score. Keys exist only
// for items the respondent actually answered.
type AnswerSet map[int]int

// ScoreResult is the immutable outcome of one completed submission.
// DimensionScores holds factor means for the behavioral instrument and
// T-scores for the sensory one; DimensionRawScores is sensory-only.
type ScoreResult struct {
	DimensionScores    map[string]float64       `json:"dimensionScores"`
	DimensionRawScores map[string]int           `json:"dimensionRawScores,omitempty"`
	TotalScore         float64                  `json:"totalScore"`
	DimensionLevels    map[string]SeverityLevel `json:"dimensionLevels"`
	TotalLevel         SeverityLevel            `json:"totalLevel"`
}

// CredentialRecord is one entry of the deterministic access-card set.
// Instrument is the card's affinity; for the administrator it is a default
// that validation bypasses.
type CredentialRecord struct {
	AccountID  string     `json:"accountId"`
	Secret     string     `json:"secret"`
	Instrument Instrument `json:"instrument"`
	IsAdmin    bool       `json:"isAdmin"`
}

// LoginResult reports a successful credential check.
type LoginResult struct {
	AccountID  string     `json:"accountId"`
	Instrument Instrument `json:"instrument"`
	IsAdmin    bool       `json:"isAdmin"`
}
