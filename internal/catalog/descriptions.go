package catalog

import "childscreen-service/internal/domain"

// OverallSummary is the sentinel dimension name requesting the
// whole-assessment summary text instead of a per-dimension one.
const OverallSummary = "ALL"

// SymptomDescription returns the interpretation prose for a dimension of an
// instrument. Unrecognized dimensions (including the OverallSummary
// sentinel) fall through to the instrument's general summary text.
func SymptomDescription(instrument domain.Instrument, dimension string) string {
	if instrument == domain.InstrumentBehavioral {
		if text, ok := behavioralDescriptions[dimension]; ok {
			return text
		}
		return "The score on this dimension suggests some behavioral deviation in this area; observe and guide the child in concrete situations."
	}
	if text, ok := sensoryDescriptions[dimension]; ok {
		return text
	}
	return "Multiple signs of sensory integration difficulty are present: the brain is not processing sensory information effectively, leading to problems with emotion, focus and motor coordination."
}

var behavioralDescriptions = map[string]string{
	FactorConductProblem:       "Defies authority, throws tantrums, lies, and shows aggressive behavior such as fighting or breaking things; has trouble following social rules or group discipline.",
	FactorLearningProblem:      "Attention drifts in class, homework goes unfinished, grades are unstable; struggles to persist with mentally demanding tasks and may feel defeated.",
	FactorPsychosomatic:        "Frequently complains of physical discomfort such as headaches or stomach aches, especially under pressure or facing difficult tasks, possibly with anxiety-driven physical reactions.",
	FactorImpulsiveHyperactive: "Restless and unable to wait quietly, frequently interrupts others, acts without weighing consequences, gets worked up easily and has weak self-control.",
	FactorAnxiety:              "Excessive worry, shyness and sensitivity; fear of new surroundings or strangers, a shaky sense of security, possibly with compulsive behavior.",
	FactorHyperactivityIndex:   "Reflects the core symptoms of hyperactivity disorder overall. A high score usually calls for further professional clinical evaluation.",
}

var sensoryDescriptions = map[string]string{
	DimVestibularBalance:    "Vestibular imbalance: restless and inattentive, loves spinning without getting dizzy (or the opposite, unusually prone to dizziness), falls easily when walking, poor sense of direction, skips lines and drops characters when reading.",
	DimNeuralInhibition:     "Neural inhibition difficulty: low self-confidence, shy and timid, afraid of the dark, clingy, adapts poorly to unfamiliar surroundings; swings quickly between excitement and low spirits.",
	DimTactileDefensiveness: "Tactile over-defensiveness: overreacts to touch, dislikes being touched, picky about food and about clothing textures, emotionally unstable and quick to anger.",
	DimMotorPlanning:        "Developmental motor difficulty: poor large and fine muscle development, clumsy movement, slow to learn new motor skills such as tying laces, handling chopsticks or skipping rope; weak self-care skills.",
	DimVisualSpatial:        "Visual-spatial perception difficulty: weak visual discrimination, trouble with spatial play such as puzzles and blocks; writing strays out of the grid, radicals get reversed, character recognition is hard.",
	DimProprioception:       "Proprioceptive insecurity: extreme fear of heights and motion, avoids playground rides, tense on stairs; stiff movement, and the poor sense of bodily control can turn into social withdrawal.",
	DimEmotionalSocial:      "Emotional and social difficulty: at school age shows clearly poor emotional control, irritability, fighting and swearing, or absent-mindedness and inability to concentrate.",
	DimStressResilience:     "Stress tolerance and frustration: low self-evaluation, feels inferior to others, gives up or resists when facing difficulty, and needs extra encouragement.",
}
