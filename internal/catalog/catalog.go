package catalog

import (
	"strconv"
	"strings"

	"childscreen-service/internal/domain"
)

// Behavioral factor names. The factor is the aggregation unit for the
// behavioral instrument; item dimension tags are display grouping only.
const (
	FactorConductProblem       = "ConductProblem"
	FactorLearningProblem      = "LearningProblem"
	FactorPsychosomatic        = "Psychosomatic"
	FactorImpulsiveHyperactive = "ImpulsiveHyperactive"
	FactorAnxiety              = "Anxiety"
	FactorHyperactivityIndex   = "HyperactivityIndex"
)

// Sensory dimension names, one per questionnaire section (sections VII and
// VIII each map to their own dimension).
const (
	DimVestibularBalance    = "VestibularBalance"
	DimNeuralInhibition     = "NeuralInhibition"
	DimTactileDefensiveness = "TactileDefensiveness"
	DimMotorPlanning        = "MotorPlanning"
	DimVisualSpatial        = "VisualSpatial"
	DimProprioception       = "Proprioception"
	DimEmotionalSocial      = "EmotionalSocial"
	DimStressResilience     = "StressResilience"
	dimOther                = "Other"
)

// youngRespondentCutoffID marks the first sensory item reserved for
// school-age respondents. Declared age under 6 drops item IDs >= 61.
const youngRespondentCutoffID = 61

// Definition is the static description of one instrument: its ordered item
// list and the fixed option set shared by every item.
type Definition struct {
	Instrument  domain.Instrument
	Title       string
	Description string
	Items       []domain.Item
	Options     []domain.AnswerOption
}

// Get returns the catalog definition for an instrument.
func Get(instrument domain.Instrument) (Definition, error) {
	switch instrument {
	case domain.InstrumentBehavioral:
		return behavioralDefinition, nil
	case domain.InstrumentSensory:
		return sensoryDefinition, nil
	default:
		return Definition{}, domain.ErrUnknownInstrument
	}
}

// ActiveItems returns the item list for one run, applying the age rule:
// for the sensory instrument a parseable declared age below 6 excludes the
// school-age items. Behavioral runs always use the full list. The result
// is always a fresh slice so callers cannot mutate the catalog.
func ActiveItems(instrument domain.Instrument, declaredAge string) ([]domain.Item, error) {
	def, err := Get(instrument)
	if err != nil {
		return nil, err
	}
	if instrument != domain.InstrumentSensory {
		return append([]domain.Item(nil), def.Items...), nil
	}
	age, err := strconv.ParseFloat(strings.TrimSpace(declaredAge), 64)
	if err != nil || age >= 6 {
		return append([]domain.Item(nil), def.Items...), nil
	}
	items := make([]domain.Item, 0, len(def.Items))
	for _, item := range def.Items {
		if item.ID < youngRespondentCutoffID {
			items = append(items, item)
		}
	}
	return items, nil
}

// FactorNames lists behavioral factors in report order.
var FactorNames = []string{
	FactorConductProblem,
	FactorLearningProblem,
	FactorPsychosomatic,
	FactorImpulsiveHyperactive,
	FactorAnxiety,
	FactorHyperactivityIndex,
}

// BehavioralFactors maps each factor to its item IDs. The hyperactivity
// index deliberately overlaps the other factors.
var BehavioralFactors = map[string][]int{
	FactorConductProblem:       {2, 8, 14, 19, 20, 21, 22, 23, 27, 33, 34, 39},
	FactorLearningProblem:      {10, 25, 31, 37},
	FactorPsychosomatic:        {32, 41, 43, 44, 48},
	FactorImpulsiveHyperactive: {4, 5, 11, 13},
	FactorAnxiety:              {12, 16, 24, 47},
	FactorHyperactivityIndex:   {4, 7, 11, 13, 14, 25, 31, 33, 37, 38},
}

var behavioralDefinition = Definition{
	Instrument:  domain.InstrumentBehavioral,
	Title:       "Hyperactivity and Attention Assessment (Conners)",
	Description: "Conners Parent Symptom Questionnaire (48-item version) assessing conduct, learning, psychosomatic, impulsive-hyperactive and anxiety symptoms.",
	Items:       behavioralItems,
	Options: []domain.AnswerOption{
		{Label: "Not at all (0)", Score: 0},
		{Label: "Just a little (1)", Score: 1},
		{Label: "Pretty much (2)", Score: 2},
		{Label: "Very much (3)", Score: 3},
	},
}

var sensoryDefinition = Definition{
	Instrument:  domain.InstrumentSensory,
	Title:       "Sensory Integration Assessment",
	Description: "Evaluates the child's sensory integration development across eight areas (64 items).",
	Items:       sensoryItems,
	Options: []domain.AnswerOption{
		{Label: "Never (1)", Score: 1},
		{Label: "Rarely (2)", Score: 2},
		{Label: "Occasionally (3)", Score: 3},
		{Label: "Often (4)", Score: 4},
		{Label: "Always (5)", Score: 5},
	},
}

var behavioralItems = []domain.Item{
	{ID: 1, Text: "Picks at things (nails, fingers, hair, clothing)", Dimension: dimOther},
	{ID: 2, Text: "Sassy to grown-ups, rude and reckless", Dimension: FactorConductProblem},
	{ID: 3, Text: "Problems getting along with playmates and classmates", Dimension: dimOther},
	{ID: 4, Text: "Excitable, impulsive", Dimension: FactorImpulsiveHyperactive},
	{ID: 5, Text: "Wants to run things, dominates play", Dimension: FactorImpulsiveHyperactive},
	{ID: 6, Text: "Sucks or chews (thumb, clothing, blankets)", Dimension: dimOther},
	{ID: 7, Text: "Cries easily or often", Dimension: dimOther},
	{ID: 8, Text: "Easily provoked, carries a chip on the shoulder", Dimension: FactorConductProblem},
	{ID: 9, Text: "Daydreams", Dimension: dimOther},
	{ID: 10, Text: "Difficulty in learning", Dimension: FactorLearningProblem},
	{ID: 11, Text: "Restless in the squirmy sense", Dimension: FactorImpulsiveHyperactive},
	{ID: 12, Text: "Fearful of new situations, strangers or new places, and afraid of going to school", Dimension: FactorAnxiety},
	{ID: 13, Text: "Restless, always up and on the go", Dimension: FactorImpulsiveHyperactive},
	{ID: 14, Text: "Destructive", Dimension: FactorConductProblem},
	{ID: 15, Text: "Tells lies or stories that are not true", Dimension: dimOther},
	{ID: 16, Text: "Shy", Dimension: FactorAnxiety},
	{ID: 17, Text: "Gets into more trouble than others the same age", Dimension: dimOther},
	{ID: 18, Text: "Speaks differently from others the same age (baby talk, stuttering, hard to understand)", Dimension: dimOther},
	{ID: 19, Text: "Denies mistakes or blames others", Dimension: FactorConductProblem},
	{ID: 20, Text: "Quarrelsome", Dimension: FactorConductProblem},
	{ID: 21, Text: "Pouts and sulks", Dimension: FactorConductProblem},
	{ID: 22, Text: "Sometimes takes money or belongings from parents or others", Dimension: FactorConductProblem},
	{ID: 23, Text: "Disobedient to teachers and parents, or obeys but complains constantly", Dimension: FactorConductProblem},
	{ID: 24, Text: "Worries more than others about being alone, illness or death", Dimension: FactorAnxiety},
	{ID: 25, Text: "Fails to finish things", Dimension: FactorLearningProblem},
	{ID: 26, Text: "Feelings easily hurt", Dimension: dimOther},
	{ID: 27, Text: "Bullies weaker children, throws weight around", Dimension: FactorConductProblem},
	{ID: 28, Text: "Keeps repeating the same activity", Dimension: dimOther},
	{ID: 29, Text: "Cruel", Dimension: dimOther},
	{ID: 30, Text: "Childish or immature (wants help with things done alone, clings to adults, needs constant reassurance)", Dimension: dimOther},
	{ID: 31, Text: "Easily distracted, attention span a problem", Dimension: FactorLearningProblem},
	{ID: 32, Text: "Headaches", Dimension: FactorPsychosomatic},
	{ID: 33, Text: "Mood changes quickly and drastically", Dimension: FactorConductProblem},
	{ID: 34, Text: "Dislikes or refuses to follow rules or accept restrictions", Dimension: FactorConductProblem},
	{ID: 35, Text: "Fights constantly", Dimension: dimOther},
	{ID: 36, Text: "Does not get along well with brothers or sisters", Dimension: dimOther},
	{ID: 37, Text: "Easily frustrated when facing difficulties", Dimension: FactorLearningProblem},
	{ID: 38, Text: "Disturbs other children", Dimension: dimOther},
	{ID: 39, Text: "Basically an unhappy child", Dimension: FactorConductProblem},
	{ID: 40, Text: "Problems with eating (poor appetite, up between bites)", Dimension: dimOther},
	{ID: 41, Text: "Stomach aches", Dimension: FactorPsychosomatic},
	{ID: 42, Text: "Problems with sleep (cannot fall asleep, up too early, up in the night)", Dimension: dimOther},
	{ID: 43, Text: "Frequently complains of aches and pains here and there", Dimension: FactorPsychosomatic},
	{ID: 44, Text: "Frequent vomiting or nausea", Dimension: FactorPsychosomatic},
	{ID: 45, Text: "Feels cheated in the family circle", Dimension: dimOther},
	{ID: 46, Text: "Boasts and brags, talks big", Dimension: dimOther},
	{ID: 47, Text: "Often imagines being threatened", Dimension: FactorAnxiety},
	{ID: 48, Text: "Bowel problems (frequently loose, irregular habits, constipation)", Dimension: FactorPsychosomatic},
}

const (
	sectionVestibular     = "I. Vestibular balance and bilateral integration"
	sectionInhibition     = "II. Neurophysiological inhibition difficulty"
	sectionTactile        = "III. Tactile defensiveness and under-reaction"
	sectionMotor          = "IV. Developmental motor difficulty"
	sectionVisualSpatial  = "V. Visual-spatial form perception"
	sectionProprioception = "VI. Proprioception (gravitational insecurity)"
	sectionEmotional      = "VII. Emotional self-image difficulty"
	sectionStress         = "VIII. Recent strain and stress tolerance"
)

var sensoryItems = []domain.Item{
	{ID: 1, Text: "Loves spinning stools, merry-go-rounds and whirling rides, never gets dizzy", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 2, Text: "Looks normal and healthy with normal intelligence, yet reading or arithmetic is unusually hard", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 3, Text: "Bumps into tables, chairs or people even when they are in plain sight; poor sense of direction and distance", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 4, Text: "Hands or feet coordinate poorly when eating, writing or drumming, often forgetting one side", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 5, Text: "Appears left-handed, uses both hands interchangeably, or has not settled on a preferred hand", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 6, Text: "Clumsy in gross movement, falls easily and does not break the fall with the hands; feels heavy when pulled up", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 7, Text: "Unclear speech, trouble composing sentences or making up stories", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 8, Text: "Eyes tire quickly reading books, yet can watch television for long stretches", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 9, Text: "Lying face down, cannot lift head, neck, chest, arms and legs off the floor (airplane posture)", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 10, Text: "Likes listening to stories but not reading; remembers what is heard, forgets what is seen", Dimension: DimVestibularBalance, Section: sectionVestibular},
	{ID: 11, Text: "Often collides with things walking or running; poor at throwing and catching with peers; trouble with queues and games", Dimension: DimVestibularBalance, Section: sectionVestibular},

	{ID: 12, Text: "Distractible and inattentive, fidgets constantly, or looks around during class", Dimension: DimNeuralInhibition, Section: sectionInhibition},
	{ID: 13, Text: "Picky eating: refuses fruit, soft-skinned foods, meat or eggs; only takes plain rice, milk and the like", Dimension: DimNeuralInhibition, Section: sectionInhibition},
	{ID: 14, Text: "Shy; hides from strangers or nervously wrings clothing, frowns and cannot get words out", Dimension: DimNeuralInhibition, Section: sectionInhibition},
	{ID: 15, Text: "Easily worked up by television or films; jumps and shouts when excited, cannot watch anything scary", Dimension: DimNeuralInhibition, Section: sectionInhibition},
	{ID: 16, Text: "Severely afraid of the dark; needs company in dim places, refuses to go out at night, avoids empty rooms", Dimension: DimNeuralInhibition, Section: sectionInhibition},
	{ID: 17, Text: "Cannot sleep in an unfamiliar bed; a different pillow or blanket spoils sleep; frets about sleeping arrangements when away", Dimension: DimNeuralInhibition, Section: sectionInhibition},
	{ID: 18, Text: "Finds it unpleasant when someone cleans the nose or ears with a cotton swab", Dimension: DimNeuralInhibition, Section: sectionInhibition},
	{ID: 19, Text: "Leans on and clings to family members like a spoiled or pampered child", Dimension: DimNeuralInhibition, Section: sectionInhibition},
	{ID: 20, Text: "Must touch a blanket corner, clothing or a toy to fall asleep, otherwise restless", Dimension: DimNeuralInhibition, Section: sectionInhibition},

	{ID: 21, Text: "Bad tempered, especially toward family; flares up over trifles and argues unreasonably", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 22, Text: "Soon asks to leave, or runs off, in new places or crowds", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 23, Text: "After a minor illness repeatedly says they dislike kindergarten; dreads it for no reason or over small matters", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 24, Text: "Often sucks or licks fingers or bites nails; dislikes having nails trimmed", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 25, Text: "Dislikes the face being touched; face washing, hair washing or haircuts are an ordeal", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 26, Text: "Resents an adult pulling up sleeves or socks, or touching the skin while helping to dress", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 27, Text: "Worries during games or play that someone will sneak up from behind", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 28, Text: "Touches everything constantly, yet avoids the surface of blankets and knitted toys", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 29, Text: "Prefers loose long-sleeved clothes; seldom wears sweaters or jackets even when not cold", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 30, Text: "Happy to chat or interact without contact, but will not put an arm around friends or touch skin", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 31, Text: "Sensitive to certain fabrics; dislikes clothes made from them", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 32, Text: "Touchy about their own affairs, easily upset, cannot tolerate a change of plan or outcome", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 33, Text: "Complains endlessly about trivial bruises, bumps and small cuts, finding them very painful", Dimension: DimTactileDefensiveness, Section: sectionTactile},
	{ID: 34, Text: "Stubborn and uncooperative; insists on doing things their own way, inflexible", Dimension: DimTactileDefensiveness, Section: sectionTactile},

	{ID: 35, Text: "At three or four still cannot wash hands or wipe after the toilet unaided", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 36, Text: "At three or four still cannot use chopsticks, keeps eating with a spoon, cannot hold a pen", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 37, Text: "At four or five cannot manage large play equipment for climbing up, down or through", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 38, Text: "At five or six cannot stand and pump a swing, climb a rope net or shinny a pole", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 39, Text: "Always very slow, or unable, at pulling socks and clothes on and off, buttoning and tying laces", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 40, Text: "After starting school still cannot bathe alone; hopping and rope skipping come out poorly and cannot be learned", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 41, Text: "After starting school handwriting, cut-and-paste work and coloring are poor or very slow", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 42, Text: "Regularly makes a mess at the table; tidying the desk or toys on request is a struggle", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 43, Text: "Clumsy at handicrafts and chores; grip and tool use are awkward", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 44, Text: "Sluggish and unenthusiastic in movement; works very inefficiently", Dimension: DimMotorPlanning, Section: sectionMotor},
	{ID: 45, Text: "Always in mishaps, tipping plates, spilling milk or falling off vehicles; needs special watching", Dimension: DimMotorPlanning, Section: sectionMotor},

	{ID: 46, Text: "Played with building blocks worse than peers when small", Dimension: DimVisualSpatial, Section: sectionVisualSpatial},
	{ID: 47, Text: "Often fails to reach the destination on outings, gets lost easily, dislikes unfamiliar places", Dimension: DimVisualSpatial, Section: sectionVisualSpatial},
	{ID: 48, Text: "Poor at crayon coloring and pencil writing, slower than others, often strays outside outlines or grid squares", Dimension: DimVisualSpatial, Section: sectionVisualSpatial},
	{ID: 49, Text: "Worse than peers at jigsaw puzzles; trouble telling models or patterns apart", Dimension: DimVisualSpatial, Section: sectionVisualSpatial},
	{ID: 50, Text: "Cannot easily pick out a particular figure from a busy background", Dimension: DimVisualSpatial, Section: sectionVisualSpatial},

	{ID: 51, Text: "Withdrawn, dislikes going out to play, few friends, quiet; prefers solitude or helping at home", Dimension: DimProprioception, Section: sectionProprioception},
	{ID: 52, Text: "Hesitates at stairs and crossings; feels top-heavy up high, dares not look around or move", Dimension: DimProprioception, Section: sectionProprioception},
	{ID: 53, Text: "When lifted, anxiously reaches for the ground with the feet; cooperates calmly only with a trusted helper", Dimension: DimProprioception, Section: sectionProprioception},
	{ID: 54, Text: "Avoids jumping from high to low; visibly frightened of heights or any risk of falling", Dimension: DimProprioception, Section: sectionProprioception},
	{ID: 55, Text: "Dislikes being upside down; avoids somersaults, rolling or indoor rough-housing", Dimension: DimProprioception, Section: sectionProprioception},
	{ID: 56, Text: "Uninterested in playground rides, dislikes moving toys", Dimension: DimProprioception, Section: sectionProprioception},
	{ID: 57, Text: "Slow with unusual transitions such as boarding vehicles, moving front seat to back or walking uneven ground", Dimension: DimProprioception, Section: sectionProprioception},
	{ID: 58, Text: "Very slow on stairs, gripping the handrail tightly; avoids even simple climbs with good handholds", Dimension: DimProprioception, Section: sectionProprioception},
	{ID: 59, Text: "Loses balance easily when spinning; a fast corner in a moving car is terrifying", Dimension: DimProprioception, Section: sectionProprioception},
	{ID: 60, Text: "Dislikes walking on raised surfaces, complains or feels it is too high", Dimension: DimProprioception, Section: sectionProprioception},

	{ID: 61, Text: "Grades slump suddenly, seems dazed, very easily distracted when studying, frequent emotional and behavioral problems", Dimension: DimEmotionalSocial, Section: sectionEmotional},
	{ID: 62, Text: "Hot tempered with poor self-control; fighting, swearing and similar behavior growing worse", Dimension: DimEmotionalSocial, Section: sectionEmotional},

	{ID: 63, Text: "Often cannot bear the demands of teachers, schoolwork or surroundings; easily frustrated", Dimension: DimStressResilience, Section: sectionStress},
	{ID: 64, Text: "Poor self-image, believes they are worthless, leading to emotional and behavioral problems", Dimension: DimStressResilience, Section: sectionStress},
}
