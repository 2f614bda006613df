package domain

// AnswerScale holds the global normalization constants derived from every
// raw answer in the corpus. It is computed once and never changes for the
// lifetime of an engine.
type AnswerScale struct {
	// Min is the smallest raw answer observed in the corpus.
	Min float64 `json:"min"`

	// Max is the largest raw answer observed in the corpus.
	Max float64 `json:"max"`

	// Neutral is the midpoint of the scale, (Min+Max)/2.
	Neutral float64 `json:"neutral"`

	// MinScore is Min-Neutral and is never positive.
	MinScore float64 `json:"min_score"`

	// MaxScore is Max-Neutral and is never negative.
	MaxScore float64 `json:"max_score"`
}

// NewAnswerScale derives the scale constants from the observed bounds.
func NewAnswerScale(minAnswer, maxAnswer float64) AnswerScale {
	neutral := (minAnswer + maxAnswer) * 0.5
	return AnswerScale{
		Min:      minAnswer,
		Max:      maxAnswer,
		Neutral:  neutral,
		MinScore: minAnswer - neutral,
		MaxScore: maxAnswer - neutral,
	}
}

// Score converts a raw answer into a signed answer score relative to the
// neutral point.
func (s AnswerScale) Score(raw float64) float64 { return raw - s.Neutral }

// Raw converts an answer score back into the raw answer value.
func (s AnswerScale) Raw(score float64) float64 { return score + s.Neutral }

// Width returns MaxScore-MinScore.
func (s AnswerScale) Width() float64 { return s.MaxScore - s.MinScore }
