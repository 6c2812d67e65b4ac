package ports

/*
TextScorer measures how close a candidate command is to the text the
user originally typed. Similarity is normalized to [0.0, 1.0] with 1.0
meaning identical; the ranking stage multiplies it with the rule
priority weight.
*/
type TextScorer interface {
	Similarity(a, b string) float64
}
