package model

// Vote is one nearest-reference match considered during classification.
// Ephemeral: produced per query, consumed by the voting aggregator.
type Vote struct {
	Label      Label
	Similarity float64
}

// LabelWeight is one entry of a classification result's vote breakdown.
type LabelWeight struct {
	Label  Label
	Weight float64
}

// Result is the outcome of classifying a single task description.
type Result struct {
	Label      Label
	Confidence float64       // 0..1, fraction of total vote weight won by Label
	Votes      []Vote        // the raw top-K votes, similarity descending
	Breakdown  []LabelWeight // per-label summed weight, descending
}
