package model

// TaskExample is a curated example task description with its known label.
// Sourced from the static task taxonomy; used to build reference embeddings
// and the fallback keyword index.
type TaskExample struct {
	Category    string
	Subcategory string
	Text        string
}

// Label identifies a task type as a (category, subcategory) pair.
type Label struct {
	Category    string
	Subcategory string
}

func (l Label) String() string {
	return l.Category + "/" + l.Subcategory
}
