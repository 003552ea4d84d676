// Package manifest parses the flat artifact manifest into ordered groups
// and resolves the model/dataset hosting URLs each group carries.
package manifest

// Identity is the canonical identity of a hosted model or dataset,
// extracted from its URL.
type Identity struct {
	Namespace string
	Repo      string
	Revision  string
}

// CodeRef is a raw link to a code repository. It is consumed verbatim
// downstream (clone target, presence check) and never decomposed.
type CodeRef struct {
	Link string
}

// DatasetRef is a dataset link plus the identifier resolved from it:
// the trailing repo name for model-host datasets, the full URL for
// code-host datasets.
type DatasetRef struct {
	Link string
	Name string
}

// ModelRef is a model link plus its resolved identity.
type ModelRef struct {
	Link     string
	Identity Identity
}

// Group is one manifest line: an optional code link, dataset link and
// model link describing a single evaluation subject. A group without a
// model carries nothing scorable and is skipped by the evaluator.
type Group struct {
	Code    *CodeRef
	Dataset *DatasetRef
	Model   *ModelRef
}
