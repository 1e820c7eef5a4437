package resolve

import "github.com/xscribe/xscribe/internal/model"

// Outcome tags a selection result
type Outcome string

const (
	// OutcomeResolved means exactly one entry was chosen
	OutcomeResolved Outcome = "Resolved"

	// OutcomeListed means the run terminates by printing the entry listing
	OutcomeListed Outcome = "Listed"
)

// Selection is the outcome of choosing among probed entries
type Selection struct {
	Outcome Outcome
	Entry   *model.ProbedEntry  // set when Outcome is Resolved
	Entries []model.ProbedEntry // set when Outcome is Listed, probe order
}

// Resolve picks exactly one entry or decides to list them. explicitIndex is
// 1-based; zero means no index was given. Decision table, in order:
//
//	no entries            -> ErrNoMedia
//	one entry             -> Resolved, regardless of flags
//	many + listOnly       -> Listed (listing wins over an explicit index)
//	many + explicitIndex  -> Resolved if in range, IndexOutOfRangeError if not
//	many, no flags        -> AmbiguousError
//
// There is deliberately no branch that defaults to the first entry.
func Resolve(entries []model.ProbedEntry, listOnly bool, explicitIndex int) (Selection, error) {
	switch len(entries) {
	case 0:
		return Selection{}, model.ErrNoMedia
	case 1:
		return Selection{Outcome: OutcomeResolved, Entry: &entries[0]}, nil
	}

	if listOnly {
		return Selection{Outcome: OutcomeListed, Entries: entries}, nil
	}

	if explicitIndex != 0 {
		if explicitIndex < 1 || explicitIndex > len(entries) {
			return Selection{}, &model.IndexOutOfRangeError{Index: explicitIndex, Max: len(entries)}
		}
		return Selection{Outcome: OutcomeResolved, Entry: &entries[explicitIndex-1]}, nil
	}

	return Selection{}, &model.AmbiguousError{Count: len(entries)}
}
