package vote

// Direction is the side of a ballot a member votes on.
type Direction string

const (
	// Up is a vote in favour of a suggestion.
	Up Direction = "up"
	// Down is a vote against a suggestion.
	Down Direction = "down"
)

// Ballot holds the two vote sets of a suggestion. Methods never mutate the
// receiver; they return the next state. A member id is present in at most one
// of the two sets.
type Ballot struct {
	Upvotes   []string
	Downvotes []string
}

// Toggle applies one button press. Pressing the side the member already voted
// on retracts that vote; pressing the other side moves the vote, so a member
// is never counted twice. Pressing the same side twice in a row returns to
// the pre-vote state.
func (b Ballot) Toggle(member string, dir Direction) Ballot {
	voted, other := b.Upvotes, b.Downvotes
	if dir == Down {
		voted, other = b.Downvotes, b.Upvotes
	}

	if contains(voted, member) {
		voted = remove(voted, member)
	} else {
		voted = append(copySet(voted), member)
		other = remove(other, member)
	}

	if dir == Down {
		return Ballot{Upvotes: other, Downvotes: voted}
	}
	return Ballot{Upvotes: voted, Downvotes: other}
}

// Score is the net vote count. It is always recomputed from the sets and
// never persisted on its own.
func (b Ballot) Score() int {
	return len(b.Upvotes) - len(b.Downvotes)
}

// Counts returns the up and down vote counts.
func (b Ballot) Counts() (up, down int) {
	return len(b.Upvotes), len(b.Downvotes)
}

func contains(set []string, member string) bool {
	for _, m := range set {
		if m == member {
			return true
		}
	}
	return false
}

func remove(set []string, member string) []string {
	next := make([]string, 0, len(set))
	for _, m := range set {
		if m != member {
			next = append(next, m)
		}
	}
	return next
}

func copySet(set []string) []string {
	next := make([]string, len(set))
	copy(next, set)
	return next
}
