// ABOUTME: Tri-state classification shared by the song and edition matchers
// ABOUTME: Exact, Near or NoMatch, never a nullable boolean

package catalog

// Match is the outcome of comparing a record's identity fields to an incoming file
type Match int

const (
	NoMatch Match = iota // Some field scores at or below the threshold
	Near                 // Not identical, but every field is above the threshold
	Exact                // Every compared field is literally equal
)

// String returns the name of the match band
func (m Match) String() string {
	switch m {
	case Exact:
		return "exact"
	case Near:
		return "near"
	default:
		return "no match"
	}
}
