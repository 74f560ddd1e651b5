// ABOUTME: Interactive collaborator contract used to resolve ambiguous decisions
// ABOUTME: Implemented by the terminal UI and by scripted prompters in tests

package catalog

// Prompter asks the user to settle decisions the matchers cannot make alone.
// Every call blocks until answered; an error aborts the scan.
type Prompter interface {
	// Confirm asks a yes/no question, def is used when the user just presses enter
	Confirm(prompt string, def bool) (bool, error)
	// Choose returns the index of the picked option. With autoSelectSingle
	// a single option is returned without asking.
	Choose(options []string, prompt string, autoSelectSingle bool) (int, error)
	// RequestText asks for a line of free text
	RequestText(prompt string) (string, error)
	// Preview opens the file for listening, best effort
	Preview(path string)
}
