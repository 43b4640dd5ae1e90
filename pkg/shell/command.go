package shell

// Command is a named shell builtin. Implementations describe
// themselves (usage, signature, search terms, examples) and execute
// through Run with everything they need carried by the Invocation.
type Command interface {
	// Name is the word the command is invoked by.
	Name() string

	// Usage is the one-line description shown in help listings.
	Usage() string

	// SearchTerms are alternative words help matches the command by.
	SearchTerms() []string

	// Signature declares the positional arguments and switches Run
	// expects.
	Signature() Signature

	// Examples illustrate typical invocations.
	Examples() []Example

	// Run executes the command.
	Run(inv *Invocation) error
}

// Example is one documented invocation of a command.
type Example struct {
	// Description says what the example does.
	Description string

	// Command is the line as the user would type it.
	Command string
}
