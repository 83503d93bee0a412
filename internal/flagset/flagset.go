package flagset

import "strings"

// FlagSet is an ordered sequence of compiler flag tokens. Tokens accumulate
// in append order, duplicates are legal, and ordering is semantically
// significant: later tokens may override earlier ones at the compiler's
// discretion. There is no removal operation.
type FlagSet struct {
	tokens []string
}

// New creates a FlagSet seeded from a space-separated flag string. Empty
// input yields an empty set.
func New(initial string) *FlagSet {
	f := &FlagSet{}
	f.Append(strings.Fields(initial)...)
	return f
}

// Append adds tokens to the end of the set, in the order given. It never
// fails and never deduplicates; repeated calls accumulate.
func (f *FlagSet) Append(tokens ...string) {
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		f.tokens = append(f.tokens, tok)
	}
}

// Contains reports whether the space-joined rendering of the set contains
// the given token as a plain substring.
func (f *FlagSet) Contains(token string) bool {
	return strings.Contains(f.String(), token)
}

// Len returns the number of accumulated tokens.
func (f *FlagSet) Len() int {
	return len(f.tokens)
}

// Tokens returns a copy of the accumulated tokens in append order.
func (f *FlagSet) Tokens() []string {
	out := make([]string, len(f.tokens))
	copy(out, f.tokens)
	return out
}

// String renders the set as a single space-joined flag string, the form the
// compilation driver consumes.
func (f *FlagSet) String() string {
	return strings.Join(f.tokens, " ")
}
