package classifier

// Resolver answers "what category is this business" for names the mapping
// doesn't know. The answer may be an existing category or a new one.
// If remember is true the answer is stored for next time.
type Resolver interface {
	Resolve(business string, categories []string) (category string, remember bool, err error)
}

// ResolverFunc adapts a plain function to a Resolver.
type ResolverFunc func(business string, categories []string) (string, bool, error)

func (f ResolverFunc) Resolve(business string, categories []string) (string, bool, error) {
	return f(business, categories)
}

// Static answers every question with the same category. It's what batch runs
// use instead of asking someone.
type Static struct {
	Category string
	Remember bool
}

// check it meets the interface
var _ Resolver = &Static{}

func (s *Static) Resolve(business string, categories []string) (string, bool, error) {
	return s.Category, s.Remember, nil
}
