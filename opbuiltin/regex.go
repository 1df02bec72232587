package opbuiltin

import (
	"context"
	"sync"

	regexp "github.com/wasilibs/go-re2"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/operator"
	"github.com/termwoven/rewrite/rwerr"
)

// RegexMatch is a binary predicate operator: given a 2-element sequence
// (subject string, pattern string), it reports whether subject matches
// pattern as a Boolean literal. Compiling a regex on every invocation
// would be wasteful for a rule that fires often against the same
// pattern, so compiled regexes are cached by pattern text. Each call to
// RegexMatch creates its own cache, which lives as long as the returned
// operator.
//
// This is the spec's native-handler seam (§4.9) put to work on a case
// ordinary rewrite rules cannot express at all: no finite set of atom
// patterns can recognize an arbitrary regular language.
func RegexMatch() *operator.Operator {
	cache := newRegexCache()
	op, err := operator.New("regex_match", nil, atom.RootTypeAtom(atom.RootBOOLEAN), atom.NoProps,
		func(ctx context.Context, op *operator.Operator, arg atom.Atom, bindings atom.Bindings) (atom.Atom, error) {
			seq, ok := arg.(*atom.AtomSeq)
			if !ok || seq.Len() != 2 {
				return nil, nil
			}
			subject, ok1 := seq.At(0).(*atom.Literal)
			pattern, ok2 := seq.At(1).(*atom.Literal)
			if !ok1 || !ok2 || subject.LiteralKind() != atom.LitString || pattern.LiteralKind() != atom.LitString {
				return nil, nil
			}
			re, err := cache.compile(pattern.Str())
			if err != nil {
				return nil, &rwerr.NativeHandlerError{Operator: "regex_match", Cause: err}
			}
			return atom.NewBoolean(re.MatchString(subject.Str())), nil
		})
	if err != nil {
		panic(err)
	}
	return op
}

type regexCache struct {
	mu       sync.Mutex
	compiled map[string]*regexp.Regexp
}

func newRegexCache() *regexCache {
	return &regexCache{compiled: make(map[string]*regexp.Regexp)}
}

func (c *regexCache) compile(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if re, ok := c.compiled[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.compiled[pattern] = re
	return re, nil
}
