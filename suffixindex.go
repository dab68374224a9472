package suffixindex

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrNilText     = errors.New("suffixindex: nil text supplied at construction")
	ErrInvalidUTF8 = errors.New("suffixindex: Normalize requires valid UTF-8 text")
)

type IndexBuilder struct {
	text      []byte
	foldCase  bool
	normalize bool
	useLCP    bool
}

// NewBuilder prepares an index over text. By default the text is indexed
// byte-for-byte and the LCP array is built alongside the suffix array.
func NewBuilder(text []byte) *IndexBuilder {
	return &IndexBuilder{
		text:   text,
		useLCP: true,
	}
}

// FoldCase makes matching case-insensitive by lowercasing the indexed text.
// Offsets reported by Find refer to the folded text exposed by Text, which is
// why folding is opt-in rather than the default.
func (b *IndexBuilder) FoldCase() *IndexBuilder {
	b.foldCase = true
	return b
}

// Normalize applies NFC to the indexed text, so that canonically equivalent
// byte sequences match each other. Build fails with ErrInvalidUTF8 when the
// text is not valid UTF-8.
func (b *IndexBuilder) Normalize() *IndexBuilder {
	b.normalize = true
	return b
}

// SkipLCP skips the LCP array construction, this makes binary search
// O(|P| * log(|T|)) instead of O(|P| + log(|T|)).
// Saves O(|T|) memory: doesn't use 2*|T| extra memory.
// Trade-off: binary search is slower, but you spend less memory.
func (b *IndexBuilder) SkipLCP() *IndexBuilder {
	b.useLCP = false
	return b
}

func (b *IndexBuilder) Build() (*Index, error) {
	if b.text == nil {
		return nil, ErrNilText
	}
	if b.normalize && !utf8.Valid(b.text) {
		return nil, ErrInvalidUTF8
	}

	text := applyTransforms(b.text, b.foldCase, b.normalize)
	sa := BuildSuffixArray(text)

	idx := &Index{
		text:      text,
		sa:        sa,
		foldCase:  b.foldCase,
		normalize: b.normalize,
	}
	if b.useLCP && len(sa) > 1 {
		plcp := buildPLCP(text, buildPhi(sa))
		idx.lcp = BuildLCPArray(sa, plcp)
		idx.lcpRMQ = rmq.NewRMQHybridNaive(idx.lcp)
	}
	return idx, nil
}

// Index is the immutable result of Build: the indexed text together with its
// suffix array and, unless SkipLCP was set, the LCP array with a range-minimum
// structure over it. An Index is safe for concurrent use by multiple readers.
type Index struct {
	text      []byte
	sa        []int
	lcp       []int
	lcpRMQ    *rmq.RMQHybridNaive[int]
	foldCase  bool
	normalize bool
}

// Len returns the number of suffixes in the index, which equals the length of
// the indexed text.
func (s *Index) Len() int { return len(s.sa) }

// At returns the start offset of the suffix with rank i in lexicographic
// order, 0 <= i < Len.
func (s *Index) At(i int) int { return s.sa[i] }

// Text returns the indexed bytes. When FoldCase or Normalize were set at
// build time these are the transformed bytes, not the caller's input. The
// returned slice is shared with the index and must not be modified.
func (s *Index) Text() []byte { return s.text }

// SuffixArray returns the suffix array. The returned slice is shared with the
// index and must not be modified.
func (s *Index) SuffixArray() []int { return s.sa }

// applyTransforms always copies, so the index never aliases caller memory.
func applyTransforms(text []byte, foldCase, normalize bool) []byte {
	s := string(text)
	if foldCase {
		s = strings.ToLower(s)
	}
	if normalize {
		s = norm.NFC.String(s)
	}
	return []byte(s)
}
