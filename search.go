package suffixindex

import (
	"bytes"
	"sort"
)

// Find returns the start offsets of every occurrence of pattern in the
// indexed text, ordered by suffix-array rank (lexicographic order of the
// matched suffixes, not ascending offset), or nil when the pattern does not
// occur. The empty pattern matches at every suffix, so Find returns all Len
// offsets for it. Offsets refer to the bytes returned by Text; transforms set
// at build time (FoldCase, Normalize) are applied to pattern before searching.
func (s *Index) Find(pattern []byte) []int {
	pattern = applyTransforms(pattern, s.foldCase, s.normalize)

	// Every rank in [l, r] is a match for the pattern.
	l, r := s.findBounds(pattern)
	if l == -1 {
		return nil
	}
	pos := make([]int, 0, r-l+1)
	for i := l; i <= r; i++ {
		pos = append(pos, s.sa[i])
	}
	return pos
}

// findBounds locates the inclusive rank range of the suffixes that have
// pattern as a prefix, or (-1, -1) when there is none. With the LCP array
// available each binary-search probe reuses the longest prefix matched so
// far: a range-minimum query over the LCP array tells whether the probe can
// be decided without touching the text, so the total number of byte
// comparisons is O(|pattern| + log n). Without it every probe compares bytes
// from scratch.
func (s *Index) findBounds(pattern []byte) (int, int) {
	text, sa, n := s.text, s.sa, len(s.sa)
	bestIdx, best := -1, -1

	// expand grows the count of pattern bytes known to match the suffix at
	// text offset j and reports whether the first len(pattern) bytes of
	// that suffix are >= pattern.
	expand := func(j int) bool {
		for best < len(pattern) && j+best < len(text) && pattern[best] == text[j+best] {
			best++
		}
		if best == len(pattern) {
			// pattern is a prefix of the suffix
			return true
		} else if j+best == len(text) {
			// suffix ran out, so it is a proper prefix of pattern
			return false
		}
		return pattern[best] < text[j+best]
	}

	// first rank whose suffix is >= pattern
	l := sort.Search(n, func(i int) bool {
		if s.lcp != nil {
			if bestIdx == -1 {
				bestIdx = i
				best = 0
				return expand(sa[i])
			}
			common := s.lcp[s.lcpRMQ.Query(min(bestIdx, i), max(bestIdx, i)-1)]
			if common < best {
				// The probe diverges from the best candidate before
				// the matched prefix ends, so its order against the
				// pattern equals its order against the candidate.
				return i > bestIdx
			}
			bestIdx = i
			return expand(sa[i])
		}

		// naive compare as we don't have lcp, find first l where p <= text[sa[l]:]
		return bytes.Compare(pattern, text[sa[i]:]) <= 0
	})

	// Check if l has pattern as a prefix, otherwise we have no matches.
	if l == n || (s.lcp != nil && best < len(pattern)) ||
		(s.lcp == nil && !bytes.HasPrefix(text[sa[l]:], pattern)) {
		return -1, -1
	}

	// Last rank where pattern is a prefix. The predicate runs T T T F F F
	// over [l, n); sort.Search wants F F F T T T, so search for the first
	// negated entry and step back one.
	r := sort.Search(n-l, func(i int) bool {
		if s.lcp != nil {
			if i == 0 {
				return false // rank l is known to match
			}
			common := s.lcp[s.lcpRMQ.Query(l, l+i-1)]
			return !(common >= len(pattern))
		}
		return !bytes.HasPrefix(text[sa[l+i]:], pattern)
	})

	return l, l + r - 1
}
