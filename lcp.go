package suffixindex

// noPredecessor marks the text offset of the rank-0 suffix, which has no
// predecessor in suffix-array order. Named so the sentinel cannot be mistaken
// for the legitimate offset 0.
const noPredecessor = -1

// buildPhi maps each suffix start offset to the start offset of the suffix
// immediately preceding it in suffix-array order.
func buildPhi(sa []int) []int {
	phi := make([]int, len(sa))
	if len(sa) == 0 {
		return phi
	}
	phi[sa[0]] = noPredecessor
	for i := 1; i < len(sa); i++ {
		phi[sa[i]] = sa[i-1]
	}
	return phi
}

// buildPLCP computes, for every text offset k, the length of the longest
// common prefix between the suffix at k and the suffix at phi[k]. Offsets are
// visited in text order, where the value can drop by at most one between
// neighbours, so the running counter l never rescans from zero and the total
// number of byte comparisons stays linear.
func buildPLCP(text []byte, phi []int) []int {
	plcp := make([]int, len(text))
	l := 0
	for k := range text {
		if phi[k] == noPredecessor {
			plcp[k] = 0
			l = 0
			continue
		}
		j := phi[k]
		for k+l < len(text) && j+l < len(text) && text[k+l] == text[j+l] {
			l++
		}
		plcp[k] = l
		if l > 0 {
			l--
		}
	}
	return plcp
}

// BuildLCPArray permutes the PLCP values into rank order: entry j is the
// length of the longest common prefix between the suffixes ranked j and j+1.
// The result has len(sa)-1 entries, or nil for an empty suffix array.
func BuildLCPArray(sa, plcp []int) []int {
	if len(sa) == 0 {
		return nil
	}
	lcp := make([]int, len(sa)-1)
	for j := 0; j+1 < len(sa); j++ {
		lcp[j] = plcp[sa[j+1]]
	}
	return lcp
}

// LongestRepeatedSubstring returns the longest substring of the indexed text
// that occurs at least twice, or nil when the text has no repeat. Ties on
// length resolve to the occurrence with the lowest start offset. Runs in O(n)
// time over the phi and PLCP arrays, which are rebuilt per call and not
// retained.
func (s *Index) LongestRepeatedSubstring() []byte {
	if len(s.sa) <= 1 {
		return nil
	}
	plcp := buildPLCP(s.text, buildPhi(s.sa))
	maxLen, at := 0, 0
	for k, l := range plcp {
		if l > maxLen {
			maxLen, at = l, k
		}
	}
	if maxLen == 0 {
		return nil
	}
	out := make([]byte, maxLen)
	copy(out, s.text[at:at+maxLen])
	return out
}
