package suffixindex

import "sort"

// sentinelRank orders positions that fall past the end of the text before
// every real rank class, which start at 1.
const sentinelRank = 0

// pairKey is the composite sort key of one doubling pass: the rank of a
// suffix over the current prefix length, then the rank of the suffix starting
// at the doubled offset. tail is sentinelRank when the doubled offset runs
// past the end of the text.
type pairKey struct {
	head, tail int
}

func (k pairKey) less(o pairKey) bool {
	if k.head != o.head {
		return k.head < o.head
	}
	return k.tail < o.tail
}

// BuildSuffixArray computes the suffix array of text with the prefix-doubling
// method in O(n log^2 n) time. The result is a permutation of [0, len(text))
// listing suffix start offsets so that the corresponding suffixes appear in
// lexicographic order.
func BuildSuffixArray(text []byte) []int {
	n := len(text)
	sa := make([]int, n)
	rank := make([]int, n)
	for i := range sa {
		sa[i] = i
		rank[i] = int(text[i]) + 1
	}

	keys := make([]pairKey, n)
	for k := 1; k < n; k <<= 1 {
		// Snapshot the composite keys before sorting, so the comparator
		// never reads a rank table that is being rewritten under it.
		for i := 0; i < n; i++ {
			keys[i] = pairKey{head: rank[i], tail: sentinelRank}
			if i+k < n {
				keys[i].tail = rank[i+k]
			}
		}
		sort.Slice(sa, func(i, j int) bool {
			return keys[sa[i]].less(keys[sa[j]])
		})

		// Fold a fresh rank table from the sorted order: equal keys
		// collapse into one class, a strictly greater key opens the
		// next one.
		next := make([]int, n)
		next[sa[0]] = 1
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if keys[sa[i-1]].less(keys[sa[i]]) {
				next[sa[i]]++
			}
		}
		rank = next

		// All suffixes distinguished, further passes cannot reorder.
		if rank[sa[n-1]] == n {
			break
		}
	}
	return sa
}
