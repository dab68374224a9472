package suffixindex

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"
)

func naiveFind(text, pattern []byte) []int {
	if len(pattern) == 0 {
		pos := make([]int, len(text))
		for i := range pos {
			pos[i] = i
		}
		return pos
	}
	var pos []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if bytes.Equal(text[i:i+len(pattern)], pattern) {
			pos = append(pos, i)
		}
	}
	return pos
}

// Find reports offsets in suffix-array rank order; the contract is set
// equality against a brute-force scan.
func checkFound(t *testing.T, got, want []int) {
	t.Helper()
	gotSorted := slices.Clone(got)
	slices.Sort(gotSorted)
	wantSorted := slices.Clone(want)
	slices.Sort(wantSorted)
	if !slices.Equal(gotSorted, wantSorted) {
		t.Errorf("wrong match set: got %v, want %v", got, want)
	}
}

func mustBuild(t *testing.T, text string, config func(*IndexBuilder) *IndexBuilder) *Index {
	t.Helper()
	b := NewBuilder([]byte(text))
	if config != nil {
		b = config(b)
	}
	idx, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

func TestFindBasic(t *testing.T) {
	text := "GATAGACA"
	tests := []struct {
		pattern string
		want    []int
	}{
		{"GA", []int{0, 4}},
		{"A", []int{1, 3, 5, 7}},
		{"GATAGACA", []int{0}},
		{"CA", []int{6}},
		{"T", []int{2}},
		{"GC", nil},
		{"GATAGACAX", nil},
		{"", []int{0, 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, variant := range []struct {
		name   string
		config func(*IndexBuilder) *IndexBuilder
	}{
		{"with_lcp", nil},
		{"no_lcp", func(b *IndexBuilder) *IndexBuilder { return b.SkipLCP() }},
	} {
		t.Run(variant.name, func(t *testing.T) {
			idx := mustBuild(t, text, variant.config)
			for _, tc := range tests {
				t.Run(tc.pattern, func(t *testing.T) {
					got := idx.Find([]byte(tc.pattern))
					checkFound(t, got, tc.want)
				})
			}
		})
	}
}

func TestFindRankOrder(t *testing.T) {
	idx := mustBuild(t, "GATAGACA", nil)
	got := idx.Find([]byte("GA"))
	// "GACA" sorts before "GATAGACA", so rank order is offset 4 then 0.
	want := []int{4, 0}
	if !slices.Equal(got, want) {
		t.Errorf("Find(GA) = %v, want %v", got, want)
	}
}

func TestFindEmptyText(t *testing.T) {
	idx := mustBuild(t, "", nil)
	if got := idx.Find([]byte("x")); got != nil {
		t.Errorf("Find on empty text = %v, want nil", got)
	}
	if got := idx.Find(nil); got != nil {
		t.Errorf("Find(nil) on empty text = %v, want nil", got)
	}
}

func TestFindFoldCase(t *testing.T) {
	idx := mustBuild(t, "Banana", func(b *IndexBuilder) *IndexBuilder { return b.FoldCase() })
	checkFound(t, idx.Find([]byte("BAN")), []int{0})
	checkFound(t, idx.Find([]byte("ana")), []int{1, 3})
	checkFound(t, idx.Find([]byte("ANA")), []int{1, 3})
}

func TestFindNormalize(t *testing.T) {
	// "é" as NFD (e + combining acute) must match its NFC form.
	nfd := "café"
	idx := mustBuild(t, nfd, func(b *IndexBuilder) *IndexBuilder { return b.Normalize() })
	got := idx.Find([]byte("café"))
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Find(café) = %v, want [0]", got)
	}
}

func TestFindRandomAgainstNaive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 150; trial++ {
		n := r.Intn(120)
		text := make([]byte, n)
		for i := range text {
			text[i] = byte('a' + r.Intn(2))
		}
		idx, err := NewBuilder(text).Build()
		if err != nil {
			t.Fatal(err)
		}
		naiveIdx, err := NewBuilder(text).SkipLCP().Build()
		if err != nil {
			t.Fatal(err)
		}
		for q := 0; q < 20; q++ {
			m := r.Intn(6)
			pattern := make([]byte, m)
			for i := range pattern {
				pattern[i] = byte('a' + r.Intn(2))
			}
			want := naiveFind(text, pattern)
			checkFound(t, idx.Find(pattern), want)
			checkFound(t, naiveIdx.Find(pattern), want)
		}
	}
}

func FuzzFind(f *testing.F) {
	f.Add([]byte("GATAGACA"), []byte("GA"))
	f.Add([]byte("banana"), []byte("ana"))
	f.Add([]byte("aaaaaaa"), []byte("aaa"))

	f.Fuzz(func(t *testing.T, text []byte, pattern []byte) {
		if text == nil || len(text) > 1000 || len(pattern) > 100 {
			return
		}
		idx, err := NewBuilder(text).Build()
		if err != nil {
			t.Fatal(err)
		}
		checkFound(t, idx.Find(pattern), naiveFind(text, pattern))

		naiveIdx, err := NewBuilder(text).SkipLCP().Build()
		if err != nil {
			t.Fatal(err)
		}
		checkFound(t, naiveIdx.Find(pattern), naiveFind(text, pattern))
	})
}
