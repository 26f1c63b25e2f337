package suffixtree

// Kasai's algorithm for building the LCP array in O(n) time.
// lcp[k] is the common prefix length of the suffixes at suffixArray[k] and suffixArray[k+1].
func BuildLCPArray(suffixArray []int, text []byte) []int {
	if len(suffixArray) < 2 {
		return nil
	}

	rank := rankArray(suffixArray)
	lcp := make([]int, len(suffixArray)-1)
	l := 0
	for i := range suffixArray {
		if rank[i]+1 == len(suffixArray) {
			l = 0
			continue
		}
		j := suffixArray[rank[i]+1]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		lcp[rank[i]] = l
		if l > 0 {
			l--
		}
	}

	return lcp
}

// rankArray inverts a suffix array: rank[suffixArray[k]] == k.
func rankArray(suffixArray []int) []int {
	rank := make([]int, len(suffixArray))
	for i := range suffixArray {
		rank[suffixArray[i]] = i
	}
	return rank
}
