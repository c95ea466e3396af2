package cheque

// Grouping bases for the two numeral systems. Chinese wording is myriad
// scale (萬 億 兆 are powers of 10,000); English scale words are powers of
// 1,000 (thousand, million, billion, trillion).
const (
	myriadBase   = 10_000
	thousandBase = 1_000
)

// splitGroups partitions n into base-sized groups, least significant first.
// Zero groups are kept in place so renderers can detect scale gaps.
// n == 0 yields a single zero group.
func splitGroups(n uint64, base uint64) []int {
	if n == 0 {
		return []int{0}
	}
	var groups []int
	for n > 0 {
		groups = append(groups, int(n%base))
		n /= base
	}
	return groups
}
