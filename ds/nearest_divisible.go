package ds

// NearestDivisibleByM returns the smallest number that is divisible
// by m and not less than n.
func NearestDivisibleByM(n int, m int) int {
	for i := n; i < n+m; i++ {
		if i%m == 0 {
			return i
		}
	}
	panic(ErrUnreachableCode{Caller: "NearestDivisibleByM"})
}
