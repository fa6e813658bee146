package quartet

// Binomial computes C(n,k) using the classical gcd-reducing iterative
// formula, guarding against uint64 overflow the way the original
// arbitrary-precision-free C implementation did: reduce the running
// product against the next factor's gcd before multiplying whenever it
// is about to cross the overflow threshold, rather than computing
// numerator and denominator separately and dividing at the end.
//
// Complexity: O(k).
func Binomial(n, k int) uint64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	if k == 1 {
		return uint64(n)
	}
	if k > n-k {
		k = n - k
	}

	var r uint64 = 1
	nn := uint64(n)
	for d := uint64(1); d <= uint64(k); d++ {
		if r >= maxUint64/nn {
			g := gcdU64(nn, d)
			nr := nn / g
			dr := d / g

			g = gcdU64(r, dr)
			r = r / g
			dr = dr / g

			if r >= maxUint64/nr {
				return 0
			}
			r *= nr
			r /= dr
			nn--
		} else {
			r *= nn
			r /= d
			nn--
		}
	}
	return r
}

const maxUint64 = ^uint64(0)

func gcdU64(x, y uint64) uint64 {
	if y < x {
		x, y = y, x
	}
	for y > 0 {
		x, y = y, x%y
	}
	return x
}
