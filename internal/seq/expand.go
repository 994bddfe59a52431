package seq

import "math/big"

// expand computes the fractional part of a constant as a precBits-bit
// fixed-point integer in [0, 2^precBits).
//
// Every series below runs until its term underflows the fixed-point scale,
// uses only non-negative operands with floor division, and keeps positive
// and negative partial sums separate. Per-term floor error is below one
// unit in the last place, so the total error across all levels stays far
// inside the 64 guard bits.
func expand(c Constant, precBits uint) *big.Int {
	switch c {
	case Pi:
		return piFrac(precBits)
	case E:
		return eFrac(precBits)
	case Sqrt2:
		return sqrt2Frac(precBits)
	case Phi:
		return phiFrac(precBits)
	case Ln2:
		return ln2Frac(precBits)
	case Ln3:
		return ln3Frac(precBits)
	case Zeta3:
		return zeta3Frac(precBits)
	case Catalan:
		return catalanFrac(precBits)
	}
	panic("seq: unknown constant")
}

// scale returns 2^precBits.
func scale(precBits uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), precBits)
}

// atanInv computes atan(1/x) * 2^precBits for integer x >= 2 using the
// alternating Gregory series. Positive and negative terms accumulate
// separately so all division operands stay non-negative.
func atanInv(x int64, precBits uint) *big.Int {
	num := new(big.Int).Quo(scale(precBits), big.NewInt(x))
	xx := big.NewInt(x * x)
	pos := new(big.Int)
	neg := new(big.Int)
	term := new(big.Int)
	for k := int64(0); ; k++ {
		term.Quo(num, big.NewInt(2*k+1))
		if term.Sign() == 0 {
			break
		}
		if k%2 == 0 {
			pos.Add(pos, term)
		} else {
			neg.Add(neg, term)
		}
		num.Quo(num, xx)
	}
	return pos.Sub(pos, neg)
}

// atanhInv computes atanh(1/x) * 2^precBits for integer x >= 2. All terms
// are positive: sum of 1/((2k+1) x^(2k+1)).
func atanhInv(x int64, precBits uint) *big.Int {
	num := new(big.Int).Quo(scale(precBits), big.NewInt(x))
	xx := big.NewInt(x * x)
	sum := new(big.Int)
	term := new(big.Int)
	for k := int64(0); ; k++ {
		term.Quo(num, big.NewInt(2*k+1))
		if term.Sign() == 0 {
			break
		}
		sum.Add(sum, term)
		num.Quo(num, xx)
	}
	return sum
}

// piFrac: Machin's formula, pi = 16 atan(1/5) - 4 atan(1/239).
func piFrac(precBits uint) *big.Int {
	a := atanInv(5, precBits)
	a.Mul(a, big.NewInt(16))
	b := atanInv(239, precBits)
	b.Mul(b, big.NewInt(4))
	pi := a.Sub(a, b)
	// drop the integer part (3)
	three := new(big.Int).Lsh(big.NewInt(3), precBits)
	return pi.Sub(pi, three)
}

// eFrac: Taylor series e = sum 1/k!.
func eFrac(precBits uint) *big.Int {
	term := scale(precBits)
	sum := new(big.Int).Set(term) // k = 0
	for k := int64(1); ; k++ {
		term.Quo(term, big.NewInt(k))
		if term.Sign() == 0 {
			break
		}
		sum.Add(sum, term)
	}
	// drop the integer part (2)
	two := new(big.Int).Lsh(big.NewInt(2), precBits)
	return sum.Sub(sum, two)
}

// isqrtScaled returns floor(sqrt(n) * 2^precBits) for small integer n.
func isqrtScaled(n int64, precBits uint) *big.Int {
	v := new(big.Int).Lsh(big.NewInt(n), 2*precBits)
	return v.Sqrt(v)
}

// sqrt2Frac: exact integer square root.
func sqrt2Frac(precBits uint) *big.Int {
	r := isqrtScaled(2, precBits)
	return r.Sub(r, scale(precBits))
}

// phiFrac: phi = (1 + sqrt 5) / 2.
func phiFrac(precBits uint) *big.Int {
	r := isqrtScaled(5, precBits)
	r.Add(r, scale(precBits))
	r.Quo(r, big.NewInt(2))
	return r.Sub(r, scale(precBits))
}

// ln2Frac: ln 2 = 2 atanh(1/3).
func ln2Frac(precBits uint) *big.Int {
	v := atanhInv(3, precBits)
	return v.Mul(v, big.NewInt(2))
}

// ln3Frac: ln 3 = ln 2 + 2 atanh(1/5), from ln(3/2) = 2 atanh(1/5).
func ln3Frac(precBits uint) *big.Int {
	v := atanhInv(5, precBits)
	v.Mul(v, big.NewInt(2))
	v.Add(v, ln2Frac(precBits))
	// drop the integer part (1)
	return v.Sub(v, scale(precBits))
}

// zeta3Frac: Apery's series,
// zeta(3) = (5/2) sum_{n>=1} (-1)^(n-1) / (n^3 binom(2n,n)).
func zeta3Frac(precBits uint) *big.Int {
	s := scale(precBits)
	binom := big.NewInt(2) // binom(2,1)
	pos := new(big.Int)
	neg := new(big.Int)
	d := new(big.Int)
	term := new(big.Int)
	for n := int64(1); ; n++ {
		d.Mul(binom, big.NewInt(n*n*n))
		term.Quo(s, d)
		if term.Sign() == 0 {
			break
		}
		if n%2 == 1 {
			pos.Add(pos, term)
		} else {
			neg.Add(neg, term)
		}
		// binom(2n+2,n+1) = binom(2n,n) * 2(2n+1) / (n+1), exact
		binom.Mul(binom, big.NewInt(2*(2*n+1)))
		binom.Quo(binom, big.NewInt(n+1))
	}
	v := pos.Sub(pos, neg)
	v.Mul(v, big.NewInt(5))
	v.Quo(v, big.NewInt(2))
	// drop the integer part (1)
	return v.Sub(v, scale(precBits))
}

// catalanFrac: Ramanujan's series,
// G = (3/8) sum_{n>=0} 1/(binom(2n,n) (2n+1)^2) + (pi/8) ln(2+sqrt 3),
// with ln(2+sqrt 3) = 2 atanh(1/sqrt 3).
func catalanFrac(precBits uint) *big.Int {
	s := scale(precBits)

	// central binomial sum
	binom := big.NewInt(1) // binom(0,0)
	sumA := new(big.Int)
	d := new(big.Int)
	term := new(big.Int)
	for n := int64(0); ; n++ {
		d.Mul(binom, big.NewInt((2*n+1)*(2*n+1)))
		term.Quo(s, d)
		if term.Sign() == 0 {
			break
		}
		sumA.Add(sumA, term)
		binom.Mul(binom, big.NewInt(2*(2*n+1)))
		binom.Quo(binom, big.NewInt(n+1))
	}

	// ln(2+sqrt 3) = 2 atanh(1/sqrt 3), fixed-point argument z = s/sqrt3
	sqrt3 := isqrtScaled(3, precBits)
	z := new(big.Int).Mul(s, s)
	z.Quo(z, sqrt3)
	zz := new(big.Int).Mul(z, z)
	zz.Quo(zz, s)
	zpow := new(big.Int).Set(z)
	ln23 := new(big.Int)
	for k := int64(0); ; k++ {
		term.Quo(zpow, big.NewInt(2*k+1))
		if term.Sign() == 0 {
			break
		}
		ln23.Add(ln23, term)
		zpow.Mul(zpow, zz)
		zpow.Quo(zpow, s)
	}
	ln23.Mul(ln23, big.NewInt(2))

	// pi at full scale (integer part included)
	pi := piFrac(precBits)
	pi.Add(pi, new(big.Int).Lsh(big.NewInt(3), precBits))
	piLn := pi.Mul(pi, ln23)
	piLn.Quo(piLn, s)

	g := sumA.Mul(sumA, big.NewInt(3))
	g.Add(g, piLn)
	return g.Quo(g, big.NewInt(8))
}
