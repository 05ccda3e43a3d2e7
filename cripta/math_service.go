package cripta

import (
	"fmt"
	"math/big"
)

// Теоретико-числовые утилиты для RSA и обмена ключами.
// Шифр AES от них не зависит.

var bigOne = big.NewInt(1)

// GCD вычисляет НОД двух чисел (алгоритм Евклида)
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// IsCoprime сообщает, взаимно ли просты a и b
func IsCoprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(bigOne) == 0
}

// ExtendedGCD вычисляет НОД и коэффициенты Безу: a*x + b*y = g
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, new(big.Int).Sub(oldT, tmp)
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// ModInverse вычисляет x, такой что a*x ≡ 1 (mod m), x в [0, m)
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(bigOne) <= 0 {
		return nil, fmt.Errorf("%w: modulus %s must be greater than 1", ErrNoInverse, m)
	}

	g, x, _ := ExtendedGCD(new(big.Int).Mod(a, m), m)
	if g.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNoInverse, a, m, g)
	}

	return x.Mod(x, m), nil
}

// ModExp вычисляет a^b mod m
func ModExp(a, b, m *big.Int) *big.Int {
	return new(big.Int).Exp(a, b, m)
}
