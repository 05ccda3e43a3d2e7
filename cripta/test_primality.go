package cripta

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

// MillerRabinTest вероятностный тест простоты Миллера-Рабина
type MillerRabinTest struct{}

// NewMillerRabinTest создает новый тест Миллера-Рабина
func NewMillerRabinTest() *MillerRabinTest {
	return &MillerRabinTest{}
}

// IsPrime проверяет n с вероятностью ошибки не выше 1 - probability
func (mrt *MillerRabinTest) IsPrime(n *big.Int, probability float64) (bool, error) {
	return mrt.IsPrimeRounds(n, calculateIterationsCount(probability))
}

// IsPrimeRounds выполняет заданное число раундов со случайными основаниями
func (mrt *MillerRabinTest) IsPrimeRounds(n *big.Int, rounds int) (bool, error) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return false, nil
	}

	// Делимость на маленькие простые
	rem := new(big.Int)
	for _, p := range smallPrimes {
		prime := big.NewInt(p)
		if n.Cmp(prime) == 0 {
			return true, nil
		}
		if rem.Mod(n, prime).Sign() == 0 {
			return false, nil
		}
	}
	if n.Cmp(big.NewInt(100*100)) < 0 {
		return true, nil
	}

	// n-1 = d * 2^s
	nMinusOne := new(big.Int).Sub(n, bigOne)
	s := nMinusOne.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinusOne, s)

	// основание a равномерно из [2, n-2]
	span := new(big.Int).Sub(n, big.NewInt(3))
	for i := 0; i < rounds; i++ {
		a, err := rand.Int(rand.Reader, span)
		if err != nil {
			return false, fmt.Errorf("failed to pick witness: %w", err)
		}
		a.Add(a, big.NewInt(2))

		if isCompositeWitness(a, d, nMinusOne, n, s) {
			return false, nil
		}
	}

	return true, nil
}

// isCompositeWitness сообщает, доказывает ли a составность n
func isCompositeWitness(a, d, nMinusOne, n *big.Int, s uint) bool {
	x := ModExp(a, d, n)
	if x.Cmp(bigOne) == 0 || x.Cmp(nMinusOne) == 0 {
		return false
	}

	for i := uint(1); i < s; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return false
		}
		if x.Cmp(bigOne) == 0 {
			return true
		}
	}

	return true
}

// Вычисление количества итераций: каждый раунд снижает ошибку в 4 раза
func calculateIterationsCount(probability float64) int {
	if probability >= 0.999999 {
		return 50
	}
	if probability >= 0.99999 {
		return 40
	}
	if probability >= 0.9999 {
		return 30
	}
	if probability >= 0.999 {
		return 20
	}
	if probability >= 0.99 {
		return 10
	}
	return 5
}
