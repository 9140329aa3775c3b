// Package search implementa busca sequencial e busca binária genéricas,
// parametrizadas por uma domain.KeyFunc.
package search

import (
	"cmp"

	"labstock/internal/domain"
)

// NotFound é o índice devolvido quando nenhum elemento corresponde à chave.
// Não é um erro: é o resultado normal de uma busca sem correspondência.
const NotFound = -1

// Sequential percorre seq em ordem e devolve o primeiro índice cuja chave é igual a target.
// Não exige ordenação prévia. O(n).
func Sequential[T any, K cmp.Ordered](seq []T, target K, key domain.KeyFunc[T, K]) int {
	for i, v := range seq {
		if cmp.Compare(key(v), target) == 0 {
			return i
		}
	}
	return NotFound
}

// Binary procura target em sorted, que deve estar em ordem crescente pela mesma key.
// A ordenação é responsabilidade de quem chama; uma entrada fora de ordem produz
// resultados incorretos, não um erro. Entre chaves repetidas devolve qualquer uma. O(log n).
func Binary[T any, K cmp.Ordered](sorted []T, target K, key domain.KeyFunc[T, K]) int {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := cmp.Compare(key(sorted[mid]), target); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return NotFound
}
