// Package sorting implementa merge sort e quick sort genéricos, parametrizados por
// uma domain.KeyFunc. Nenhuma rotina altera a sequência de entrada.
package sorting

import (
	"cmp"
	"fmt"
	"strings"

	"labstock/internal/domain"
	apperror "labstock/internal/errors"
)

// Method seleciona o algoritmo usado pelos relatórios.
type Method string

const (
	Merge Method = "merge"
	Quick Method = "quick"
)

// ParseMethod converte o nome do método (sem diferenciar maiúsculas) em Method.
func ParseMethod(name string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(name))); m {
	case Merge, Quick:
		return m, nil
	default:
		return "", apperror.NewValidationError(fmt.Sprintf("Método de ordenação desconhecido: %q (use \"merge\" ou \"quick\").", name))
	}
}

// Sort ordena seq pelo método indicado.
func Sort[T any, K cmp.Ordered](method Method, seq []T, key domain.KeyFunc[T, K]) ([]T, error) {
	switch method {
	case Merge:
		return MergeSort(seq, key), nil
	case Quick:
		return QuickSort(seq, key), nil
	default:
		return nil, apperror.NewValidationError(fmt.Sprintf("Método de ordenação desconhecido: %q.", method))
	}
}

// MergeSort devolve uma nova sequência ordenada de forma crescente pela chave.
// É estável: em caso de empate o elemento da metade esquerda vem primeiro.
func MergeSort[T any, K cmp.Ordered](seq []T, key domain.KeyFunc[T, K]) []T {
	if len(seq) <= 1 {
		return clone(seq)
	}
	mid := len(seq) / 2
	left := MergeSort(seq[:mid], key)
	right := MergeSort(seq[mid:], key)

	out := make([]T, 0, len(seq))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp.Compare(key(left[i]), key(right[j])) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

// QuickSort devolve uma nova sequência ordenada de forma crescente pela chave.
// O pivô é a chave do elemento central; os elementos são particionados em
// menores, iguais e maiores, e apenas as partições externas são ordenadas
// recursivamente. Pior caso O(n²).
func QuickSort[T any, K cmp.Ordered](seq []T, key domain.KeyFunc[T, K]) []T {
	if len(seq) <= 1 {
		return clone(seq)
	}
	pivot := key(seq[len(seq)/2])

	var less, equal, greater []T
	for _, v := range seq {
		switch c := cmp.Compare(key(v), pivot); {
		case c < 0:
			less = append(less, v)
		case c == 0:
			equal = append(equal, v)
		default:
			greater = append(greater, v)
		}
	}

	out := make([]T, 0, len(seq))
	out = append(out, QuickSort(less, key)...)
	out = append(out, equal...)
	return append(out, QuickSort(greater, key)...)
}

func clone[T any](seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	return out
}
