package iter

import (
	"iter"
)

func Map[T, Out any](s iter.Seq[T], fn func(x T) Out) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Keys drops the second half of every pair.
func Keys[K, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

// Values drops the first half of every pair.
func Values[K, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
