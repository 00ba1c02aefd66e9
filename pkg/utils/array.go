package utils

import (
	"golang.org/x/exp/constraints"
)

// Generates a sequence of n elements given a generation function
func Iota[T any](n int, gen func(int) T) []T {
	values := make([]T, n)

	for i := range values {
		values[i] = gen(i)
	}

	return values
}

// Generates a map from a sequence of items and a function that generates a key from an item
func GenMap[T any, Key comparable](input []T, keyFunc func(T) Key) map[Key]T {
	output := make(map[Key]T, len(input))

	for _, value := range input {
		output[keyFunc(value)] = value
	}

	return output
}

// Splits a sequence into consecutive non-overlapping chunks of n items.
// A trailing chunk shorter than n items is returned apart as the remainder.
func Chunks[T any](input []T, n int) (chunks [][]T, remainder []T) {
	whole := len(input) - len(input)%n
	chunks = make([][]T, 0, whole/n)

	for i := 0; i < whole; i += n {
		chunks = append(chunks, input[i:i+n:i+n])
	}

	return chunks, input[whole:]
}

// Returns the biggest item of a sequence
func Max[T constraints.Ordered](input []T) T {
	max := input[0]

	for _, item := range input {
		if item > max {
			max = item
		}
	}

	return max
}
