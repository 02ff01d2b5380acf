// SPDX-License-Identifier: MIT

package logistic

// Parameter labels one of the three model inputs in error messages.
type Parameter string

const (
	// Discrimination is the item slope a.
	Discrimination Parameter = "discrimination"
	// Difficulty is the item threshold b.
	Difficulty Parameter = "difficulty"
	// Trait is the examinee ability θ.
	Trait Parameter = "trait"
)

// String returns the label.
func (p Parameter) String() string { return string(p) }
