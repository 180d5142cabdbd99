package errors

import (
	"fmt"
	"strings"
)

// SuggestTag suggests possible tag names when an unknown tag is used.
// It uses Levenshtein distance to find the closest known tag.
func SuggestTag(unknown string, validTags []string) string {
	if len(validTags) == 0 {
		return ""
	}

	minDistance := 1000
	var bestMatch string

	for _, tag := range validTags {
		dist := levenshteinDistance(unknown, tag)
		if dist < minDistance {
			minDistance = dist
			bestMatch = tag
		}
	}

	// Only suggest if the distance is reasonable (< 3 edits; tags are short)
	if minDistance < 3 {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}

	return fmt.Sprintf("Valid tags: %s", strings.Join(validTags, ", "))
}

// levenshteinDistance computes the Levenshtein distance between two strings.
// This is used for finding similar tag names for suggestions.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len1][len2]
}
