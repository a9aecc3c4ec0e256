// Package testhelpers holds shared test fixtures.
package testhelpers

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Goldie creates a goldie instance with the repo-wide golden-file suffix.
func Goldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.txt"))
}
