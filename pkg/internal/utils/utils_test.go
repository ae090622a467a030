// utils_test.go

package utils_test

import (
	"testing"

	"github.com/cardiokit/ecgcore/pkg/internal/utils"
)

func TestGenerateUniqueHash(t *testing.T) {
	first := utils.GenerateUniqueHash()
	second := utils.GenerateUniqueHash()

	if len(first) != 64 {
		t.Errorf("expected a 64 character hex digest, got %d characters", len(first))
	}
	if first == second {
		t.Error("expected consecutive hashes to differ")
	}
}
