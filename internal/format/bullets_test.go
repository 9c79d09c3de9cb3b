package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBullets_EmptyString(t *testing.T) {
	assert.Nil(t, SplitBullets(""))
}

func TestSplitBullets_PlainParagraph(t *testing.T) {
	got := SplitBullets("Led the migration of a legacy monolith.")
	assert.Equal(t, []string{"Led the migration of a legacy monolith."}, got)
}

func TestSplitBullets_DotMarkers(t *testing.T) {
	got := SplitBullets("• A\n• B")
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestSplitBullets_DashMarkers(t *testing.T) {
	got := SplitBullets("- First item\n- Second item")
	assert.Equal(t, []string{"First item", "Second item"}, got)
}

func TestSplitBullets_MixedMarkersAndBlankLines(t *testing.T) {
	got := SplitBullets("• A\n\n- B\nC")
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestSplitBullets_Idempotent(t *testing.T) {
	first := SplitBullets("• A\n• B")
	reserialized := strings.Join(first, "\n")
	second := SplitBullets(reserialized)
	assert.Equal(t, first, second)
}

func TestSplitBullets_IdempotentOnParagraph(t *testing.T) {
	first := SplitBullets("Plain text with no markers.")
	second := SplitBullets(strings.Join(first, "\n"))
	assert.Equal(t, first, second)
}

func TestHasBulletMarkers_Present(t *testing.T) {
	assert.True(t, HasBulletMarkers("• A\n• B"))
	assert.True(t, HasBulletMarkers("intro line\n- detail"))
}

func TestHasBulletMarkers_Absent(t *testing.T) {
	assert.False(t, HasBulletMarkers("A plain paragraph.\nA second line."))
	assert.False(t, HasBulletMarkers(""))
}
