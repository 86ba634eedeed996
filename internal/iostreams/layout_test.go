package iostreams

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	assert.Equal(t, "a\nb", Stack(0, "a", "", "b"))
	assert.Equal(t, "a\n\nb", Stack(1, "a", "b"))
	assert.Equal(t, "a\nb", Stack(-3, "a", "b"))
	assert.Equal(t, "", Stack(1, "", ""))
}

func TestRow_JoinsBlocksSideBySide(t *testing.T) {
	out := Row(1, "a\nb", "c")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "a c", lines[0])
	assert.Equal(t, "b  ", lines[1])
	assert.Equal(t, "", Row(2))
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, 39, ColumnWidth(80, 2, 2))
	assert.Equal(t, 80, ColumnWidth(80, 2, 1))
	assert.Equal(t, 1, ColumnWidth(3, 2, 3))
	assert.Equal(t, 10, ColumnWidth(10, 2, 0))
}

func TestFlexRow(t *testing.T) {
	assert.Equal(t, "L        R", FlexRow(10, "L", "", "R"))
	assert.Equal(t, "L   C    R", FlexRow(10, "L", "C", "R"))
	assert.Equal(t, "LR", FlexRow(1, "L", "", "R"))
}

func TestDivider(t *testing.T) {
	assert.Contains(t, Divider(3), "───")
	assert.Equal(t, "", strings.TrimSpace(Divider(-1)))
}
