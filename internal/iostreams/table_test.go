package iostreams_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novezhyttia/sanctuary/internal/iostreams/iostreamstest"
)

func TestTablePrinter_Plain(t *testing.T) {
	tio := iostreamstest.New()
	tp := tio.NewTablePrinter("TICK", "INDEX", "VISIBLE")
	tp.AddRow("1", "1", "0-1")
	tp.AddRow("2", "2")
	require.Equal(t, 2, tp.Len())

	require.NoError(t, tp.Render())
	lines := strings.Split(strings.TrimRight(tio.OutBuf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"TICK", "INDEX", "VISIBLE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "1", "0-1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "2"}, strings.Fields(lines[2]))
}

func TestTablePrinter_Styled(t *testing.T) {
	tio := iostreamstest.New()
	tio.SetInteractive(true)
	tio.SetColorEnabled(true)
	tio.SetTerminalSize(40, 10)

	tp := tio.NewTablePrinter("WIDTH", "VISIBLE")
	tp.AddRow("< 640px", "1")
	require.NoError(t, tp.Render())

	out := tio.OutBuf.String()
	assert.Contains(t, out, "WIDTH")
	assert.Contains(t, out, "───")
	assert.Contains(t, out, "< 640px")
}

func TestTablePrinter_NoHeaders(t *testing.T) {
	tio := iostreamstest.New()
	require.NoError(t, tio.NewTablePrinter().Render())
	assert.Empty(t, tio.OutBuf.String())
}
