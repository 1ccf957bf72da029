package encode

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func newTestCommand(in string) (*Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := NewCommand()
	cmd.Input = "-"
	cmd.in = strings.NewReader(in)
	cmd.out = out
	return cmd, out
}

func Test_EncodeArgs(t *testing.T) {
	cmd, out := newTestCommand("")
	cmd.Args.Text = []string{"A"}

	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "愛楽愛\n", out.String())
}

func Test_EncodeStdin(t *testing.T) {
	cmd, out := newTestCommand("AAA")

	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "愛楽愛た楽し楽可\n", out.String())
}

func Test_EncodeWrap(t *testing.T) {
	cmd, out := newTestCommand("AAA")
	cmd.Wrap = 4

	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "愛楽愛た\n楽し楽可\n", out.String())
}

func Test_EncodeJoinsWords(t *testing.T) {
	cmd, out := newTestCommand("")
	cmd.Args.Text = []string{"A", "A"}

	other, expected := newTestCommand("A A")
	require.NoError(t, other.Execute(nil))

	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, expected.String(), out.String())
}
