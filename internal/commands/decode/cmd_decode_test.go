package decode

import (
	"bytes"
	"github.com/bokysan/artr/internal/util/enc"
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

func Test_DecodeArgs(t *testing.T) {
	cmd, out := newTestCommand("")
	cmd.Args.Symbols = []string{"愛", "楽", "愛"}

	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "A\n", out.String())
}

func Test_DecodeStdin(t *testing.T) {
	cmd, out := newTestCommand("愛楽愛た楽し楽可\n")

	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "AAA\n", out.String())
}

func Test_DecodeRaw(t *testing.T) {
	cmd, out := newTestCommand("。。。")
	cmd.Raw = true

	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, []byte{0xff}, out.Bytes())
}

func Test_DecodeErrors(t *testing.T) {
	for input, kind := range map[string]enc.Kind{
		"あ":   enc.KindInvalidSymbol,
		"。":   enc.KindUnexpectedEnd,
		"。。。": enc.KindInvalidUTF8,
	} {
		cmd, out := newTestCommand(input)
		err := cmd.Execute(nil)
		require.Error(t, err)
		require.Equal(t, kind, enc.KindOf(err), "Invalid error kind for %q", input)
		require.Empty(t, out.String())
	}
}
