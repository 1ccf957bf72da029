package util

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_ReadInputArgs(t *testing.T) {
	data, err := ReadInput([]string{"愛", "楽", "愛"}, "ignored.txt", strings.NewReader("ignored"))
	require.NoError(t, err)
	require.Equal(t, "愛 楽 愛", string(data))
}

func Test_ReadInputFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "artr")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "input.txt")
	require.NoError(t, ioutil.WriteFile(file, []byte("本音"), 0600))

	data, err := ReadInput(nil, file, strings.NewReader("ignored"))
	require.NoError(t, err)
	require.Equal(t, "本音", string(data))

	_, err = ReadInput(nil, filepath.Join(dir, "missing.txt"), nil)
	require.Error(t, err)
}

func Test_ReadInputStdin(t *testing.T) {
	data, err := ReadInput(nil, "-", strings.NewReader("建前"))
	require.NoError(t, err)
	require.Equal(t, "建前", string(data))
}
