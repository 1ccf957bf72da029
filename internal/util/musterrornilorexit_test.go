package util

import (
	"bou.ke/monkey"
	"errors"
	"github.com/bokysan/artr/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function recording the exit code. It returns the function to undo the patch.
func patchExit(exitCode *int, exited *bool) func() {
	seqMutex.Lock()
	patch := monkey.Patch(os.Exit, func(i int) {
		*exitCode = i
		*exited = true
	})
	return func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	MustErrorNilOrExit(nil)

	require.False(t, exited, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.True(t, exited)
	require.Equal(t, int(flags.ErrShortNameTooLong), exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	MustErrorNilOrExit(errors.New("demo"))

	require.Equal(t, ErrGeneric, exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_DecodeError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	_, err := enc.DecodeString("。")
	MustErrorNilOrExit(err)

	require.Equal(t, ErrUnexpectedEnd, exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_ExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 0, ExitCode(&flags.Error{Type: flags.ErrHelp}))

	_, err := enc.DecodeString("あ")
	require.Equal(t, ErrInvalidSymbol, ExitCode(err))

	_, err = enc.DecodeString("。")
	require.Equal(t, ErrUnexpectedEnd, ExitCode(err))

	_, err = enc.DecodeString("。。。")
	require.Equal(t, ErrInvalidUTF8, ExitCode(err))
}
