package util

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

// ReadInput returns the data a command should work on: the arguments joined by a single space if
// there are any, else the contents of the given file (unless empty or "-"), else everything read from `stdin`.
func ReadInput(args []string, file string, stdin io.Reader) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}

	if file != "" && file != "-" {
		log.Debugf("Reading input from %v", file)
		data, err := ioutil.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read %v", file)
		}
		return data, nil
	}

	if stdin == nil {
		stdin = os.Stdin
	}
	log.Debugf("Reading input from stdin")
	data, err := ioutil.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read from stdin")
	}
	return data, nil
}
