package encode

import (
	"fmt"
	"github.com/bokysan/artr/internal/logging"
	"github.com/bokysan/artr/internal/util"
	"github.com/bokysan/artr/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// Command turns plain text into symbols
type Command struct {
	Wrap  int    `yaml:"wrap"  short:"w" long:"wrap"  env:"ARTR_WRAP" description:"Insert a new line after every N symbols. 0 disables wrapping." default:"0"`
	Input string `yaml:"input" short:"i" long:"input"                 description:"Read the text from this file instead of stdin. Ignored if text is given as arguments." default:"-"`

	Args struct {
		Text []string `positional-arg-name:"TEXT" description:"Text to encode. Words are joined with a single space."`
	} `positional-args:"yes"`

	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (c *Command) String() string {
	return "Encode text"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	data, err := util.ReadInput(append(c.Args.Text, args...), c.Input, c.in)
	if err != nil {
		return err
	}

	encoded := enc.Wrap(enc.Encode(data), c.Wrap)
	log.Debugf("Encoded %d bytes into %d symbols", len(data), enc.EncodedLen(len(data)))

	if _, err := fmt.Fprintln(c.out, encoded); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
