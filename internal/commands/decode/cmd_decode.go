package decode

import (
	"github.com/bokysan/artr/internal/logging"
	"github.com/bokysan/artr/internal/util"
	"github.com/bokysan/artr/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// Command turns symbols back into plain text
type Command struct {
	Input string `yaml:"input" short:"i" long:"input" description:"Read the symbols from this file instead of stdin. Ignored if symbols are given as arguments." default:"-"`
	Raw   bool   `yaml:"raw"   short:"r" long:"raw"   description:"Write decoded bytes as they are, without checking they form valid UTF-8 text."`

	Args struct {
		Symbols []string `positional-arg-name:"SYMBOLS" description:"Symbols to decode. Whitespace between them is ignored."`
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
	return "Decode symbols"
}

// decode returns the bytes to write out
func (c *Command) decode(symbols string) ([]byte, error) {
	if c.Raw {
		return enc.Decode(symbols)
	}
	text, err := enc.DecodeString(symbols)
	if err != nil {
		return nil, err
	}
	return append([]byte(text), '\n'), nil
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	data, err := util.ReadInput(append(c.Args.Symbols, args...), c.Input, c.in)
	if err != nil {
		return err
	}

	res, err := c.decode(string(data))
	if err != nil {
		log.Debugf("Decoding failed: %v", enc.KindOf(err))
		return err
	}

	if _, err := c.out.Write(res); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
