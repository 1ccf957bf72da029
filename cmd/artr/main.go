package main

import (
	"fmt"
	"github.com/bokysan/artr/internal/args"
	"github.com/bokysan/artr/internal/commands/decode"
	"github.com/bokysan/artr/internal/commands/encode"
	"github.com/bokysan/artr/internal/commands/server"
	"github.com/bokysan/artr/internal/commands/version"
	artrFlags "github.com/bokysan/artr/internal/flags"
	"github.com/bokysan/artr/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Artr is the main executable
type Artr struct {
	parser *flags.Parser
}

// NewArtr will create a new instance of Artr and initialize the parser
func NewArtr() *Artr {
	executablePath := path.Base(os.Args[0])

	a := &Artr{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	a.setupGeneral()
	a.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	a.addCommand("encode", "Encode text", "Encode text (本音) into symbols (建前)", encode.NewCommand())
	a.addCommand("decode", "Decode symbols", "Decode symbols (建前) back into text (本音)", decode.NewCommand())
	a.addCommand("server", "Run the server", "Serve the encoder and the decoder over HTTP", server.NewCommand())

	return a
}

// setupGeneral will configure general options
func (a *Artr) setupGeneral() {
	if _, err := a.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

func (a *Artr) addCommand(command, shortDescription, longDescription string, data interface{}) {
	_, err := a.parser.AddCommand(command, shortDescription, longDescription, data)
	util.MustErrorNilOrExit(err)
}

// main starts artr and reads the configuration file
func main() {
	artr := NewArtr()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return artrFlags.NewYamlParser(artr.parser).ParseFile(file)
	}

	_, err := artr.parser.Parse()
	util.MustErrorNilOrExit(err)
}
