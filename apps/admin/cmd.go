package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/juntaeschool/backend/core/space"
)

var errHelp = errors.New("help provided")

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed                                    - load the fixture dataset into the configured store")
	fmt.Println("  overview                                - print the community dashboard figures")
	fmt.Println("  addspace -name NAME -type TYPE [-icon ICON] - create a space")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addSpaceCmd := flag.NewFlagSet("addspace", flag.ExitOnError)
	addSpaceName := addSpaceCmd.String("name", "", "The space's display name.")
	addSpaceType := addSpaceCmd.String("type", "", "The space type: home|course|forum|event|resource.")
	addSpaceIcon := addSpaceCmd.String("icon", "", "An optional icon name.")

	switch args[1] {
	case "seed":
		return cli.seed()
	case "overview":
		return cli.overview()
	case "addspace":
		if err := addSpaceCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addSpaceName == "" || !space.Type(*addSpaceType).Valid() {
			addSpaceCmd.Usage()
			return errHelp
		}
		return cli.addSpace(*addSpaceName, *addSpaceType, *addSpaceIcon)
	default:
		cli.printUsage()
		return errHelp
	}
}
