// Command uidom formats HTML files, renders markdown and saves rendered
// output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/ryanhamamura/uidom"
)

const version = "0.1.0"

var logger = uidom.NewConsoleLogger(zerolog.InfoLevel)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "fmt":
		err = runFmt(args, os.Stdin, os.Stdout)
	case "md":
		err = runMD(args, os.Stdout)
	case "save":
		err = runSave(args, os.Stdout)
	case "tree":
		err = runTree(args, os.Stdin, os.Stdout)
	case "version":
		fmt.Printf("uidom version %s\n", version)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		logger.Error().Str("command", cmd).Msg("unknown command")
		printUsage(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		logger.Error().Err(err).Str("command", cmd).Msg("failed")
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, `uidom - build, format and save markup trees

Usage:
  uidom <command> [flags] [files]

Commands:
  fmt [files]     Parse HTML and print it re-indented (stdin when no file)
  md <file>       Render a markdown file to HTML
  save <file>     Render a HTML or markdown file into a directory
  tree [file]     Print the node tree of a HTML file
  version         Print version
  help            Show this help

Run 'uidom <command> -h' for the flags of a command.`)
}
