package main

import (
	"io"
	"log"
	"os"

	"github.com/viniciusth/suffixtree/internal/batch"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	version = "head"
	app     = kingpin.New("lcp", "Longest common prefixes between suffixes of two texts")
)

var args = struct {
	textOne *string
	textTwo *string
	pairs   *string
	config  *string
	output  *string
	fold    *bool
	verbose *bool
}{
	app.Arg("text-one", "File holding the first text").String(),
	app.Arg("text-two", "File holding the second text").String(),
	app.Arg("pairs", "File with one 'i j' offset pair per line").String(),
	app.Flag("config", "TOML file with default settings").Short('c').ExistingFile(),
	app.Flag("output", "Write answers here instead of stdout").Short('o').String(),
	app.Flag("fold", "Lower case the texts and strip accents before indexing").Bool(),
	app.Flag("verbose", "Log sizes and progress to stderr").Short('v').Bool(),
}

func main() {
	app.HelpFlag.Short('h')
	app.Version(version)
	app.VersionFlag.Short('V')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetFlags(0)

	var s batch.Settings
	if *args.config != "" {
		var err error
		s, err = batch.LoadSettings(*args.config)
		app.FatalIfError(err, "")
	}
	override(&s.TextOne, *args.textOne)
	override(&s.TextTwo, *args.textTwo)
	override(&s.Pairs, *args.pairs)
	override(&s.Output, *args.output)
	s.Fold = s.Fold || *args.fold
	s.Verbose = s.Verbose || *args.verbose

	app.FatalIfError(s.Validate(), "")

	var logf batch.Logf
	if s.Verbose {
		logf = log.Printf
	}

	app.FatalIfError(run(s, logf), "")
}

func run(s batch.Settings, logf batch.Logf) error {
	var out io.Writer = os.Stdout
	if s.Output != "" {
		f, err := os.Create(s.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return batch.Run(s, out, logf)
}

func override(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}
