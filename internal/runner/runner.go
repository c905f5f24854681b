package runner

import (
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/rexgen"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Examples           goflags.StringSlice // Test cases the pattern must match
	Output             string
	Format             string
	Config             string
	Profile            string
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool

	Digits         bool
	NonDigits      bool
	Whitespace     bool
	NonWhitespace  bool
	Words          bool
	NonWords       bool
	Repetitions    bool
	MinRepetitions int
	MinSubstring   int
	Capture        bool
	NoAnchors      bool
	IgnoreCase     bool
	Extended       bool
	Escape         bool
	Surrogates     bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Generate a regular expression matching a set of example strings.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Examples, "list", "l", nil, "test cases the expression must match (file or repeated flag)", goflags.FileStringSliceOptions),
	)

	flagSet.CreateGroup("generation", "Generation",
		flagSet.BoolVarP(&opts.Digits, "digits", "d", false, "convert digit literals to \\d"),
		flagSet.BoolVarP(&opts.NonDigits, "non-digits", "nd", false, "convert non-digit literals to \\D"),
		flagSet.BoolVarP(&opts.Whitespace, "spaces", "s", false, "convert whitespace literals to \\s"),
		flagSet.BoolVarP(&opts.NonWhitespace, "non-spaces", "ns", false, "convert non-whitespace literals to \\S"),
		flagSet.BoolVarP(&opts.Words, "words", "w", false, "convert word literals to \\w"),
		flagSet.BoolVarP(&opts.NonWords, "non-words", "nw", false, "convert non-word literals to \\W"),
		flagSet.BoolVarP(&opts.Repetitions, "repetitions", "r", false, "convert repeated substrings to bounded quantifiers"),
		flagSet.IntVarP(&opts.MinRepetitions, "min-repetitions", "mr", 1, "quantify runs repeating strictly more than this many times"),
		flagSet.IntVarP(&opts.MinSubstring, "min-substring-length", "ml", 1, "minimum length of a quantified substring"),
		flagSet.BoolVarP(&opts.Capture, "capture-groups", "cg", false, "render capturing groups instead of non-capturing ones"),
		flagSet.BoolVarP(&opts.NoAnchors, "no-anchors", "na", false, "omit the surrounding ^ and $ anchors"),
		flagSet.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching with (?i)"),
		flagSet.BoolVarP(&opts.Extended, "extended", "x", false, "multiline verbose rendering with (?x)"),
		flagSet.BoolVarP(&opts.Escape, "escape", "e", false, "escape non-ASCII characters"),
		flagSet.BoolVarP(&opts.Surrogates, "surrogates", "sp", false, "use UTF-16 surrogate pairs when escaping astral characters"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write the generated pattern"),
		flagSet.StringVarP(&opts.Format, "format", "f", "{{pattern}}", "output template applied to the generated pattern"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display rexgen version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `rexgen cli config file (default '$HOME/.config/rexgen/config.yaml')`),
		flagSet.StringVar(&opts.Profile, "profile", "", `option profile file (default '$HOME/.config/rexgen/profile.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update rexgen to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic rexgen update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("rexgen")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("rexgen version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current rexgen version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		for _, line := range strings.Split(string(bin), "\n") {
			line = strings.TrimRight(line, "\r")
			if line != "" {
				opts.Examples = append(opts.Examples, line)
			}
		}
	}

	if len(opts.Examples) == 0 {
		gologger.Fatal().Msgf("rexgen: no input found")
	}

	return opts
}

// ToOptions expands CLI flags on top of the active profile into the
// generator option bundle.
func (o *Options) ToOptions() *rexgen.Options {
	profile := rexgen.DefaultConfig
	if o.Profile != "" {
		cfg, err := rexgen.NewConfig(o.Profile)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", o.Profile, err)
		}
		profile = *cfg
	}
	opts := profile.Options([]string(o.Examples))
	if o.Digits {
		opts.ConversionOfDigits = true
	}
	if o.NonDigits {
		opts.ConversionOfNonDigits = true
	}
	if o.Whitespace {
		opts.ConversionOfWhitespace = true
	}
	if o.NonWhitespace {
		opts.ConversionOfNonWhitespace = true
	}
	if o.Words {
		opts.ConversionOfWords = true
	}
	if o.NonWords {
		opts.ConversionOfNonWords = true
	}
	if o.Repetitions {
		opts.ConversionOfRepetitions = true
	}
	if o.MinRepetitions != 1 {
		opts.MinimumRepetitions = o.MinRepetitions
	}
	if o.MinSubstring != 1 {
		opts.MinimumSubstringLength = o.MinSubstring
	}
	if o.Capture {
		opts.CapturingGroups = true
	}
	if o.NoAnchors {
		opts.WithoutAnchors = true
	}
	if o.IgnoreCase {
		opts.CaseInsensitiveMatching = true
	}
	if o.Extended {
		opts.VerboseMode = true
	}
	if o.Escape {
		opts.EscapeNonASCII = true
	}
	if o.Surrogates {
		opts.UseSurrogatePairs = true
	}
	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
