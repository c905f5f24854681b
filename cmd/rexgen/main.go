package main

import (
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/rexgen"
	"github.com/projectdiscovery/rexgen/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	generator, err := rexgen.New(cliOpts.ToOptions())
	if err != nil {
		gologger.Fatal().Msgf("failed to parse rexgen options got %v", err)
	}

	pattern := generator.Generate()

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if _, err := output.Write([]byte(rexgen.FormatPattern(cliOpts.Format, pattern) + "\n")); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
