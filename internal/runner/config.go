package runner

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/rexgen"
	fileutil "github.com/projectdiscovery/utils/file"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	// load the default option profile if one exists, otherwise write a sample
	if fileutil.FileExists(rexgen.DefaultProfilePath) {
		if bin, err := os.ReadFile(rexgen.DefaultProfilePath); err == nil {
			var cfg rexgen.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				rexgen.DefaultConfig = cfg
				return
			} else {
				gologger.Error().Msgf("rexgen yaml profile syntax error.\n %v\n.", yaml.FormatError(errx, true, true))
				os.Exit(1)
			}
		}
	}
	if err := validateDir(filepath.Join(getUserHomeDir(), ".config/rexgen")); err != nil {
		gologger.Error().Msgf("rexgen config dir not found and failed to create got: %v", err)
	}
	if err := rexgen.GenerateSample(rexgen.DefaultProfilePath); err != nil {
		gologger.Error().Msgf("failed to save default profile to %v got: %v", rexgen.DefaultProfilePath, err)
	}
}

// validateDir checks if dir exists if not creates it
func validateDir(dirPath string) error {
	if fileutil.FolderExists(dirPath) {
		return nil
	}
	return fileutil.CreateFolder(dirPath)
}
