package nglconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/ngl/configs"
	"github.com/reusee/ngl/logs"
	"github.com/reusee/ngl/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"ngl.cue",
	".ngl.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	if mode == modes.ModeDevelopment {
		return configs.NewLoader(paths, schema)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	return configs.NewLoader(paths, schema)
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
