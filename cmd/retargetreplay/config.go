package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jbcoin/jbcd/infrastructure/config"
	"github.com/jbcoin/jbcd/infrastructure/logger"
	"github.com/jbcoin/jbcd/version"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultLogFilename    = "retargetreplay.log"
	defaultErrLogFilename = "retargetreplay_err.log"
	defaultLogLevel       = "info"
	defaultCacheSizeMiB   = 64
)

const defaultLogDir = "logs"

type configFlags struct {
	ShowVersion    bool   `short:"V" long:"version" description:"Display version information and exit"`
	InFile         string `short:"i" long:"infile" description:"File containing one JSON header per line ('-' for stdin)" required:"true"`
	DataDir        string `short:"b" long:"datadir" description:"Directory of a block index database to resume from and save to. If omitted, nothing is persisted."`
	CacheSizeMiB   int    `long:"cachesize" description:"LevelDB cache size in MiB"`
	LogDir         string `long:"logdir" description:"Directory to log output"`
	LogLevel       string `short:"d" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	StopOnMismatch bool   `long:"stop-on-mismatch" description:"Stop at the first header whose difficulty doesn't match"`
	Profile        string `long:"profile" description:"Enable HTTP profiling on given port -- NOTE port must be between 1024 and 65536"`
	config.NetworkFlags
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		LogDir:       defaultLogDir,
		LogLevel:     defaultLogLevel,
		CacheSizeMiB: defaultCacheSizeMiB,
	}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	logLevel, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if cfg.Profile != "" {
		profilePort, err := strconv.Atoi(cfg.Profile)
		if err != nil || profilePort < 1024 || profilePort > 65535 {
			return nil, errors.New("The profile port must be between 1024 and 65535")
		}
	}

	if cfg.CacheSizeMiB <= 0 {
		return nil, errors.Errorf("--cachesize must be positive, got %d", cfg.CacheSizeMiB)
	}

	// Namespace the data and log directories per network, so that replays
	// of different networks never mix.
	if cfg.DataDir != "" {
		cfg.DataDir = filepath.Join(cfg.DataDir, cfg.NetParams().Name)
	}
	logDir := filepath.Join(cfg.LogDir, cfg.NetParams().Name)
	initLog(filepath.Join(logDir, defaultLogFilename), filepath.Join(logDir, defaultErrLogFilename), logLevel)

	return cfg, nil
}
