package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jbcoin/jbcd/domain/consensus/datastructures/blockindex"
	"github.com/jbcoin/jbcd/domain/consensus/processes/difficultymanager"
	"github.com/jbcoin/jbcd/domain/dagconfig"
	"github.com/jbcoin/jbcd/infrastructure/db/database"
	"github.com/jbcoin/jbcd/infrastructure/db/database/ldb"
	"github.com/jbcoin/jbcd/infrastructure/os/signal"
	"github.com/jbcoin/jbcd/util/panics"
	"github.com/jbcoin/jbcd/util/profiling"
	"github.com/jbcoin/jbcd/version"
	"github.com/pkg/errors"
)

func main() {
	defer panics.HandlePanic(log, nil)
	interrupt := signal.InterruptListener()

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}
	defer log.Backend().Close()

	// Show version at startup.
	log.Infof("Version %s", version.Version())
	log.Infof("Replaying headers of %s", cfg.NetParams().Name)

	// Enable http profiling server if requested.
	if cfg.Profile != "" {
		profiling.Start(cfg.Profile, log)
	}

	err = run(cfg, interrupt)
	if err != nil {
		log.Errorf("Replay failed: %+v", err)
		log.Backend().Close()
		os.Exit(1)
	}
}

func run(cfg *configFlags, interrupt <-chan struct{}) error {
	var db *ldb.LevelDB
	blockIndex := blockindex.New()
	if cfg.DataDir != "" {
		var err error
		db, err = ldb.NewLevelDB(cfg.DataDir, cfg.CacheSizeMiB)
		if err != nil {
			return err
		}
		defer func() {
			err := db.Close()
			if err != nil {
				log.Errorf("Error closing the database: %s", err)
			}
		}()

		blockIndex, err = blockindex.Load(db)
		if err != nil {
			return err
		}
	}

	input, err := openInput(cfg.InFile)
	if err != nil {
		return err
	}
	defer input.Close()

	replayer := newReplayer(cfg.NetParams(), blockIndex, cfg.StopOnMismatch)
	summary, replayErr := replayer.replay(input, interrupt)

	// Whatever was replayed is kept, even if the replay stopped on an error.
	if db != nil {
		err := saveBlockIndex(db, blockIndex)
		if err != nil {
			return err
		}
	}

	printSummary(os.Stdout, cfg.NetParams(), summary)
	return replayErr
}

func openInput(inFile string) (io.ReadCloser, error) {
	if inFile == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(inFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return file, nil
}

func saveBlockIndex(db database.Database, blockIndex *blockindex.BlockIndex) error {
	dbTx, err := db.Begin()
	if err != nil {
		return err
	}
	defer dbTx.RollbackUnlessClosed()

	err = blockIndex.Save(dbTx)
	if err != nil {
		return err
	}
	return dbTx.Commit()
}

func printSummary(writer io.Writer, params *dagconfig.Params, summary *replaySummary) {
	fmt.Fprintf(writer, "Replayed %d headers with %d difficulty mismatches\n", summary.blocks, summary.mismatches)
	if summary.tip == nil {
		fmt.Fprintln(writer, "The block index is empty")
		return
	}
	limit := difficultymanager.TargetLimit(summary.tip.Timestamp, summary.tip.Mode, params)
	fmt.Fprintf(writer, "Tip: height %d, %s, bits %08x, difficulty %s\n", summary.tip.Height, summary.tip.Mode,
		summary.tip.Bits, difficultymanager.DifficultyString(summary.tip.Bits, limit))
}
