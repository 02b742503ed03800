package main

import (
	"github.com/jbcoin/jbcd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("RPLY")

func initLog(logFile, errLogFile string, level logger.Level) {
	logger.InitLog(logFile, errLogFile)
	logger.SetLogLevels(level)
}
