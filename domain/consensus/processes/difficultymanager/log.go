package difficultymanager

import (
	"github.com/jbcoin/jbcd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("DIFF")
