package blockvalidator

import (
	"github.com/jbcoin/jbcd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("BLVL")
