package pow

import (
	"github.com/jbcoin/jbcd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("POWV")
