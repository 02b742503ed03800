package ldb

import "github.com/jbcoin/jbcd/infrastructure/logger"

var log = logger.RegisterSubSystem("KVDB")
