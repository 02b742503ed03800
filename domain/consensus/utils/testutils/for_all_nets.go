package testutils

import (
	"testing"

	"github.com/jbcoin/jbcd/domain/dagconfig"
)

// ForAllNets runs the passed testFunc with all available networks.
// Every run gets its own copy of the params, so testFunc may modify them.
// If skipNoRetargeting is true, networks with retargeting disabled are skipped.
func ForAllNets(t *testing.T, skipNoRetargeting bool, testFunc func(*testing.T, *dagconfig.Params)) {
	allParams := []*dagconfig.Params{
		&dagconfig.MainnetParams,
		&dagconfig.TestnetParams,
		&dagconfig.RegressionNetParams,
		&dagconfig.SimnetParams,
		&dagconfig.DevnetParams,
	}

	for _, params := range allParams {
		if skipNoRetargeting && params.PowNoRetargeting {
			continue
		}
		params := params.Clone()
		t.Run(params.Name, func(t *testing.T) {
			t.Parallel()
			t.Logf("Running test for %s", params.Name)
			testFunc(t, params)
		})
	}
}
