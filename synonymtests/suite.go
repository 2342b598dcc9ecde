package synonymtests

import (
	"github.com/launchdarkly/synonym-registry/framework"
)

// RunTestSuite runs every test group in a fixed order.
func RunTestSuite(
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, Register)
}

// Register starts every test group under c. It is the action passed to framework.Run, and
// can also be passed to framework.Session.Run.
func Register(c *framework.Context) {
	c.Run("GetSynonymsCount", DoCountTests)
	c.Run("AreSynonyms", DoAreSynonymsTests)
	c.Run("AddSynonyms", DoAddSynonymsTests)
}
