package predeploys

import (
	"github.com/hashicorp/go-hclog"
)

// LogEntries writes every registered address to logger at debug level
func LogEntries(logger hclog.Logger) {
	if logger == nil {
		return
	}

	logger = logger.Named("predeploys")

	for _, e := range entries {
		logger.Debug("predeploy address",
			"name", e.Name.String(),
			"category", e.Category.String(),
			"address", e.Hex,
		)
	}
}
