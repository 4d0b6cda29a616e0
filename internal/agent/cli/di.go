package cli

import (
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/linkbuzz/internal/agent/api"
)

// для тестов
var (
	NewAPIClient = api.NewClient
	ReadPassword = func(cmd *cobra.Command, prompt string) (string, error) {
		return readPassword(cmd, prompt)
	}
)
