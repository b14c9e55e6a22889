package cli

import (
	"fmt"

	"github.com/agentx-labs/nukit/internal/branding"
	"github.com/spf13/cobra"
)

// ExecutePluginInit runs the nu-plugin-init command with build info
// injected via ldflags.
func ExecutePluginInit(version, commit, date string) error {
	return execute(newPluginInitCmd(version), version, commit, date)
}

// ExecutePDFText runs the pdf-text command with build info injected via
// ldflags.
func ExecutePDFText(version, commit, date string) error {
	return execute(newPDFTextCmd(), version, commit, date)
}

func execute(cmd *cobra.Command, version, commit, date string) error {
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	cmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}}\n%s: %s\n", branding.DisplayName(), branding.Description()))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
