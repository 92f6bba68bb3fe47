package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AWSToolbox/get-aws-regions-package/pkg/logger"
	awsprovider "github.com/AWSToolbox/get-aws-regions-package/pkg/providers/aws"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check AWS credentials and service access",
	Long: `Print the resolved AWS configuration, the caller identity, and the result
of probing the EC2 and SSM operations the region listing depends on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Diagnostics go to the console regardless of logger config.
		logger.GlobalEnableConsoleLogger = true

		var providerOpts []awsprovider.Option
		if profile := viper.GetString("aws.profile"); profile != "" {
			providerOpts = append(providerOpts, awsprovider.WithProfile(profile))
		}

		provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), providerOpts...)
		if err != nil {
			return fmt.Errorf("failed to initialize AWS provider: %w", err)
		}

		return provider.PrintDiagnostics(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}
