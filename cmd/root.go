package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AWSToolbox/get-aws-regions-package/pkg/logger"
)

var (
	cfgFile     string
	awsProfile  string
	verboseMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aws-regions",
	Short: "aws-regions lists the AWS regions visible to an account",
	Long: `aws-regions retrieves the AWS regions visible to an account, optionally
enriched with each region's geographic location, with include/exclude
filtering and a stable sorted output.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.aws-regions.yaml)")
	rootCmd.PersistentFlags().
		StringVar(&awsProfile, "profile", "", "AWS profile to use for credentials")
	rootCmd.PersistentFlags().
		BoolVar(&verboseMode, "verbose", false, "Enable verbose output")

	_ = viper.BindPFlag("aws.profile", rootCmd.PersistentFlags().Lookup("profile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A local .env can supply AWS_* variables for the SDK's default chain.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".aws-regions")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verboseMode {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if verboseMode {
		viper.Set("general.enable_console_logger", true)
		viper.Set("general.log_level", "debug")
	}
	logger.InitLoggerOutputs()
}
