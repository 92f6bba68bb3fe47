package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	awsprovider "github.com/AWSToolbox/get-aws-regions-package/pkg/providers/aws"
)

var (
	includeRegions []string
	excludeRegions []string
	allRegions     bool
	withDetails    bool
	outputFormat   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the AWS regions visible to the account",
	Long: `List the AWS regions the account can use, sorted by name. With --details
each region is reported with its opt-in status and geographic location,
fetched concurrently from the SSM global-infrastructure parameters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := awsprovider.ListOptions{
			Include:    includeRegions,
			Exclude:    excludeRegions,
			AllRegions: allRegions,
		}
		if len(opts.Include) == 0 {
			opts.Include = viper.GetStringSlice("regions.include")
		}
		if len(opts.Exclude) == 0 {
			opts.Exclude = viper.GetStringSlice("regions.exclude")
		}

		var providerOpts []awsprovider.Option
		if profile := viper.GetString("aws.profile"); profile != "" {
			providerOpts = append(providerOpts, awsprovider.WithProfile(profile))
		}

		provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), providerOpts...)
		if err != nil {
			return fmt.Errorf("failed to initialize AWS provider: %w", err)
		}

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " Fetching regions..."
		s.Start()

		var result interface{}
		if withDetails {
			regions, err := provider.GetRegionList(cmd.Context(), opts)
			s.Stop()
			if err != nil {
				return err
			}
			result = regions
		} else {
			names, err := provider.GetRegionNames(cmd.Context(), opts)
			s.Stop()
			if err != nil {
				return err
			}
			result = names
		}

		return printResult(cmd, result, outputFormat)
	},
}

func printResult(cmd *cobra.Command, result interface{}, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Print(string(data))
	case "text":
		switch v := result.(type) {
		case []string:
			for _, name := range v {
				cmd.Println(name)
			}
		case []awsprovider.Region:
			for _, region := range v {
				if region.Location != "" {
					cmd.Printf("%s\t%s\n", region.Name, region.Location)
				} else {
					cmd.Println(region.Name)
				}
			}
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func init() {
	listCmd.Flags().
		StringSliceVar(&includeRegions, "include", nil, "Only include the named regions")
	listCmd.Flags().
		StringSliceVar(&excludeRegions, "exclude", nil, "Exclude the named regions")
	listCmd.Flags().
		BoolVar(&allRegions, "all-regions", true, "Include regions enabled by default without an explicit opt-in")
	listCmd.Flags().
		BoolVar(&withDetails, "details", false, "Include opt-in status and geographic location per region")
	listCmd.Flags().
		StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(listCmd)
}
