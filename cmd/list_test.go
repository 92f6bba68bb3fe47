package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AWSToolbox/get-aws-regions-package/internal/testdata"
	mocks "github.com/AWSToolbox/get-aws-regions-package/mocks/aws"
	awsprovider "github.com/AWSToolbox/get-aws-regions-package/pkg/providers/aws"
)

// stubProvider swaps the provider constructor for one backed by mocks for
// the duration of the test.
func stubProvider(t *testing.T, ec2Mock *mocks.MockEC2Clienter, ssmMock *mocks.MockSSMClienter) {
	t.Helper()
	orig := awsprovider.NewAWSProviderFunc
	awsprovider.NewAWSProviderFunc = func(ctx context.Context, opts ...awsprovider.Option) (*awsprovider.AWSProvider, error) {
		provider := &awsprovider.AWSProvider{}
		for _, opt := range opts {
			opt(provider)
		}
		provider.SetEC2Client(ec2Mock)
		if ssmMock != nil {
			provider.SetSSMClient(ssmMock)
		}
		return provider, nil
	}
	t.Cleanup(func() {
		awsprovider.NewAWSProviderFunc = orig
		viper.Reset()
	})
}

func TestListCommandText(t *testing.T) {
	mockEC2Client := new(mocks.MockEC2Clienter)
	mockEC2Client.On("DescribeRegions", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeRegionsOutput(), nil)
	stubProvider(t, mockEC2Client, nil)

	output, err := ExecuteCommand(rootCmd, "list", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, output, "af-south-1")
	assert.Contains(t, output, "eu-west-2")
	assert.Contains(t, output, "us-east-1")
	assert.NotContains(t, output, "ap-east-1")
}

func TestListCommandExcludeFlag(t *testing.T) {
	mockEC2Client := new(mocks.MockEC2Clienter)
	mockEC2Client.On("DescribeRegions", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeRegionsOutput(), nil)
	stubProvider(t, mockEC2Client, nil)

	output, err := ExecuteCommand(rootCmd, "list", "--exclude", "eu-west-2", "--output", "text")
	require.NoError(t, err)
	assert.NotContains(t, output, "eu-west-2")
	assert.Contains(t, output, "us-east-1")

	// Reset the accumulated slice flag for later tests.
	excludeRegions = nil
}

func TestListCommandJSONDetails(t *testing.T) {
	mockEC2Client := new(mocks.MockEC2Clienter)
	mockEC2Client.On("DescribeRegions", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeRegionsOutput(), nil)

	mockSSMClient := new(mocks.MockSSMClienter)
	mockSSMClient.On("GetParameter", mock.Anything, mock.Anything).
		Return(nil, errors.New("ParameterNotFound")).Once()
	mockSSMClient.On("GetParameter", mock.Anything, mock.Anything).
		Return(testdata.FakeGetParameterOutput("US East (N. Virginia)"), nil)

	stubProvider(t, mockEC2Client, mockSSMClient)

	output, err := ExecuteCommand(rootCmd, "list", "--details", "--output", "json")
	require.NoError(t, err)

	var regions []awsprovider.Region
	require.NoError(t, json.Unmarshal([]byte(output), &regions))
	assert.Len(t, regions, 3)
	assert.Equal(t, "af-south-1", regions[0].Name)

	withDetails = false
	outputFormat = "text"
}

func TestListCommandUnknownOutput(t *testing.T) {
	mockEC2Client := new(mocks.MockEC2Clienter)
	mockEC2Client.On("DescribeRegions", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeRegionsOutput(), nil)
	stubProvider(t, mockEC2Client, nil)

	_, err := ExecuteCommand(rootCmd, "list", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	outputFormat = "text"
}
