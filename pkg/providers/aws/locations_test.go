package awsprovider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AWSToolbox/get-aws-regions-package/internal/testdata"
	mocks "github.com/AWSToolbox/get-aws-regions-package/mocks/aws"
)

func matchParameterForRegion(name string) interface{} {
	return mock.MatchedBy(func(input *ssm.GetParameterInput) bool {
		return input.Name != nil && strings.Contains(*input.Name, "/regions/"+name+"/")
	})
}

func TestFetchRegionLocations(t *testing.T) {
	mockSSMClient := new(mocks.MockSSMClienter)
	mockSSMClient.On("GetParameter", mock.Anything, matchParameterForRegion("us-east-1")).
		Return(testdata.FakeGetParameterOutput("US East (N. Virginia)"), nil)
	mockSSMClient.On("GetParameter", mock.Anything, matchParameterForRegion("af-south-1")).
		Return(testdata.FakeGetParameterOutput("Africa (Cape Town)"), nil)

	provider := &AWSProvider{}
	provider.SetSSMClient(mockSSMClient)

	locations := provider.fetchRegionLocations(
		context.Background(),
		[]string{"us-east-1", "af-south-1"},
	)

	assert.Equal(t, map[string]string{
		"us-east-1":  "US East (N. Virginia)",
		"af-south-1": "Africa (Cape Town)",
	}, locations)
}

func TestFetchRegionLocationsPartialFailure(t *testing.T) {
	mockSSMClient := new(mocks.MockSSMClienter)
	mockSSMClient.On("GetParameter", mock.Anything, matchParameterForRegion("us-east-1")).
		Return(testdata.FakeGetParameterOutput("US East (N. Virginia)"), nil)
	mockSSMClient.On("GetParameter", mock.Anything, matchParameterForRegion("eu-west-2")).
		Return(nil, errors.New("ParameterNotFound"))

	provider := &AWSProvider{}
	provider.SetSSMClient(mockSSMClient)

	locations := provider.fetchRegionLocations(
		context.Background(),
		[]string{"us-east-1", "eu-west-2"},
	)

	assert.Equal(t, map[string]string{"us-east-1": "US East (N. Virginia)"}, locations)
	assert.NotContains(t, locations, "eu-west-2")
}

func TestFetchRegionLocationsEmptySet(t *testing.T) {
	mockSSMClient := new(mocks.MockSSMClienter)

	provider := &AWSProvider{}
	provider.SetSSMClient(mockSSMClient)

	locations := provider.fetchRegionLocations(context.Background(), nil)

	assert.Empty(t, locations)
	mockSSMClient.AssertNotCalled(t, "GetParameter", mock.Anything, mock.Anything)
}

func TestFetchRegionLocationsNilParameterValue(t *testing.T) {
	mockSSMClient := new(mocks.MockSSMClienter)
	mockSSMClient.On("GetParameter", mock.Anything, mock.Anything).
		Return(&ssm.GetParameterOutput{}, nil)

	provider := &AWSProvider{}
	provider.SetSSMClient(mockSSMClient)

	locations := provider.fetchRegionLocations(context.Background(), []string{"us-east-1"})
	assert.Empty(t, locations)
}
