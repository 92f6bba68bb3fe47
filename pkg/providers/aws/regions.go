package awsprovider

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// Opt-in status values returned by DescribeRegions.
const (
	OptInStatusOptedIn     = "opted-in"
	OptInStatusNotOptedIn  = "not-opted-in"
	OptInStatusNotRequired = "opt-in-not-required"
)

// RegionInfo carries one region's enumeration result. OptedIn is true only
// for an explicit account opt-in, not for regions enabled by default.
type RegionInfo struct {
	Name    string
	OptedIn bool
}

// fetchUsableRegions issues a single DescribeRegions call covering every
// region visible to the account and keeps the ones the account can use:
// explicitly opted in, or enabled by default. Regions the account has not
// opted into never enter the candidate pool.
func (p *AWSProvider) fetchUsableRegions(ctx context.Context) ([]RegionInfo, error) {
	output, err := p.EC2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(true),
	})
	if err != nil {
		return nil, newRegionListingError("region enumeration", err)
	}

	regions := make([]RegionInfo, 0, len(output.Regions))
	for _, region := range output.Regions {
		name := aws.ToString(region.RegionName)
		if name == "" {
			return nil, newRegionListingError(
				"region enumeration",
				errors.New("region entry without a name in DescribeRegions response"),
			)
		}

		switch status := aws.ToString(region.OptInStatus); status {
		case OptInStatusOptedIn:
			regions = append(regions, RegionInfo{Name: name, OptedIn: true})
		case OptInStatusNotRequired:
			regions = append(regions, RegionInfo{Name: name, OptedIn: false})
		case OptInStatusNotOptedIn:
			// visible but not usable by this account
		default:
			return nil, newRegionListingError(
				"region enumeration",
				fmt.Errorf("unknown opt-in status %q for region %s", status, name),
			)
		}
	}

	return regions, nil
}
