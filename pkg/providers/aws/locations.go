package awsprovider

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"golang.org/x/sync/errgroup"

	"github.com/AWSToolbox/get-aws-regions-package/pkg/logger"
)

// regionLongNamePath is the public SSM parameter holding a region's
// geographic long name, e.g. "US East (N. Virginia)" for us-east-1.
const regionLongNamePath = "/aws/service/global-infrastructure/regions/%s/longName"

// fetchRegionLocations looks up the geographic long name for each named
// region, one goroutine per region, joined before returning. Lookups are
// best-effort: a failed or missing parameter leaves that region out of the
// returned map and never affects the other lookups.
func (p *AWSProvider) fetchRegionLocations(ctx context.Context, names []string) map[string]string {
	locations := make(map[string]string, len(names))
	if len(names) == 0 {
		return locations
	}

	l := logger.Get()

	var mu sync.Mutex
	var eg errgroup.Group
	for _, name := range names {
		name := name
		eg.Go(func() error {
			output, err := p.SSMClient.GetParameter(ctx, &ssm.GetParameterInput{
				Name: aws.String(fmt.Sprintf(regionLongNamePath, name)),
			})
			if err != nil {
				l.Debugf("No geographic location available for region %s: %v", name, err)
				return nil
			}
			if output.Parameter == nil || output.Parameter.Value == nil {
				return nil
			}
			mu.Lock()
			locations[name] = *output.Parameter.Value
			mu.Unlock()
			return nil
		})
	}
	// Tasks swallow their own errors; Wait is a pure join here.
	_ = eg.Wait()

	return locations
}
