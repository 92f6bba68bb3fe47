package awsprovider

import (
	"context"
	"sort"
)

// ListOptions controls filtering of the region list.
type ListOptions struct {
	// Include keeps only the named regions when non-empty.
	Include []string
	// Exclude drops the named regions unconditionally, even when a name also
	// appears in Include.
	Exclude []string
	// AllRegions keeps regions that are enabled by default without an
	// explicit opt-in. When false, only explicitly opted-in regions remain.
	AllRegions bool
}

// Region is one entry of a detailed region list. Location is empty when the
// geographic long name could not be fetched for that region.
type Region struct {
	Name     string `json:"name"               yaml:"name"`
	OptedIn  bool   `json:"opted_in"           yaml:"opted_in"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// GetRegionNames returns the sorted names of the regions visible to the
// account after include/exclude filtering.
func (p *AWSProvider) GetRegionNames(ctx context.Context, opts ListOptions) ([]string, error) {
	regions, err := p.fetchUsableRegions(ctx)
	if err != nil {
		return nil, err
	}

	return regionNames(applyRegionFilters(regions, opts)), nil
}

// GetRegionList returns the filtered regions with their opt-in status and,
// where available, geographic location. Location lookups run concurrently,
// one per region, and a lookup failure leaves that region's Location empty
// rather than dropping the region or failing the call.
func (p *AWSProvider) GetRegionList(ctx context.Context, opts ListOptions) ([]Region, error) {
	regions, err := p.fetchUsableRegions(ctx)
	if err != nil {
		return nil, err
	}

	filtered := applyRegionFilters(regions, opts)
	locations := p.fetchRegionLocations(ctx, regionNames(filtered))

	result := make([]Region, len(filtered))
	for i, region := range filtered {
		result[i] = Region{
			Name:     region.Name,
			OptedIn:  region.OptedIn,
			Location: locations[region.Name],
		}
	}

	return result, nil
}

// applyRegionFilters narrows the usable set to the requested candidates,
// applies the include filter then the exclude filter, drops duplicates, and
// sorts ascending by name.
func applyRegionFilters(regions []RegionInfo, opts ListOptions) []RegionInfo {
	include := toSet(opts.Include)
	exclude := toSet(opts.Exclude)

	seen := make(map[string]bool, len(regions))
	filtered := make([]RegionInfo, 0, len(regions))
	for _, region := range regions {
		if seen[region.Name] {
			continue
		}
		if !opts.AllRegions && !region.OptedIn {
			continue
		}
		if len(include) > 0 && !include[region.Name] {
			continue
		}
		if exclude[region.Name] {
			continue
		}
		seen[region.Name] = true
		filtered = append(filtered, region)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
	})

	return filtered
}

func regionNames(regions []RegionInfo) []string {
	names := make([]string, len(regions))
	for i, region := range regions {
		names[i] = region.Name
	}
	return names
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
