package catalog

// Stats summarizes a catalog.
type Stats struct {
	ObjectsNum    int     `json:"objectsNum"    yaml:"objects_num"`
	TotalSize     float64 `json:"totalSize"     yaml:"total_size"`
	AvgSize       float64 `json:"avgSize"       yaml:"avg_size"`
	AvgFrequency  float64 `json:"avgFrequency"  yaml:"avg_frequency"`
	DiskSpace     float64 `json:"diskSpace"     yaml:"disk_space"`
	TokenCount    int     `json:"tokenCount"    yaml:"token_count"`
	OverCommitted bool    `json:"overCommitted" yaml:"over_committed"`
	Fingerprint   string  `json:"fingerprint"   yaml:"fingerprint"`
}

// Stats calculates summary statistics of the catalog. Averages are zero
// for an empty catalog.
func (c *Catalog) Stats() Stats {
	res := Stats{
		ObjectsNum:  len(c.objects),
		TotalSize:   c.TotalSize(),
		DiskSpace:   c.diskSpace,
		TokenCount:  c.tokenCount,
		Fingerprint: c.Fingerprint(),
	}
	if res.ObjectsNum == 0 {
		return res
	}

	var freq float64
	for _, v := range c.objects {
		freq += v.AccessFrequency
	}
	n := float64(res.ObjectsNum)
	res.AvgSize = res.TotalSize / n
	res.AvgFrequency = freq / n
	res.OverCommitted = res.TotalSize > c.diskSpace
	return res
}
