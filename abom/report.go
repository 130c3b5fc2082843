package abom

// FilterReport describes one Bloom filter inside a container.
type FilterReport struct {
	Size              int     `json:"size"`
	Ones              int     `json:"ones"`
	Saturation        float64 `json:"saturation"`
	FalsePositiveRate float64 `json:"falsePositiveRate"`
}

// Report summarizes a container the way the dump command presents it.
type Report struct {
	Version         int            `json:"version"`
	Filters         int            `json:"filters"`
	Ones            int            `json:"ones"`
	OnesProbability float64        `json:"onesProbability"`
	HeaderBytes     int            `json:"headerBytes"`
	PayloadBytes    int            `json:"payloadBytes"`
	TotalBytes      int            `json:"totalBytes"`
	Detail          []FilterReport `json:"detail"`
}

// Report serializes the container once to measure it and summarizes the
// filters. An empty container materializes its first filter here, same
// as in Dump.
func (it *ABOM) Report() (*Report, error) {
	serialized, err := it.Serialize()
	if err != nil {
		return nil, err
	}
	report := &Report{
		Version:         ProtocolVersion,
		Filters:         len(it.filters),
		Ones:            it.Ones(),
		OnesProbability: float64(it.Ones()) / float64(len(it.filters)*FilterSize),
		HeaderBytes:     HeaderSize,
		PayloadBytes:    len(serialized) - HeaderSize,
		TotalBytes:      len(serialized),
	}
	for _, filter := range it.filters {
		report.Detail = append(report.Detail, FilterReport{
			Size:              filter.Size(),
			Ones:              filter.Ones(),
			Saturation:        float64(filter.Ones()) / float64(filter.Size()),
			FalsePositiveRate: filter.FalsePositiveRate(),
		})
	}
	return report, nil
}
