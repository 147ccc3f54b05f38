package request

type ProbeRecordQuery struct {
	VariantID string `form:"variant_id"`
	Limit     *int   `form:"limit" binding:"omitempty,gte=1,lte=100"`
	Offset    *int   `form:"offset" binding:"omitempty,gte=0"`
}

const DefaultProbeRecordLimit = 20

func (q ProbeRecordQuery) LimitOrDefault() int {
	if q.Limit == nil {
		return DefaultProbeRecordLimit
	}
	return *q.Limit
}

func (q ProbeRecordQuery) OffsetOrDefault() int {
	if q.Offset == nil {
		return 0
	}
	return *q.Offset
}
