package request

// SubmitEntryRequest is the request body for submitting a score. Fields
// are pointers so missing values are distinguishable from zeros; Time is
// the older alias for FinishedTime.
type SubmitEntryRequest struct {
	Name         string `json:"name"`
	Score        *int   `json:"score"`
	FinishedTime *int   `json:"finishedTime"`
	Time         *int   `json:"time"`
}

// FinishedSeconds returns finishedTime, falling back to time, or nil if
// neither was supplied
func (r *SubmitEntryRequest) FinishedSeconds() *int {
	if r.FinishedTime != nil {
		return r.FinishedTime
	}
	return r.Time
}
