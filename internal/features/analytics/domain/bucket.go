package domain

// Bucket groups recent-location values into coarse shipment states.
type Bucket string

const (
	BucketReturn    Bucket = "Return"
	BucketPending   Bucket = "Pending"
	BucketDelivered Bucket = "Delivered"
	BucketInTransit Bucket = "In Transit"
)

// bucketLocations lists the exact courier checkpoints of each bucket.
// Anything unlisted is In Transit.
var bucketLocations = map[string]Bucket{
	"Returned to shipper": BucketReturn,
	"Being Return":        BucketReturn,
	"Pickup Request Sent": BucketReturn,
	"Ready for Return":    BucketReturn,
	"Pending":             BucketPending,
	"Delivered":           BucketDelivered,
	"Arrived at Station":  BucketInTransit,
	"Dispatched":          BucketInTransit,
	"Assign to Courier":   BucketInTransit,
}

// Classify maps a recent location to its bucket. Matching is exact and case-sensitive.
func Classify(recentLocation string) Bucket {
	if b, ok := bucketLocations[recentLocation]; ok {
		return b
	}
	return BucketInTransit
}

// IsReturn reports whether the location belongs to the Return group.
func IsReturn(recentLocation string) bool {
	return Classify(recentLocation) == BucketReturn
}

// BucketShare is one slice of the status breakdown.
type BucketShare struct {
	Bucket Bucket `json:"bucket"`
	Count  int    `json:"count"`
	// Percent of all rows, rounded to one decimal place.
	Percent float64 `json:"percent"`
	// Emphasized marks the Return bucket for visual separation.
	Emphasized bool `json:"emphasized"`
}
