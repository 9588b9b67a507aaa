package csvimport

// DefaultCurrency is the ISO 4217 code assigned when a source carries none.
const DefaultCurrency = "USD"

// Kind classifies what a catalog item is.
type Kind string

const (
	KindPhysicalGood Kind = "physical_good"
	KindService      Kind = "service"
)

const (
	AvailabilityInStock    = "in_stock"
	AvailabilityOutOfStock = "out_of_stock"
)

// Record is one normalized catalog item, independent of the upload format.
type Record struct {
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	Kind              Kind    `json:"kind"`
	Unit              string  `json:"unit"`
	Brand             *string `json:"brand,omitempty"`
	ImageURL          *string `json:"image_url,omitempty"`
	IsAvailable       bool    `json:"is_available"`
	SearchEligible    bool    `json:"search_eligible"`
	CheckoutEligible  bool    `json:"checkout_eligible"`
	AvailabilityState string  `json:"availability_state"`
	// InitialQuantity is set only when the source carried a usable stock
	// count. Nil means inventory must not be touched.
	InitialQuantity *int `json:"initial_quantity,omitempty"`
}

// Outcome is the result of normalizing one row: an accepted record or a
// rejection with a reason.
type Outcome struct {
	record   Record
	reason   string
	accepted bool
}

// Accept wraps a normalized record.
func Accept(record Record) Outcome {
	return Outcome{record: record, accepted: true}
}

// Reject marks a row as not normalizable.
func Reject(reason string) Outcome {
	return Outcome{reason: reason}
}

// Record returns the normalized record and true, or false for a rejection.
func (o Outcome) Record() (Record, bool) {
	if !o.accepted {
		return Record{}, false
	}
	return o.record, true
}

// Accepted reports whether the row produced a record.
func (o Outcome) Accepted() bool {
	return o.accepted
}

// Reason returns why the row was rejected. It is empty for accepted rows.
func (o Outcome) Reason() string {
	return o.reason
}

// Rejection reasons shared by the adapters.
const (
	ReasonMissingName     = "missing name"
	ReasonMissingPrice    = "missing price"
	ReasonInvalidPrice    = "invalid price"
	ReasonNegativePrice   = "negative price"
	ReasonInvalidCurrency = "invalid currency"
	ReasonInvalidKind     = "invalid kind"
)
