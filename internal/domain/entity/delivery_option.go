package entity

// DeliveryOptionID identifies one of the fixed delivery tiers.
type DeliveryOptionID string

const (
	// DeliveryStandard is the free default tier.
	DeliveryStandard DeliveryOptionID = "standard"
	// DeliveryExpress is the mid tier.
	DeliveryExpress DeliveryOptionID = "express"
	// DeliveryOvernight is the next-business-day tier.
	DeliveryOvernight DeliveryOptionID = "overnight"
)

// DeliveryOption is a fixed, non-persisted delivery tier. Selection is
// transient per checkout session.
type DeliveryOption struct {
	ID       DeliveryOptionID `json:"id"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Fee      int64            `json:"fee"`
	Duration string           `json:"duration"`
}

// deliveryOptions is the full catalog of tiers, in presentation order.
var deliveryOptions = []DeliveryOption{
	{ID: DeliveryStandard, Title: "Standard Delivery", Subtitle: "5-7 business days", Fee: 0, Duration: "5-7 days"},
	{ID: DeliveryExpress, Title: "Express Delivery", Subtitle: "2-3 business days", Fee: 100, Duration: "2-3 days"},
	{ID: DeliveryOvernight, Title: "Overnight Delivery", Subtitle: "Next business day", Fee: 250, Duration: "1 day"},
}

// DeliveryOptions returns all delivery tiers.
func DeliveryOptions() []DeliveryOption {
	options := make([]DeliveryOption, len(deliveryOptions))
	copy(options, deliveryOptions)

	return options
}

// DeliveryOptionByID looks up a tier by its identifier.
func DeliveryOptionByID(id DeliveryOptionID) (DeliveryOption, bool) {
	for _, option := range deliveryOptions {
		if option.ID == id {
			return option, true
		}
	}

	return DeliveryOption{}, false
}

// DefaultDeliveryOption is the tier pre-selected for every checkout session.
func DefaultDeliveryOption() DeliveryOption {
	return deliveryOptions[0]
}
