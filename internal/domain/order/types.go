package order

import "strings"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// forward holds the single non-cancel successor of each status.
var forward = map[Status]Status{
	StatusPending:    StatusProcessing,
	StatusProcessing: StatusShipped,
	StatusShipped:    StatusDelivered,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusProcessing
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentCard PaymentMethod = "card"
)

// Payment is the payment tag recorded on an order. Card payments are
// confirmed by the provider before checkout and carry its intent id.
type Payment struct {
	Method   PaymentMethod `json:"method"`
	IntentID string        `json:"intentId,omitempty"`
}

func NewPayment(method, intentID string) (Payment, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(method)))
	intentID = strings.TrimSpace(intentID)
	switch m {
	case PaymentCOD:
		return Payment{Method: m}, nil
	case PaymentCard:
		if intentID == "" {
			return Payment{}, ErrMissingPaymentIntent
		}
		return Payment{Method: m, IntentID: intentID}, nil
	default:
		return Payment{}, ErrInvalidPaymentMethod
	}
}
