package order

// Status follows the fixed order lifecycle: pending → paid → preparing → ready → completed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

var statusRank = map[Status]int{
	StatusPending:   0,
	StatusPaid:      1,
	StatusPreparing: 2,
	StatusReady:     3,
	StatusCompleted: 4,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

func (s Status) Rank() int {
	return statusRank[s]
}

func (s Status) Before(other Status) bool {
	return s.Rank() < other.Rank()
}

// Prev gives the only status an order may hold immediately before this one.
func (s Status) Prev() (Status, bool) {
	switch s {
	case StatusPaid:
		return StatusPending, true
	case StatusPreparing:
		return StatusPaid, true
	case StatusReady:
		return StatusPreparing, true
	case StatusCompleted:
		return StatusReady, true
	default:
		return "", false
	}
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

func (p PaymentStatus) String() string {
	return string(p)
}

type PaymentMethod string

const (
	PaymentCard        PaymentMethod = "card"
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentCash        PaymentMethod = "cash"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentMobileMoney, PaymentCash:
		return true
	default:
		return false
	}
}
