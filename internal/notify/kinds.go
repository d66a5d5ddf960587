package notify

// Kind identifies what a notification is about. The set is part of the
// contract with the external delivery service.
type Kind string

const (
	KindNewRequest            Kind = "new_request"
	KindAvailabilityConfirmed Kind = "availability_confirmed"
	KindOrderPaid             Kind = "order_paid"
	KindOrderPreparing        Kind = "order_preparing"
	KindOrderReady            Kind = "order_ready"
	KindOrderCompleted        Kind = "order_completed"
)

func (k Kind) String() string {
	return string(k)
}
