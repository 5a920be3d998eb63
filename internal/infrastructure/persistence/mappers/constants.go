package mappers

// Serialized-size ceilings per record, enforced on the write path. They
// bound row growth from unchecked item lists and order histories.
const (
	maxProductBytes      = 512
	maxProfileBytes      = 1024
	maxOrderBytes        = 4096
	maxSubscriptionBytes = 2048
)
