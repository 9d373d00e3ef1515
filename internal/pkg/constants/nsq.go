package constants

// NSQ topics and channels
const (
	TopicOrderCreated       = "order.created"
	ChannelFulfillment      = "fulfillment"
	TopicOrderStatusChanged = "order.status_changed"
)
