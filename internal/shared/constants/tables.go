// Package constants holds names shared between the persistence layer and
// the migration scripts.
package constants

const (
	TableProducts      = "products"
	TableProfiles      = "user_profiles"
	TableOrders        = "orders"
	TableSubscriptions = "subscriptions"
	TableSystemFlags   = "system_flags"
)
