package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// Consumer Topics
	TopicDocumentEvents = "collab.document.events"

	// Producer Topics
	TopicIndexingResults = "collab.indexing.results"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	ConsumerGroupDocumentEvents = "collab-consumer-document-events"
)

// ============================================
// Event Types (for routing in the document events topic)
// ============================================

const (
	EventTypeResourceUpserted  = "resource.upserted"
	EventTypeResourceDeleted   = "resource.deleted"
	EventTypeUserUpserted      = "user.upserted"
	EventTypeUserDeleted       = "user.deleted"
	EventTypeCommunityUpserted = "community.upserted"
	EventTypeCommunityDeleted  = "community.deleted"
)
