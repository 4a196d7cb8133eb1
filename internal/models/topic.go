package models

// TopicTag labels the subject of a piece of text.
type TopicTag string

// Built-in topic tags.
const (
	TopicPermits       TopicTag = "permits"
	TopicFunding       TopicTag = "funding"
	TopicTraining      TopicTag = "training"
	TopicTaxes         TopicTag = "taxes"
	TopicLegal         TopicTag = "legal"
	TopicInsurance     TopicTag = "insurance"
	TopicMarketing     TopicTag = "marketing"
	TopicTechnology    TopicTag = "technology"
	TopicRealEstate    TopicTag = "real_estate"
	TopicHR            TopicTag = "hr"
	TopicExport        TopicTag = "export"
	TopicNetworking    TopicTag = "networking"
	TopicCertification TopicTag = "certification"
	TopicSupport       TopicTag = "support"
)

// FallbackTopic is returned when no taxonomy keyword matches.
const FallbackTopic = TopicSupport

func (t TopicTag) String() string {
	return string(t)
}
