package topics

import "bizpulse/internal/models"

// DefaultEntries returns the built-in topic keyword table.
// Support is declared last so that more specific topics are reported first.
func DefaultEntries() []Entry {
	return []Entry{
		{Topic: models.TopicPermits, Keywords: []string{"permit", "license", "approval", "registration", "certificate", "zoning", "inspection", "code"}},
		{Topic: models.TopicFunding, Keywords: []string{"grant", "loan", "funding", "money", "finance", "capital", "investment", "relief"}},
		{Topic: models.TopicTraining, Keywords: []string{"training", "workshop", "course", "education", "learn", "teach", "bootcamp", "class"}},
		{Topic: models.TopicTaxes, Keywords: []string{"tax", "taxes", "irs", "filing", "deduction", "credit", "return", "obligation"}},
		{Topic: models.TopicLegal, Keywords: []string{"legal", "lawyer", "attorney", "law", "contract", "lawsuit", "court", "guardianship", "estate", "succession", "llc", "corporation", "incorporation", "entity", "structure"}},
		{Topic: models.TopicInsurance, Keywords: []string{"insurance", "liability", "coverage", "workers comp", "protection", "health insurance", "medical", "benefits", "broker", "agent"}},
		{Topic: models.TopicMarketing, Keywords: []string{"marketing", "advertising", "promotion", "branding", "social media", "website", "web", "online presence", "seo", "digital"}},
		{Topic: models.TopicTechnology, Keywords: []string{"technology", "it", "computer", "software", "system", "tech", "cybersecurity", "security", "ecommerce", "online store"}},
		{Topic: models.TopicRealEstate, Keywords: []string{"property", "real estate", "location", "space", "lease", "rent", "office", "zoning", "land use", "landlord"}},
		{Topic: models.TopicHR, Keywords: []string{"hiring", "employee", "staff", "recruit", "employment", "hr", "payroll", "benefits", "compensation", "compliance", "labor"}},
		{Topic: models.TopicExport, Keywords: []string{"export", "international", "trade", "global", "foreign", "import", "customs", "shipping", "tariff"}},
		{Topic: models.TopicNetworking, Keywords: []string{"networking", "events", "meetup", "connect", "community", "entrepreneurs", "chamber", "industry group"}},
		{Topic: models.TopicCertification, Keywords: []string{"minority", "mbe", "wbe", "sbe", "certification", "certified", "women-owned", "diversity", "contractor"}},
		{Topic: models.TopicSupport, Keywords: []string{"help", "support", "assistance", "advisor", "mentor", "guidance", "hotline", "question"}},
	}
}

// DefaultTable returns the built-in table. It panics if the built-in data is invalid.
func DefaultTable() *Table {
	t, err := NewTable(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return t
}
