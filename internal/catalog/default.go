package catalog

import "bizpulse/internal/models"

// DefaultResources returns the built-in Miami-Dade referral resources.
// A fresh map is returned on every call.
func DefaultResources() map[models.TopicTag][]models.ResourceRecord {
	return map[models.TopicTag][]models.ResourceRecord{
		models.TopicPermits: {
			{
				ID:          1,
				Name:        "Online Permit Portal",
				Description: "Fast-track your business permits online",
				URL:         "https://business.miamidade.gov/permits",
				Keywords:    []string{"permit", "license", "approval", "registration", "certificate", "zoning"},
			},
			{
				ID:          2,
				Name:        "Permit Assistance Program",
				Description: "Get help navigating the permit process",
				URL:         "https://business.miamidade.gov/permit-help",
				Keywords:    []string{"permit", "help", "guidance", "assistance"},
			},
			{
				ID:          3,
				Name:        "Virtual Permit Workshops",
				Description: "Weekly sessions on permit requirements",
				URL:         "https://business.miamidade.gov/workshops",
				Keywords:    []string{"permit", "training", "workshop", "learn"},
			},
			{
				ID:          4,
				Name:        "Food Service Permits",
				Description: "Specialized help for restaurant and food business permits",
				URL:         "https://business.miamidade.gov/food-permits",
				Keywords:    []string{"food", "restaurant", "catering", "health", "mobile", "truck"},
			},
		},
		models.TopicFunding: {
			{
				ID:          5,
				Name:        "Small Business Grant Program",
				Description: "Grants up to $50,000 for eligible businesses",
				URL:         "https://business.miamidade.gov/grants",
				Keywords:    []string{"grant", "money", "funding", "financial"},
			},
			{
				ID:          5,
				Name:        "Low-Interest Loan Program",
				Description: "Competitive rates for business expansion",
				URL:         "https://business.miamidade.gov/loans",
				Keywords:    []string{"loan", "credit", "financing", "capital"},
			},
			{
				ID:          6,
				Name:        "Emergency Relief Fund",
				Description: "Support for businesses facing hardship",
				URL:         "https://business.miamidade.gov/relief",
				Keywords:    []string{"emergency", "relief", "pandemic", "crisis"},
			},
		},
		models.TopicTraining: {
			{
				ID:          7,
				Name:        "Entrepreneur Boot Camp",
				Description: "12-week intensive business training",
				URL:         "https://business.miamidade.gov/bootcamp",
				Keywords:    []string{"training", "education", "course", "learn"},
			},
			{
				ID:          8,
				Name:        "Digital Marketing Workshop",
				Description: "Learn to market your business online",
				URL:         "https://business.miamidade.gov/digital",
				Keywords:    []string{"marketing", "digital", "online", "social media"},
			},
			{
				ID:          9,
				Name:        "Financial Planning Sessions",
				Description: "Master your business finances",
				URL:         "https://business.miamidade.gov/finance",
				Keywords:    []string{"financial", "accounting", "budget", "planning"},
			},
		},
		models.TopicTaxes: {
			{
				ID:          10,
				Name:        "Business Tax Calculator",
				Description: "Estimate your tax obligations",
				URL:         "https://business.miamidade.gov/tax-calc",
				Keywords:    []string{"tax", "calculate", "estimate", "obligation"},
			},
			{
				ID:          11,
				Name:        "Tax Filing Assistance",
				Description: "Free help with business tax returns",
				URL:         "https://business.miamidade.gov/tax-help",
				Keywords:    []string{"tax", "filing", "return", "help"},
			},
			{
				ID:          12,
				Name:        "Tax Credit Information",
				Description: "Discover available tax incentives",
				URL:         "https://business.miamidade.gov/credits",
				Keywords:    []string{"tax", "credit", "incentive", "deduction"},
			},
		},
		models.TopicSupport: {
			{
				ID:          13,
				Name:        "Business Advisor Matching",
				Description: "Get paired with an expert advisor",
				URL:         "https://business.miamidade.gov/advisors",
				Keywords:    []string{"advisor", "consultant", "expert", "guidance"},
			},
			{
				ID:          14,
				Name:        "Mentorship Program",
				Description: "Connect with successful entrepreneurs",
				URL:         "https://business.miamidade.gov/mentors",
				Keywords:    []string{"mentor", "coach", "guidance", "support"},
			},
			{
				ID:          15,
				Name:        "24/7 Business Hotline",
				Description: "Call anytime for quick answers",
				URL:         "https://business.miamidade.gov/hotline",
				Keywords:    []string{"help", "support", "questions", "hotline"},
			},
		},
		models.TopicLegal: {
			{
				ID:          16,
				Name:        "Legal Aid Services",
				Description: "Free and low-cost legal assistance for small businesses",
				URL:         "https://business.miamidade.gov/legal-aid",
				Keywords:    []string{"legal", "lawyer", "attorney", "law", "contract", "lawsuit", "court"},
			},
			{
				ID:          17,
				Name:        "Business Structure Consultation",
				Description: "Help choosing LLC, Corporation, or Sole Proprietorship",
				URL:         "https://business.miamidade.gov/structure",
				Keywords:    []string{"llc", "corporation", "structure", "entity", "incorporation"},
			},
			{
				ID:          18,
				Name:        "Contract Review Service",
				Description: "Expert review of business contracts and agreements",
				URL:         "https://business.miamidade.gov/contracts",
				Keywords:    []string{"contract", "agreement", "review", "terms", "legal"},
			},
			{
				ID:          19,
				Name:        "Guardianship & Estate Planning",
				Description: "Business succession and guardianship planning resources",
				URL:         "https://business.miamidade.gov/guardianship",
				Keywords:    []string{"guardianship", "estate", "succession", "will", "trust", "planning"},
			},
		},
		models.TopicInsurance: {
			{
				ID:          20,
				Name:        "Business Insurance Guide",
				Description: "Understanding liability, property, and workers comp insurance",
				URL:         "https://business.miamidade.gov/insurance",
				Keywords:    []string{"insurance", "liability", "coverage", "workers comp", "protection"},
			},
			{
				ID:          21,
				Name:        "Insurance Provider Directory",
				Description: "Connect with business insurance providers in Miami-Dade",
				URL:         "https://business.miamidade.gov/insurance-providers",
				Keywords:    []string{"insurance", "provider", "broker", "agent", "quote"},
			},
			{
				ID:          22,
				Name:        "Health Insurance Options",
				Description: "Affordable health insurance for small business owners",
				URL:         "https://business.miamidade.gov/health-insurance",
				Keywords:    []string{"health", "medical", "insurance", "coverage", "benefits"},
			},
		},
		models.TopicMarketing: {
			{
				ID:          23,
				Name:        "Digital Marketing Bootcamp",
				Description: "Master social media, SEO, and online advertising",
				URL:         "https://business.miamidade.gov/marketing",
				Keywords:    []string{"marketing", "advertising", "promotion", "branding", "social media"},
			},
			{
				ID:          24,
				Name:        "Website Development Resources",
				Description: "Build your business website with free tools and templates",
				URL:         "https://business.miamidade.gov/web-development",
				Keywords:    []string{"website", "web", "online", "digital", "internet", "domain"},
			},
			{
				ID:          25,
				Name:        "Marketing Grant Program",
				Description: "Grants up to $10,000 for marketing and advertising",
				URL:         "https://business.miamidade.gov/marketing-grants",
				Keywords:    []string{"marketing", "advertising", "grant", "promotion", "budget"},
			},
		},
		models.TopicTechnology: {
			{
				ID:          26,
				Name:        "Technology Consultation",
				Description: "Free IT assessment and technology planning for your business",
				URL:         "https://business.miamidade.gov/tech-consult",
				Keywords:    []string{"technology", "it", "computer", "software", "system", "tech"},
			},
			{
				ID:          27,
				Name:        "Cybersecurity Resources",
				Description: "Protect your business from cyber threats",
				URL:         "https://business.miamidade.gov/cybersecurity",
				Keywords:    []string{"cybersecurity", "security", "hacking", "data", "breach", "protection"},
			},
			{
				ID:          28,
				Name:        "E-commerce Setup Help",
				Description: "Launch your online store with expert guidance",
				URL:         "https://business.miamidade.gov/ecommerce",
				Keywords:    []string{"ecommerce", "online", "store", "shop", "selling", "website"},
			},
		},
		models.TopicRealEstate: {
			{
				ID:          29,
				Name:        "Commercial Property Listings",
				Description: "Find the perfect location for your business",
				URL:         "https://business.miamidade.gov/property",
				Keywords:    []string{"property", "real estate", "location", "space", "lease", "rent", "office"},
			},
			{
				ID:          30,
				Name:        "Zoning & Land Use Help",
				Description: "Navigate zoning laws and land use regulations",
				URL:         "https://business.miamidade.gov/zoning",
				Keywords:    []string{"zoning", "land", "property", "location", "code", "regulation"},
			},
			{
				ID:          31,
				Name:        "Lease Negotiation Assistance",
				Description: "Expert help negotiating commercial leases",
				URL:         "https://business.miamidade.gov/lease-help",
				Keywords:    []string{"lease", "rent", "landlord", "negotiate", "contract", "space"},
			},
		},
		models.TopicHR: {
			{
				ID:          32,
				Name:        "Hiring & Employment Guide",
				Description: "Everything you need to know about hiring employees",
				URL:         "https://business.miamidade.gov/hiring",
				Keywords:    []string{"hiring", "employee", "staff", "recruit", "employment", "hr", "payroll"},
			},
			{
				ID:          33,
				Name:        "Employee Benefits Planning",
				Description: "Design competitive benefits packages for your team",
				URL:         "https://business.miamidade.gov/benefits",
				Keywords:    []string{"benefits", "employee", "health", "retirement", "perks", "compensation"},
			},
			{
				ID:          34,
				Name:        "Workplace Compliance Training",
				Description: "Stay compliant with labor laws and regulations",
				URL:         "https://business.miamidade.gov/compliance",
				Keywords:    []string{"compliance", "labor", "law", "regulation", "hr", "employee", "rights"},
			},
		},
		models.TopicExport: {
			{
				ID:          35,
				Name:        "International Trade Office",
				Description: "Expand your business to international markets",
				URL:         "https://business.miamidade.gov/export",
				Keywords:    []string{"export", "international", "trade", "global", "foreign", "import"},
			},
			{
				ID:          36,
				Name:        "Export Documentation Help",
				Description: "Navigate customs, tariffs, and shipping requirements",
				URL:         "https://business.miamidade.gov/export-docs",
				Keywords:    []string{"export", "customs", "shipping", "documentation", "international"},
			},
			{
				ID:          37,
				Name:        "Trade Mission Programs",
				Description: "Join delegations to explore new markets",
				URL:         "https://business.miamidade.gov/trade-missions",
				Keywords:    []string{"trade", "mission", "international", "export", "delegation"},
			},
		},
		models.TopicNetworking: {
			{
				ID:          38,
				Name:        "Business Networking Events",
				Description: "Monthly meetups and networking opportunities",
				URL:         "https://business.miamidade.gov/networking",
				Keywords:    []string{"networking", "events", "meetup", "connect", "community", "entrepreneurs"},
			},
			{
				ID:          39,
				Name:        "Industry-Specific Groups",
				Description: "Join groups focused on your industry",
				URL:         "https://business.miamidade.gov/industry-groups",
				Keywords:    []string{"industry", "group", "association", "network", "peers", "community"},
			},
			{
				ID:          40,
				Name:        "Chamber of Commerce",
				Description: "Connect with the Miami-Dade business community",
				URL:         "https://business.miamidade.gov/chamber",
				Keywords:    []string{"chamber", "commerce", "business", "community", "networking"},
			},
		},
		models.TopicCertification: {
			{
				ID:          41,
				Name:        "Minority Business Certification",
				Description: "MBE certification for minority-owned businesses",
				URL:         "https://business.miamidade.gov/mbe",
				Keywords:    []string{"minority", "mbe", "certification", "diversity", "certified"},
			},
			{
				ID:          42,
				Name:        "Women-Owned Business Certification",
				Description: "WBE certification opens doors to new contracts",
				URL:         "https://business.miamidade.gov/wbe",
				Keywords:    []string{"women", "wbe", "certification", "female", "certified"},
			},
			{
				ID:          43,
				Name:        "Small Business Certification",
				Description: "SBE certification for County contracting opportunities",
				URL:         "https://business.miamidade.gov/sbe",
				Keywords:    []string{"small", "sbe", "certification", "certified", "contractor"},
			},
		},
	}
}

// Default returns the built-in catalog. It panics if the built-in data is invalid.
func Default() *Catalog {
	c, err := New(DefaultResources())
	if err != nil {
		panic(err)
	}
	return c
}
