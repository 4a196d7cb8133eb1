package posts

import "bizpulse/internal/models"

// Template is a post text with the sentiment and topic it was written to
// express. Unlabeled templates leave both empty. The {weeks} placeholder is
// replaced with a number of weeks when a post is generated.
type Template struct {
	Text      string
	Sentiment string
	Topic     models.TopicTag
}

// LabeledTemplates back the mock feed of the HTTP service.
var LabeledTemplates = []Template{
	{"Just got my business license approved! The online portal made it so easy. Thank you Miami-Dade!", models.SentimentPositive, models.TopicPermits},
	{"Still waiting on my permit approval. It's been {weeks} weeks. This is frustrating.", models.SentimentNegative, models.TopicPermits},
	{"The small business grant workshop was incredibly helpful. Learned so much!", models.SentimentPositive, models.TopicFunding},
	{"Why is the business tax process so complicated? Need more guidance.", models.SentimentNegative, models.TopicTaxes},
	{"Attended the entrepreneur training session. Great resources available!", models.SentimentPositive, models.TopicTraining},
	{"County website is confusing. Can't find information about health permits.", models.SentimentNegative, models.TopicPermits},
	{"Got connected with a business advisor through the county. Game changer!", models.SentimentPositive, models.TopicSupport},
	{"The pandemic relief program saved my restaurant. Forever grateful.", models.SentimentPositive, models.TopicFunding},
	{"Applied for a grant {weeks} weeks ago. No response yet. Anyone else?", models.SentimentNeutral, models.TopicFunding},
	{"Business license renewal process was smooth. Much better than last year!", models.SentimentPositive, models.TopicPermits},
}

// CollectorTemplates back the batch collector's mock source.
var CollectorTemplates = []Template{
	{Text: "Just got my business license approved! The online portal made it so easy. #MiamiSmallBusiness"},
	{Text: "Still waiting on my permit approval. It's been {weeks} weeks. Very frustrating."},
	{Text: "The small business grant workshop was incredibly helpful! Highly recommend."},
	{Text: "Why is the business tax process so complicated in Miami-Dade? Need help!"},
	{Text: "Attended the entrepreneur training session. Great resources available!"},
	{Text: "County website is confusing. Can't find information about health permits."},
	{Text: "Got connected with a business advisor through the county. Game changer!"},
	{Text: "The pandemic relief program saved my restaurant. Forever grateful."},
	{Text: "Applied for a business grant {weeks} weeks ago. No response yet. Anyone else?"},
	{Text: "Business license renewal process was smooth this year. Much improved!"},
	{Text: "Trying to start a food truck in Miami. Where do I even begin with permits?"},
	{Text: "The County's small business hotline was super helpful. Got answers immediately."},
	{Text: "Frustrated with the zoning approval process. Been waiting months."},
	{Text: "Just received my certificate of use! Ready to open my coffee shop! ☕"},
	{Text: "Does anyone know about tax incentives for minority-owned businesses in Miami-Dade?"},
	{Text: "The business development center helped me write my business plan. Free service!"},
	{Text: "Permit fees seem high compared to other counties. Is this normal?"},
	{Text: "Finally got my vendors license. Now I can sell at the farmers market!"},
	{Text: "Looking for small business networking groups in Miami. Recommendations?"},
	{Text: "The county's website redesign made finding resources so much easier."},
}
