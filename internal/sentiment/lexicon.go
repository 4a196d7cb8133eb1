package sentiment

// Entry is the polarity and subjectivity of a single lexicon word.
type Entry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// DefaultLexicon returns the built-in English word list, tuned for posts by
// small business owners about county services. A fresh map is returned on
// every call.
func DefaultLexicon() map[string]Entry {
	return map[string]Entry{
		// positive
		"amazing":    {0.6, 0.9},
		"answers":    {0.1, 0.2},
		"appreciate": {0.5, 0.6},
		"approved":   {0.4, 0.5},
		"awesome":    {1.0, 1.0},
		"best":       {1.0, 0.3},
		"better":     {0.5, 0.5},
		"easier":     {0.4, 0.6},
		"easy":       {0.43, 0.83},
		"efficient":  {0.5, 0.6},
		"excellent":  {1.0, 1.0},
		"excited":    {0.38, 0.75},
		"fantastic":  {0.4, 0.9},
		"fast":       {0.2, 0.6},
		"finally":    {0.1, 0.5},
		"free":       {0.4, 0.8},
		"friendly":   {0.38, 0.5},
		"glad":       {0.5, 1.0},
		"good":       {0.7, 0.6},
		"grateful":   {0.5, 0.75},
		"great":      {0.8, 0.75},
		"happy":      {0.8, 1.0},
		"helpful":    {0.5, 0.6},
		"improved":   {0.4, 0.5},
		"love":       {0.5, 0.6},
		"nice":       {0.6, 1.0},
		"perfect":    {1.0, 1.0},
		"pleased":    {0.5, 0.75},
		"quick":      {0.33, 0.5},
		"ready":      {0.2, 0.5},
		"recommend":  {0.3, 0.4},
		"saved":      {0.3, 0.4},
		"simple":     {0.2, 0.4},
		"smooth":     {0.4, 0.69},
		"success":    {0.5, 0.5},
		"successful": {0.75, 0.95},
		"thank":      {0.4, 0.4},
		"thanks":     {0.4, 0.4},
		"useful":     {0.3, 0.2},
		"welcoming":  {0.4, 0.6},
		"wonderful":  {1.0, 1.0},
		// negative
		"angry":        {-0.5, 1.0},
		"annoying":     {-0.8, 0.9},
		"awful":        {-1.0, 1.0},
		"bad":          {-0.7, 0.67},
		"broken":       {-0.4, 0.4},
		"complicated":  {-0.5, 1.0},
		"confusing":    {-0.3, 0.7},
		"delayed":      {-0.2, 0.3},
		"denied":       {-0.4, 0.5},
		"difficult":    {-0.5, 1.0},
		"disappointed": {-0.75, 0.75},
		"expensive":    {-0.5, 0.7},
		"frustrated":   {-0.7, 0.8},
		"frustrating":  {-0.6, 0.9},
		"hard":         {-0.29, 0.54},
		"hate":         {-0.8, 0.9},
		"high":         {-0.1, 0.5},
		"horrible":     {-1.0, 1.0},
		"impossible":   {-0.67, 1.0},
		"lost":         {-0.3, 0.5},
		"poor":         {-0.4, 0.6},
		"problem":      {-0.3, 0.4},
		"rejected":     {-0.5, 0.5},
		"rude":         {-0.6, 0.9},
		"slow":         {-0.3, 0.4},
		"stressful":    {-0.5, 0.8},
		"terrible":     {-1.0, 1.0},
		"unclear":      {-0.3, 0.6},
		"useless":      {-0.5, 0.2},
		"worse":        {-0.4, 0.6},
		"worst":        {-1.0, 1.0},
		"wrong":        {-0.5, 0.9},
	}
}

// DefaultIntensifiers returns words that scale the next sentiment word.
func DefaultIntensifiers() map[string]float64 {
	return map[string]float64{
		"extremely":  1.5,
		"highly":     1.3,
		"incredibly": 1.5,
		"much":       1.2,
		"quite":      1.1,
		"really":     1.3,
		"slightly":   0.5,
		"so":         1.3,
		"somewhat":   0.7,
		"super":      1.4,
		"too":        1.2,
		"totally":    1.3,
		"very":       1.3,
	}
}

// DefaultNegators returns words that flip the polarity of sentiment words
// that follow within the negation window. Contractions ending in "n't" are
// always negators.
func DefaultNegators() []string {
	return []string{"not", "no", "never", "none", "nobody", "nothing", "neither", "nor", "cannot", "without"}
}
