package domain

// WordPage is everything shown for one looked-up word.
type WordPage struct {
	Term                string
	Phonetic            string
	Definitions         []Definition
	Wikipedia           *Summary
	Etymology           string
	EtymologyProvenance string
	Ngram               []FrequencyPoint
	WordOfTheDay        WordOfTheDay
}

// Definition is one dictionary sense shown on a word page.
type Definition struct {
	PartOfSpeech string
	Definition   string
	Example      string
}

// Summary is an encyclopedia extract with a link to the full article.
type Summary struct {
	Extract string
	URL     string
}

// FrequencyPoint is one year of a usage-frequency series.
type FrequencyPoint struct {
	Year int
	Freq float64
}

// WordOfTheDay is a featured word with a short definition.
type WordOfTheDay struct {
	Word       string
	Definition string
}
