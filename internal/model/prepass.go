package model

// HeuristicPrePass is the snapshot of cheap deterministic signals computed
// before any external call. It is the only heuristic output the external
// pipeline may depend on, is fully reproducible from the text alone, and
// is serialized verbatim into every stage prompt.
type HeuristicPrePass struct {
	Fluff         FluffMetrics `json:"fluff"`
	DataIntensity int          `json:"data_intensity"` // 0-100
	DeceptionRaw  int          `json:"deception_raw"`  // total deception marker hits
	RegulatoryRaw int          `json:"regulatory_raw"` // total regulatory+ethical+privacy mentions
	WordCount     int          `json:"word_count"`
	SentenceCount int          `json:"sentence_count"`
}
