package model

import "time"

// WeightedDriver is one scored analytical dimension with a fixed
// contribution weight toward its module's composite score
type WeightedDriver struct {
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`    // (0,1]; driver weights in a module sum to 1.0
	Score     float64 `json:"score"`     // 1-10
	Rationale string  `json:"rationale"`
}

// ModuleResult is the output of one classification module
type ModuleResult struct {
	Drivers        []WeightedDriver `json:"drivers"`
	CompositeScore int              `json:"composite_score"` // 0-100, derived via score.Compose
	Confidence     int              `json:"confidence"`      // 0-100
	Classification string           `json:"classification"`
}

// Classification bands per module. Each module maps its composite onto
// one of these via fixed thresholds; the middle band doubles as the
// repair default when an external layer returns an unknown value.
const (
	ClassClientServing = "Client-Serving"
	ClassBalancedOrient = "Balanced"
	ClassVendorServing = "Vendor-Serving"

	ClassGlobalHeavyweight = "Global Heavyweight"
	ClassEstablishedFirm   = "Established Firm"
	ClassBoutique          = "Boutique"

	ClassEnterprise = "Enterprise"
	ClassMidMarket  = "Mid-Market"
	ClassSMB        = "SMB"

	ClassExecutive    = "Executive"
	ClassManagerial   = "Managerial"
	ClassPractitioner = "Practitioner"

	ClassNovel          = "Novel"
	ClassDifferentiated = "Differentiated"
	ClassCommodity      = "Commodity"
)

// TermCount pairs a matched dictionary term with its occurrence count
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// DeceptionFindings tallies manipulative-language markers
type DeceptionFindings struct {
	WeaselTerms       []TermCount `json:"weasel_terms"`
	UnanchoredClaims  []string    `json:"unanchored_claims"`
	UrgencyPhrases    []string    `json:"urgency_phrases"`
	JargonMasking     []string    `json:"jargon_masking"`
	PassiveSamples    []string    `json:"passive_samples"`
	ManipulationIndex int         `json:"manipulation_index"` // 0-100, density per ~500 words
}

// FallacyInstance is one sentence classified into the fallacy taxonomy
type FallacyInstance struct {
	Type     string `json:"type"`
	Sentence string `json:"sentence"`
}

// Fallacy taxonomy (closed set)
const (
	FallacyFalseDichotomy    = "false_dichotomy"
	FallacyAppealToAuthority = "appeal_to_authority"
	FallacyStrawMan          = "straw_man"
	FallacyPostHoc           = "post_hoc"
	FallacySunkCost          = "sunk_cost"
)

// FallacyFindings holds typed fallacy instances and their density
type FallacyFindings struct {
	Instances      []FallacyInstance `json:"instances"`
	DensityPer1000 float64           `json:"density_per_1000_words"`
}

// FluffMetrics measures substance-free writing
type FluffMetrics struct {
	FogIndex           float64 `json:"fog_index"`
	AdjectiveVerbRatio float64 `json:"adjective_verb_ratio"`
	UniqueDataPoints   int     `json:"unique_data_points"`
	FluffScore         int     `json:"fluff_score"` // 0-100
}

// ForensicsResult bundles the content-forensics findings
type ForensicsResult struct {
	Deception DeceptionFindings `json:"deception"`
	Fallacies FallacyFindings   `json:"fallacies"`
	Fluff     FluffMetrics      `json:"fluff"`
}

// ArtifactChecklist records which implementation artifacts the document ships
type ArtifactChecklist struct {
	Code       bool `json:"code"`
	Config     bool `json:"config"`
	Checklists bool `json:"checklists"`
	Diagrams   bool `json:"diagrams"`
	Templates  bool `json:"templates"`
	APIDefs    bool `json:"api_defs"`
}

// ReadinessResult scores how implementable the document's proposal is
type ReadinessResult struct {
	Artifacts                ArtifactChecklist `json:"artifacts"`
	ArtifactScore            int               `json:"artifact_score"`             // 0-10
	ResourceClarity          int               `json:"resource_clarity"`           // 1-10
	TimelineSpecificity      int               `json:"timeline_specificity"`       // 1-10
	PrerequisiteExplicitness int               `json:"prerequisite_explicitness"`  // 1-10
	Readiness                int               `json:"readiness"`                  // 0-10 rounded composite
	Verdict                  string            `json:"verdict"`
}

// Readiness verdicts
const (
	VerdictReady        = "Ready"
	VerdictPartial      = "Partial"
	VerdictAspirational = "Aspirational"
)

// ObsolescenceResult estimates how dated the document's references are
type ObsolescenceResult struct {
	OutdatedRefs     []string `json:"outdated_refs"`
	CurrentRefs      []string `json:"current_refs"`
	MissingPractices []string `json:"missing_practices"`
	RiskScore        int      `json:"risk_score"` // 0-100
	RiskLevel        string   `json:"risk_level"`
}

// Obsolescence risk levels (banding at 25/50/75)
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// HypeResult measures promotional tone against acknowledged reality
type HypeResult struct {
	PositivePct            float64 `json:"positive_pct"`
	PositiveCount          int     `json:"positive_count"`
	NegativeCount          int     `json:"negative_count"`
	FailureAcknowledgments int     `json:"failure_acknowledgments"`
	HypeScore              int     `json:"hype_score"` // 0-100
	Classification         string  `json:"classification"`
}

// Hype classifications
const (
	HypeSalesPropaganda = "Sales Propaganda"
	HypeOptimistic      = "Optimistic"
	HypeBalanced        = "Balanced"
)

// RegulatoryResult captures regulatory/ethical/privacy posture
type RegulatoryResult struct {
	RegulatoryMentions []string `json:"regulatory_mentions"`
	EthicalMentions    []string `json:"ethical_mentions"`
	PrivacyMentions    []string `json:"privacy_mentions"`
	RedFlags           []string `json:"red_flags"`
	SafetyScore        int      `json:"safety_score"` // 0-100
	SafetyLevel        string   `json:"safety_level"`
}

// Safety levels (banding at 40/70)
const (
	SafetyHighRisk = "High Risk"
	SafetyReview   = "Review"
	SafetySafe     = "Safe"
)

// BiasInstance is one fired bias rule
type BiasInstance struct {
	Type     string `json:"type"`
	Severity string `json:"severity"` // high, medium, low
	Evidence string `json:"evidence"`
}

// Bias rule types (closed set)
const (
	BiasConfirmation = "confirmation"
	BiasSurvivorship = "survivorship"
	BiasSelection    = "selection"
	BiasRecency      = "recency"
	BiasAuthority    = "authority"
)

// Bias severities
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// BiasResult aggregates fired bias rules. OverallScore is a
// severity-weighted sum (high=30, medium=15, low=5) clamped to 0-100,
// deliberately not an average: simultaneous biases compound.
type BiasResult struct {
	Instances    []BiasInstance `json:"instances"`
	OverallScore int            `json:"overall_score"`
}

// NotableFact is one sentence worth surfacing to the reader
type NotableFact struct {
	Fact         string `json:"fact"`
	Rationale    string `json:"rationale"`
	IsContrarian bool   `json:"is_contrarian"`
	IsQuantified bool   `json:"is_quantified"`
}

// PageImage is one rendered document page passed to the first external stage
type PageImage struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64-encoded bytes
}

// Analysis engines recorded on the result
const (
	EngineStagedLLM = "staged-llm"
	EngineHeuristic = "heuristic"
)

// AnalysisResult is the canonical top-level output of one document analysis.
// It is built fresh per request and never mutated after construction.
type AnalysisResult struct {
	Document   string    `json:"document,omitempty"` // file name or URL
	AnalyzedAt time.Time `json:"analyzed_at"`
	Engine     string    `json:"engine"` // staged-llm or heuristic

	ProviderConsumer ModuleResult `json:"provider_consumer"`
	OriginatorScale  ModuleResult `json:"originator_scale"`
	TargetScale      ModuleResult `json:"target_scale"`
	AudienceLevel    ModuleResult `json:"audience_level"`
	RarityIndex      ModuleResult `json:"rarity_index"`

	Forensics ForensicsResult `json:"forensics"`

	Readiness    ReadinessResult    `json:"implementation_readiness"`
	Obsolescence ObsolescenceResult `json:"obsolescence_risk"`
	HypeReality  HypeResult         `json:"hype_reality"`
	Regulatory   RegulatoryResult   `json:"regulatory_safety"`

	VisualScore   int `json:"visual_score"`   // 0-100
	DataIntensity int `json:"data_intensity"` // 0-100

	Bias         BiasResult    `json:"bias"`
	NotableFacts []NotableFact `json:"notable_facts"`

	Summary           string `json:"summary"`
	OverallTrustScore int    `json:"overall_trust_score"` // 0-100
}
