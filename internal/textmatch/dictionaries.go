package textmatch

// LexiconVersion identifies the curated dictionary release. Updating the
// tables below is a data change, not a code change; bump the version when
// entries are added or removed.
const LexiconVersion = "v1"

// Lexicon holds the immutable term tables every analyzer matches against.
// A single instance is shared read-only across concurrent analyses.
type Lexicon struct {
	Version string

	// Deception markers
	WeaselWords    []string
	UrgencyPhrases []string
	JargonMasking  []string

	// Provider-vs-consumer orientation
	VendorTerms    []string
	ClientTerms    []string
	FeatureTerms   []string
	OutcomeTerms   []string
	GuaranteeTerms []string

	// Originator scale
	EnterpriseOrgTerms []string
	BoutiqueOrgTerms   []string
	GlobalReachTerms   []string
	LocalReachTerms    []string
	BigTeamTerms       []string
	SmallTeamTerms     []string

	// Target scale
	EnterpriseTargetTerms []string
	SMBTargetTerms        []string
	ProcurementTerms      []string
	SelfServeTerms        []string

	// Audience level
	ExecutiveTerms    []string
	PractitionerTerms []string
	StrategyTerms     []string
	OperationalTerms  []string

	// Rarity
	NoveltyTerms   []string
	CommodityTerms []string

	// Notable facts
	Superlatives      []string
	ContrarianPhrases []string
	ImportanceTerms   []string

	// Hype vs reality
	PositiveTerms []string
	NegativeTerms []string

	// Regulatory / ethical safety
	RegulatoryTerms     []string
	EthicalTerms        []string
	PrivacyTerms        []string
	DataCollectionTerms []string
	AIDeploymentTerms   []string

	// Obsolescence
	OutdatedRefs      []string
	CurrentRefs       []string
	CriticalPractices []string

	// Implementation readiness
	CodeArtifacts      []string
	ConfigArtifacts    []string
	ChecklistArtifacts []string
	DiagramArtifacts   []string
	TemplateArtifacts  []string
	APIArtifacts       []string
	ResourceExplicit   []string
	ResourceVague      []string
	TimelineExplicit   []string
	TimelineVague      []string
	PrereqExplicit     []string

	// Bias detection
	CaseStudyTerms        []string
	InternalEvidenceTerms []string
	ExternalEvidenceTerms []string
	RecencyTerms          []string
	LongTermTerms         []string
	AuthorityPhrases      []string

	// Visual / data intensity
	VisualTerms []string
}

// DefaultLexicon returns the v1 curated tables
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Version: LexiconVersion,

		WeaselWords: []string{
			"industry-leading", "world-class", "cutting-edge", "best-in-class",
			"next-generation", "revolutionary", "seamless", "game-changing",
			"state-of-the-art", "turnkey", "holistic", "disruptive",
			"paradigm shift", "unparalleled", "unmatched", "synergy",
			"proven track record", "market-leading", "mission-critical",
			"robust", "leverage", "empower", "frictionless", "hyper-scale",
		},
		UrgencyPhrases: []string{
			"act now", "limited time", "don't miss", "window is closing",
			"before it's too late", "first-mover advantage", "act today",
			"can't afford to wait", "once-in-a-generation", "now or never",
			"time is running out", "immediate action",
		},
		JargonMasking: []string{
			"leverage synergies", "digital transformation journey",
			"end-to-end solution", "value-add", "operationalize",
			"strategic enablement", "holistic approach", "core competencies",
			"move the needle", "low-hanging fruit", "paradigm-shifting",
			"thought leadership", "future-proof",
		},

		VendorTerms: []string{
			"our platform", "our solution", "our product", "our team",
			"we provide", "we offer", "we deliver", "our proprietary",
			"our technology", "our expertise", "our approach", "we built",
		},
		ClientTerms: []string{
			"your goals", "your team", "your needs", "your business",
			"your data", "your customers", "your requirements", "your budget",
			"your organization", "your success", "your workflow", "you decide",
		},
		FeatureTerms: []string{
			"features", "capabilities", "functionality", "modules",
			"integrations", "dashboard", "platform",
		},
		OutcomeTerms: []string{
			"outcome", "cost savings", "revenue impact", "payback",
			"time saved", "measurable results", "business value", "roi",
		},
		GuaranteeTerms: []string{
			"sla", "service level agreement", "money-back", "guarantee",
			"warranty", "refund", "commitment to", "penalty clause",
		},

		EnterpriseOrgTerms: []string{
			"fortune 500", "fortune 100", "enterprise-grade", "multinational",
			"global leader", "industry leader", "market leader", "at scale",
		},
		BoutiqueOrgTerms: []string{
			"boutique", "founder-led", "independent", "bespoke",
			"handcrafted", "specialist firm", "niche", "family-owned",
		},
		GlobalReachTerms: []string{
			"worldwide", "global presence", "offices in", "across regions",
			"international", "multi-region", "every continent",
		},
		LocalReachTerms: []string{
			"local", "regional", "community", "in-person", "nearby",
		},
		BigTeamTerms: []string{
			"thousands of employees", "10,000 employees", "army of",
			"hundreds of engineers", "large team", "dedicated divisions",
		},
		SmallTeamTerms: []string{
			"small team", "lean team", "handful of", "two founders",
			"tight-knit", "startup",
		},

		EnterpriseTargetTerms: []string{
			"enterprise", "large organizations", "global rollout",
			"compliance team", "security review", "sso", "procurement",
			"legal review", "rfp",
		},
		SMBTargetTerms: []string{
			"small business", "smb", "affordable", "easy setup",
			"no it department", "get started in minutes", "per-seat",
			"free tier", "solo",
		},
		ProcurementTerms: []string{
			"procurement", "vendor assessment", "rfp", "master service agreement",
			"contract negotiation", "tender",
		},
		SelfServeTerms: []string{
			"self-serve", "sign up", "credit card", "free trial",
			"instant access", "onboarding wizard",
		},

		ExecutiveTerms: []string{
			"roi", "board", "shareholder", "p&l", "market share",
			"competitive advantage", "total cost of ownership", "ebitda",
			"strategic priorities", "c-suite", "quarterly results",
		},
		PractitionerTerms: []string{
			"api", "sdk", "deployment", "configuration", "latency",
			"schema", "endpoint", "kubernetes", "pipeline", "debugging",
			"query", "repository", "cli",
		},
		StrategyTerms: []string{
			"vision", "roadmap", "transformation", "initiative",
			"alignment", "governance",
		},
		OperationalTerms: []string{
			"runbook", "on-call", "ticket", "sprint", "standup",
			"incident", "deploy",
		},

		NoveltyTerms: []string{
			"patent", "patented", "proprietary algorithm", "first of its kind",
			"novel", "breakthrough", "unique approach", "never been done",
			"invented", "original research",
		},
		CommodityTerms: []string{
			"industry standard", "widely adopted", "commonly used",
			"well-established", "off-the-shelf", "commodity",
			"best practices", "standard approach", "mature market",
		},

		Superlatives: []string{
			"first", "only", "record", "largest", "fastest", "best",
			"unprecedented", "never before", "biggest", "highest",
		},
		ContrarianPhrases: []string{
			"contrary to", "conventional wisdom", "counterintuitive",
			"surprisingly", "against the grain", "most people believe",
			"unpopular opinion", "however, the data", "despite popular",
		},
		ImportanceTerms: []string{
			"key", "critical", "significant", "essential", "crucial",
			"fundamental", "pivotal",
		},

		PositiveTerms: []string{
			"success", "growth", "transform", "boost", "win",
			"breakthrough", "effortless", "proven", "maximize", "accelerate",
			"thrive", "outperform", "dominate", "guaranteed", "superior",
		},
		NegativeTerms: []string{
			"risk", "challenge", "limitation", "tradeoff", "trade-off",
			"constraint", "failure", "difficulty", "delay", "downside",
			"caveat", "drawback", "shortcoming", "weakness",
		},

		RegulatoryTerms: []string{
			"gdpr", "hipaa", "sox", "ccpa", "pci dss", "iso 27001",
			"soc 2", "compliance", "regulatory", "audit",
			"data protection act", "ferpa", "nist",
		},
		EthicalTerms: []string{
			"ethics", "ethical", "responsible ai", "fairness",
			"accountability", "bias mitigation", "human oversight",
			"transparency", "informed consent",
		},
		PrivacyTerms: []string{
			"privacy", "personal data", "pii", "anonymization",
			"pseudonymization", "consent", "data minimization",
			"encryption at rest", "retention policy", "right to be forgotten",
		},
		DataCollectionTerms: []string{
			"collect data", "data collection", "user data", "tracking",
			"telemetry", "behavioral data", "usage analytics",
			"monitor users", "harvest",
		},
		AIDeploymentTerms: []string{
			"artificial intelligence", "machine learning", "llm",
			"automated decision", "ai model", "neural network",
			"predictive model", "generative ai",
		},

		OutdatedRefs: []string{
			"internet explorer", "adobe flash", "silverlight", "angularjs",
			"windows server 2008", "soap services", "cobol", "waterfall model",
			"on-premise only", "big data hadoop", "blackberry", "fax",
		},
		CurrentRefs: []string{
			"kubernetes", "cloud-native", "zero trust", "serverless",
			"devsecops", "api-first", "containers", "mlops",
			"generative ai", "infrastructure as code", "observability",
		},
		CriticalPractices: []string{
			"security", "testing", "monitoring", "backup",
			"encryption", "access control",
		},

		CodeArtifacts: []string{
			"code sample", "source code", "github", "repository",
			"snippet", "pseudocode",
		},
		ConfigArtifacts: []string{
			"configuration file", "config file", "yaml", "environment variable",
			"settings file",
		},
		ChecklistArtifacts: []string{
			"checklist", "check-list", "step-by-step list",
		},
		DiagramArtifacts: []string{
			"diagram", "architecture diagram", "flowchart", "sequence diagram",
			"wireframe",
		},
		TemplateArtifacts: []string{
			"template", "boilerplate", "starter kit", "worksheet",
		},
		APIArtifacts: []string{
			"api reference", "openapi", "swagger", "endpoint documentation",
			"api spec",
		},
		ResourceExplicit: []string{
			"fte", "headcount", "budget of", "team of", "person-days",
			"dedicated engineer", "full-time", "allocated budget",
		},
		ResourceVague: []string{
			"some resources", "as needed", "minimal effort",
			"resources required", "appropriate staffing", "sufficient budget",
		},
		TimelineExplicit: []string{
			"week", "month", "quarter", "day 1", "phase 1", "q1", "q2",
			"q3", "q4", "milestone", "sprint", "90 days",
		},
		TimelineVague: []string{
			"soon", "quickly", "rapidly", "in no time", "eventually",
			"near-term", "before long",
		},
		PrereqExplicit: []string{
			"requires", "prerequisite", "depends on", "before you begin",
			"assumes", "you will need", "must first",
		},

		CaseStudyTerms: []string{
			"case study", "success story", "customer win", "testimonial",
			"client story",
		},
		InternalEvidenceTerms: []string{
			"our survey", "our study", "internal benchmark", "our analysis",
			"our research", "our data shows",
		},
		ExternalEvidenceTerms: []string{
			"independent", "third-party", "peer-reviewed", "external audit",
			"published study", "academic",
		},
		RecencyTerms: []string{
			"this year", "latest", "recent", "just released", "brand new",
			"this quarter",
		},
		LongTermTerms: []string{
			"over the past decade", "historically", "long-term",
			"track record", "since 20", "decades of",
		},
		AuthorityPhrases: []string{
			"experts agree", "gartner", "forrester", "analysts say",
			"industry leaders", "according to leading", "idc", "mckinsey",
		},

		VisualTerms: []string{
			"figure", "chart", "diagram", "table", "graph",
			"screenshot", "illustration", "infographic", "exhibit",
		},
	}
}
