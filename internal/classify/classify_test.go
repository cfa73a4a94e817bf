package classify

import (
	"testing"

	"github.com/ppiankov/docent/internal/model"
	"github.com/ppiankov/docent/internal/score"
	"github.com/ppiankov/docent/internal/textmatch"
)

func newTestClassifier() *Classifier {
	return NewClassifier(textmatch.DefaultLexicon())
}

const vendorText = `Our award-winning, best-in-class platform is the industry-leading
solution. We are proud of our cutting-edge features: our unique dashboard,
our powerful engine, and our seamless integration. Act now, this limited time
offer won't last. Don't miss out on our world-class capabilities.`

const clientText = `Your team will reduce operating costs by 23% within two quarters.
You keep full ownership of your data, and your ROI is guaranteed under the SLA:
we refund fees if your savings target is missed. Your payback period is
measured against your baseline, and your success criteria drive the contract.`

func allModules(c *Classifier, text string) []model.ModuleResult {
	return []model.ModuleResult{
		c.ProviderConsumer(text),
		c.OriginatorScale(text),
		c.TargetScale(text),
		c.AudienceLevel(text),
		c.RarityIndex(text),
	}
}

func TestModules_WeightInvariant(t *testing.T) {
	c := newTestClassifier()
	for i, m := range allModules(c, vendorText) {
		if err := score.ValidateWeights(m.Drivers); err != nil {
			t.Errorf("module %d: %v", i, err)
		}
		if len(m.Drivers) != 5 {
			t.Errorf("module %d: expected 5 drivers, got %d", i, len(m.Drivers))
		}
	}
}

func TestModules_Ranges(t *testing.T) {
	c := newTestClassifier()
	for i, m := range allModules(c, clientText) {
		if m.CompositeScore < 0 || m.CompositeScore > 100 {
			t.Errorf("module %d: composite %d out of range", i, m.CompositeScore)
		}
		if m.Confidence < 0 || m.Confidence > 100 {
			t.Errorf("module %d: confidence %d out of range", i, m.Confidence)
		}
		if m.Classification == "" {
			t.Errorf("module %d: empty classification", i)
		}
		for _, d := range m.Drivers {
			if d.Score < 1 || d.Score > 10 {
				t.Errorf("module %d driver %s: score %v out of [1,10]", i, d.Name, d.Score)
			}
			if d.Rationale == "" {
				t.Errorf("module %d driver %s: empty rationale", i, d.Name)
			}
		}
	}
}

func TestProviderConsumer_Orientation(t *testing.T) {
	c := newTestClassifier()

	vendor := c.ProviderConsumer(vendorText)
	client := c.ProviderConsumer(clientText)

	if client.CompositeScore <= vendor.CompositeScore {
		t.Errorf("client-serving text (%d) should outscore vendor pitch (%d)",
			client.CompositeScore, vendor.CompositeScore)
	}
}

func TestProviderConsumer_Bands(t *testing.T) {
	bands := bandSet{
		{min: 65, label: model.ClassClientServing},
		{min: 35, label: model.ClassBalancedOrient},
		{min: 0, label: model.ClassVendorServing},
	}

	cases := []struct {
		composite int
		want      string
	}{
		{100, model.ClassClientServing},
		{65, model.ClassClientServing},
		{64, model.ClassBalancedOrient},
		{35, model.ClassBalancedOrient},
		{34, model.ClassVendorServing},
		{0, model.ClassVendorServing},
	}
	for _, tc := range cases {
		if got := bands.classify(tc.composite); got != tc.want {
			t.Errorf("composite %d: expected %q, got %q", tc.composite, tc.want, got)
		}
	}
}

func TestConfidence(t *testing.T) {
	// A perfectly ambiguous composite sits exactly at the floor
	if got := confidence(50, 40, 90); got != 40 {
		t.Errorf("expected floor confidence 40 at composite 50, got %d", got)
	}

	// Confidence grows with distance from the midpoint
	if got := confidence(80, 40, 90); got != 70 {
		t.Errorf("expected 70 at composite 80, got %d", got)
	}
	if got := confidence(20, 40, 90); got != 70 {
		t.Errorf("expected symmetric 70 at composite 20, got %d", got)
	}

	// And is capped at the module ceiling
	if got := confidence(0, 40, 90); got != 90 {
		t.Errorf("expected ceiling 90 at composite 0, got %d", got)
	}
	if got := confidence(100, 30, 80); got != 80 {
		t.Errorf("expected ceiling 80 at composite 100, got %d", got)
	}
}

func TestRarityIndex_NoveltySignal(t *testing.T) {
	c := newTestClassifier()

	novel := c.RarityIndex(`Our patented approach comes from original research: we
measured outcomes across our experiment cohort. Contrary to popular belief,
the conventional wisdom is wrong, and our proprietary, first-of-its-kind
method proves it. This breakthrough is unprecedented.`)

	commodity := c.RarityIndex(`We follow industry standard best practices. This
well-established, widely adopted approach is standard practice everywhere.
The conventional approach is mature and commonly used across the industry.`)

	if novel.CompositeScore <= commodity.CompositeScore {
		t.Errorf("novel text (%d) should outscore commodity text (%d)",
			novel.CompositeScore, commodity.CompositeScore)
	}
}

func TestAudienceLevel_Direction(t *testing.T) {
	c := newTestClassifier()

	exec := c.AudienceLevel(`Board-level strategy for shareholder value: this
market positioning delivers competitive advantage and long-term vision for
the C-suite. Our strategic roadmap aligns the portfolio with the growth
thesis the board of directors endorsed.`)

	practitioner := c.AudienceLevel(`Configure the API endpoint, deploy the
container image, and run the migration script. The SDK exposes a debug
interface; check the logs, tune the query parameters 8080 5432 3306, and
restart the daemon after installation.`)

	if exec.CompositeScore <= practitioner.CompositeScore {
		t.Errorf("executive text (%d) should outscore practitioner text (%d)",
			exec.CompositeScore, practitioner.CompositeScore)
	}
}

func TestModules_Deterministic(t *testing.T) {
	c := newTestClassifier()

	first := allModules(c, vendorText)
	for run := 0; run < 3; run++ {
		again := allModules(c, vendorText)
		for i := range again {
			if again[i].CompositeScore != first[i].CompositeScore {
				t.Fatalf("run %d module %d: composite changed %d -> %d",
					run, i, first[i].CompositeScore, again[i].CompositeScore)
			}
			if again[i].Classification != first[i].Classification {
				t.Fatalf("run %d module %d: classification changed", run, i)
			}
		}
	}
}
