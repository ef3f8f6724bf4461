package catalog_test

import (
	"testing"

	"childscreen-service/internal/catalog"
	"childscreen-service/internal/domain"
)

func TestCatalogShape(t *testing.T) {
	behavioral, err := catalog.Get(domain.InstrumentBehavioral)
	if err != nil {
		t.Fatalf("get behavioral: %v", err)
	}
	if len(behavioral.Items) != 48 {
		t.Fatalf("expected 48 behavioral items, got %d", len(behavioral.Items))
	}
	if len(behavioral.Options) != 4 || behavioral.Options[0].Score != 0 || behavioral.Options[3].Score != 3 {
		t.Fatalf("unexpected behavioral options: %+v", behavioral.Options)
	}

	sensory, err := catalog.Get(domain.InstrumentSensory)
	if err != nil {
		t.Fatalf("get sensory: %v", err)
	}
	if len(sensory.Items) != 64 {
		t.Fatalf("expected 64 sensory items, got %d", len(sensory.Items))
	}
	if len(sensory.Options) != 5 || sensory.Options[0].Score != 1 || sensory.Options[4].Score != 5 {
		t.Fatalf("unexpected sensory options: %+v", sensory.Options)
	}

	if _, err := catalog.Get(domain.Instrument("OTHER")); err != domain.ErrUnknownInstrument {
		t.Fatalf("expected unknown instrument error, got %v", err)
	}
}

func TestItemIDsUniqueAndStable(t *testing.T) {
	for _, instrument := range []domain.Instrument{domain.InstrumentBehavioral, domain.InstrumentSensory} {
		def, err := catalog.Get(instrument)
		if err != nil {
			t.Fatalf("get %s: %v", instrument, err)
		}
		seen := make(map[int]bool, len(def.Items))
		for i, item := range def.Items {
			if item.ID != i+1 {
				t.Fatalf("%s item at index %d has id %d", instrument, i, item.ID)
			}
			if seen[item.ID] {
				t.Fatalf("%s has duplicate item id %d", instrument, item.ID)
			}
			seen[item.ID] = true
		}
	}
}

func TestFactorItemsExist(t *testing.T) {
	def, _ := catalog.Get(domain.InstrumentBehavioral)
	ids := make(map[int]bool, len(def.Items))
	for _, item := range def.Items {
		ids[item.ID] = true
	}
	for factor, members := range catalog.BehavioralFactors {
		if len(members) == 0 {
			t.Fatalf("factor %s has no items", factor)
		}
		for _, id := range members {
			if !ids[id] {
				t.Fatalf("factor %s references missing item %d", factor, id)
			}
		}
	}
}

func TestActiveItemsAgeFilter(t *testing.T) {
	items, err := catalog.ActiveItems(domain.InstrumentSensory, "5.9")
	if err != nil {
		t.Fatalf("active items: %v", err)
	}
	if len(items) != 60 {
		t.Fatalf("expected 60 items for age 5.9, got %d", len(items))
	}
	for _, item := range items {
		if item.ID >= 61 {
			t.Fatalf("item %d should be excluded under age 6", item.ID)
		}
	}

	items, _ = catalog.ActiveItems(domain.InstrumentSensory, "6.0")
	if len(items) != 64 {
		t.Fatalf("expected full list at age 6.0, got %d", len(items))
	}

	// Unparseable age falls back to the full list.
	items, _ = catalog.ActiveItems(domain.InstrumentSensory, "six")
	if len(items) != 64 {
		t.Fatalf("expected full list for unparseable age, got %d", len(items))
	}

	// Behavioral runs ignore the declared age entirely.
	items, _ = catalog.ActiveItems(domain.InstrumentBehavioral, "3")
	if len(items) != 48 {
		t.Fatalf("expected 48 behavioral items, got %d", len(items))
	}
}

func TestActiveItemsReturnsIndependentSlice(t *testing.T) {
	for _, instrument := range []domain.Instrument{domain.InstrumentBehavioral, domain.InstrumentSensory} {
		items, err := catalog.ActiveItems(instrument, "8")
		if err != nil {
			t.Fatalf("active items for %s: %v", instrument, err)
		}
		items[0].Text = "mutated"
		items[0].Dimension = "mutated"

		fresh, _ := catalog.ActiveItems(instrument, "8")
		if fresh[0].Text == "mutated" || fresh[0].Dimension == "mutated" {
			t.Fatalf("%s catalog mutated through ActiveItems result", instrument)
		}
		def, _ := catalog.Get(instrument)
		if def.Items[0].Text == "mutated" {
			t.Fatalf("%s definition mutated through ActiveItems result", instrument)
		}
	}
}

func TestSymptomDescriptionFallbacks(t *testing.T) {
	perDim := catalog.SymptomDescription(domain.InstrumentSensory, catalog.DimVestibularBalance)
	overall := catalog.SymptomDescription(domain.InstrumentSensory, catalog.OverallSummary)
	unknown := catalog.SymptomDescription(domain.InstrumentSensory, "Nonexistent")
	if perDim == "" || overall == "" {
		t.Fatal("expected non-empty descriptions")
	}
	if perDim == overall {
		t.Fatal("dimension text should differ from the overall summary")
	}
	if unknown != overall {
		t.Fatal("unknown dimensions should share the overall fallback text")
	}

	if catalog.SymptomDescription(domain.InstrumentBehavioral, catalog.FactorAnxiety) == catalog.SymptomDescription(domain.InstrumentBehavioral, catalog.OverallSummary) {
		t.Fatal("behavioral dimension text should differ from its fallback")
	}
}
