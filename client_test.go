package gtrends

import (
	"testing"

	"github.com/mcronce/gtrends/constants"
)

func TestBuildExplore(t *testing.T) {
	newTrendsServer(t)

	client := mustBuild(t, []string{"PS4", "XBOX", "PC"}, constants.COUNTRY_US)
	if !client.built {
		t.Fatalf("Expected client to be built")
	}

	// TIMESERIES + GEO_MAP + (GEO_MAP_i + RELATED_QUERIES_i) per keyword.
	if len(client.widgets) != 8 {
		t.Errorf("Expected 8 widgets, got %d", len(client.widgets))
	}

	widgets, err := client.geoMapWidgets()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(widgets) != 4 {
		t.Fatalf("Expected 4 comparedgeo widgets, got %d", len(widgets))
	}
	if widgets[0].Token != "token-all" {
		t.Errorf("Expected the combined widget first, got token %s", widgets[0].Token)
	}
}

func TestBuildCustomPeriod(t *testing.T) {
	newTrendsServer(t)

	builder := Client{}.GetBuilder([]string{"hacker"}, constants.COUNTRY_FR)
	builder.SetLang(constants.LANG_FRENCH)
	builder.SetCategory(constants.CATEGORY_COMPUTERS_AND_ELECTRONICS)
	builder.SetProperty(constants.PROPERTY_NEWS)
	builder.SetCustomPeriod("2022-01-01", "2022-12-31")
	if _, err := builder.Build(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidateClient(t *testing.T) {
	t.Run("no keywords", func(t *testing.T) {
		builder := Client{}.GetBuilder(nil, constants.COUNTRY_US)
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("too many keywords", func(t *testing.T) {
		builder := Client{}.GetBuilder([]string{"a", "b", "c", "d", "e", "f"}, constants.COUNTRY_US)
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("blank keyword", func(t *testing.T) {
		builder := Client{}.GetBuilder([]string{"hacker", "  "}, constants.COUNTRY_US)
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad geo", func(t *testing.T) {
		builder := Client{}.GetBuilder([]string{"hacker"}, "USA")
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad hl", func(t *testing.T) {
		builder := Client{}.GetBuilder([]string{"hacker"}, constants.COUNTRY_US)
		builder.SetLang("english")
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad category", func(t *testing.T) {
		builder := Client{}.GetBuilder([]string{"hacker"}, constants.COUNTRY_US)
		builder.SetCategory(2)
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad property", func(t *testing.T) {
		builder := Client{}.GetBuilder([]string{"hacker"}, constants.COUNTRY_US)
		builder.SetProperty("web")
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad period", func(t *testing.T) {
		builder := Client{}.GetBuilder([]string{"hacker"}, constants.COUNTRY_US)
		builder.SetPeriod("past year")
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("bad custom period date", func(t *testing.T) {
		builder := Client{}.GetBuilder([]string{"hacker"}, constants.COUNTRY_US)
		builder.SetCustomPeriod("2022-13-01", "2022-12-31")
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
	t.Run("reversed custom period", func(t *testing.T) {
		builder := Client{}.GetBuilder([]string{"hacker"}, constants.COUNTRY_US)
		builder.SetCustomPeriod("2022-12-31", "2022-01-01")
		if _, err := builder.Build(); err == nil {
			t.Errorf("Expected error, got nil")
		}
	})
}
