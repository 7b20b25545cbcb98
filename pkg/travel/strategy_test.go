package travel_test

import (
	"testing"

	"github.com/okilairistaeva05-svg/practic6/pkg/travel"
)

var strategies = map[string]travel.Strategy{
	"plane": travel.Plane,
	"train": travel.Train,
	"bus":   travel.Bus,
}

func TestCalculate_PlaneExample(t *testing.T) {
	got := travel.Plane.Calculate(100, 2, "business", true)
	if got != 160.0 {
		t.Errorf("Expected 160, got %f", got)
	}
}

func TestCalculate_Economy(t *testing.T) {
	cases := []struct {
		s    travel.Strategy
		want float64
	}{
		{travel.Plane, 50},
		{travel.Train, 20},
		{travel.Bus, 10},
	}
	for _, c := range cases {
		if got := c.s.Calculate(100, 1, "economy", false); got != c.want {
			t.Errorf("%s: expected %f, got %f", c.s.Name(), c.want, got)
		}
	}
}

func TestCalculate_LinearInPassengers(t *testing.T) {
	for name, s := range strategies {
		for _, disc := range []bool{false, true} {
			for _, class := range []string{"economy", "business"} {
				one := s.Calculate(250, 1, class, disc)
				for _, p := range []int{0, 2, 7, -3} {
					if got := s.Calculate(250, p, class, disc); got != float64(p)*one {
						t.Errorf("%s p=%d class=%s disc=%v: %f != %f", name, p, class, disc, got, float64(p)*one)
					}
				}
			}
		}
	}
}

func TestCalculate_BusinessNotCheaper(t *testing.T) {
	for name, s := range strategies {
		for _, disc := range []bool{false, true} {
			eco := s.Calculate(300, 3, "economy", disc)
			bus := s.Calculate(300, 3, "business", disc)
			if bus < eco {
				t.Errorf("%s: business %f cheaper than economy %f", name, bus, eco)
			}
		}
	}
}

func TestCalculate_DiscountNotDearer(t *testing.T) {
	for name, s := range strategies {
		for _, class := range []string{"economy", "business"} {
			full := s.Calculate(300, 3, class, false)
			disc := s.Calculate(300, 3, class, true)
			if disc > full {
				t.Errorf("%s: discounted %f dearer than full %f", name, disc, full)
			}
		}
	}
}

func TestCalculate_ClassCaseInsensitive(t *testing.T) {
	for name, s := range strategies {
		want := s.Calculate(120, 2, "business", false)
		for _, class := range []string{"BUSINESS", "Business", "bUsInEsS"} {
			if got := s.Calculate(120, 2, class, false); got != want {
				t.Errorf("%s %q: expected %f, got %f", name, class, want, got)
			}
		}
	}
}

func TestCalculate_UnknownClassIsEconomy(t *testing.T) {
	if travel.Train.Calculate(100, 1, " business", false) != travel.Train.Calculate(100, 1, "economy", false) {
		t.Error("Only an exact case-insensitive match should count as business")
	}
}

func TestCalculate_NoBoundsChecking(t *testing.T) {
	if got := travel.Bus.Calculate(-100, 1, "economy", false); got != -10 {
		t.Errorf("Negative distance should propagate, got %f", got)
	}
}

func TestSelect(t *testing.T) {
	cases := map[string]string{
		"1":  "plane",
		"2":  "train",
		"3":  "bus",
		"9":  "bus",
		"":   "bus",
		" 1": "bus",
		"x":  "bus",
	}
	for choice, want := range cases {
		if got := travel.Select(choice).Name(); got != want {
			t.Errorf("Select(%q): expected %s, got %s", choice, want, got)
		}
	}
}

func TestSelect_FallbackMatchesBusFormula(t *testing.T) {
	got := travel.Select("garbage").Calculate(80, 3, "Business", true)
	want := 80.0
	for _, m := range []float64{0.1, 1.2, 0.95, 3} {
		want *= m
	}
	if got != want {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func TestContext_SwapStrategy(t *testing.T) {
	ctx := travel.NewContext(travel.Select("1"))
	if got := ctx.Calculate(10, 1, "economy", false); got != 5 {
		t.Errorf("Expected plane cost 5, got %f", got)
	}

	ctx.SetStrategy(travel.Train)
	if ctx.Strategy().Name() != "train" {
		t.Errorf("Expected train, got %s", ctx.Strategy().Name())
	}
	if got := ctx.Calculate(10, 1, "economy", false); got != 2 {
		t.Errorf("Expected train cost 2, got %f", got)
	}
}
