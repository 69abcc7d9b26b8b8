package taxonomy

import (
	"testing"

	"plant-care-assistant/internal/model"
)

func TestProfileForEveryTag(t *testing.T) {
	for _, tag := range Tags {
		p := ProfileFor(tag)
		if p.Tag != tag {
			t.Errorf("ProfileFor(%s).Tag = %s", tag, p.Tag)
		}
		if p.Title == "" {
			t.Errorf("ProfileFor(%s) has empty title", tag)
		}
		if len(p.Recommendations) == 0 {
			t.Errorf("ProfileFor(%s) has no recommendations", tag)
		}
	}
}

func TestProfileForUnknownTagFallsBack(t *testing.T) {
	p := ProfileFor(model.ConditionTag("rust"))
	if p.Tag != FallbackTag {
		t.Errorf("unknown tag resolved to %s, want %s", p.Tag, FallbackTag)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.ConditionTag
		exact bool
	}{
		{"exact lowercase", "healthy", model.ConditionHealthy, true},
		{"mixed case", "Healthy", model.ConditionHealthy, true},
		{"surrounding whitespace", "  pest\n", model.ConditionPest, true},
		{"overwatering", "OVERWATERING", model.ConditionOverwatering, true},
		{"unrecognized prose", "brown spots", FallbackTag, false},
		{"empty", "", FallbackTag, false},
		{"partial word", "fungal infection", FallbackTag, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, exact := Resolve(tt.input)
			if got != tt.want || exact != tt.exact {
				t.Errorf("Resolve(%q) = (%s, %v), want (%s, %v)", tt.input, got, exact, tt.want, tt.exact)
			}
		})
	}
}

func TestResolveAlwaysYieldsValidTag(t *testing.T) {
	inputs := []string{"", "healthy", "Brown Spots", "???", "fungal", "deficiencies"}
	for _, in := range inputs {
		tag, _ := Resolve(in)
		found := false
		for _, valid := range Tags {
			if tag == valid {
				found = true
			}
		}
		if !found {
			t.Errorf("Resolve(%q) produced invalid tag %q", in, tag)
		}
	}
}
