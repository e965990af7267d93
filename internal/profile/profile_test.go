package profile

import "testing"

func TestUserProfileValidate(t *testing.T) {
	valid := UserProfile{
		Age:           30,
		Sex:           SexMale,
		HeightCM:      175,
		WeightKG:      70,
		ActivityLevel: ActivityModerate,
		Goal:          GoalMaintenance,
	}

	t.Run("Valid", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("NegativeAge", func(t *testing.T) {
		p := valid
		p.Age = -1
		if err := p.Validate(); err == nil {
			t.Error("Expected an error for negative age, got nil")
		}
	})

	t.Run("ZeroHeight", func(t *testing.T) {
		p := valid
		p.HeightCM = 0
		if err := p.Validate(); err == nil {
			t.Error("Expected an error for zero height, got nil")
		}
	})

	t.Run("ZeroWeight", func(t *testing.T) {
		p := valid
		p.WeightKG = 0
		if err := p.Validate(); err == nil {
			t.Error("Expected an error for zero weight, got nil")
		}
	})
}

func TestExclusionSet(t *testing.T) {
	c := DietaryConstraints{
		ExcludedIngredients: []string{"Mushrooms", " cilantro "},
		Allergies:           []string{"PEANUTS"},
		Intolerances:        []string{"lactose", ""},
	}

	set := c.ExclusionSet()

	for _, want := range []string{"mushrooms", "cilantro", "peanuts", "lactose"} {
		if _, ok := set[want]; !ok {
			t.Errorf("Expected exclusion set to contain '%s'", want)
		}
	}
	if len(set) != 4 {
		t.Errorf("Expected 4 entries, got %d", len(set))
	}
}
