package data

import "testing"

func TestAchievementRootIsIndependent(t *testing.T) {
	if !CanUnlock("openInventory", map[string]bool{}) {
		t.Fatalf("expected root achievement to be unlockable with no prior unlocks")
	}
}

func TestAchievementRequiresParent(t *testing.T) {
	if CanUnlock("mineWood", map[string]bool{}) {
		t.Fatalf("expected mineWood to require its parent")
	}
	if !CanUnlock("mineWood", map[string]bool{"openInventory": true}) {
		t.Fatalf("expected mineWood to unlock once openInventory is unlocked")
	}
}

func TestBiomeTempCategory(t *testing.T) {
	desert := BiomeByID(2)
	if desert.TempCategory() != TempWarm {
		t.Fatalf("expected desert to be warm, got %v", desert.TempCategory())
	}
	taiga := BiomeByID(5)
	if taiga.TempCategory() != TempMedium {
		t.Fatalf("expected taiga (temperature 0.25) to be medium, got %v", taiga.TempCategory())
	}
}

func TestBiomeByIDFallsBackToPlains(t *testing.T) {
	b := BiomeByID(255)
	if b.Name != "plains" {
		t.Fatalf("expected unregistered biome id to fall back to plains, got %q", b.Name)
	}
}

func TestPotionTickIntervals(t *testing.T) {
	regen, ok := PotionByID(10)
	if !ok {
		t.Fatalf("expected regeneration to be registered")
	}
	if got := regen.TickInterval(0); got != 50 {
		t.Fatalf("expected regeneration base interval 50, got %d", got)
	}
	if got := regen.TickInterval(1); got != 25 {
		t.Fatalf("expected regeneration amplified interval 25, got %d", got)
	}
}

func TestAttributeDefaults(t *testing.T) {
	maxHealth, ok := AttributeDefaultFor("generic.maxHealth")
	if !ok || maxHealth.Base != 20 {
		t.Fatalf("expected generic.maxHealth base 20, got %+v ok=%v", maxHealth, ok)
	}
}
