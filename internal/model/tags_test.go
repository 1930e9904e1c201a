package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"opphub/match-service/internal/model"
)

func TestParseSkill(t *testing.T) {
	got, ok := model.ParseSkill("python")
	if !ok || got != model.SkillPython {
		t.Errorf("ParseSkill(\"python\") = %q, %v; want %q, true", got, ok, model.SkillPython)
	}

	if _, ok := model.ParseSkill("COBOL"); ok {
		t.Error("ParseSkill(\"COBOL\") should not be in the closed enumeration")
	}
	if _, ok := model.ParseSkill(""); ok {
		t.Error("ParseSkill(\"\") should not match")
	}
}

func TestParseCategory(t *testing.T) {
	got, ok := model.ParseCategory("  fintech ")
	if !ok || got != model.CategoryFinTech {
		t.Errorf("ParseCategory(\" fintech \") = %q, %v; want %q, true", got, ok, model.CategoryFinTech)
	}

	if _, ok := model.ParseCategory("Underwater Basket Weaving"); ok {
		t.Error("unknown category should not parse")
	}
}

func TestSkillsFromStrings_DropsUnknowns(t *testing.T) {
	got := model.SkillsFromStrings([]string{"Go", "cobol", "react", ""})
	want := []model.Skill{model.SkillGo, model.SkillReact}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SkillsFromStrings (-want +got):\n%s", diff)
	}
}

func TestCategoriesFromStrings_DropsUnknowns(t *testing.T) {
	got := model.CategoriesFromStrings([]string{"ai", "nonsense", "Web Development"})
	want := []model.Category{model.CategoryAI, model.CategoryWeb}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategoriesFromStrings (-want +got):\n%s", diff)
	}
}
