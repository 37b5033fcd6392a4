package insight

import (
	"strings"
	"testing"
)

func TestFollowUpLibraryCoverage(t *testing.T) {
	categories := []Category{
		CategorySelfIntro, CategoryProject, CategoryTechDepth,
		CategorySystemDesign, CategoryAlgorithm, CategoryBehavior,
		CategoryMotivation, CategoryCompany, CategoryProduct, CategoryClosing,
	}
	for _, c := range categories {
		templates, ok := followUpLibrary[c]
		if !ok {
			t.Errorf("category %s has no template bucket", c)
			continue
		}
		if len(templates) != 3 {
			t.Errorf("category %s has %d templates, want 3", c, len(templates))
		}
	}
	if len(defaultTemplates) != 3 {
		t.Errorf("default bucket has %d templates, want 3", len(defaultTemplates))
	}
}

func TestFromTemplates(t *testing.T) {
	for _, c := range []Category{CategorySelfIntro, CategoryOther, Category("bogus")} {
		got := FromTemplates(c, "秒杀系统")
		if len(got) != 3 {
			t.Errorf("FromTemplates(%s) returned %d items, want 3", c, len(got))
		}
		for _, item := range got {
			if item.Question == "" || item.Reason == "" {
				t.Errorf("FromTemplates(%s) produced empty field: %+v", c, item)
			}
			if strings.Contains(item.Question, "{topic}") || strings.Contains(item.Question, "{category}") {
				t.Errorf("unsubstituted placeholder in question: %q", item.Question)
			}
			if strings.Contains(item.Reason, "{topic}") || strings.Contains(item.Reason, "{category}") {
				t.Errorf("unsubstituted placeholder in reason: %q", item.Reason)
			}
		}
	}
}

func TestFromTemplatesSubstitution(t *testing.T) {
	got := FromTemplates(CategorySelfIntro, "分布式系统")
	if !strings.Contains(got[0].Question, "分布式系统") {
		t.Errorf("topic not substituted into self_intro template: %q", got[0].Question)
	}

	got = FromTemplates(CategoryCompany, "业务方向")
	if !strings.Contains(got[1].Question, CategoryCompany.Label()) {
		t.Errorf("category label not substituted into company template: %q", got[1].Question)
	}
}

func TestFromTemplatesOtherUsesDefaultBucket(t *testing.T) {
	other := FromTemplates(CategoryOther, "话题")
	if other[0].Question != defaultTemplates[0].Question {
		t.Errorf("other category should render the default bucket, got %q", other[0].Question)
	}
}

func TestFromTemplatesEmptyTopic(t *testing.T) {
	got := FromTemplates(CategorySelfIntro, "")
	if !strings.Contains(got[0].Question, genericTopic) {
		t.Errorf("empty topic should substitute the generic placeholder: %q", got[0].Question)
	}
}
