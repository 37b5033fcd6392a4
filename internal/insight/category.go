package insight

import "strings"

// Category is one tag in the closed interview-question taxonomy
type Category string

const (
	CategorySelfIntro    Category = "self_intro"
	CategoryProject      Category = "project"
	CategoryTechDepth    Category = "tech_depth"
	CategorySystemDesign Category = "system_design"
	CategoryAlgorithm    Category = "algorithm"
	CategoryBehavior     Category = "behavior"
	CategoryMotivation   Category = "motivation"
	CategoryCompany      Category = "company"
	CategoryProduct      Category = "product"
	CategoryClosing      Category = "closing"
	CategoryOther        Category = "other"
)

var categoryLabels = map[Category]string{
	CategorySelfIntro:    "自我介绍",
	CategoryProject:      "项目经验",
	CategoryTechDepth:    "技术深度",
	CategorySystemDesign: "系统设计",
	CategoryAlgorithm:    "算法与编码",
	CategoryBehavior:     "行为面试",
	CategoryMotivation:   "求职动机",
	CategoryCompany:      "公司认知",
	CategoryProduct:      "产品思维",
	CategoryClosing:      "收尾&反问",
	CategoryOther:        "综合问题",
}

// categoryRules is an ordered priority list: the first rule with a keyword
// hit wins. system_design keywords run before the generic tech_depth ones,
// so a question mentioning both classifies as system_design.
var categoryRules = []struct {
	keywords []string
	category Category
}{
	{[]string{"自我", "self"}, CategorySelfIntro},
	{[]string{"项目", "project"}, CategoryProject},
	{[]string{"架构", "系统设计", "system"}, CategorySystemDesign},
	{[]string{"算法", "复杂度", "leetcode", "coding"}, CategoryAlgorithm},
	{[]string{"技术", "原理", "性能", "优化"}, CategoryTechDepth},
	{[]string{"冲突", "合作", "沟通", "失败", "复盘"}, CategoryBehavior},
	{[]string{"动机", "why us", "为什么选择"}, CategoryMotivation},
	{[]string{"公司", "业务", "行业"}, CategoryCompany},
	{[]string{"产品", "体验"}, CategoryProduct},
	{[]string{"反问", "提问", "closing"}, CategoryClosing},
}

// NormalizeCategory maps a free-text category label plus the question text
// onto the closed taxonomy. Total and deterministic: same input always
// yields the same category, unmatched input is CategoryOther.
func NormalizeCategory(category, question string) Category {
	source := strings.ToLower(category + question)
	if strings.TrimSpace(source) == "" {
		return CategoryOther
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(source, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// Label returns the display label for a category
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// DisplayLabel picks the label shown to the user: the report's own free-text
// category wins over the normalized label when present
func DisplayLabel(c Category, raw string) string {
	if raw != "" {
		return raw
	}
	return c.Label()
}
