package insight

import (
	"strings"

	"interviewlens/internal/model"
)

// followUpLibrary maps each category to three curated probe templates:
// a request for a more rigorous/quantified example, a retrospective probe,
// and a probe into the weakest aspect or next step. {topic} and {category}
// placeholders are substituted at render time. Categories without an entry
// fall back to defaultTemplates.
var followUpLibrary = map[Category][]model.DerivedQuestion{
	CategorySelfIntro: {
		{Question: "能否结合一两个代表性项目，补充你在「{topic}」方面最有说服力的经历？", Reason: "自我介绍后，面试官通常会追问能证明个人定位的具体案例。"},
		{Question: "如果让你用一个指标衡量自己在这段经历里的成长，会选择什么？", Reason: "考察候选人能否提炼经验并用数据量化。"},
		{Question: "在这个背景下你目前最大的短板是什么？你打算怎么补？", Reason: "面试官希望确认自省能力与改进计划。"},
	},
	CategoryProject: {
		{Question: "在这个项目里你最关注的指标是什么？最终结果相较预期如何？", Reason: "验证候选人是否以结果为导向，并有量化意识。"},
		{Question: "如果项目时间再给你一次机会，你会如何重做最难的那部分？", Reason: "考察复盘能力和可迁移经验。"},
		{Question: "该项目中有哪些决策点是你主导的？当时的权衡逻辑是什么？", Reason: "深入了解候选人的独立思考与影响力。"},
	},
	CategoryTechDepth: {
		{Question: "在这个技术方案之外，你还评估过哪些可选思路？", Reason: "判断技术深度是否建立在全面调研和权衡之上。"},
		{Question: "如果这个方案要扩展到 10 倍规模，最薄弱的环节会是什么？", Reason: "考察系统性思考能力和风险意识。"},
		{Question: "你能画出关键数据流/调用链吗？哪些节点最容易出问题？", Reason: "面试官希望看到候选人的底层理解。"},
	},
	CategorySystemDesign: {
		{Question: "在高并发/高可用场景下，这套设计的瓶颈会出在哪里？", Reason: "系统性问题通常会追问极端场景的鲁棒性。"},
		{Question: "如果上线后指标异常，你的排查顺序会怎样？", Reason: "考察运维意识与定位问题的方法论。"},
		{Question: "这套架构里，你最担心的单点失败是什么？", Reason: "让候选人展示对整体拓扑和假设的掌控力。"},
	},
	CategoryAlgorithm: {
		{Question: "这个算法有没有进一步优化空间？复杂度的瓶颈核心在哪？", Reason: "算法题常被追问是否还有更优解或空间换时间。"},
		{Question: "如果输入数据量更加「极端」，你会如何调整？", Reason: "考察对边界情况和工程落地的考虑。"},
		{Question: "有没有真实项目中用过类似思路？结果怎样？", Reason: "评估算法知识是否能迁移到业务。"},
	},
	CategoryBehavior: {
		{Question: "这类冲突/挑战你后来又遇到过吗？这次会怎么处理？", Reason: "行为面试会验证经验能否指导后续行动。"},
		{Question: "在团队中你的角色定位是什么？别人会如何评价？", Reason: "深挖候选人的团队协作与影响力。"},
		{Question: "如果结果不如预期，你通常如何复盘并给团队反馈？", Reason: "考察复盘机制和沟通方式。"},
	},
	CategoryMotivation: {
		{Question: "你如何判断一家公司/岗位真正吸引你的点是什么？", Reason: "确认动机是否经过深思熟虑，而不是泛泛而谈。"},
		{Question: "加入我们后，你希望 6 个月内验证哪件事？", Reason: "面试官关注候选人是否已设定具体目标。"},
		{Question: "如果要拿我们和其他 offer 做对比，你最看重哪些指标？", Reason: "考察决策逻辑与匹配度。"},
	},
	CategoryCompany: {
		{Question: "我们近期哪项业务升级最吸引你？你会怎么参与？", Reason: "检验候选人是否做过深入调研并有观点。"},
		{Question: "针对 {category}，你觉得我们还可以如何优化？", Reason: "追问候选人的行业洞察与建设性想法。"},
		{Question: "如果加入团队，前三个月你会优先关注什么？", Reason: "考察落地计划与行动优先级。"},
	},
	CategoryProduct: {
		{Question: "这个产品背后的用户画像和核心场景是什么？", Reason: "面试官会追问候选人对业务上下文的思考。"},
		{Question: "如果要设计指标体系，你会选哪些关键指标？", Reason: "检验候选人是否具备数据驱动意识。"},
		{Question: "你如何判断一次产品迭代是否成功？", Reason: "了解复盘框架与因果拆解能力。"},
	},
	CategoryClosing: {
		{Question: "你还想了解我们团队的哪一块细节？", Reason: "引导候选人准备更深入的反向提问。"},
		{Question: "如果拿到 offer，你最想先确认哪些合作机制？", Reason: "检验对团队流程与沟通的关注。"},
		{Question: "是否还有其他顾虑需要我们补充说明？", Reason: "确保双方信息对齐、防止遗留问题。"},
	},
}

var defaultTemplates = []model.DerivedQuestion{
	{Question: "能否补充一个更具挑战性的案例，说明你如何解决？", Reason: "多数问题都可以进一步追问更高难度的经历。"},
	{Question: "如果换一个完全不同的业务场景，你的思路会改变吗？", Reason: "考察方法论是否具备迁移性。"},
	{Question: "这件事对团队/业务有什么可复用的经验？", Reason: "鼓励候选人沉淀复盘结论。"},
}

// FromTemplates renders the canned follow-up probes for a category. Always
// returns between one and three items, so the derived block is never empty
// even with the external service down.
func FromTemplates(category Category, topic string) []model.DerivedQuestion {
	templates, ok := followUpLibrary[category]
	if !ok {
		templates = defaultTemplates
	}
	if topic == "" {
		topic = genericTopic
	}
	label := category.Label()

	out := make([]model.DerivedQuestion, 0, 3)
	for _, tpl := range templates {
		if len(out) == 3 {
			break
		}
		out = append(out, model.DerivedQuestion{
			Question: substitute(tpl.Question, topic, label),
			Reason:   substitute(tpl.Reason, topic, label),
		})
	}
	return out
}

func substitute(s, topic, label string) string {
	s = strings.ReplaceAll(s, "{topic}", topic)
	return strings.ReplaceAll(s, "{category}", label)
}
