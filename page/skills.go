package page

// Skill is one selectable pill.
type Skill struct {
	Key   string
	Label string
}

// SkillItem is one line of the skill list, tagged with the skill it shows.
type SkillItem struct {
	Skill string
	Text  string
}

// Skills in pill order.
var Skills = []Skill{
	{Key: "html", Label: "HTML"},
	{Key: "css", Label: "CSS"},
	{Key: "js", Label: "JS"},
	{Key: "data", Label: "Data"},
	{Key: "ux", Label: "UX"},
	{Key: "team", Label: "Team"},
}

// SkillItems is the list emphasized by the active pill.
var SkillItems = []SkillItem{
	{Skill: "html", Text: "Accessible forms and landmarks"},
	{Skill: "css", Text: "Grid layouts that hold at any width"},
	{Skill: "js", Text: "Canvas effects at a steady frame rate"},
	{Skill: "data", Text: "Interactive charts for reports"},
	{Skill: "ux", Text: "Navigation that reads at a glance"},
	{Skill: "team", Text: "Reviews, branches and release notes"},
}

// NoSkillDetail is shown until a known skill is selected.
const NoSkillDetail = "Select a skill to emphasize related items."

var skillDescriptions = map[string]string{
	"html": "Semantics, accessibility patterns, form structure, and clean document hierarchy.",
	"css":  "Responsive layout with Flex/Grid, readable spacing, and calm motion.",
	"js":   "DOM interactions, canvas effects, event handling, and performance-safe animation.",
	"data": "Embedding interactive visualizations and presenting data clearly.",
	"ux":   "Information architecture, clarity-first writing, and scannable structure.",
	"team": "Collaboration workflows, version control habits, and stakeholder alignment.",
}

// SkillDetail returns the description for a skill key.
func SkillDetail(skill string) string {
	if d, ok := skillDescriptions[skill]; ok {
		return d
	}
	return NoSkillDetail
}

// ItemEmphasis returns the opacity and horizontal shift of a list item.
// With no active skill every item is drawn plain.
func ItemEmphasis(item SkillItem, active string) (alpha, shift float32) {
	if active == "" {
		return 1, 0
	}
	if item.Skill == active {
		return 1, 2
	}
	return 0.65, 0
}
