package model

import "strings"

// Skill values mirror the skill enumeration offered in the profile form.
type Skill string

// Category values mirror the interest/category enumeration. Hackathon
// listings carry one or more of these as their type tags.
type Category string

// Closed skill enumeration.
const (
	SkillPython          Skill = "Python"
	SkillJavaScript      Skill = "JavaScript"
	SkillTypeScript      Skill = "TypeScript"
	SkillGo              Skill = "Go"
	SkillJava            Skill = "Java"
	SkillCPlusPlus       Skill = "C++"
	SkillRust            Skill = "Rust"
	SkillSQL             Skill = "SQL"
	SkillReact           Skill = "React"
	SkillNodeJS          Skill = "Node.js"
	SkillMachineLearning Skill = "Machine Learning"
	SkillDataScience     Skill = "Data Science"
	SkillUIUXDesign      Skill = "UI/UX Design"
	SkillCloud           Skill = "Cloud"
	SkillDevOps          Skill = "DevOps"
	SkillCybersecurity   Skill = "Cybersecurity"
	SkillMobile          Skill = "Mobile Development"
	SkillBlockchain      Skill = "Blockchain"
)

// Closed category enumeration.
const (
	CategoryAI             Category = "AI"
	CategoryWeb            Category = "Web Development"
	CategoryMobile         Category = "Mobile"
	CategoryFinTech        Category = "FinTech"
	CategoryHealthTech     Category = "HealthTech"
	CategoryEdTech         Category = "EdTech"
	CategoryGaming         Category = "Gaming"
	CategorySustainability Category = "Sustainability"
	CategoryOpenSource     Category = "Open Source"
	CategorySocialImpact   Category = "Social Impact"
	CategoryBlockchain     Category = "Blockchain"
	CategoryRobotics       Category = "Robotics"
	CategoryARVR           Category = "AR/VR"
	CategoryCybersecurity  Category = "Cybersecurity"
	CategoryData           Category = "Data"
)

var allSkills = []Skill{
	SkillPython, SkillJavaScript, SkillTypeScript, SkillGo, SkillJava,
	SkillCPlusPlus, SkillRust, SkillSQL, SkillReact, SkillNodeJS,
	SkillMachineLearning, SkillDataScience, SkillUIUXDesign, SkillCloud,
	SkillDevOps, SkillCybersecurity, SkillMobile, SkillBlockchain,
}

var allCategories = []Category{
	CategoryAI, CategoryWeb, CategoryMobile, CategoryFinTech,
	CategoryHealthTech, CategoryEdTech, CategoryGaming,
	CategorySustainability, CategoryOpenSource, CategorySocialImpact,
	CategoryBlockchain, CategoryRobotics, CategoryARVR,
	CategoryCybersecurity, CategoryData,
}

// ParseSkill maps a raw string onto the closed skill enumeration,
// case-insensitively. Unknown values return ok = false; they are simply
// non-matching everywhere downstream, never an error.
func ParseSkill(s string) (Skill, bool) {
	s = strings.TrimSpace(s)
	for _, k := range allSkills {
		if strings.EqualFold(s, string(k)) {
			return k, true
		}
	}
	return "", false
}

// ParseCategory maps a raw string onto the closed category enumeration,
// case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range allCategories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// SkillsFromStrings converts raw tag strings to Skills, dropping unknowns.
// A dropped value contributes nothing to filtering or scoring, which is the
// same outcome as keeping it.
func SkillsFromStrings(raw []string) []Skill {
	out := make([]Skill, 0, len(raw))
	for _, s := range raw {
		if k, ok := ParseSkill(s); ok {
			out = append(out, k)
		}
	}
	return out
}

// CategoriesFromStrings converts raw tag strings to Categories, dropping
// unknowns. Listings always end up with a uniform set of category values,
// even when the upstream record carried a single scalar tag.
func CategoriesFromStrings(raw []string) []Category {
	out := make([]Category, 0, len(raw))
	for _, s := range raw {
		if c, ok := ParseCategory(s); ok {
			out = append(out, c)
		}
	}
	return out
}
