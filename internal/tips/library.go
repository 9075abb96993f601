package tips

import "github.com/alexanderramin/studypal/internal/domain"

// subjectTips are the static tips per lower-cased subject, most useful first.
var subjectTips = map[string][]string{
	"mathematics": {
		"Practice problems daily, math skills deteriorate quickly without use",
		"Keep a formula sheet and review it at the start of each session",
		"Work through problems step-by-step, never skip intermediate steps",
		"Focus on understanding why formulas work, not just memorizing them",
	},
	"physics": {
		"Always draw clear diagrams before solving physics problems",
		"Understand the physical meaning behind every equation you use",
		"Practice dimensional analysis to check if your answers make sense",
		"Connect physics concepts to real-world phenomena you observe",
	},
	"chemistry": {
		"Memorize the periodic table structure early, it is your roadmap",
		"Practice balancing chemical equations until it becomes automatic",
		"Connect molecular structure to chemical properties and behavior",
		"Use 3D models or drawings to visualize molecular structures",
	},
	"biology": {
		"Create concept maps to show relationships between biological processes",
		"Develop mnemonics for complex biological terms and classifications",
		"Study at multiple levels: molecular, cellular, organism and ecosystem",
		"Use diagrams and flowcharts to understand biological processes",
	},
	"computer science": {
		"Code every single day, even if just for 30 minutes",
		"Debug systematically using print statements and debuggers",
		"Read other people's code to learn different problem-solving approaches",
		"Build projects that interest you, passion drives learning",
	},
}

// staticPerSubject is how many subject tips a plan carries.
const staticPerSubject = 2

var scenarioTips = map[domain.Scenario][]string{
	domain.ScenarioExamPrep: {
		"Create a countdown calendar to your exam date and track progress daily",
		"Take practice tests under strict timed conditions to build exam stamina",
		"Focus 60% of your time on your weakest topics and identify gaps early",
		"Review past exam papers and understand the marking scheme",
		"Create concise summary sheets for last-minute revision",
	},
	domain.ScenarioHomework: {
		"Read assignment instructions twice before starting any work",
		"Break large assignments into smaller, manageable tasks with deadlines",
		"Use multiple reliable sources and always cite them properly",
		"Complete assignments 1-2 days before the deadline for review time",
		"Form study groups to discuss challenging homework problems",
	},
	domain.ScenarioProject: {
		"Start with a clear project outline and timeline with milestones",
		"Spend 30% of your time on research and planning before execution",
		"Keep regular backups of your work and document your process",
		"Get feedback early and often, don't wait until the end",
		"Focus on quality over quantity, depth beats breadth in projects",
	},
	domain.ScenarioGeneral: {
		"Follow the 50-30-20 rule: 50% new material, 30% practice, 20% review",
		"Use active recall techniques and test yourself without looking at notes",
		"Connect new concepts to what you already know for better retention",
		"Study the same subject at the same time daily to build routine",
		"Set specific learning goals for each study session",
	},
}

// generalTips pad short lists up to MinTips.
var generalTips = []string{
	"Create a dedicated study schedule and stick to it consistently",
	"Take regular breaks using the Pomodoro Technique (25 min study, 5 min break)",
	"Find a quiet, well-lit study environment free from distractions",
	"Use active recall by testing yourself without looking at notes",
	"Teach concepts to others to reinforce your understanding",
	"Review material regularly using spaced repetition",
	"Get adequate sleep to consolidate memory and improve focus",
}
