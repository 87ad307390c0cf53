package quiz

// defaultBank is the fixed study-skills question set used whenever a
// document cannot supply enough questions.
var defaultBank = []Question{
	{
		Prompt: "What is the primary purpose of studying?",
		Options: []string{
			"To acquire knowledge and develop understanding",
			"To memorize information temporarily",
			"To pass time during the day",
			"To compete with other students",
		},
		Correct:     0,
		Explanation: "Studying helps us acquire knowledge, develop critical thinking skills, and build understanding of various subjects.",
	},
	{
		Prompt: "Which study technique is most effective for long-term retention?",
		Options: []string{
			"Cramming before exams",
			"Passive reading only",
			"Active recall and spaced repetition",
			"Highlighting text extensively",
		},
		Correct:     2,
		Explanation: "Active recall and spaced repetition have been proven to be the most effective methods for long-term learning and retention.",
	},
	{
		Prompt: "What is the benefit of taking breaks during study sessions?",
		Options: []string{
			"It wastes valuable study time",
			"It helps consolidate memory and prevents fatigue",
			"It is only useful for entertainment",
			"It reduces focus and concentration",
		},
		Correct:     1,
		Explanation: "Regular breaks help consolidate memory, prevent mental fatigue, and maintain focus during study sessions.",
	},
	{
		Prompt: "Which learning style involves learning through visual aids?",
		Options: []string{
			"Auditory learning",
			"Kinesthetic learning",
			"Visual learning",
			"Reading/writing learning",
		},
		Correct:     2,
		Explanation: "Visual learners prefer to learn through charts, diagrams, images, and other visual representations of information.",
	},
	{
		Prompt: "What is the recommended approach when you don't understand a concept?",
		Options: []string{
			"Skip it and move to the next topic",
			"Memorize it without understanding",
			"Ask questions and seek clarification",
			"Assume it's not important",
		},
		Correct:     2,
		Explanation: "When you don't understand something, it's best to ask questions, seek help, and work to clarify the concept rather than moving on.",
	},
	{
		Prompt: "What is the purpose of creating summaries while studying?",
		Options: []string{
			"To make notes look more organized",
			"To reduce the amount of content",
			"To reinforce learning and identify key points",
			"To fill up study time",
		},
		Correct:     2,
		Explanation: "Creating summaries helps reinforce learning, identify key concepts, and provides a quick reference for review.",
	},
	{
		Prompt: "Which factor is most important for effective learning?",
		Options: []string{
			"The amount of time spent studying",
			"The quality and focus of study sessions",
			"The number of books read",
			"The difficulty of the material",
		},
		Correct:     1,
		Explanation: "Quality and focused study sessions are more important than just the quantity of time spent studying.",
	},
	{
		Prompt: "What is the benefit of teaching others what you've learned?",
		Options: []string{
			"It shows off your knowledge",
			"It reinforces your own understanding",
			"It wastes your study time",
			"It confuses your own learning",
		},
		Correct:     1,
		Explanation: "Teaching others helps reinforce your own understanding and reveals gaps in your knowledge that need attention.",
	},
}

// DefaultBankSize is the number of questions in the default bank.
const DefaultBankSize = 8

// DefaultBank returns a fresh copy of the default questions.
func DefaultBank() []Question {
	out := make([]Question, len(defaultBank))
	for i := range defaultBank {
		out[i] = bankQuestion(i)
	}
	return out
}

// bankQuestion returns a copy of bank item i mod DefaultBankSize.
func bankQuestion(i int) Question {
	q := defaultBank[i%len(defaultBank)].clone()
	q.Kind = KindDefault
	return q
}
