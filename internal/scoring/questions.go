package scoring

// QuestionOption is one answer choice with its trait point awards (0-5).
type QuestionOption struct {
	Text   string             `json:"text"`
	Points map[string]float64 `json:"points"`
}

// Question is one survey entry. Weightings multiply the chosen option's
// trait points before accumulation; traits absent from the map weigh 1.0.
type Question struct {
	ID         int                       `json:"id"`
	Text       string                    `json:"text"`
	Options    map[string]QuestionOption `json:"options"`
	Weightings map[string]float64        `json:"weightings"`
}

// Questions returns the full survey in order. The slice is shared; callers
// must not mutate it.
func Questions() []Question {
	return questionTable
}

// questionByID resolves a 1-based question id; ok is false out of range.
func questionByID(id int) (Question, bool) {
	if id < 1 || id > len(questionTable) {
		return Question{}, false
	}
	return questionTable[id-1], true
}

// questionTable is the fixed 30-question assessment. Pure data: each option
// awards 0-5 points to a subset of traits, scaled by the per-question
// weightings when scored.
var questionTable = []Question{
	{
		ID:   1,
		Text: "When planning a large purchase (e.g., an appliance), you:",
		Options: map[string]QuestionOption{
			"A": {Text: "Save up and wait until you can afford it outright",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitDelayedGratification: 5}},
			"B": {Text: "Put it on a credit card and pay it off gradually",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitDelayedGratification: 3}},
			"C": {Text: "Buy it immediately and figure out payment later",
				Points: map[string]float64{TraitFinancialResponsibility: 1, TraitImpulsivity: 5, TraitDelayedGratification: 0}},
			"D": {Text: "Grab a good deal on credit, even if it means higher rates",
				Points: map[string]float64{TraitFinancialResponsibility: 2, TraitImpulsivity: 4, TraitDelayedGratification: 2}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.2, TraitDelayedGratification: 1.1, TraitImpulsivity: 0.9},
	},
	{
		ID:   2,
		Text: "If you unexpectedly received ₹50,000, you would:",
		Options: map[string]QuestionOption{
			"A": {Text: "Deposit it into savings or pay off debt",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitDelayedGratification: 4}},
			"B": {Text: "Pay off outstanding bills immediately",
				Points: map[string]float64{TraitFinancialResponsibility: 4, TraitDelayedGratification: 3}},
			"C": {Text: "Spend it on non-essential luxury items",
				Points: map[string]float64{TraitFinancialResponsibility: 0, TraitImpulsivity: 5}},
			"D": {Text: "Invest in a high-risk opportunity hoping for big gains",
				Points: map[string]float64{TraitFinancialResponsibility: 2, TraitImpulsivity: 4, TraitRiskAversion: 0}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.3, TraitImpulsivity: 1.0, TraitRiskAversion: 1.1},
	},
	{
		ID:   3,
		Text: "I pay all my bills (utilities, loan payments, etc.) by their due dates:",
		Options: map[string]QuestionOption{
			"A": {Text: "Strongly agree",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitConsistency: 5}},
			"B": {Text: "Agree",
				Points: map[string]float64{TraitFinancialResponsibility: 4, TraitConsistency: 4}},
			"C": {Text: "Disagree",
				Points: map[string]float64{TraitFinancialResponsibility: 1, TraitConsistency: 1}},
			"D": {Text: "Strongly disagree",
				Points: map[string]float64{TraitFinancialResponsibility: 0, TraitConsistency: 0}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.4, TraitConsistency: 1.2},
	},
	{
		ID:   4,
		Text: "When I see a limited-time sale on something I want, I usually:",
		Options: map[string]QuestionOption{
			"A": {Text: "Take time to think it over before buying",
				Points: map[string]float64{TraitDelayedGratification: 5, TraitImpulsivity: 0}},
			"B": {Text: "Decide quickly to take advantage of the deal",
				Points: map[string]float64{TraitDelayedGratification: 2, TraitImpulsivity: 4}},
			"C": {Text: "Buy it immediately without much thought",
				Points: map[string]float64{TraitDelayedGratification: 0, TraitImpulsivity: 5}},
			"D": {Text: "Avoid buying even if it's a good deal",
				Points: map[string]float64{TraitDelayedGratification: 5, TraitRiskAversion: 4}},
		},
		Weightings: map[string]float64{TraitDelayedGratification: 1.2, TraitImpulsivity: 1.1, TraitRiskAversion: 0.9},
	},
	{
		ID:   5,
		Text: "You have ₹1,00,000 to invest. You choose:",
		Options: map[string]QuestionOption{
			"A": {Text: "Government bonds or fixed deposits (safe, low return)",
				Points: map[string]float64{TraitRiskAversion: 5, TraitImpulsivity: 0}},
			"B": {Text: "Blue-chip stocks (moderate risk)",
				Points: map[string]float64{TraitRiskAversion: 3, TraitImpulsivity: 1}},
			"C": {Text: "A high-risk startup or speculative scheme",
				Points: map[string]float64{TraitRiskAversion: 0, TraitImpulsivity: 5}},
			"D": {Text: "Keep it as cash in the bank (very safe)",
				Points: map[string]float64{TraitRiskAversion: 4, TraitImpulsivity: 0}},
		},
		Weightings: map[string]float64{TraitRiskAversion: 1.3, TraitImpulsivity: 1.0},
	},
	{
		ID:   6,
		Text: "If a major financial emergency occurred, I would feel:",
		Options: map[string]QuestionOption{
			"A": {Text: "Calm and confident that I could handle it",
				Points: map[string]float64{TraitEmotionalStability: 5, TraitFinancialResponsibility: 3}},
			"B": {Text: "Some stress but able to manage",
				Points: map[string]float64{TraitEmotionalStability: 3, TraitFinancialResponsibility: 2}},
			"C": {Text: "Very anxious and worried",
				Points: map[string]float64{TraitEmotionalStability: 1, TraitFinancialResponsibility: 1}},
			"D": {Text: "Completely overwhelmed and panicked",
				Points: map[string]float64{TraitEmotionalStability: 0, TraitFinancialResponsibility: 0}},
		},
		Weightings: map[string]float64{TraitEmotionalStability: 1.2, TraitFinancialResponsibility: 0.8},
	},
	{
		ID:   7,
		Text: "When making important financial decisions, I:",
		Options: map[string]QuestionOption{
			"A": {Text: "Research thoroughly and consult multiple sources",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitDelayedGratification: 4}},
			"B": {Text: "Do some research but decide relatively quickly",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitDelayedGratification: 2}},
			"C": {Text: "Go with my gut instinct",
				Points: map[string]float64{TraitImpulsivity: 4, TraitFinancialResponsibility: 2}},
			"D": {Text: "Ask friends or family for advice and follow it",
				Points: map[string]float64{TraitConsistency: 2, TraitFinancialResponsibility: 2}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.3, TraitDelayedGratification: 1.0, TraitImpulsivity: 0.9, TraitConsistency: 0.8},
	},
	{
		ID:   8,
		Text: "My approach to monthly budgeting is:",
		Options: map[string]QuestionOption{
			"A": {Text: "I create detailed budgets and stick to them religiously",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitConsistency: 5, TraitDelayedGratification: 4}},
			"B": {Text: "I have a rough idea of expenses and try to stay within limits",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitConsistency: 3}},
			"C": {Text: "I spend freely and hope money lasts until month-end",
				Points: map[string]float64{TraitFinancialResponsibility: 1, TraitImpulsivity: 4}},
			"D": {Text: "I don't really track expenses or make budgets",
				Points: map[string]float64{TraitFinancialResponsibility: 0, TraitConsistency: 0}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.4, TraitConsistency: 1.2, TraitDelayedGratification: 1.0, TraitImpulsivity: 0.8},
	},
	{
		ID:   9,
		Text: "When faced with a 'buy now, pay later' offer, I:",
		Options: map[string]QuestionOption{
			"A": {Text: "Never use such offers as I prefer to pay upfront",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitRiskAversion: 4, TraitDelayedGratification: 4}},
			"B": {Text: "Use it occasionally for planned purchases",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitDelayedGratification: 2}},
			"C": {Text: "Use it frequently for various purchases",
				Points: map[string]float64{TraitImpulsivity: 4, TraitFinancialResponsibility: 1}},
			"D": {Text: "Always choose it when available, regardless of need",
				Points: map[string]float64{TraitImpulsivity: 5, TraitFinancialResponsibility: 0}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.3, TraitRiskAversion: 1.0, TraitDelayedGratification: 1.1, TraitImpulsivity: 1.0},
	},
	{
		ID:   10,
		Text: "If I had to choose between two job offers:",
		Options: map[string]QuestionOption{
			"A": {Text: "Higher salary with no job security",
				Points: map[string]float64{TraitRiskAversion: 1, TraitImpulsivity: 3}},
			"B": {Text: "Lower salary but very secure position",
				Points: map[string]float64{TraitRiskAversion: 5, TraitFinancialResponsibility: 4}},
			"C": {Text: "Moderate salary with good growth potential",
				Points: map[string]float64{TraitRiskAversion: 3, TraitDelayedGratification: 4}},
			"D": {Text: "Whichever one sounds more exciting",
				Points: map[string]float64{TraitImpulsivity: 5, TraitConsistency: 0}},
		},
		Weightings: map[string]float64{TraitRiskAversion: 1.2, TraitFinancialResponsibility: 1.1, TraitDelayedGratification: 1.0, TraitImpulsivity: 0.8, TraitConsistency: 0.9},
	},
	{
		ID:   11,
		Text: "My savings account balance typically:",
		Options: map[string]QuestionOption{
			"A": {Text: "Grows steadily each month",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitConsistency: 5, TraitDelayedGratification: 4}},
			"B": {Text: "Stays relatively stable",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitConsistency: 3}},
			"C": {Text: "Fluctuates significantly month to month",
				Points: map[string]float64{TraitConsistency: 1, TraitEmotionalStability: 2}},
			"D": {Text: "Is usually close to zero or negative",
				Points: map[string]float64{TraitFinancialResponsibility: 0, TraitImpulsivity: 4}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.4, TraitConsistency: 1.2, TraitDelayedGratification: 1.0, TraitImpulsivity: 0.8, TraitEmotionalStability: 0.7},
	},
	{
		ID:   12,
		Text: "When I make a financial mistake:",
		Options: map[string]QuestionOption{
			"A": {Text: "I analyze what went wrong and create a plan to avoid it",
				Points: map[string]float64{TraitEmotionalStability: 5, TraitFinancialResponsibility: 4, TraitConsistency: 4}},
			"B": {Text: "I feel bad but move on without dwelling on it",
				Points: map[string]float64{TraitEmotionalStability: 3, TraitConsistency: 2}},
			"C": {Text: "I get very upset and stressed about it",
				Points: map[string]float64{TraitEmotionalStability: 1, TraitImpulsivity: 2}},
			"D": {Text: "I tend to make the same mistake again",
				Points: map[string]float64{TraitConsistency: 0, TraitFinancialResponsibility: 0}},
		},
		Weightings: map[string]float64{TraitEmotionalStability: 1.3, TraitFinancialResponsibility: 1.2, TraitConsistency: 1.1, TraitImpulsivity: 0.8},
	},
	{
		ID:   13,
		Text: "My attitude toward credit cards is:",
		Options: map[string]QuestionOption{
			"A": {Text: "I pay off the full balance every month",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitConsistency: 5, TraitDelayedGratification: 3}},
			"B": {Text: "I maintain a small balance but pay on time",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitConsistency: 4}},
			"C": {Text: "I often carry significant balances",
				Points: map[string]float64{TraitFinancialResponsibility: 1, TraitImpulsivity: 3}},
			"D": {Text: "I avoid credit cards entirely",
				Points: map[string]float64{TraitRiskAversion: 5, TraitFinancialResponsibility: 2}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.4, TraitConsistency: 1.3, TraitDelayedGratification: 1.0, TraitImpulsivity: 0.9, TraitRiskAversion: 0.8},
	},
	{
		ID:   14,
		Text: "When planning for retirement, I:",
		Options: map[string]QuestionOption{
			"A": {Text: "Have a detailed plan and contribute regularly",
				Points: map[string]float64{TraitDelayedGratification: 5, TraitFinancialResponsibility: 5, TraitConsistency: 4}},
			"B": {Text: "Contribute occasionally when I have extra money",
				Points: map[string]float64{TraitDelayedGratification: 3, TraitFinancialResponsibility: 2, TraitConsistency: 2}},
			"C": {Text: "Know I should plan but haven't started yet",
				Points: map[string]float64{TraitDelayedGratification: 1, TraitFinancialResponsibility: 1}},
			"D": {Text: "Prefer to live in the present and worry about it later",
				Points: map[string]float64{TraitImpulsivity: 5, TraitDelayedGratification: 0}},
		},
		Weightings: map[string]float64{TraitDelayedGratification: 1.4, TraitFinancialResponsibility: 1.3, TraitConsistency: 1.1, TraitImpulsivity: 0.9},
	},
	{
		ID:   15,
		Text: "If I were offered a chance to double my money with 50% risk of losing it all:",
		Options: map[string]QuestionOption{
			"A": {Text: "I would never take such a risk",
				Points: map[string]float64{TraitRiskAversion: 5, TraitEmotionalStability: 4}},
			"B": {Text: "I would consider it only with money I can afford to lose",
				Points: map[string]float64{TraitRiskAversion: 3, TraitFinancialResponsibility: 3}},
			"C": {Text: "I would be very tempted and likely try it",
				Points: map[string]float64{TraitRiskAversion: 1, TraitImpulsivity: 4}},
			"D": {Text: "I would definitely do it - high risk, high reward",
				Points: map[string]float64{TraitRiskAversion: 0, TraitImpulsivity: 5}},
		},
		Weightings: map[string]float64{TraitRiskAversion: 1.4, TraitImpulsivity: 1.2, TraitFinancialResponsibility: 1.0, TraitEmotionalStability: 0.8},
	},
	{
		ID:   16,
		Text: "My spending habits are:",
		Options: map[string]QuestionOption{
			"A": {Text: "Very consistent and predictable from month to month",
				Points: map[string]float64{TraitConsistency: 5, TraitFinancialResponsibility: 4, TraitEmotionalStability: 3}},
			"B": {Text: "Mostly consistent with occasional splurges",
				Points: map[string]float64{TraitConsistency: 3, TraitImpulsivity: 2}},
			"C": {Text: "Highly dependent on my mood and circumstances",
				Points: map[string]float64{TraitConsistency: 1, TraitEmotionalStability: 1, TraitImpulsivity: 4}},
			"D": {Text: "I spend impulsively without much pattern",
				Points: map[string]float64{TraitConsistency: 0, TraitImpulsivity: 5, TraitFinancialResponsibility: 0}},
		},
		Weightings: map[string]float64{TraitConsistency: 1.4, TraitFinancialResponsibility: 1.2, TraitEmotionalStability: 1.0, TraitImpulsivity: 1.0},
	},
	{
		ID:   17,
		Text: "When considering a loan for a major purchase:",
		Options: map[string]QuestionOption{
			"A": {Text: "I compare multiple lenders and read all terms carefully",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitDelayedGratification: 4, TraitConsistency: 4}},
			"B": {Text: "I check a few options and choose the best rate",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitDelayedGratification: 2}},
			"C": {Text: "I go with the first reasonable offer I find",
				Points: map[string]float64{TraitImpulsivity: 3, TraitFinancialResponsibility: 1}},
			"D": {Text: "I avoid loans entirely and save up instead",
				Points: map[string]float64{TraitRiskAversion: 5, TraitDelayedGratification: 5}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.3, TraitDelayedGratification: 1.2, TraitConsistency: 1.0, TraitImpulsivity: 0.9, TraitRiskAversion: 1.0},
	},
	{
		ID:   18,
		Text: "If my income suddenly increased by 50%, I would:",
		Options: map[string]QuestionOption{
			"A": {Text: "Increase my savings rate proportionally",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitDelayedGratification: 5, TraitConsistency: 4}},
			"B": {Text: "Save some and upgrade my lifestyle modestly",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitDelayedGratification: 3}},
			"C": {Text: "Significantly upgrade my lifestyle immediately",
				Points: map[string]float64{TraitImpulsivity: 4, TraitFinancialResponsibility: 1}},
			"D": {Text: "Spend it all on things I've always wanted",
				Points: map[string]float64{TraitImpulsivity: 5, TraitDelayedGratification: 0}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.4, TraitDelayedGratification: 1.3, TraitConsistency: 1.0, TraitImpulsivity: 1.0},
	},
	{
		ID:   19,
		Text: "My approach to financial advice is:",
		Options: map[string]QuestionOption{
			"A": {Text: "I research thoroughly from multiple credible sources",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitConsistency: 4, TraitDelayedGratification: 3}},
			"B": {Text: "I consult with financial professionals when needed",
				Points: map[string]float64{TraitFinancialResponsibility: 4, TraitRiskAversion: 3}},
			"C": {Text: "I ask friends and family for their opinions",
				Points: map[string]float64{TraitConsistency: 2, TraitFinancialResponsibility: 2}},
			"D": {Text: "I trust my instincts and don't seek much advice",
				Points: map[string]float64{TraitImpulsivity: 4, TraitConsistency: 1}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.3, TraitConsistency: 1.1, TraitDelayedGratification: 0.9, TraitRiskAversion: 0.8, TraitImpulsivity: 0.9},
	},
	{
		ID:   20,
		Text: "When facing financial stress, I:",
		Options: map[string]QuestionOption{
			"A": {Text: "Stay calm and systematically address the issues",
				Points: map[string]float64{TraitEmotionalStability: 5, TraitConsistency: 4, TraitFinancialResponsibility: 4}},
			"B": {Text: "Feel anxious but work through solutions methodically",
				Points: map[string]float64{TraitEmotionalStability: 3, TraitConsistency: 3, TraitFinancialResponsibility: 3}},
			"C": {Text: "Get overwhelmed and may make poor quick decisions",
				Points: map[string]float64{TraitEmotionalStability: 1, TraitImpulsivity: 4, TraitConsistency: 1}},
			"D": {Text: "Panic and avoid dealing with the problems",
				Points: map[string]float64{TraitEmotionalStability: 0, TraitConsistency: 0, TraitFinancialResponsibility: 0}},
		},
		Weightings: map[string]float64{TraitEmotionalStability: 1.4, TraitConsistency: 1.2, TraitFinancialResponsibility: 1.1, TraitImpulsivity: 0.8},
	},
	{
		ID:   21,
		Text: "My relationship with money can best be described as:",
		Options: map[string]QuestionOption{
			"A": {Text: "Money is a tool for achieving long-term security and goals",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitDelayedGratification: 5, TraitEmotionalStability: 4}},
			"B": {Text: "Money provides comfort and some freedom for enjoyment",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitEmotionalStability: 3}},
			"C": {Text: "Money is meant to be enjoyed and spent on experiences",
				Points: map[string]float64{TraitImpulsivity: 4, TraitDelayedGratification: 1}},
			"D": {Text: "Money causes me anxiety and stress",
				Points: map[string]float64{TraitEmotionalStability: 0, TraitRiskAversion: 4}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.3, TraitDelayedGratification: 1.2, TraitEmotionalStability: 1.2, TraitImpulsivity: 0.9, TraitRiskAversion: 0.8},
	},
	{
		ID:   22,
		Text: "If I discovered I had been overpaying for a service for months:",
		Options: map[string]QuestionOption{
			"A": {Text: "I would immediately cancel and find a better option",
				Points: map[string]float64{TraitFinancialResponsibility: 4, TraitConsistency: 3}},
			"B": {Text: "I would research alternatives before making changes",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitDelayedGratification: 4, TraitConsistency: 4}},
			"C": {Text: "I would be upset but probably continue with the same service",
				Points: map[string]float64{TraitConsistency: 1, TraitEmotionalStability: 2}},
			"D": {Text: "I wouldn't really care much about it",
				Points: map[string]float64{TraitFinancialResponsibility: 0, TraitConsistency: 0}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.4, TraitDelayedGratification: 1.0, TraitConsistency: 1.2, TraitEmotionalStability: 0.8},
	},
	{
		ID:   23,
		Text: "My emergency fund situation is:",
		Options: map[string]QuestionOption{
			"A": {Text: "I have 6+ months of expenses saved",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitDelayedGratification: 5, TraitRiskAversion: 4}},
			"B": {Text: "I have 2-3 months of expenses saved",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitDelayedGratification: 3, TraitRiskAversion: 3}},
			"C": {Text: "I have some savings but less than a month's expenses",
				Points: map[string]float64{TraitFinancialResponsibility: 1, TraitDelayedGratification: 1}},
			"D": {Text: "I live paycheck to paycheck with no emergency fund",
				Points: map[string]float64{TraitFinancialResponsibility: 0, TraitImpulsivity: 3}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.4, TraitDelayedGratification: 1.3, TraitRiskAversion: 1.0, TraitImpulsivity: 0.8},
	},
	{
		ID:   24,
		Text: "When making online purchases, I:",
		Options: map[string]QuestionOption{
			"A": {Text: "Always compare prices and read reviews thoroughly",
				Points: map[string]float64{TraitFinancialResponsibility: 4, TraitDelayedGratification: 4, TraitConsistency: 4}},
			"B": {Text: "Do some comparison but decide relatively quickly",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitDelayedGratification: 2}},
			"C": {Text: "Often buy impulsively based on recommendations",
				Points: map[string]float64{TraitImpulsivity: 4, TraitConsistency: 1}},
			"D": {Text: "Frequently make purchases I later regret",
				Points: map[string]float64{TraitImpulsivity: 5, TraitFinancialResponsibility: 0, TraitConsistency: 0}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.3, TraitDelayedGratification: 1.2, TraitConsistency: 1.1, TraitImpulsivity: 1.0},
	},
	{
		ID:   25,
		Text: "If I had to lend money to a friend in need:",
		Options: map[string]QuestionOption{
			"A": {Text: "I would help if I can afford it, with clear repayment terms",
				Points: map[string]float64{TraitFinancialResponsibility: 4, TraitEmotionalStability: 4, TraitConsistency: 4}},
			"B": {Text: "I would help immediately without worrying about repayment",
				Points: map[string]float64{TraitImpulsivity: 3, TraitEmotionalStability: 3, TraitRiskAversion: 1}},
			"C": {Text: "I would be hesitant due to potential relationship complications",
				Points: map[string]float64{TraitRiskAversion: 4, TraitEmotionalStability: 2}},
			"D": {Text: "I would refuse as I need all my money for myself",
				Points: map[string]float64{TraitFinancialResponsibility: 2, TraitRiskAversion: 5}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.2, TraitEmotionalStability: 1.1, TraitConsistency: 1.0, TraitImpulsivity: 0.8, TraitRiskAversion: 1.0},
	},
	{
		ID:   26,
		Text: "My investment philosophy is:",
		Options: map[string]QuestionOption{
			"A": {Text: "Diversified portfolio with long-term focus",
				Points: map[string]float64{TraitDelayedGratification: 5, TraitFinancialResponsibility: 5, TraitRiskAversion: 3}},
			"B": {Text: "Conservative investments with guaranteed returns",
				Points: map[string]float64{TraitRiskAversion: 5, TraitDelayedGratification: 3, TraitFinancialResponsibility: 3}},
			"C": {Text: "Mix of safe and risky investments for balance",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitRiskAversion: 2, TraitDelayedGratification: 3}},
			"D": {Text: "High-risk, high-reward investments for quick gains",
				Points: map[string]float64{TraitImpulsivity: 5, TraitRiskAversion: 0, TraitDelayedGratification: 0}},
		},
		Weightings: map[string]float64{TraitDelayedGratification: 1.3, TraitFinancialResponsibility: 1.3, TraitRiskAversion: 1.1, TraitImpulsivity: 0.9},
	},
	{
		ID:   27,
		Text: "When my friends suggest expensive group activities:",
		Options: map[string]QuestionOption{
			"A": {Text: "I participate only if it fits within my budget",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitConsistency: 4, TraitDelayedGratification: 3}},
			"B": {Text: "I usually find a way to join even if it's a stretch financially",
				Points: map[string]float64{TraitImpulsivity: 3, TraitFinancialResponsibility: 2}},
			"C": {Text: "I often skip due to cost concerns",
				Points: map[string]float64{TraitRiskAversion: 4, TraitFinancialResponsibility: 3}},
			"D": {Text: "I always participate regardless of cost",
				Points: map[string]float64{TraitImpulsivity: 5, TraitFinancialResponsibility: 0}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.3, TraitConsistency: 1.1, TraitDelayedGratification: 1.0, TraitImpulsivity: 1.0, TraitRiskAversion: 0.9},
	},
	{
		ID:   28,
		Text: "My approach to financial goals is:",
		Options: map[string]QuestionOption{
			"A": {Text: "I set specific, measurable goals with clear timelines",
				Points: map[string]float64{TraitConsistency: 5, TraitDelayedGratification: 5, TraitFinancialResponsibility: 5}},
			"B": {Text: "I have general goals but flexible on how to achieve them",
				Points: map[string]float64{TraitConsistency: 3, TraitDelayedGratification: 3, TraitFinancialResponsibility: 3}},
			"C": {Text: "I have vague hopes but no concrete plans",
				Points: map[string]float64{TraitConsistency: 1, TraitDelayedGratification: 1, TraitFinancialResponsibility: 1}},
			"D": {Text: "I prefer to live spontaneously without financial planning",
				Points: map[string]float64{TraitImpulsivity: 5, TraitConsistency: 0, TraitDelayedGratification: 0}},
		},
		Weightings: map[string]float64{TraitConsistency: 1.4, TraitDelayedGratification: 1.4, TraitFinancialResponsibility: 1.3, TraitImpulsivity: 0.9},
	},
	{
		ID:   29,
		Text: "If I lost my job tomorrow, I would:",
		Options: map[string]QuestionOption{
			"A": {Text: "Feel confident in my emergency fund and job search strategy",
				Points: map[string]float64{TraitEmotionalStability: 5, TraitFinancialResponsibility: 5, TraitDelayedGratification: 4}},
			"B": {Text: "Feel worried but believe I could manage for a while",
				Points: map[string]float64{TraitEmotionalStability: 3, TraitFinancialResponsibility: 3}},
			"C": {Text: "Feel very stressed about immediate financial obligations",
				Points: map[string]float64{TraitEmotionalStability: 1, TraitFinancialResponsibility: 1}},
			"D": {Text: "Panic completely as I have no financial backup",
				Points: map[string]float64{TraitEmotionalStability: 0, TraitFinancialResponsibility: 0, TraitImpulsivity: 2}},
		},
		Weightings: map[string]float64{TraitEmotionalStability: 1.3, TraitFinancialResponsibility: 1.4, TraitDelayedGratification: 1.2, TraitImpulsivity: 0.7},
	},
	{
		ID:   30,
		Text: "Overall, my financial behavior is:",
		Options: map[string]QuestionOption{
			"A": {Text: "Very disciplined and consistent with long-term focus",
				Points: map[string]float64{TraitFinancialResponsibility: 5, TraitConsistency: 5, TraitDelayedGratification: 5, TraitEmotionalStability: 4}},
			"B": {Text: "Generally responsible with occasional lapses",
				Points: map[string]float64{TraitFinancialResponsibility: 3, TraitConsistency: 3, TraitDelayedGratification: 3}},
			"C": {Text: "Inconsistent and often driven by emotions or impulses",
				Points: map[string]float64{TraitConsistency: 1, TraitImpulsivity: 4, TraitEmotionalStability: 2}},
			"D": {Text: "Completely disorganized and impulsive with money",
				Points: map[string]float64{TraitFinancialResponsibility: 0, TraitConsistency: 0, TraitImpulsivity: 5, TraitDelayedGratification: 0}},
		},
		Weightings: map[string]float64{TraitFinancialResponsibility: 1.4, TraitConsistency: 1.4, TraitDelayedGratification: 1.3, TraitEmotionalStability: 1.1, TraitImpulsivity: 1.0},
	},
}
