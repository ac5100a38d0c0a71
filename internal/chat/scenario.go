package chat

// Scenario is a predefined role-play situation supplying a system
// prompt and an opening line from the partner.
type Scenario struct {
	ID          string
	Title       string
	Description string

	// Role the model plays, injected into the system prompt.
	Role string

	// Opener is the partner's first line, seeded into the transcript as
	// an assistant turn before the learner says anything.
	Opener string
}

// FreeTalk is the default scenario: open conversation with no role.
var FreeTalk = Scenario{
	ID:          "free",
	Title:       "Free Talk",
	Description: "Open conversation about anything",
	Role:        "a friendly Japanese conversation partner",
	Opener:      "こんにちは！今日は何について話しましょうか？",
}

// Scenarios is the role-play catalog, in menu order.
var Scenarios = []Scenario{
	{
		ID:          "restaurant",
		Title:       "At a Restaurant",
		Description: "Order food and talk with the staff",
		Role:        "a waiter at a casual Japanese restaurant. Greet the customer, take their order, make recommendations, and handle the bill",
		Opener:      "いらっしゃいませ！何名様ですか？",
	},
	{
		ID:          "interview",
		Title:       "Job Interview",
		Description: "Practice keigo in a job interview",
		Role:        "an interviewer at a Japanese company. Ask about the candidate's background, strengths, and motivation. Expect polite form and keigo",
		Opener:      "本日は面接にお越しいただき、ありがとうございます。まず、自己紹介をお願いします。",
	},
	{
		ID:          "shopping",
		Title:       "Shopping",
		Description: "Ask about products, sizes, and prices",
		Role:        "a shop clerk in a Tokyo department store. Help the customer find items, discuss sizes, colors and prices",
		Opener:      "いらっしゃいませ。何かお探しですか？",
	},
	{
		ID:          "directions",
		Title:       "Asking Directions",
		Description: "Find your way around a Japanese city",
		Role:        "a helpful passerby in Kyoto. Give directions using landmarks, distances, and train lines",
		Opener:      "はい、どうしましたか？",
	},
	{
		ID:          "introductions",
		Title:       "Meeting Someone New",
		Description: "Introduce yourself and make small talk",
		Role:        "a new acquaintance at a neighborhood event. Make small talk about hometowns, hobbies, and work",
		Opener:      "はじめまして！よろしくお願いします。お名前は？",
	},
}

// Lookup returns the scenario with the given ID. Unknown IDs (including
// "free") fall back to FreeTalk.
func Lookup(id string) Scenario {
	for _, s := range Scenarios {
		if s.ID == id {
			return s
		}
	}
	return FreeTalk
}
