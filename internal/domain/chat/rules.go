package chat

// DefaultRules is the canned-response table in priority order; the first
// matching keyword wins.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "contact", Response: "I can connect you with our team. What's your name?", StartCollect: true},
		{Keyword: "agent", Response: "I can connect you with our team. What's your name?", StartCollect: true},
		{Keyword: "human", Response: "I can connect you with our team. What's your name?", StartCollect: true},
		{Keyword: "cancel", Response: "To cancel a booking, open your confirmation and choose Cancel. Refunds take 5-7 business days."},
		{Keyword: "refund", Response: "Refunds are processed to the original payment method within 5-7 business days."},
		{Keyword: "payment", Response: "We accept cards, UPI and net banking. Payment is taken at the final confirmation step."},
		{Keyword: "price", Response: "Hotel prices are per room per night; flights, trains and buses are flat fares."},
		{Keyword: "hotel", Response: "Search hotels by city and dates, then pick rooms and guests to see the total."},
		{Keyword: "flight", Response: "Flight fares shown are economy base fares for one traveller."},
		{Keyword: "package", Response: "Holiday packages bundle stay and travel at a single flat price."},
		{Keyword: "hello", Response: "Hi there! How can I help you with your trip today?"},
		{Keyword: "hi", Response: "Hi there! How can I help you with your trip today?"},
	}
}

func DefaultFallbacks() []string {
	return []string{
		"Sorry, I didn't quite get that. Could you rephrase?",
		"I'm not sure about that one. Try asking about bookings, prices or refunds.",
		"Hmm, I don't know that yet. Type 'contact' to reach our team.",
	}
}
