package views

import "strings"

// ChatGreeting opens every conversation.
const ChatGreeting = "Hi there! 👋 How can I help you today?"

// ChatFallback answers a message no topic matches.
const ChatFallback = "Thanks for your message. I'm not sure I understand your question. Would you like to speak with a human? You can also try asking about our services, pricing, contact information, or career opportunities."

// ChatSuggestions are the canned questions offered under the input.
var ChatSuggestions = []string{
	"What services do you offer?",
	"How much do your services cost?",
	"How can I contact your team?",
	"What are your business hours?",
	"Can I see your portfolio?",
	"Are you hiring?",
}

type chatTopic struct {
	name     string
	keywords []string
	reply    string
}

// Earlier topics win when a message matches several.
var chatTopics = []chatTopic{
	{"services", []string{"service", "offer", "help"},
		"We offer software development, digital marketing, and graphic design services. Would you like to learn more about any specific service?"},
	{"pricing", []string{"price", "cost", "quote", "package"},
		"Our pricing varies based on project requirements. For a custom quote, please fill out our contact form or schedule a consultation call."},
	{"contact", []string{"contact", "email", "phone", "call"},
		"You can reach us at info@nexusconsult.com or call us at (415) 555-0123. Would you like me to help you schedule a consultation?"},
	{"hours", []string{"time", "hour", "open"},
		"Our business hours are Monday to Friday, 9:00 AM to 6:00 PM. Our offices are closed on weekends."},
	{"portfolio", []string{"portfolio", "work", "project", "client"},
		"You can view our portfolio on the Portfolio page. We've worked with clients across various industries including finance, healthcare, retail, and more."},
	{"career", []string{"job", "career", "hire", "internship", "position"},
		"We're always looking for talented individuals to join our team. Check our Careers page for current openings and internship opportunities."},
}

// ChatReply is the answer to one message.
type ChatReply struct {
	Topic       string   `json:"topic"`
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}

// Chat answers message by case-insensitive keyword substring. A message that
// matches no topic gets the fallback with topic "fallback".
func Chat(message string) ChatReply {
	lower := strings.ToLower(message)
	reply := ChatReply{Topic: "fallback", Reply: ChatFallback, Suggestions: append([]string(nil), ChatSuggestions...)}
	for _, t := range chatTopics {
		for _, k := range t.keywords {
			if strings.Contains(lower, k) {
				reply.Topic, reply.Reply = t.name, t.reply
				return reply
			}
		}
	}
	return reply
}
