package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// TopK is the number of passages pulled from the vector store per question.
	TopK = 10
)

// FallbackAnswer is returned verbatim when the similarity search comes back
// empty. The generation stage is never invoked in that case.
const FallbackAnswer = "I apologize, but I couldn't find any relevant information about that in my database. Could you please try rephrasing your question or ask about a different topic?"
