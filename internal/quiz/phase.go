package quiz

// Phase is the engine's coarse state.
type Phase int

const (
	PhaseIntro     Phase = iota // Waiting for the player to start the current level
	PhaseLoading                // A question batch is being fetched
	PhaseAnswering              // Showing a question, possibly already answered
	PhaseFeedback               // Showing correctness and the explanation
	PhaseCompleted              // All levels done; only Reset leaves this phase
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseLoading:
		return "loading"
	case PhaseAnswering:
		return "answering"
	case PhaseFeedback:
		return "feedback"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Transition is reported to an Observer after every state change. An
// accepted answer is reported as Answering → Answering with Answered set.
type Transition struct {
	From     Phase
	To       Phase
	Answered bool
}

// Observer receives transitions synchronously from the engine.
type Observer func(Transition)
