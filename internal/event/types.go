package event

const (
	ScoreChanged    EventType = "ScoreChanged"    // Data: int, new score
	TargetMoved     EventType = "TargetMoved"     // Data: board.Target
	GameStarted     EventType = "GameStarted"     // Data: round id
	GameStopped     EventType = "GameStopped"     // Data: round id
	ScoreSaved      EventType = "ScoreSaved"      // Data: file path
	ScoreSaveFailed EventType = "ScoreSaveFailed" // Data: error
)
