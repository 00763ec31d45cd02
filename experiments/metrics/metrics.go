package metrics

import "time"

const Tie = "tie"

// AgentConfig describes the machine level and the opponent it plays against.
type AgentConfig struct {
	ID       int    `json:"id" yaml:"id"`
	Level    int    `json:"level" yaml:"level"`
	Opponent string `json:"opponent" yaml:"opponent"` // "random", "greedy" or "mcts"
	Seed     uint64 `json:"seed" yaml:"seed"`
}

type MoveMetric struct {
	Step         int
	Player       string
	Row          int // 1-indexed
	Col          int // 1-indexed
	MoveIndex    int // Position among the legal moves in row-major order
	LegalMoves   int
	Duration     time.Duration
	Nodes        int // Search tree size, machine moves only
	Leaves       int
	HumanDiscs   int
	MachineDiscs int
}

type GameMetric struct {
	ID           string
	FirstPlayer  string
	Level        int
	Winner       string // Player name or Tie
	HumanDiscs   int
	MachineDiscs int
	Passes       int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type GameRecord struct {
	Number int
	Agent  int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.Number
	MoveMetric
}

// Summary tallies the results of one agent config.
type Summary struct {
	Agent       int
	Games       int
	MachineWins int
	HumanWins   int
	Ties        int
}

func Summarize(agent int, records []GameRecord) Summary {
	s := Summary{Agent: agent}
	for _, r := range records {
		if r.Agent != agent {
			continue
		}
		s.Games++
		switch r.Winner {
		case Tie:
			s.Ties++
		case "machine":
			s.MachineWins++
		default:
			s.HumanWins++
		}
	}
	return s
}
