package coins

// Snapshot captures the observable session state for determinism tests.
type Snapshot struct {
	SessionID string
	Width     int
	Height    int
	Steps     int
	AvatarRow int
	AvatarCol int
	Top       int
	Left      int
	CoinsLeft int
	Coins     []Coin
	Won       bool
	Pending   bool
	Phase     Phase
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	row, col := s.AvatarCell()
	av := s.Avatar()
	return Snapshot{
		SessionID: s.id,
		Width:     s.Width(),
		Height:    s.Height(),
		Steps:     av.Steps,
		AvatarRow: row,
		AvatarCol: col,
		Top:       av.Top,
		Left:      av.Left,
		CoinsLeft: s.CoinsLeft(),
		Coins:     s.Coins(),
		Won:       s.Won(),
		Pending:   s.pending != nil,
		Phase:     s.Phase(),
	}
}
