package game

// Display is a side-effecting sink for round state. The engine calls it
// after every state-changing step; nothing it does feeds back into the
// game logic.
type Display interface {
	// ShowTable renders every seat including the dealer
	ShowTable(r *Round)

	// ShowPlayer renders a single seat after its state changed
	ShowPlayer(p *Player)

	// ShowSettlement renders the per-player results and the house net
	ShowSettlement(results []Result, houseWin int)
}

// NullDisplay discards everything. It is the default for rounds that are
// driven purely programmatically, such as tests.
type NullDisplay struct{}

func (NullDisplay) ShowTable(*Round)             {}
func (NullDisplay) ShowPlayer(*Player)           {}
func (NullDisplay) ShowSettlement([]Result, int) {}
