package entity

const (
	MarkX = "X"
	MarkO = "O"
)

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mark string `json:"mark,omitempty"`
}

// Is - compares players by identifier.
func (that *Player) Is(other *Player) bool {
	if that == nil || other == nil {
		return false
	}
	return that.ID == other.ID
}
