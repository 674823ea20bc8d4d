package bracket

import "time"

// MaxTeams is the hard cap on registrations for the event.
const MaxTeams = 16

type Team struct {
	ID              int64     `db:"id" json:"id"`
	TeamName        string    `db:"team_name" json:"teamName"`
	Player1Pseudo   string    `db:"player1_pseudo" json:"player1Pseudo"`
	Player1Email    string    `db:"player1_email" json:"player1Email"`
	Player1Whatsapp string    `db:"player1_whatsapp" json:"player1Whatsapp"`
	Player2Pseudo   string    `db:"player2_pseudo" json:"player2Pseudo"`
	Player2Email    string    `db:"player2_email" json:"player2Email"`
	Player2Whatsapp string    `db:"player2_whatsapp" json:"player2Whatsapp"`
	IsPaid          bool      `db:"is_paid" json:"isPaid"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}
