package models

import "time"

type User struct {
	DiscordID string
	Username  string
	UpdatedAt time.Time
}
