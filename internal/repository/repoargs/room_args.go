package repoargs

import "time"

type RoomCreate struct {
	SlotTime  time.Time
	RoomIndex int
}
