package gallery

import (
	"strconv"
	"strings"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
)

// DisplaysPerRoom is the number of displays hung in one room.
const DisplaysPerRoom = 4

// MaxDisplay is the largest display id the gallery serves. Seed keys grow
// by one unit per 65536 ids, so ids are capped to keep hashing bounded.
const MaxDisplay = int64(1) << 40

// MaxRoom is the room holding MaxDisplay.
const MaxRoom = (MaxDisplay-1)/DisplaysPerRoom + 1

// User-facing validation messages.
const (
	msgInvalidDisplay = "Invalid Display ID. Please use a number greater than 0."
	msgInvalidRoom    = "Invalid Room Number. Please use a number greater than 0."
)

// RoomDisplays returns the display ids in room, in hexagon side order.
func RoomDisplays(room int64) ([DisplaysPerRoom]int64, error) {
	var ids [DisplaysPerRoom]int64
	if err := ValidateRoom(room); err != nil {
		return ids, err
	}
	base := (room - 1) * DisplaysPerRoom
	for k := range ids {
		ids[k] = base + int64(k) + 1
	}
	return ids, nil
}

// RoomOf returns the room a display hangs in.
func RoomOf(display int64) (int64, error) {
	if err := ValidateDisplay(display); err != nil {
		return 0, err
	}
	return (display-1)/DisplaysPerRoom + 1, nil
}

// ValidateDisplay checks that display is in [1, MaxDisplay].
func ValidateDisplay(display int64) error {
	if display < 1 || display > MaxDisplay {
		return errs.New(errs.ErrCodeInvalidDisplay, msgInvalidDisplay)
	}
	return nil
}

// ValidateRoom checks that room is in [1, MaxRoom].
func ValidateRoom(room int64) error {
	if room < 1 || room > MaxRoom {
		return errs.New(errs.ErrCodeInvalidRoom, msgInvalidRoom)
	}
	return nil
}

// ParseDisplay parses and validates a display id from user input.
func ParseDisplay(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidDisplay, err, msgInvalidDisplay)
	}
	return n, ValidateDisplay(n)
}

// ParseRoom parses and validates a room number from user input.
func ParseRoom(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidRoom, err, msgInvalidRoom)
	}
	return n, ValidateRoom(n)
}

// ParseRoomOrFirst is ParseRoom with the lenient behavior of the room page:
// missing or invalid input lands in room 1.
func ParseRoomOrFirst(s string) int64 {
	room, err := ParseRoom(s)
	if err != nil {
		return 1
	}
	return room
}
