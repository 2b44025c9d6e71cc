package game

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/aaronzipp/party-rooms/internal/models"
	"github.com/aaronzipp/party-rooms/internal/store"
)

// GenerateRoomCode creates a random room code
func GenerateRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := 0; i < RoomCodeLength; i++ {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(RoomCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = RoomCodeChars[rand.Intn(len(RoomCodeChars))]
			continue
		}
		code[i] = RoomCodeChars[n.Int64()]
	}
	return string(code)
}

// RegisterRoom stores room under a freshly generated code, retrying on clash
func RegisterRoom(roomStore *store.RoomStore, room *models.Room) string {
	for {
		code := GenerateRoomCode()
		room.Code = code
		if roomStore.Reserve(code, room) {
			return code
		}
	}
}

// NormalizeCode makes user-typed room codes comparable
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CleanName trims a display name, caps its length and falls back to "Player N"
func CleanName(name string, seat int) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Sprintf("Player %d", seat)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}
