package storage

// DefaultNamespace matches the prefix used by the mobile app.
const DefaultNamespace = "@game_tracker:"

const (
	KeyUsers       = "users"
	KeyCurrentUser = "current_user"
	gamesPrefix    = "games:"
)

// GamesKey returns the key holding the library of userID.
func GamesKey(userID string) string {
	return gamesPrefix + userID
}
