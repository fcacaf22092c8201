package params

// Level identifies the scope a parameter is declared at
type Level string

// Supported parameter levels
const (
	LevelAdmin Level = "admin"
	LevelUser  Level = "user"
)

// Valid reports whether l is one of the supported levels
func (l Level) Valid() bool {
	return l == LevelAdmin || l == LevelUser
}

// Levels returns the supported levels in declaration order
func Levels() []Level {
	return []Level{LevelAdmin, LevelUser}
}
