package undercover

import (
	"time"

	"github.com/bloops-games/undercover/internal/database"
)

type Config struct {
	// Logging of every engine intent to stderr
	Debug bool `envconfig:"UNDERCOVER_DEBUG" default:"false"`

	// Number of saved rosters kept in memory
	CacheSize int `envconfig:"UNDERCOVER_CACHE_SIZE" default:"64"`

	// YAML file with custom categories, the embedded words are used when empty
	WordsFile string `envconfig:"UNDERCOVER_WORDS_FILE"`

	// Length of the discussion before the vote is called, zero disables the timer
	DiscussionTime time.Duration `envconfig:"UNDERCOVER_DISCUSSION_TIME" default:"3m"`

	// Resume the game left unfinished by the previous run
	Restore bool `envconfig:"UNDERCOVER_RESTORE" default:"true"`

	Db database.Config
}
