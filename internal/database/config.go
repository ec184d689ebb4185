package database

type Config struct {
	// Path to the bbolt file holding saved rosters and the unfinished game
	FilePath string `envconfig:"UNDERCOVER_DB_FILE_PATH" default:"undercover.db"`
}
