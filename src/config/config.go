package config

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

const TIME_PARSE_FORMAT = "2006-01-02 15:04:05 -07:00"

var (
	API_ENV        = os.Getenv("API_ENV")
	API_SECRET     = os.Getenv("API_SECRET")
	API_QRC_SECRET = os.Getenv("API_QRC_SECRET")
	JWT_SECRET_KEY = os.Getenv("JWT_SECRET_KEY")
)

func GetDSN() string {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	tz := os.Getenv("TZ")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s", host, user, pass, name, port, tz)
	return dsn
}
