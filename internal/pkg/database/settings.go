package database

import "fmt"

type PostgresSettings struct {
	User       string
	Password   string
	Host       string
	Port       string
	DBName     string
	SSlEnabled bool
}

func (ps PostgresSettings) GetUrl() string {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", ps.User, ps.Password, ps.Host, ps.Port, ps.DBName)

	if !ps.SSlEnabled {
		url += "?sslmode=disable"
	}

	return url
}
