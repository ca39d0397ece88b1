package database

import (
	"cataractcare-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMongoURI(t *testing.T) {
	t.Run("Without Credentials", func(t *testing.T) {
		uri := mongoURI(config.MongoDB{Host: "db", Port: "27017"})
		assert.Equal(t, "mongodb://db:27017", uri)
	})

	t.Run("With Credentials", func(t *testing.T) {
		uri := mongoURI(config.MongoDB{Host: "db", Port: "27017", Username: "root", Password: "secret"})
		assert.Equal(t, "mongodb://root:secret@db:27017", uri)
	})
}
