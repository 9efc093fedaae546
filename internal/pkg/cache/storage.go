package cache

import (
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/redis/go-redis/v9"
)

// Logical databases on the cache server. The category cache uses 0.
const (
	SessionDB = 1
	LimiterDB = 2
)

// NewStorage returns a fiber.Storage on the same server as client but in
// database db. A nil client yields nil, which fiber middlewares treat as
// in-memory storage.
func NewStorage(client *redis.Client, db int) fiber.Storage {
	if client == nil {
		return nil
	}

	host := "localhost"
	port := 6379
	if h, p, err := net.SplitHostPort(client.Options().Addr); err == nil {
		host = h
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	return redisstorage.New(redisstorage.Config{
		Host:     host,
		Port:     port,
		Password: client.Options().Password,
		Database: db,
		Reset:    false,
	})
}
