// Package env supplies secrets the YAML config leaves blank.
package env

import "os"

var (
	RedisPassWord = os.Getenv("DOTSBOT_REDIS_PASSWORD")
	MongoPassWord = os.Getenv("DOTSBOT_MONGO_PASSWORD")
)
